package test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const templateDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Ordem de servico {order_number} de {order_date}</w:t></w:r></w:p><w:p><w:r><w:t>Viatura {registration} ({plate}), {fleet_type}</w:t></w:r></w:p><w:p><w:r><w:t>Oficina: {shop}</w:t></w:r></w:p><w:p><w:r><w:t>Valor: {value}</w:t></w:r></w:p><w:p><w:r><w:t>Observacao: {observation}</w:t></w:r></w:p><w:p><w:r><w:t>{signer_name}, {signer_rank}</w:t></w:r></w:p></w:body></w:document>`

const templateContentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const templateRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// CreateDocumentTemplate writes a minimal service order template to a
// temporary file and returns its path. The file is removed with the
// test's temporary directory.
func CreateDocumentTemplate(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "service_order.docx")
	f, err := os.Create(path)
	require.Nil(t, err)

	w := zip.NewWriter(f)
	files := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", templateContentTypesXML},
		{"_rels/.rels", templateRelsXML},
		{"word/document.xml", templateDocumentXML},
	}

	for _, file := range files {
		fw, err := w.Create(file.name)
		require.Nil(t, err)

		_, err = fw.Write([]byte(file.content))
		require.Nil(t, err)
	}

	require.Nil(t, w.Close())
	require.Nil(t, f.Close())

	return path
}
