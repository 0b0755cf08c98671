// Package docgen renders service order documents from the unit's DOCX
// template.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	docx "github.com/lukasjarosch/go-docx"
)

// ContentType is the MIME type for the generated documents.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ServiceOrder carries the values substituted into the template.
type ServiceOrder struct {
	Registration string
	OrderNumber  string
	OrderDate    string
	Plate        string
	Shop         string
	Observation  string
	Value        string
	FleetType    string
	SignerName   string
	SignerRank   string
}

// Generator renders documents from a template file.
type Generator struct {
	templatePath string
}

func New(templatePath string) *Generator {
	return &Generator{
		templatePath: templatePath,
	}
}

// Render substitutes the order values into the template and returns the
// document bytes.
//
// A temporary file is used while the document is assembled. It is removed
// before Render returns, regardless of the outcome.
func (g *Generator) Render(order ServiceOrder) ([]byte, error) {
	doc, err := docx.Open(g.templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document template: %w", err)
	}

	replacements := docx.PlaceholderMap{
		"registration": order.Registration,
		"order_number": order.OrderNumber,
		"order_date":   order.OrderDate,
		"plate":        order.Plate,
		"shop":         order.Shop,
		"observation":  order.Observation,
		"value":        order.Value,
		"fleet_type":   order.FleetType,
		"signer_name":  order.SignerName,
		"signer_rank":  order.SignerRank,
	}

	err = doc.ReplaceAll(replacements)
	if err != nil {
		return nil, fmt.Errorf("failed to fill document template: %w", err)
	}

	tmp, err := os.CreateTemp("", "service-order-*.docx")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary document: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	err = doc.WriteToFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return data, nil
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Filename derives the download filename from the order metadata.
// Everything that is not filesystem-safe is replaced.
func Filename(registration, orderNumber string) string {
	sanitize := func(s string) string {
		return strings.Trim(unsafeFilename.ReplaceAllString(s, "-"), "-")
	}

	name := fmt.Sprintf("ordem_servico_%s_%s", sanitize(registration), sanitize(orderNumber))
	return filepath.Clean(name) + ".docx"
}
