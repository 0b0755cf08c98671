package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/docgen"
	"github.com/cavalaria/backend/test"
)

func (suite *TestSuiteStandard) TestOrderDocumentCreate() {
	suite.T().Setenv("DOCUMENT_TEMPLATE", test.CreateDocumentTemplate(suite.T()))

	createTestVehicle(suite.T(), v1.VehicleEditable{
		RegistrationTag: "VTR-031",
		Plate:           "BRA2E19",
		Make:            "Chevrolet",
		Model:           "S10",
		Year:            2020,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/documents/orders", v1.OrderDocumentRequest{
		Registration: "VTR-031",
		OrderNumber:  "2024/0147",
		OrderDate:    "12/03/2024",
		Shop:         "Oficina Central",
		Value:        "R$ 1.521,95",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal(docgen.ContentType, recorder.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="ordem_servico_VTR-031_2024-0147.docx"`, recorder.Header().Get("Content-Disposition"))

	// The body is a ZIP container
	body := recorder.Body.Bytes()
	suite.Require().Greater(len(body), 2)
	suite.Assert().Equal("PK", string(body[:2]))
}

func (suite *TestSuiteStandard) TestOrderDocumentGetWithoutArchive() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/documents/orders/ordem_servico_VTR-031_2024-0147.docx", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))

	// The test router has no archive configured, documents are never retrievable
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/documents/orders/ordem_servico_VTR-031_2024-0147.docx", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOrderDocumentValidation() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{RegistrationTag: "VTR-031", Plate: "BRA2E19"})

	tests := []struct {
		name   string
		body   v1.OrderDocumentRequest
		status int
	}{
		{
			"Missing registration",
			v1.OrderDocumentRequest{OrderNumber: "2024/0147", OrderDate: "12/03/2024"},
			http.StatusBadRequest,
		},
		{
			"Missing order number",
			v1.OrderDocumentRequest{Registration: "VTR-031", OrderDate: "12/03/2024"},
			http.StatusBadRequest,
		},
		{
			"Missing order date",
			v1.OrderDocumentRequest{Registration: "VTR-031", OrderNumber: "2024/0147"},
			http.StatusBadRequest,
		},
		{
			"Unknown vehicle",
			v1.OrderDocumentRequest{Registration: "VTR-999", OrderNumber: "2024/0147", OrderDate: "12/03/2024"},
			http.StatusNotFound,
		},
		{
			"Unparseable value",
			v1.OrderDocumentRequest{Registration: vehicle.Data.RegistrationTag, OrderNumber: "2024/0147", OrderDate: "12/03/2024", Value: "R$ --"},
			http.StatusBadRequest,
		},
		{
			// The test environment has no template file, rendering a
			// valid request fails at the template
			"Template missing",
			v1.OrderDocumentRequest{Registration: vehicle.Data.RegistrationTag, OrderNumber: "2024/0147", OrderDate: "12/03/2024", Value: "R$ 1.521,95"},
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/documents/orders", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestOrderDocumentEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/documents/orders", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOrderDocumentOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/documents/orders", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("POST", recorder.Header().Get("allow"))
}
