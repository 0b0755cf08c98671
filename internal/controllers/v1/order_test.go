package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/models"
	"github.com/cavalaria/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOrdersCreate() {
	order := createTestOrder(suite.T(), v1.OrderEditable{
		Plate:           "bra2e19",
		OrderNumber:     "2024/0147",
		Amount:          decimal.NewFromFloat(1521.95),
		Description:     "Brake pad replacement",
		ResponsibleShop: "Oficina Central",
	})

	suite.Assert().Equal("BRA2E19", order.Data.Plate)
	suite.Assert().Equal("2024/0147", order.Data.OrderNumber)
	suite.Assert().True(decimal.NewFromFloat(1521.95).Equal(order.Data.Amount))
	suite.Assert().False(order.Data.OrderDate.IsZero())
}

func (suite *TestSuiteStandard) TestOrdersCreateDuplicateNumber() {
	createTestOrder(suite.T(), v1.OrderEditable{OrderNumber: "2024/0147"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/orders", []v1.OrderEditable{
		{Plate: "XYZ9A87", OrderNumber: "2024/0147"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.OrderCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrOrderNumberNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestOrdersGetFiltered() {
	createTestOrder(suite.T(), v1.OrderEditable{
		Plate:           "ABC1D23",
		OrderDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.New(500, 0),
		ResponsibleShop: "Oficina-Central",
	})
	createTestOrder(suite.T(), v1.OrderEditable{
		Plate:           "ABC1D23",
		OrderDate:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.New(1500, 0),
		ResponsibleShop: "Oficina-Norte",
	})
	createTestOrder(suite.T(), v1.OrderEditable{
		Plate:           "XYZ9A87",
		OrderDate:       time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.New(3000, 0),
		ResponsibleShop: "Oficina-Central",
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Plate", "plate=ABC1D23", 2},
		{"Shop", "responsibleShop=Oficina-Central", 2},
		{"From date", "fromDate=2024-02-01T00:00:00Z", 2},
		{"Until date", "untilDate=2024-02-01T00:00:00Z", 1},
		{"Date range", "fromDate=2024-01-01T00:00:00Z&untilDate=2024-02-28T00:00:00Z", 2},
		{"Amount less or equal", "amountLessOrEqual=1500", 2},
		{"Amount more or equal", "amountMoreOrEqual=1500", 2},
		{"Amount exact", "amount=3000", 1},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/orders?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.OrderListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestOrdersSorted() {
	older := createTestOrder(suite.T(), v1.OrderEditable{
		OrderDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	newer := createTestOrder(suite.T(), v1.OrderEditable{
		OrderDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/orders", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OrderListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(newer.Data.ID, response.Data[0].ID, "orders must be sorted newest first")
	suite.Assert().Equal(older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestOrdersUpdate() {
	order := createTestOrder(suite.T(), v1.OrderEditable{Description: "Brake pads"})

	recorder := test.Request(suite.T(), http.MethodPatch, order.Data.Links.Self, map[string]any{
		"description": "Brake pads and discs",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OrderResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Brake pads and discs", response.Data.Description)
}

func (suite *TestSuiteStandard) TestOrdersDelete() {
	order := createTestOrder(suite.T(), v1.OrderEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, order.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, order.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOrdersGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/orders/"+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
