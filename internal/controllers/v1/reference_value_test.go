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

func setTestReferenceValue(t *testing.T, vehicle v1.VehicleResponse, valueCents int64, expectedStatus ...int) v1.ReferenceValueResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPut, vehicle.Data.Links.ReferenceValue, map[string]any{
		"valueCents": valueCents,
	})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ReferenceValueResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestReferenceValuePut() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{Plate: "BRA2E19"})

	value := setTestReferenceValue(suite.T(), vehicle, 10_000_000)
	suite.Assert().Equal(vehicle.Data.ID, value.Data.VehicleID)
	suite.Assert().Equal("BRA2E19", value.Data.Plate)
	suite.Assert().True(decimal.New(100_000, 0).Equal(value.Data.Value), "got %s", value.Data.Value)
	suite.Assert().Empty(value.Data.History, "the first save must not create history")
}

func (suite *TestSuiteStandard) TestReferenceValueUpdateHistory() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{})

	setTestReferenceValue(suite.T(), vehicle, 9_500_000)
	value := setTestReferenceValue(suite.T(), vehicle, 10_000_000)

	suite.Require().Len(value.Data.History, 1)
	suite.Assert().True(decimal.New(95_000, 0).Equal(value.Data.History[0].PreviousValue))
	suite.Assert().True(decimal.New(100_000, 0).Equal(value.Data.History[0].NewValue))
}

func (suite *TestSuiteStandard) TestReferenceValueTooLow() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{})

	response := setTestReferenceValue(suite.T(), vehicle, 100, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrReferenceValueTooLow.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestReferenceValueGetNotFound() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{})

	recorder := test.Request(suite.T(), http.MethodGet, vehicle.Data.Links.ReferenceValue, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestReferenceValueUnknownVehicle() {
	recorder := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/v1/vehicles/%s/reference-value", uuid.NewString()), map[string]any{
		"valueCents": 10_000_000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func getTestBalance(t *testing.T, vehicle v1.VehicleResponse) v1.BalanceResponse {
	r := test.Request(t, http.MethodGet, vehicle.Data.Links.Balance, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.BalanceResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestBalance() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{Plate: "BRA2E19"})
	setTestReferenceValue(suite.T(), vehicle, 10_000_000)

	createTestOrder(suite.T(), v1.OrderEditable{
		Plate:     "BRA2E19",
		OrderDate: time.Now(),
		Amount:    decimal.New(10_000, 0),
	})

	// An order outside the window must not count
	createTestOrder(suite.T(), v1.OrderEditable{
		Plate:     "BRA2E19",
		OrderDate: time.Now().AddDate(0, -12, -1),
		Amount:    decimal.New(5_000, 0),
	})

	// An order for another vehicle must not count
	createTestOrder(suite.T(), v1.OrderEditable{
		Plate:     "XYZ9A87",
		OrderDate: time.Now(),
		Amount:    decimal.New(2_000, 0),
	})

	response := getTestBalance(suite.T(), vehicle)
	summary := response.Data

	assert.True(suite.T(), decimal.New(100_000, 0).Equal(summary.ReferenceValue), "got %s", summary.ReferenceValue)
	assert.True(suite.T(), decimal.New(70_000, 0).Equal(summary.AnnualLimit), "got %s", summary.AnnualLimit)
	assert.True(suite.T(), decimal.New(20_000, 0).Equal(summary.PerOrderLimit), "got %s", summary.PerOrderLimit)
	assert.True(suite.T(), decimal.New(10_000, 0).Equal(summary.Spent), "got %s", summary.Spent)
	assert.True(suite.T(), decimal.New(60_000, 0).Equal(summary.Remaining), "got %s", summary.Remaining)
	assert.True(suite.T(), summary.PercentUsed.Round(2).Equal(decimal.New(1429, -2)), "got %s", summary.PercentUsed)

	suite.Require().Len(summary.Months, 1)
	assert.True(suite.T(), decimal.New(10_000, 0).Equal(summary.Months[0].Spent))
}

func (suite *TestSuiteStandard) TestBalanceWithoutReferenceValue() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{Plate: "ABC1D23"})

	createTestOrder(suite.T(), v1.OrderEditable{
		Plate:     "ABC1D23",
		OrderDate: time.Now(),
		Amount:    decimal.New(500, 0),
	})

	response := getTestBalance(suite.T(), vehicle)
	summary := response.Data

	assert.True(suite.T(), summary.AnnualLimit.IsZero())
	assert.True(suite.T(), decimal.New(500, 0).Equal(summary.Spent))
	assert.True(suite.T(), summary.Remaining.IsZero(), "the remaining balance must be clamped at zero")
	assert.True(suite.T(), summary.PercentUsed.IsZero(), "a zero limit must yield a zero percentage")
}

func (suite *TestSuiteStandard) TestBalanceUnknownVehicle() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/vehicles/%s/balance", uuid.NewString()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
