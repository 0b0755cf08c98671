package v1_test

import (
	"net/http"

	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/models"
	"github.com/cavalaria/backend/test"
)

func (suite *TestSuiteStandard) TestCleanup() {
	officer := createTestOfficer(suite.T(), v1.OfficerEditable{})
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{})
	createTestOrder(suite.T(), v1.OrderEditable{})
	createTestDamage(suite.T(), vehicle, v1.DamageEditable{Description: "Dent"})
	setTestReferenceValue(suite.T(), vehicle, 10_000_000)
	setTestReferenceValue(suite.T(), vehicle, 11_000_000)

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	for _, model := range []any{
		&models.Officer{},
		&models.Vehicle{},
		&models.VehicleDamage{},
		&models.MaintenanceOrder{},
		&models.ReferenceValue{},
		&models.ValueChange{},
		&models.User{},
	} {
		var count int64
		suite.Require().Nil(models.DB.Model(model).Count(&count).Error)
		suite.Assert().Equal(int64(0), count, "model %T has remaining data", model)
	}

	// The deleted resources are gone
	r := test.Request(suite.T(), http.MethodGet, officer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	officer := createTestOfficer(suite.T(), v1.OfficerEditable{})

	tests := []string{
		"",
		"confirm=",
		"confirm=yes",
	}

	for _, query := range tests {
		recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?"+query, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}

	// Nothing was deleted
	r := test.Request(suite.T(), http.MethodGet, officer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
