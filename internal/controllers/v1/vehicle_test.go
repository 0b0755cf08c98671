package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/models"
	"github.com/cavalaria/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestVehiclesCreate() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{
		RegistrationTag: "VTR-031",
		Plate:           "bra2e19",
		Make:            "Chevrolet",
		Model:           "S10",
		Year:            2021,
	})

	suite.Assert().Equal("VTR-031", vehicle.Data.RegistrationTag)
	suite.Assert().Equal("BRA2E19", vehicle.Data.Plate, "plates must be normalized to upper case")
	suite.Assert().Equal(models.VehicleAvailable, vehicle.Data.Status, "the status must default to AVAILABLE")
	suite.Assert().Contains(vehicle.Data.Links.Balance, fmt.Sprintf("/v1/vehicles/%s/balance", vehicle.Data.ID))
}

func (suite *TestSuiteStandard) TestVehiclesCreateDuplicatePlate() {
	createTestVehicle(suite.T(), v1.VehicleEditable{Plate: "BRA2E19"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/vehicles", []v1.VehicleEditable{
		{RegistrationTag: uuid.NewString(), Plate: "bra2e19"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.VehicleCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrVehiclePlateNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestVehiclesGetFiltered() {
	createTestVehicle(suite.T(), v1.VehicleEditable{RegistrationTag: "VTR-010", Plate: "ABC1D23", Make: "Chevrolet", Status: models.VehicleAvailable})
	createTestVehicle(suite.T(), v1.VehicleEditable{RegistrationTag: "VTR-011", Plate: "ABC9X87", Make: "Ford", Status: models.VehicleInMaintenance})
	createTestVehicle(suite.T(), v1.VehicleEditable{RegistrationTag: "VTR-012", Plate: "XYZ2E19", Make: "Chevrolet", Status: models.VehicleAvailable})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Make", "make=Chevrolet", 2},
		{"Status", "status=MAINTENANCE", 1},
		{"Plate glob prefix", "plate=ABC*", 2},
		{"Plate glob suffix", "plate=*2E19", 1},
		{"Plate exact", "plate=abc1d23", 1},
		{"Plate no match", "plate=QQQ*", 0},
		{"Search tag", "search=vtr-011", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/vehicles?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.VehicleListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestVehiclesGetOffsetOutOfRange() {
	createTestVehicle(suite.T(), v1.VehicleEditable{})
	createTestVehicle(suite.T(), v1.VehicleEditable{})

	tests := []struct {
		name   string
		offset string
	}{
		{"Past the end", "5"},
		{"Huge", "18446744073709551615"}, // wraps to a negative int
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/vehicles?offset=%s", tt.offset), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.VehicleListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0)
			assert.Equal(t, int64(2), response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestVehiclesUpdate() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{Status: models.VehicleAvailable})

	recorder := test.Request(suite.T(), http.MethodPatch, vehicle.Data.Links.Self, map[string]any{
		"status": "MAINTENANCE",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.VehicleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.VehicleInMaintenance, response.Data.Status)
}

func (suite *TestSuiteStandard) TestVehiclesDelete() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, vehicle.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, vehicle.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func createTestDamage(t *testing.T, vehicle v1.VehicleResponse, editable v1.DamageEditable, expectedStatus ...int) v1.DamageResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, vehicle.Data.Links.Damages, editable)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.DamageResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestDamagesCreateAndList() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{})

	damage := createTestDamage(suite.T(), vehicle, v1.DamageEditable{Description: "Dent in rear left door"})
	suite.Assert().Equal("Dent in rear left door", damage.Data.Description)
	suite.Assert().False(damage.Data.ReportedAt.IsZero(), "the reported time must default to the current time")

	createTestDamage(suite.T(), vehicle, v1.DamageEditable{Description: "Cracked windshield"})

	recorder := test.Request(suite.T(), http.MethodGet, vehicle.Data.Links.Damages, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DamageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestDamagesUnknownVehicle() {
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/vehicles/%s/damages", uuid.NewString()), v1.DamageEditable{
		Description: "Broken mirror",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/vehicles/%s/damages", uuid.NewString()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestFleet() {
	first := createTestVehicle(suite.T(), v1.VehicleEditable{RegistrationTag: "VTR-001"})
	second := createTestVehicle(suite.T(), v1.VehicleEditable{RegistrationTag: "VTR-002"})

	createTestDamage(suite.T(), first, v1.DamageEditable{Description: "Dent"})
	createTestDamage(suite.T(), first, v1.DamageEditable{Description: "Scratch"})
	createTestDamage(suite.T(), first, v1.DamageEditable{Description: "Fixed", Repaired: true})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/vehicles/fleet", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FleetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(first.Data.ID, response.Data[0].ID, "the fleet must be sorted by registration tag")
	suite.Assert().Equal(int64(2), response.Data[0].OpenDamages)
	suite.Assert().Equal(second.Data.ID, response.Data[1].ID)
	suite.Assert().Equal(int64(0), response.Data[1].OpenDamages)
}

func (suite *TestSuiteStandard) TestVehiclesOptions() {
	vehicle := createTestVehicle(suite.T(), v1.VehicleEditable{})

	tests := []struct {
		name  string
		url   string
		allow string
	}{
		{"List", "http://example.com/v1/vehicles", "GET, POST"},
		{"Detail", vehicle.Data.Links.Self, "GET, PATCH, DELETE"},
		{"Fleet", "http://example.com/v1/vehicles/fleet", "GET"},
		{"Damages", vehicle.Data.Links.Damages, "GET, POST"},
		{"Reference value", vehicle.Data.Links.ReferenceValue, "GET, PUT"},
		{"Balance", vehicle.Data.Links.Balance, "GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.url, "")
			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}
