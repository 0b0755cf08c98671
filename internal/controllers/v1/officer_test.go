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

func (suite *TestSuiteStandard) TestOfficersCreate() {
	officer := createTestOfficer(suite.T(), v1.OfficerEditable{
		Name:         "Ana Souza",
		Rank:         "Sgt PM",
		Registration: "123456-7",
		Unit:         "1º Esquadrão",
	})

	suite.Assert().Equal("Ana Souza", officer.Data.Name)
	suite.Assert().Equal("Sgt PM", officer.Data.Rank)
	suite.Assert().NotEqual(uuid.Nil, officer.Data.ID)
	suite.Assert().Contains(officer.Data.Links.Self, fmt.Sprintf("/v1/officers/%s", officer.Data.ID))
}

func (suite *TestSuiteStandard) TestOfficersCreateDuplicateRegistration() {
	createTestOfficer(suite.T(), v1.OfficerEditable{Registration: "123456-7"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/officers", []v1.OfficerEditable{
		{Name: "Bruno Lima", Registration: "123456-7"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.OfficerCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrOfficerRegistrationNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestOfficersCreateInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/officers", `{ "name": 2" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOfficersGetSingle() {
	officer := createTestOfficer(suite.T(), v1.OfficerEditable{Name: "Ana Souza"})

	recorder := test.Request(suite.T(), http.MethodGet, officer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OfficerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Ana Souza", response.Data.Name)
}

func (suite *TestSuiteStandard) TestOfficersGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/officers/"+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOfficersGetInvalidUUID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/officers/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOfficersGetFiltered() {
	createTestOfficer(suite.T(), v1.OfficerEditable{Name: "Ana Souza", Rank: "SGT", Unit: "ESQ-1"})
	createTestOfficer(suite.T(), v1.OfficerEditable{Name: "Bruno Lima", Rank: "CB", Unit: "ESQ-1"})
	createTestOfficer(suite.T(), v1.OfficerEditable{Name: "Carla Dias", Rank: "SGT", Unit: "ESQ-2"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Rank", "rank=SGT", 2},
		{"Unit", "unit=ESQ-1", 2},
		{"Rank and unit", "rank=SGT&unit=ESQ-2", 1},
		{"Name search", "name=Lima", 1},
		{"Search", "search=carla", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"No match", "rank=CEL", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/officers?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.OfficerListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestOfficersPagination() {
	for i := 0; i < 3; i++ {
		createTestOfficer(suite.T(), v1.OfficerEditable{})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/officers?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OfficerListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(2, response.Pagination.Count)
	suite.Assert().Equal(int64(3), response.Pagination.Total)
	suite.Assert().Equal(2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestOfficersUpdate() {
	officer := createTestOfficer(suite.T(), v1.OfficerEditable{Name: "Ana Souza", Rank: "Cb PM"})

	recorder := test.Request(suite.T(), http.MethodPatch, officer.Data.Links.Self, map[string]any{
		"rank": "Sgt PM",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OfficerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Sgt PM", response.Data.Rank)
	suite.Assert().Equal("Ana Souza", response.Data.Name, "fields not in the request must not change")
}

func (suite *TestSuiteStandard) TestOfficersDelete() {
	officer := createTestOfficer(suite.T(), v1.OfficerEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, officer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, officer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOfficersOptions() {
	officer := createTestOfficer(suite.T(), v1.OfficerEditable{})

	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/officers", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, officer.Data.Links.Self, "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOfficersDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestOfficer(t, v1.OfficerEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/officers", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.OfficerListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
