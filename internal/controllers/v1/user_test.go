package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/models"
	"github.com/cavalaria/backend/test"
	"github.com/google/uuid"
)

func createTestUser(t *testing.T, editable v1.UserEditable, expectedStatus ...int) v1.UserResponse {
	if editable.Username == "" {
		editable.Username = uuid.NewString()
	}

	if editable.Password == "" {
		editable.Password = "hunter2"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.UserEditable{editable}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/users", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.UserCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.UserResponse{}
}

func (suite *TestSuiteStandard) TestUsersCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{
		Username: "sgt.almeida",
		Password: "correct horse battery staple",
	})

	suite.Assert().Equal("sgt.almeida", user.Data.Username)
	suite.Assert().Equal(models.RoleOperator, user.Data.Role)
	suite.Assert().Contains(user.Data.Links.Self, fmt.Sprintf("/v1/users/%s", user.Data.ID))

	// The stored credentials work
	var model models.User
	suite.Require().Nil(models.DB.First(&model, user.Data.ID).Error)
	suite.Assert().True(model.CheckPassword("correct horse battery staple"))
	suite.Assert().False(model.CheckPassword("hunter2"))
}

func (suite *TestSuiteStandard) TestUsersCreateWithoutPassword() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", []v1.UserEditable{
		{Username: "sgt.almeida"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUsersCreateDuplicateUsername() {
	createTestUser(suite.T(), v1.UserEditable{Username: "sgt.almeida"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", []v1.UserEditable{
		{Username: "sgt.almeida", Password: "hunter2"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.UserCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrUsernameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestUsersList() {
	createTestUser(suite.T(), v1.UserEditable{Username: "sgt.almeida"})
	createTestUser(suite.T(), v1.UserEditable{Username: "cap.ribeiro", Role: models.RoleAdmin})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// Sorted by account name
	suite.Assert().Equal("cap.ribeiro", response.Data[0].Username)
	suite.Assert().Equal("sgt.almeida", response.Data[1].Username)
}

func (suite *TestSuiteStandard) TestUsersFilterRole() {
	createTestUser(suite.T(), v1.UserEditable{})
	createTestUser(suite.T(), v1.UserEditable{Role: models.RoleAdmin})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users?role=ADMIN", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.RoleAdmin, response.Data[0].Role)
}

func (suite *TestSuiteStandard) TestUsersUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{Username: "sgt.almeida"})

	recorder := test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{
		"role": models.RoleAdmin,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var model models.User
	suite.Require().Nil(models.DB.First(&model, user.Data.ID).Error)
	suite.Assert().Equal(models.RoleAdmin, model.Role)

	// The password is unchanged
	suite.Assert().True(model.CheckPassword("hunter2"))
}

func (suite *TestSuiteStandard) TestUsersUpdatePassword() {
	user := createTestUser(suite.T(), v1.UserEditable{Username: "sgt.almeida"})

	recorder := test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{
		"password": "a new password",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var model models.User
	suite.Require().Nil(models.DB.First(&model, user.Data.ID).Error)
	suite.Assert().True(model.CheckPassword("a new password"))
	suite.Assert().False(model.CheckPassword("hunter2"))
}

func (suite *TestSuiteStandard) TestUsersUpdateEmptyPassword() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	recorder := test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{
		"password": "",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUsersDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUsersGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/"+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
