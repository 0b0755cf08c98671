package v1

import (
	"fmt"

	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Username string          `json:"username" example:"sgt.almeida" default:""` // The account name
	Password string          `json:"password" example:"hunter2" default:""`     // The password. Only ever accepted, never returned
	Role     models.UserRole `json:"role" example:"OPERATOR" default:"OPERATOR"` // The account role
}

func (editable UserEditable) model() models.User {
	return models.User{
		Username: editable.Username,
		Role:     editable.Role,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/d430d7c3-d14c-4712-9336-ee56965a6673"` // The user itself
}

// User is the representation of a User in API v1. The password hash is
// never part of it.
type User struct {
	models.DefaultModel
	Username string          `json:"username" example:"sgt.almeida"`
	Role     models.UserRole `json:"role" example:"OPERATOR"`
	Links    UserLinks       `json:"links"`
}

// newUser returns the API v1 representation of the resource
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
		Role:         model.Role,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/users/%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserResponse `json:"data"`                                                          // List of created Users
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this user
	Data  *User   `json:"data"`                                                          // The User data, if creation was successful
}

type UserQueryFilter struct {
	Username string `form:"username"`                   // Exact account name
	Role     string `form:"role"`                       // Exact role
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		Username: f.Username,
		Role:     models.UserRole(f.Role),
	}
}
