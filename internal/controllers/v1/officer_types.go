package v1

import (
	"fmt"

	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// OfficerEditable represents all user configurable parameters
type OfficerEditable struct {
	Name         string `json:"name" example:"Carlos Eduardo Pereira" default:""`   // Full name of the officer
	Rank         string `json:"rank" example:"Sargento" default:""`                 // Rank of the officer
	Registration string `json:"registration" example:"123456-7" default:""`         // Registration number of the officer
	Unit         string `json:"unit" example:"1º Esquadrão" default:""`             // Unit the officer serves in
	Active       bool   `json:"active" example:"true" default:"true"`               // Is the officer in active service?
	Note         string `json:"note" example:"Farrier certification 2023" default:""` // Notes about the officer
}

func (editable OfficerEditable) model() models.Officer {
	return models.Officer{
		Name:         editable.Name,
		Rank:         editable.Rank,
		Registration: editable.Registration,
		Unit:         editable.Unit,
		Active:       editable.Active,
		Note:         editable.Note,
	}
}

type OfficerLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/officers/d430d7c3-d14c-4712-9336-ee56965a6673"` // The officer itself
}

// Officer is the representation of an Officer in API v1.
type Officer struct {
	models.DefaultModel
	OfficerEditable
	Links OfficerLinks `json:"links"`
}

// newOfficer returns the API v1 representation of the resource
func newOfficer(c *gin.Context, model models.Officer) Officer {
	url := c.GetString(string(models.DBContextURL))

	return Officer{
		DefaultModel: model.DefaultModel,
		OfficerEditable: OfficerEditable{
			Name:         model.Name,
			Rank:         model.Rank,
			Registration: model.Registration,
			Unit:         model.Unit,
			Active:       model.Active,
			Note:         model.Note,
		},
		Links: OfficerLinks{
			Self: fmt.Sprintf("%s/v1/officers/%s", url, model.ID),
		},
	}
}

type OfficerListResponse struct {
	Data       []Officer   `json:"data"`                                                          // List of officers
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type OfficerCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []OfficerResponse `json:"data"`                                                          // List of created Officers
}

func (o *OfficerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	o.Data = append(o.Data, OfficerResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type OfficerResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this officer
	Data  *Officer `json:"data"`                                                          // The Officer data, if creation was successful
}

type OfficerQueryFilter struct {
	Name         string `form:"name" filterField:"false"`   // Name contains this string
	Rank         string `form:"rank"`                       // Exact rank
	Registration string `form:"registration"`               // Exact registration number
	Unit         string `form:"unit"`                       // Exact unit
	Active       bool   `form:"active"`                     // Is the officer in active service?
	Note         string `form:"note" filterField:"false"`   // Note contains this string
	Search       string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first Officer returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of Officers to return. Defaults to 50.
}

func (f OfficerQueryFilter) model() models.Officer {
	return OfficerEditable{
		Rank:         f.Rank,
		Registration: f.Registration,
		Unit:         f.Unit,
		Active:       f.Active,
	}.model()
}
