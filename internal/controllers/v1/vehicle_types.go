package v1

import (
	"fmt"
	"time"

	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// VehicleEditable represents all user configurable parameters
type VehicleEditable struct {
	RegistrationTag string               `json:"registrationTag" example:"VTR-031" default:""`    // Internal fleet registration tag
	Plate           string               `json:"plate" example:"BRA2E19" default:""`              // License plate
	Make            string               `json:"make" example:"Chevrolet" default:""`             // Manufacturer
	Model           string               `json:"model" example:"S10" default:""`                  // Model name
	Year            int                  `json:"year" example:"2021" default:"0"`                 // Model year
	Status          models.VehicleStatus `json:"status" example:"AVAILABLE" default:"AVAILABLE"`  // Operational status
	Note            string               `json:"note" example:"Assigned to 2º Esquadrão" default:""` // Notes about the vehicle
}

func (editable VehicleEditable) model() models.Vehicle {
	return models.Vehicle{
		RegistrationTag: editable.RegistrationTag,
		Plate:           editable.Plate,
		Make:            editable.Make,
		Model:           editable.Model,
		Year:            editable.Year,
		Status:          editable.Status,
		Note:            editable.Note,
	}
}

type VehicleLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/vehicles/d430d7c3-d14c-4712-9336-ee56965a6673"`                // The vehicle itself
	Damages        string `json:"damages" example:"https://example.com/api/v1/vehicles/d430d7c3-d14c-4712-9336-ee56965a6673/damages"`     // Damage records for the vehicle
	ReferenceValue string `json:"referenceValue" example:"https://example.com/api/v1/vehicles/d430d7c3-d14c-4712-9336-ee56965a6673/reference-value"` // The reference value of the vehicle
	Balance        string `json:"balance" example:"https://example.com/api/v1/vehicles/d430d7c3-d14c-4712-9336-ee56965a6673/balance"`     // The maintenance balance of the vehicle
}

// Vehicle is the representation of a Vehicle in API v1.
type Vehicle struct {
	models.DefaultModel
	VehicleEditable
	Links VehicleLinks `json:"links"`
}

// newVehicle returns the API v1 representation of the resource
func newVehicle(c *gin.Context, model models.Vehicle) Vehicle {
	url := c.GetString(string(models.DBContextURL))

	return Vehicle{
		DefaultModel: model.DefaultModel,
		VehicleEditable: VehicleEditable{
			RegistrationTag: model.RegistrationTag,
			Plate:           model.Plate,
			Make:            model.Make,
			Model:           model.Model,
			Year:            model.Year,
			Status:          model.Status,
			Note:            model.Note,
		},
		Links: VehicleLinks{
			Self:           fmt.Sprintf("%s/v1/vehicles/%s", url, model.ID),
			Damages:        fmt.Sprintf("%s/v1/vehicles/%s/damages", url, model.ID),
			ReferenceValue: fmt.Sprintf("%s/v1/vehicles/%s/reference-value", url, model.ID),
			Balance:        fmt.Sprintf("%s/v1/vehicles/%s/balance", url, model.ID),
		},
	}
}

type VehicleListResponse struct {
	Data       []Vehicle   `json:"data"`                                                          // List of vehicles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type VehicleCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []VehicleResponse `json:"data"`                                                          // List of created Vehicles
}

func (v *VehicleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	v.Data = append(v.Data, VehicleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type VehicleResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this vehicle
	Data  *Vehicle `json:"data"`                                                          // The Vehicle data, if creation was successful
}

type VehicleQueryFilter struct {
	RegistrationTag string               `form:"registrationTag"`            // Exact registration tag
	Plate           string               `form:"plate" filterField:"false"`  // Plate pattern, "*" matches any characters
	Make            string               `form:"make"`                       // Exact manufacturer
	Model           string               `form:"model"`                      // Exact model name
	Year            int                  `form:"year"`                       // Exact model year
	Status          models.VehicleStatus `form:"status"`                     // Operational status
	Note            string               `form:"note" filterField:"false"`   // Note contains this string
	Search          string               `form:"search" filterField:"false"` // Search for this text in registration tag, plate and note
	Offset          uint                 `form:"offset" filterField:"false"` // The offset of the first Vehicle returned. Defaults to 0.
	Limit           int                  `form:"limit" filterField:"false"`  // Maximum number of Vehicles to return. Defaults to 50.
}

func (f VehicleQueryFilter) model() models.Vehicle {
	return VehicleEditable{
		RegistrationTag: f.RegistrationTag,
		Make:            f.Make,
		Model:           f.Model,
		Year:            f.Year,
		Status:          f.Status,
	}.model()
}

// FleetVehicle is a vehicle with its current damage situation, as shown on
// the fleet status board.
type FleetVehicle struct {
	Vehicle
	OpenDamages int64 `json:"openDamages" example:"2"` // Number of unrepaired damage records
}

type FleetListResponse struct {
	Data  []FleetVehicle `json:"data"`                                                          // Fleet status for all vehicles
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// DamageEditable represents all user configurable parameters of a damage record
type DamageEditable struct {
	Description string    `json:"description" example:"Dent in rear left door" default:""` // What is damaged
	ReportedAt  time.Time `json:"reportedAt" example:"2024-03-12T08:15:00Z"`               // When the damage was reported. Defaults to the current time.
	Repaired    bool      `json:"repaired" example:"false" default:"false"`                // Has the damage been repaired?
}

// Damage is the representation of a VehicleDamage in API v1.
type Damage struct {
	models.DefaultModel
	DamageEditable
}

func newDamage(model models.VehicleDamage) Damage {
	return Damage{
		DefaultModel: model.DefaultModel,
		DamageEditable: DamageEditable{
			Description: model.Description,
			ReportedAt:  model.ReportedAt,
			Repaired:    model.Repaired,
		},
	}
}

type DamageListResponse struct {
	Data  []Damage `json:"data"`                                                          // List of damage records
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DamageResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Damage `json:"data"`                                                          // The damage record, if creation was successful
}
