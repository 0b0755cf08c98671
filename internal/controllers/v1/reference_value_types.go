package v1

import (
	"fmt"
	"time"

	"github.com/cavalaria/backend/internal/balance"
	"github.com/cavalaria/backend/internal/currency"
	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferenceValueEditable represents all user configurable parameters
type ReferenceValueEditable struct {
	ValueCents int64 `json:"valueCents" example:"10000000" default:"0"` // The assessed vehicle value in centavos
}

type ReferenceValueLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/vehicles/d430d7c3-d14c-4712-9336-ee56965a6673/reference-value"` // The reference value itself
	Vehicle string `json:"vehicle" example:"https://example.com/api/v1/vehicles/d430d7c3-d14c-4712-9336-ee56965a6673"`              // The vehicle the value belongs to
	Balance string `json:"balance" example:"https://example.com/api/v1/vehicles/d430d7c3-d14c-4712-9336-ee56965a6673/balance"`      // The balance derived from the value
}

// ReferenceValue is the representation of a ReferenceValue in API v1.
type ReferenceValue struct {
	models.DefaultModel
	VehicleID       uuid.UUID           `json:"vehicleId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	RegistrationTag string              `json:"registrationTag" example:"VTR-031"`
	Plate           string              `json:"plate" example:"BRA2E19"`
	Value           decimal.Decimal     `json:"value" example:"100000"` // The assessed vehicle value in Reais
	History         []ValueChange       `json:"history"`                // Past value changes, oldest first
	Links           ReferenceValueLinks `json:"links"`
}

// ValueChange is one historical change of a reference value.
type ValueChange struct {
	PreviousValue decimal.Decimal `json:"previousValue" example:"95000"`              // The value before the change
	NewValue      decimal.Decimal `json:"newValue" example:"100000"`                  // The value after the change
	ChangedAt     time.Time       `json:"changedAt" example:"2024-03-12T08:15:00Z"`   // When the change happened
}

// newReferenceValue returns the API v1 representation of the resource
func newReferenceValue(c *gin.Context, model models.ReferenceValue) ReferenceValue {
	url := c.GetString(string(models.DBContextURL))

	history := make([]ValueChange, 0, len(model.History))
	for _, change := range model.History {
		history = append(history, ValueChange{
			PreviousValue: currency.CentsToDecimal(change.PreviousCents),
			NewValue:      currency.CentsToDecimal(change.NewCents),
			ChangedAt:     change.ChangedAt,
		})
	}

	return ReferenceValue{
		DefaultModel:    model.DefaultModel,
		VehicleID:       model.VehicleID,
		RegistrationTag: model.RegistrationTag,
		Plate:           model.Plate,
		Value:           currency.CentsToDecimal(model.ValueCents),
		History:         history,
		Links: ReferenceValueLinks{
			Self:    fmt.Sprintf("%s/v1/vehicles/%s/reference-value", url, model.VehicleID),
			Vehicle: fmt.Sprintf("%s/v1/vehicles/%s", url, model.VehicleID),
			Balance: fmt.Sprintf("%s/v1/vehicles/%s/balance", url, model.VehicleID),
		},
	}
}

type ReferenceValueResponse struct {
	Error *string         `json:"error" example:"the reference value is below the plausible minimum"` // The error, if any occurred
	Data  *ReferenceValue `json:"data"`                                                               // The reference value, if the request was successful
}

type BalanceResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *balance.Summary `json:"data"`                                                          // The balance summary, if the request was successful
}
