package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceValue is the officially assessed value of a vehicle.
//
// It is the basis for all maintenance spending limits. There is exactly one
// record per vehicle, enforced with a unique index on the vehicle ID, so no
// "active" flag convention is needed at query time.
//
// The registration tag and plate are denormalized copies of the vehicle
// identity, set at creation. They are not re-synced when the vehicle changes.
type ReferenceValue struct {
	DefaultModel
	VehicleID       uuid.UUID `gorm:"uniqueIndex"`
	Vehicle         Vehicle   `json:"-"`
	RegistrationTag string
	Plate           string
	ValueCents      int64         // The assessed value in centavos
	History         []ValueChange `gorm:"foreignKey:ReferenceValueID"`
}

// ValueChange is one entry in the append-only change history of a
// reference value.
type ValueChange struct {
	DefaultModel
	ReferenceValueID uuid.UUID `gorm:"index"`
	PreviousCents    int64
	NewCents         int64
	ChangedAt        time.Time
}

func (v *ValueChange) BeforeSave(_ *gorm.DB) error {
	if v.ChangedAt.IsZero() {
		v.ChangedAt = time.Now().In(time.UTC)
	} else {
		v.ChangedAt = v.ChangedAt.In(time.UTC)
	}

	return nil
}

func (v *ValueChange) AfterFind(_ *gorm.DB) error {
	v.ChangedAt = v.ChangedAt.In(time.UTC)
	return nil
}

// ReferenceValueForVehicle returns the reference value record for a vehicle
// with its change history preloaded.
func ReferenceValueForVehicle(vehicleID uuid.UUID) (ReferenceValue, error) {
	var value ReferenceValue

	err := DB.
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("value_changes.changed_at ASC")
		}).
		Where("vehicle_id = ?", vehicleID).
		First(&value).Error
	if err != nil {
		return ReferenceValue{}, err
	}

	return value, nil
}

// SaveReferenceValue creates or updates the reference value for a vehicle.
//
// The first save for a vehicle creates the record with an empty history.
// Every subsequent save appends exactly one history entry carrying the
// previous value.
//
// Updates are conditional on the previous value: the UPDATE only matches
// when the stored value is still the one this writer read. When two saves
// race, the loser gets ErrReferenceValueConflict instead of silently
// overwriting the other writer's change and its history entry.
func SaveReferenceValue(vehicle Vehicle, valueCents int64) (ReferenceValue, error) {
	// The minimum is more than one Real, everything below is a typo
	if valueCents <= 100 {
		return ReferenceValue{}, ErrReferenceValueTooLow
	}

	var value ReferenceValue

	err := DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("vehicle_id = ?", vehicle.ID).First(&value).Error

		// No record yet, create one with an empty history
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			value = ReferenceValue{
				VehicleID:       vehicle.ID,
				RegistrationTag: vehicle.RegistrationTag,
				Plate:           vehicle.Plate,
				ValueCents:      valueCents,
			}
			return tx.Create(&value).Error
		}

		if err != nil {
			return err
		}

		previous := value.ValueCents

		res := tx.Model(&ReferenceValue{}).
			Where("id = ? AND value_cents = ?", value.ID, previous).
			Update("value_cents", valueCents)
		if res.Error != nil {
			return res.Error
		}

		// The stored value is no longer the one we read
		if res.RowsAffected == 0 {
			return ErrReferenceValueConflict
		}

		change := ValueChange{
			ReferenceValueID: value.ID,
			PreviousCents:    previous,
			NewCents:         valueCents,
		}
		if err := tx.Create(&change).Error; err != nil {
			return err
		}

		value.ValueCents = valueCents
		value.History = append(value.History, change)
		return nil
	})
	if err != nil {
		return ReferenceValue{}, err
	}

	return value, nil
}
