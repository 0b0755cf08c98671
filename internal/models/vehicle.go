package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleStatus is the operational status of a fleet vehicle.
type VehicleStatus string

const (
	VehicleAvailable      VehicleStatus = "AVAILABLE"
	VehicleInService      VehicleStatus = "IN_SERVICE"
	VehicleInMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleDecommissioned VehicleStatus = "DECOMMISSIONED"
)

// Vehicle is a vehicle of the unit's fleet.
type Vehicle struct {
	DefaultModel
	RegistrationTag string `gorm:"uniqueIndex"` // Internal fleet registration tag
	Plate           string `gorm:"uniqueIndex"`
	Make            string
	Model           string
	Year            int
	Status          VehicleStatus `gorm:"default:AVAILABLE"`
	Note            string
}

func (v *Vehicle) BeforeSave(_ *gorm.DB) error {
	v.RegistrationTag = strings.TrimSpace(v.RegistrationTag)
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))

	if v.Status == "" {
		v.Status = VehicleAvailable
	}

	return nil
}

// VehicleDamage is a reported damage on a fleet vehicle.
type VehicleDamage struct {
	DefaultModel
	VehicleID   uuid.UUID `gorm:"index"`
	Vehicle     Vehicle   `json:"-"`
	Description string
	ReportedAt  time.Time
	Repaired    bool
}

func (d *VehicleDamage) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	// Damage records for unknown vehicles cannot be created
	toSave := tx.Statement.Dest.(*VehicleDamage)
	return tx.First(&Vehicle{}, toSave.VehicleID).Error
}

func (d *VehicleDamage) BeforeSave(_ *gorm.DB) error {
	if d.ReportedAt.IsZero() {
		d.ReportedAt = time.Now().In(time.UTC)
	} else {
		d.ReportedAt = d.ReportedAt.In(time.UTC)
	}

	return nil
}

func (d *VehicleDamage) AfterFind(_ *gorm.DB) error {
	d.ReportedAt = d.ReportedAt.In(time.UTC)
	return nil
}

// OpenDamageCount returns the number of unrepaired damage records for a vehicle.
func OpenDamageCount(vehicleID uuid.UUID) (int64, error) {
	var count int64

	err := DB.Model(&VehicleDamage{}).
		Where("vehicle_id = ? AND repaired = ?", vehicleID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
