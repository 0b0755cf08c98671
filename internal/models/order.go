package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaintenanceOrder is a record of a single service or repair transaction.
//
// Orders reference vehicles by plate, not by ID: they are created by the
// order workflow from documents that only carry the plate. Orders with
// plates that match no vehicle are excluded from all aggregations.
type MaintenanceOrder struct {
	DefaultModel
	Plate           string          `gorm:"index"`
	OrderNumber     string          `gorm:"uniqueIndex"`
	OrderDate       time.Time       `json:"orderDate,omitempty"`
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description     string
	ResponsibleShop string
}

var ErrOrderAmountNegative = errors.New("maintenance order amounts must not be negative")

// BeforeSave sets the timezone for the order date to UTC.
func (o *MaintenanceOrder) BeforeSave(_ *gorm.DB) error {
	o.Plate = strings.ToUpper(strings.TrimSpace(o.Plate))
	o.OrderNumber = strings.TrimSpace(o.OrderNumber)

	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().In(time.UTC)
	} else {
		o.OrderDate = o.OrderDate.In(time.UTC)
	}

	return nil
}

// AfterFind updates the order date to use UTC as timezone, see DefaultModel.AfterFind.
func (o *MaintenanceOrder) AfterFind(_ *gorm.DB) error {
	o.OrderDate = o.OrderDate.In(time.UTC)
	return nil
}

func (o *MaintenanceOrder) AfterSave(_ *gorm.DB) error {
	if o.Amount.IsNegative() {
		return ErrOrderAmountNegative
	}

	return nil
}

// OrdersForPlate returns all maintenance orders for a plate, newest first.
//
// The result is unfiltered by date. Filtering to the trailing twelve month
// window happens in memory, an order set for a single vehicle is small.
func OrdersForPlate(plate string) ([]MaintenanceOrder, error) {
	var orders []MaintenanceOrder

	err := DB.
		Where("plate = ?", strings.ToUpper(strings.TrimSpace(plate))).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
