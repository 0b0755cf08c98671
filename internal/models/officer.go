package models

import (
	"strings"

	"gorm.io/gorm"
)

// Officer is the personnel record for a member of the cavalry unit.
type Officer struct {
	DefaultModel
	Name         string `gorm:"not null"`
	Rank         string
	Registration string `gorm:"uniqueIndex"` // Registration number of the officer
	Unit         string
	Active       bool `gorm:"default:true"`
	Note         string
}

func (o *Officer) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.Rank = strings.TrimSpace(o.Rank)
	o.Registration = strings.TrimSpace(o.Registration)
	o.Unit = strings.TrimSpace(o.Unit)
	o.Note = strings.TrimSpace(o.Note)

	return nil
}
