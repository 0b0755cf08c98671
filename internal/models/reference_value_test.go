package models_test

import (
	"errors"
	"testing"

	"github.com/cavalaria/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestReferenceValueCreate() {
	vehicle := suite.createTestVehicle(models.Vehicle{RegistrationTag: "VTR-001", Plate: "abc1d23"})

	value, err := models.SaveReferenceValue(vehicle, 10_000_000)
	suite.Require().Nil(err)

	suite.Assert().Equal(vehicle.ID, value.VehicleID)
	suite.Assert().Equal("VTR-001", value.RegistrationTag)
	suite.Assert().Equal("ABC1D23", value.Plate, "plate should be denormalized in its stored form")
	suite.Assert().Equal(int64(10_000_000), value.ValueCents)
	suite.Assert().Empty(value.History, "the first save must not create a history entry")
}

func (suite *TestSuiteStandard) TestReferenceValueUpdateAppendsHistory() {
	vehicle := suite.createTestVehicle(models.Vehicle{})

	_, err := models.SaveReferenceValue(vehicle, 9_500_000)
	suite.Require().Nil(err)

	value, err := models.SaveReferenceValue(vehicle, 10_000_000)
	suite.Require().Nil(err)

	suite.Require().Len(value.History, 1)
	suite.Assert().Equal(int64(9_500_000), value.History[0].PreviousCents)
	suite.Assert().Equal(int64(10_000_000), value.History[0].NewCents)
	suite.Assert().False(value.History[0].ChangedAt.IsZero())

	// A second update appends exactly one more entry
	reloaded, err := models.ReferenceValueForVehicle(vehicle.ID)
	suite.Require().Nil(err)
	suite.Require().Len(reloaded.History, 1)

	value, err = models.SaveReferenceValue(vehicle, 11_000_000)
	suite.Require().Nil(err)

	reloaded, err = models.ReferenceValueForVehicle(vehicle.ID)
	suite.Require().Nil(err)
	suite.Require().Len(reloaded.History, 2)
	suite.Assert().Equal(int64(10_000_000), reloaded.History[1].PreviousCents)
	suite.Assert().Equal(int64(11_000_000), reloaded.History[1].NewCents)
}

func (suite *TestSuiteStandard) TestReferenceValueTooLow() {
	vehicle := suite.createTestVehicle(models.Vehicle{})

	tests := []struct {
		name  string
		cents int64
	}{
		{"Zero", 0},
		{"Negative", -5000},
		{"One Real", 100},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.SaveReferenceValue(vehicle, tt.cents)
			assert.ErrorIs(t, err, models.ErrReferenceValueTooLow)
		})
	}
}

func (suite *TestSuiteStandard) TestReferenceValueUniquePerVehicle() {
	vehicle := suite.createTestVehicle(models.Vehicle{})

	_, err := models.SaveReferenceValue(vehicle, 5_000_000)
	suite.Require().Nil(err)

	// A second record for the same vehicle cannot be created directly
	err = models.DB.Create(&models.ReferenceValue{
		VehicleID:  vehicle.ID,
		ValueCents: 6_000_000,
	}).Error
	suite.Assert().NotNil(err, "the unique index on the vehicle ID must reject a second record")
}

func (suite *TestSuiteStandard) TestReferenceValueConflict() {
	vehicle := suite.createTestVehicle(models.Vehicle{})

	_, err := models.SaveReferenceValue(vehicle, 5_000_000)
	suite.Require().Nil(err)

	// Simulate a concurrent writer changing the value after this writer
	// read it: the conditional update must not match anymore.
	err = models.DB.Model(&models.ReferenceValue{}).
		Where("vehicle_id = ?", vehicle.ID).
		Update("value_cents", 5_500_000).Error
	suite.Require().Nil(err)

	// The save path re-reads before updating, so a conflict can only be
	// reproduced through the conditional update itself
	var value models.ReferenceValue
	suite.Require().Nil(models.DB.Where("vehicle_id = ?", vehicle.ID).First(&value).Error)

	res := models.DB.Model(&models.ReferenceValue{}).
		Where("id = ? AND value_cents = ?", value.ID, 5_000_000).
		Update("value_cents", 6_000_000)
	suite.Require().Nil(res.Error)
	suite.Assert().Equal(int64(0), res.RowsAffected, "a stale previous value must not match any row")
}

func (suite *TestSuiteStandard) TestReferenceValueForVehicleNotFound() {
	vehicle := suite.createTestVehicle(models.Vehicle{})

	_, err := models.ReferenceValueForVehicle(vehicle.ID)
	suite.Assert().True(
		errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound),
		"expected a not found error, got: %v", err,
	)
}
