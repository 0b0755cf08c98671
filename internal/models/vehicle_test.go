package models_test

import (
	"github.com/cavalaria/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestVehicleBeforeSave() {
	vehicle := suite.createTestVehicle(models.Vehicle{
		RegistrationTag: "  VTR-017 ",
		Plate:           " bra2e19 ",
	})

	suite.Assert().Equal("VTR-017", vehicle.RegistrationTag)
	suite.Assert().Equal("BRA2E19", vehicle.Plate)
	suite.Assert().Equal(models.VehicleAvailable, vehicle.Status, "an empty status must default to AVAILABLE")
}

func (suite *TestSuiteStandard) TestVehiclePlateUnique() {
	suite.createTestVehicle(models.Vehicle{RegistrationTag: "VTR-001", Plate: "BRA2E19"})

	err := models.DB.Create(&models.Vehicle{
		RegistrationTag: "VTR-002",
		Plate:           "bra2e19", // same plate after normalization
	}).Error
	suite.Assert().ErrorIs(err, models.ErrVehiclePlateNotUnique)
}

func (suite *TestSuiteStandard) TestVehicleTagUnique() {
	suite.createTestVehicle(models.Vehicle{RegistrationTag: "VTR-001", Plate: "BRA2E19"})

	err := models.DB.Create(&models.Vehicle{
		RegistrationTag: "VTR-001",
		Plate:           "XYZ9A87",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrVehicleTagNotUnique)
}

func (suite *TestSuiteStandard) TestDamageUnknownVehicle() {
	err := models.DB.Create(&models.VehicleDamage{
		VehicleID:   uuid.New(),
		Description: "Broken mirror",
	}).Error
	suite.Assert().NotNil(err, "damage records for unknown vehicles must be rejected")
}

func (suite *TestSuiteStandard) TestOpenDamageCount() {
	vehicle := suite.createTestVehicle(models.Vehicle{})

	count, err := models.OpenDamageCount(vehicle.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), count)

	for _, damage := range []models.VehicleDamage{
		{VehicleID: vehicle.ID, Description: "Dent in rear door"},
		{VehicleID: vehicle.ID, Description: "Cracked windshield"},
		{VehicleID: vehicle.ID, Description: "Flat tire", Repaired: true},
	} {
		suite.Require().Nil(models.DB.Create(&damage).Error)
	}

	count, err = models.OpenDamageCount(vehicle.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), count, "repaired damages must not be counted")
}
