package models_test

import (
	"github.com/cavalaria/backend/internal/models"
)

func (suite *TestSuiteStandard) TestOfficerBeforeSave() {
	officer := models.Officer{
		Name:         " Ana Souza ",
		Registration: " 123456-7 ",
		Active:       true,
	}
	suite.Require().Nil(models.DB.Create(&officer).Error)

	suite.Assert().Equal("Ana Souza", officer.Name)
	suite.Assert().Equal("123456-7", officer.Registration)
}

func (suite *TestSuiteStandard) TestOfficerRegistrationUnique() {
	suite.Require().Nil(models.DB.Create(&models.Officer{
		Name:         "Ana Souza",
		Registration: "123456-7",
	}).Error)

	err := models.DB.Create(&models.Officer{
		Name:         "Bruno Lima",
		Registration: "123456-7",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrOfficerRegistrationNotUnique)
}
