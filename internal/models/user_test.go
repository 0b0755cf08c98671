package models_test

import (
	"github.com/cavalaria/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserPassword() {
	user := models.User{Username: "sgt.almeida"}
	suite.Require().Nil(user.SetPassword("hunter2"))

	suite.Assert().NotEqual("hunter2", user.PasswordHash)
	suite.Assert().True(user.CheckPassword("hunter2"))
	suite.Assert().False(user.CheckPassword("wrong"))
}

func (suite *TestSuiteStandard) TestUserDefaults() {
	user := models.User{Username: " sgt.almeida "}
	suite.Require().Nil(user.SetPassword("hunter2"))
	suite.Require().Nil(models.DB.Create(&user).Error)

	suite.Assert().Equal("sgt.almeida", user.Username)
	suite.Assert().Equal(models.RoleOperator, user.Role, "the role must default to operator")
}

func (suite *TestSuiteStandard) TestUsernameUnique() {
	user := models.User{Username: "sgt.almeida"}
	suite.Require().Nil(user.SetPassword("hunter2"))
	suite.Require().Nil(models.DB.Create(&user).Error)

	duplicate := models.User{Username: "sgt.almeida"}
	suite.Require().Nil(duplicate.SetPassword("other"))

	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameNotUnique)
}
