package models_test

import (
	"time"

	"github.com/cavalaria/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOrderBeforeSave() {
	order := suite.createTestOrder(models.MaintenanceOrder{
		Plate:       " bra2e19 ",
		OrderNumber: " 2024/0147 ",
		Amount:      decimal.NewFromFloat(1521.95),
	})

	suite.Assert().Equal("BRA2E19", order.Plate)
	suite.Assert().Equal("2024/0147", order.OrderNumber)
	suite.Assert().False(order.OrderDate.IsZero(), "an unset order date must default to the current time")
	suite.Assert().Equal(time.UTC, order.OrderDate.Location())
}

func (suite *TestSuiteStandard) TestOrderNumberUnique() {
	suite.createTestOrder(models.MaintenanceOrder{
		Plate:       "BRA2E19",
		OrderNumber: "2024/0147",
		Amount:      decimal.NewFromFloat(100),
	})

	err := models.DB.Create(&models.MaintenanceOrder{
		Plate:       "XYZ9A87",
		OrderNumber: "2024/0147",
		Amount:      decimal.NewFromFloat(250),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrOrderNumberNotUnique)
}

func (suite *TestSuiteStandard) TestOrderNegativeAmount() {
	err := models.DB.Create(&models.MaintenanceOrder{
		Plate:       "BRA2E19",
		OrderNumber: "2024/0001",
		Amount:      decimal.NewFromFloat(-0.01),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrOrderAmountNegative)
}

func (suite *TestSuiteStandard) TestOrdersForPlate() {
	older := suite.createTestOrder(models.MaintenanceOrder{
		Plate:     "BRA2E19",
		OrderDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromFloat(100),
	})
	newer := suite.createTestOrder(models.MaintenanceOrder{
		Plate:     "BRA2E19",
		OrderDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromFloat(200),
	})
	suite.createTestOrder(models.MaintenanceOrder{
		Plate:     "XYZ9A87",
		OrderDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromFloat(300),
	})

	orders, err := models.OrdersForPlate(" bra2e19 ")
	suite.Require().Nil(err)

	suite.Require().Len(orders, 2, "orders for other plates must not be returned")
	suite.Assert().Equal(newer.ID, orders[0].ID, "orders must be sorted newest first")
	suite.Assert().Equal(older.ID, orders[1].ID)
}
