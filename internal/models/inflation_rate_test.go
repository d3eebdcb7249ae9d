package models_test

import (
	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInflationRateUnique() {
	rate := models.InflationRate{Month: types.NewMonth(2024, 1), Category: "dairy", Rate: decimal.RequireFromString("2.4")}
	suite.Require().Nil(models.DB.Create(&rate).Error)
	suite.Assert().Equal("Dairy", rate.Category)

	err := models.DB.Create(&models.InflationRate{Month: types.NewMonth(2024, 1), Category: "Dairy"}).Error
	suite.Assert().ErrorIs(err, models.ErrInflationRateNotUnique)

	// Another category in the same month is fine
	err = models.DB.Create(&models.InflationRate{Month: types.NewMonth(2024, 1)}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestInflationRateNoMonth() {
	err := models.DB.Create(&models.InflationRate{Category: "Bakery"}).Error
	suite.Assert().ErrorIs(err, models.ErrInflationRateNoMonth)
}
