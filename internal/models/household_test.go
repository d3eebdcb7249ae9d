package models_test

import (
	"github.com/basketwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestHouseholdInviteCode() {
	a := suite.createTestHousehold("A")
	b := suite.createTestHousehold("B")

	suite.Assert().Len(a.InviteCode, 10)
	suite.Assert().NotEqual(a.InviteCode, b.InviteCode)
}

func (suite *TestSuiteStandard) TestHouseholdValidation() {
	err := models.DB.Create(&models.Household{Name: " "}).Error
	suite.Assert().ErrorIs(err, models.ErrHouseholdNameEmpty)

	err = models.DB.Create(&models.Household{Name: "Money", Currency: "XYZW"}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyInvalid)

	household := models.Household{Name: "Valid", Currency: "chf"}
	suite.Require().Nil(models.DB.Create(&household).Error)
	suite.Assert().Equal("CHF", household.Currency)
}

func (suite *TestSuiteStandard) TestHouseholdMemberRole() {
	user := suite.createTestUser("role@example.com")
	household := suite.createTestHousehold("Roles")

	member := models.HouseholdMember{HouseholdID: household.ID, UserID: user.ID}
	suite.Require().Nil(models.DB.Create(&member).Error)
	suite.Assert().Equal(models.RoleMember, member.Role)

	other := suite.createTestUser("other-role@example.com")
	err := models.DB.Create(&models.HouseholdMember{HouseholdID: household.ID, UserID: other.ID, Role: "admin"}).Error
	suite.Assert().ErrorIs(err, models.ErrMemberRoleInvalid)
}
