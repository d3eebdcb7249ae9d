package v1_test

import (
	"net/http"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/test"
)

func (suite *TestSuiteStandard) TestUserCreate() {
	_, adminHeaders := createTestUser(suite.T(), true)
	currency := "chf"

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/users", v1.UserCreate{
		UserEditable: v1.UserEditable{Name: "Alex", Currency: &currency},
		Email:        " alex@example.com ",
	}, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.UserCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Token)
	suite.Assert().Equal("alex@example.com", response.Data.Email)
	suite.Assert().Equal("CHF", *response.Data.Currency)
	suite.Assert().False(response.Data.Admin)
	suite.Assert().Empty(response.Data.Links.Self, "The self link is only set for the authenticated user")

	// The returned token authenticates the new user
	r = test.Request(suite.T(), http.MethodGet, baseURL+"/users/me", "", test.Bearer(response.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var me v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &me)
	suite.Assert().Equal(response.Data.ID, me.Data.ID)
	suite.Assert().Equal(baseURL+"/users/me", me.Data.Links.Self)

	// Only the hash of the token is stored
	var stored models.User
	suite.Require().Nil(models.DB.First(&stored, "id = ?", response.Data.ID).Error)
	suite.Assert().Equal(models.HashToken(response.Token), stored.TokenHash)
}

func (suite *TestSuiteStandard) TestUserCreateFails() {
	admin, adminHeaders := createTestUser(suite.T(), true)
	_, headers := createTestUser(suite.T(), false)
	invalid := "Gold"

	tests := []struct {
		name    string
		body    any
		headers map[string]string
		status  int
	}{
		{"Not an admin", v1.UserCreate{Email: "new@example.com"}, headers, http.StatusForbidden},
		{"Unauthenticated", v1.UserCreate{Email: "new@example.com"}, map[string]string{}, http.StatusUnauthorized},
		{"Duplicate email", v1.UserCreate{Email: admin.Email}, adminHeaders, http.StatusBadRequest},
		{"No email", v1.UserCreate{UserEditable: v1.UserEditable{Name: "Nobody"}}, adminHeaders, http.StatusBadRequest},
		{"Invalid currency", v1.UserCreate{Email: "gold@example.com", UserEditable: v1.UserEditable{Currency: &invalid}}, adminHeaders, http.StatusBadRequest},
		{"Empty body", "", adminHeaders, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, baseURL+"/users", tt.body, tt.headers)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestUserMe() {
	user, headers, h := createTestMember(suite.T())

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/users/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(user.Email, response.Data.Email)
	if suite.Assert().NotNil(response.Data.HouseholdID) {
		suite.Assert().Equal(h.ID, *response.Data.HouseholdID)
	}

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/users/me", "", test.Bearer("invalid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestUserUpdateMe() {
	user, headers := createTestUser(suite.T(), false)

	r := test.Request(suite.T(), http.MethodPatch, baseURL+"/users/me", `{ "currency": " gbp " }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("GBP", *response.Data.Currency)
	suite.Assert().Equal(user.Name, response.Data.Name, "Name must not change")

	r = test.Request(suite.T(), http.MethodPatch, baseURL+"/users/me", `{ "name": "Sam", "currency": "" }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stored models.User
	suite.Require().Nil(models.DB.First(&stored, "id = ?", user.ID).Error)
	suite.Assert().Equal("Sam", stored.Name)
	suite.Assert().Nil(stored.Currency)

	r = test.Request(suite.T(), http.MethodPatch, baseURL+"/users/me", `{ "currency": "XYZW" }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, baseURL+"/users/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUserOptions() {
	_, headers := createTestUser(suite.T(), false)

	r := test.Request(suite.T(), http.MethodOptions, baseURL+"/users", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodOptions, baseURL+"/users/me", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH", r.Header().Get("allow"))
}
