package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/internal/events"
	"github.com/basketwise/backend/internal/household"
	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func getMyHousehold(t *testing.T, headers map[string]string) v1.HouseholdOverview {
	r := test.Request(t, http.MethodGet, baseURL+"/households/mine", "", headers)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.HouseholdOverviewResponse
	test.DecodeResponse(t, &r, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestHouseholdMineWithoutHousehold() {
	user, headers := createTestUser(suite.T(), false)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		r := test.Request(suite.T(), method, baseURL+"/households/mine", "", headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.HouseholdOverviewResponse
		test.DecodeResponse(suite.T(), &r, &response)

		suite.Assert().Nil(response.Data.Household)
		suite.Assert().Empty(response.Data.Members)
		suite.Assert().NotNil(response.Data.Members)
		suite.Assert().Empty(response.Data.Memberships)
		suite.Assert().Equal(household.MessageNoHousehold, response.Data.Message)
		suite.Assert().Equal(user.ID, response.Data.CurrentUserID)
	}
}

func (suite *TestSuiteStandard) TestHouseholdMineStaleHousehold() {
	user, headers := createTestUser(suite.T(), false)

	stale := uuid.New()
	suite.Require().Nil(models.DB.Model(&user).Update("household_id", stale).Error)

	overview := getMyHousehold(suite.T(), headers)
	suite.Assert().Nil(overview.Household)
	suite.Assert().Equal(household.MessageHouseholdNotFound, overview.Message)
}

func (suite *TestSuiteStandard) TestHouseholdCreate() {
	rec := recordEvents(suite.T())

	user, headers := createTestUser(suite.T(), false)
	h := createTestHousehold(suite.T(), headers, v1.HouseholdEditable{Name: "  Flat share ", Currency: "eur"})

	suite.Assert().Equal("Flat share", h.Data.Name)
	suite.Assert().Equal("EUR", h.Data.Currency)
	suite.Assert().Len(h.Data.InviteCode, 10)
	suite.Assert().Equal(fmt.Sprintf("%s/households/%s/members", baseURL, h.Data.ID), h.Data.Links.Members)
	suite.Assert().Contains(rec.Types(), events.HouseholdCreated)

	overview := getMyHousehold(suite.T(), headers)
	suite.Require().NotNil(overview.Household)
	suite.Assert().Equal(h.Data.ID, overview.Household.ID)
	suite.Assert().Empty(overview.Message)
	suite.Require().Len(overview.Members, 1)
	suite.Assert().Equal(user.ID, overview.Members[0].ID)
	suite.Require().Len(overview.Memberships, 1)
	suite.Assert().Equal(models.RoleOwner, overview.Memberships[0].Role)
}

func (suite *TestSuiteStandard) TestHouseholdCreateDefaultsToUserCurrency() {
	user, headers := createTestUser(suite.T(), false)
	currency := "CHF"
	suite.Require().Nil(models.DB.Model(&user).Update("currency", currency).Error)

	h := createTestHousehold(suite.T(), headers, v1.HouseholdEditable{Name: "Swiss"})
	suite.Assert().Equal("CHF", h.Data.Currency)
}

func (suite *TestSuiteStandard) TestHouseholdCreateFails() {
	_, headers := createTestUser(suite.T(), false)

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"No name", v1.HouseholdEditable{Currency: "EUR"}, http.StatusBadRequest, models.ErrHouseholdNameEmpty.Error()},
		{"Invalid currency", v1.HouseholdEditable{Name: "Test", Currency: "Euro"}, http.StatusBadRequest, models.ErrCurrencyInvalid.Error()},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, ""},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, baseURL+"/households", tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestHouseholdJoin() {
	rec := recordEvents(suite.T())

	owner, ownerHeaders, h := createTestMember(suite.T())
	member, memberHeaders := createTestUser(suite.T(), false)

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/households/join", v1.HouseholdJoin{InviteCode: strings.ToLower(h.InviteCode)}, memberHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var joined v1.HouseholdResponse
	test.DecodeResponse(suite.T(), &r, &joined)
	suite.Assert().Equal(h.ID, joined.Data.ID)
	suite.Assert().Contains(rec.Types(), events.HouseholdJoined)

	overview := getMyHousehold(suite.T(), ownerHeaders)
	suite.Require().Len(overview.Memberships, 2)
	suite.Assert().Equal(owner.ID, overview.Memberships[0].UserID)
	suite.Assert().Equal(models.RoleOwner, overview.Memberships[0].Role)
	suite.Assert().Equal(member.ID, overview.Memberships[1].UserID)
	suite.Assert().Equal(models.RoleMember, overview.Memberships[1].Role)
	suite.Assert().Len(overview.Members, 2)

	// The member sees the same household
	overview = getMyHousehold(suite.T(), memberHeaders)
	suite.Require().NotNil(overview.Household)
	suite.Assert().Equal(h.ID, overview.Household.ID)
}

func (suite *TestSuiteStandard) TestHouseholdJoinFails() {
	_, ownerHeaders, h := createTestMember(suite.T())

	tests := []struct {
		name    string
		code    string
		headers map[string]string
		status  int
	}{
		{"Empty code", "", ownerHeaders, http.StatusBadRequest},
		{"Unknown code", "XXXXXXXXXX", ownerHeaders, http.StatusNotFound},
		{"Already a member", h.InviteCode, ownerHeaders, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, baseURL+"/households/join", v1.HouseholdJoin{InviteCode: tt.code}, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestHouseholdLeave() {
	rec := recordEvents(suite.T())

	_, headers, h := createTestMember(suite.T())

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/households/leave", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Contains(rec.Types(), events.HouseholdLeft)

	overview := getMyHousehold(suite.T(), headers)
	suite.Assert().Nil(overview.Household)
	suite.Assert().Equal(household.MessageNoHousehold, overview.Message)

	// Leaving again is not possible
	r = test.Request(suite.T(), http.MethodPost, baseURL+"/households/leave", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// Joining again is
	r = test.Request(suite.T(), http.MethodPost, baseURL+"/households/join", v1.HouseholdJoin{InviteCode: h.InviteCode}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestHouseholdMembers() {
	member, memberHeaders, h := createTestMember(suite.T())
	_, outsiderHeaders, _ := createTestMember(suite.T())
	_, adminHeaders := createTestUser(suite.T(), true)

	tests := []struct {
		name    string
		id      string
		headers map[string]string
		status  int
	}{
		{"Member", h.ID.String(), memberHeaders, http.StatusOK},
		{"Admin", h.ID.String(), adminHeaders, http.StatusOK},
		{"Other household", h.ID.String(), outsiderHeaders, http.StatusForbidden},
		{"Admin, no household", uuid.NewString(), adminHeaders, http.StatusNotFound},
		{"Invalid ID", "not-a-uuid", memberHeaders, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/households/%s/members", baseURL, tt.id), "", tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.HouseholdMembersResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data.Memberships, 1)
			if assert.Len(t, response.Data.Members, 1) {
				assert.Equal(t, member.ID, response.Data.Members[0].ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestHouseholdUnauthenticated() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"No header", map[string]string{}},
		{"Unknown token", test.Bearer(models.NewToken())},
		{"Wrong scheme", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"/households/mine", "", tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestHouseholdDBClosed() {
	_, headers := createTestUser(suite.T(), false)
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/households/mine", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
