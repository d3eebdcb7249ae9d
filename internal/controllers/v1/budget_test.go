package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/period"
	"github.com/basketwise/backend/internal/types"
	"github.com/basketwise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func marchBudget() v1.BudgetEditable {
	return v1.BudgetEditable{
		Name:        "March",
		Amount:      decimal.NewFromInt(100),
		PeriodStart: types.NewDate(2024, 3, 1),
		PeriodEnd:   types.NewDate(2024, 3, 31),
		Active:      true,
	}
}

func (suite *TestSuiteStandard) TestBudgetCreateGet() {
	_, headers, h := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())

	suite.Assert().Equal(h.ID, budget.Data.HouseholdID)
	suite.Assert().Equal("2024-03-01", budget.Data.PeriodStart.String())
	suite.Assert().True(decimal.NewFromInt(100).Equal(budget.Data.Amount))
	suite.Assert().Equal(fmt.Sprintf("%s/receipts?fromDate=2024-03-01&untilDate=2024-03-31", baseURL), budget.Data.Links.Receipts)

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(budget.Data.ID, response.Data.ID)
	suite.Assert().Equal("March", response.Data.Name)
}

func (suite *TestSuiteStandard) TestBudgetCreateFails() {
	_, headers, _ := createTestMember(suite.T())
	_, noHouseholdHeaders := createTestUser(suite.T(), false)

	invalidPeriod := marchBudget()
	invalidPeriod.PeriodStart, invalidPeriod.PeriodEnd = invalidPeriod.PeriodEnd, invalidPeriod.PeriodStart

	negative := marchBudget()
	negative.Amount = decimal.NewFromInt(-5)

	createTestBudget(suite.T(), headers, invalidPeriod, http.StatusBadRequest)
	createTestBudget(suite.T(), headers, negative, http.StatusBadRequest)
	createTestBudget(suite.T(), noHouseholdHeaders, marchBudget(), http.StatusForbidden)

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/budgets", `[{ "periodStart": "tomorrow" }]`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetList() {
	_, headers, _ := createTestMember(suite.T())
	_, otherHeaders, _ := createTestMember(suite.T())

	createTestBudget(suite.T(), headers, marchBudget())

	inactive := marchBudget()
	inactive.Name = "Old groceries"
	inactive.Active = false
	createTestBudget(suite.T(), headers, inactive)

	// Budgets of other households are never listed
	createTestBudget(suite.T(), otherHeaders, marchBudget())

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"Active", "active=true", 1},
		{"Inactive", "active=false", 1},
		{"Name", "name=March", 1},
		{"Search", "search=grocer", 1},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 1},
		{"No match", "name=Nope", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/budgets?%s", baseURL, tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.len, response.Pagination.Count)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/budgets?active=maybe", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetForeignHousehold() {
	_, headers, _ := createTestMember(suite.T())
	_, otherHeaders, _ := createTestMember(suite.T())

	budget := createTestBudget(suite.T(), headers, marchBudget())

	for _, method := range []string{http.MethodOptions, http.MethodGet, http.MethodPatch, http.MethodDelete} {
		r := test.Request(suite.T(), method, budget.Data.Links.Self, `{ "name": "Mine now" }`, otherHeaders)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Comparison, "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"name":      "Spring",
		"periodEnd": "2024-05-31",
		"active":    false,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Spring", response.Data.Name)
	suite.Assert().Equal("2024-05-31", response.Data.PeriodEnd.String())
	suite.Assert().False(response.Data.Active)
	suite.Assert().True(decimal.NewFromInt(100).Equal(response.Data.Amount), "Amount must not change")

	var stored models.Budget
	suite.Require().Nil(models.DB.First(&stored, "id = ?", budget.Data.ID).Error)
	suite.Assert().Equal("2024-05-31", stored.PeriodEnd.String())
	suite.Assert().False(stored.Active)
}

func (suite *TestSuiteStandard) TestBudgetUpdateFails() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Start after end", budget.Data.ID.String(), `{ "periodStart": "2024-04-01" }`, http.StatusBadRequest},
		{"Negative amount", budget.Data.ID.String(), `{ "amount": "-1" }`, http.StatusBadRequest},
		{"Broken body", budget.Data.ID.String(), `{ "name": 2 }`, http.StatusBadRequest},
		{"Empty body", budget.Data.ID.String(), "", http.StatusBadRequest},
		{"Not found", uuid.NewString(), `{ "name": "Test" }`, http.StatusNotFound},
		{"Invalid ID", "nope", `{ "name": "Test" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, fmt.Sprintf("%s/budgets/%s", baseURL, tt.id), tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Nothing was changed
	var stored models.Budget
	suite.Require().Nil(models.DB.First(&stored, "id = ?", budget.Data.ID).Error)
	suite.Assert().Equal("2024-03-01", stored.PeriodStart.String())
	suite.Assert().True(decimal.NewFromInt(100).Equal(stored.Amount))
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetPeriods() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())

	tests := []struct {
		preset         string
		expectedPreset period.Preset
		from           string
		to             string
	}{
		{"", period.PresetDefault, "", ""},
		{"unknown", period.PresetDefault, "", ""},
		{"month-on-month", period.PresetMonthOnMonth, "2024-02-01", "2024-02-29"},
		{"3-months-ago", period.PresetThreeMonthsAgo, "2023-12-01", "2023-12-31"},
		{"6-months-ago", period.PresetSixMonthsAgo, "2023-09-01", "2023-09-30"},
		{"YEAR-ON-YEAR", period.PresetYearOnYear, "2023-03-01", "2023-03-31"},
		{"2-years-ago", period.PresetTwoYearsAgo, "2022-03-01", "2022-03-31"},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.expectedPreset)+tt.preset, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s?preset=%s", budget.Data.Links.Periods, tt.preset), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetPeriodsResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.expectedPreset, response.Data.Preset)
			if assert.NotNil(t, response.Data.Current) {
				assert.Equal(t, "2024-03-01", response.Data.Current.From.String())
				assert.Equal(t, "2024-03-31", response.Data.Current.To.String())
			}

			if tt.from == "" {
				assert.Nil(t, response.Data.Comparison)
				return
			}

			if assert.NotNil(t, response.Data.Comparison) {
				assert.Equal(t, tt.from, response.Data.Comparison.From.String())
				assert.Equal(t, tt.to, response.Data.Comparison.To.String())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetPeriodsIncomplete() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, v1.BudgetEditable{PeriodStart: types.NewDate(2024, 3, 1)})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Periods+"?preset=year-on-year", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetPeriodsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.Current)
	suite.Assert().Nil(response.Data.Comparison)
}

func (suite *TestSuiteStandard) TestBudgetComparison() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())

	receipts := []v1.ReceiptEditable{
		{PurchaseDate: types.NewDate(2024, 3, 1), Category: "Dairy", Total: decimal.RequireFromString("10.50")},
		{PurchaseDate: types.NewDate(2024, 3, 31), Category: "Produce", Total: decimal.NewFromInt(20)},
		{PurchaseDate: types.NewDate(2024, 4, 1), Category: "Dairy", Total: decimal.NewFromInt(99)},
		{PurchaseDate: types.NewDate(2023, 3, 15), Category: "Dairy", Total: decimal.NewFromInt(15)},
		{PurchaseDate: types.NewDate(2023, 2, 28), Category: "Dairy", Total: decimal.NewFromInt(7)},
	}
	for _, receipt := range receipts {
		createTestReceipt(suite.T(), headers, receipt)
	}

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Comparison+"?preset=year-on-year", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetComparisonResponse
	test.DecodeResponse(suite.T(), &r, &response)
	data := response.Data

	suite.Assert().Equal(period.PresetYearOnYear, data.Preset)
	suite.Assert().Equal(2, data.Spent.Count)
	suite.Assert().True(decimal.RequireFromString("30.5").Equal(data.Spent.Total), data.Spent.Total.String())
	suite.Assert().Equal(1, data.ComparisonSpent.Count)
	suite.Assert().True(decimal.NewFromInt(15).Equal(data.ComparisonSpent.Total), data.ComparisonSpent.Total.String())
	suite.Assert().True(decimal.RequireFromString("69.5").Equal(data.Remaining), data.Remaining.String())

	suite.Assert().True(decimal.RequireFromString("15.5").Equal(data.Changes.Total.Difference))
	if suite.Assert().NotNil(data.Changes.Total.ChangePercent) {
		suite.Assert().True(decimal.RequireFromString("103.33").Equal(*data.Changes.Total.ChangePercent), data.Changes.Total.ChangePercent.String())
	}

	suite.Require().Len(data.Changes.Categories, 2)
	suite.Assert().Equal("Dairy", data.Changes.Categories[0].Category)
	suite.Assert().Equal("Produce", data.Changes.Categories[1].Category)
	suite.Assert().Nil(data.Changes.Categories[1].ChangePercent, "Nothing was spent on produce in the comparison period")
}

func (suite *TestSuiteStandard) TestBudgetComparisonDefaultPreset() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())
	createTestReceipt(suite.T(), headers, v1.ReceiptEditable{PurchaseDate: types.NewDate(2024, 3, 10), Total: decimal.NewFromInt(40)})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Comparison, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetComparisonResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Nil(response.Data.Comparison)
	suite.Assert().Equal(1, response.Data.Spent.Count)
	suite.Assert().Equal(0, response.Data.ComparisonSpent.Count)
	suite.Assert().True(decimal.NewFromInt(60).Equal(response.Data.Remaining))
	suite.Assert().Contains(response.Data.Spent.Categories, models.UncategorizedCategory)
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	_, headers, _ := createTestMember(suite.T())
	budget := createTestBudget(suite.T(), headers, marchBudget())

	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
