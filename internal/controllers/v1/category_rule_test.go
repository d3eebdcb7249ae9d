package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryRuleCreate() {
	_, headers, h := createTestMember(suite.T())

	rule := createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: " *bakery* ", Category: "fresh bread", Priority: 2})
	suite.Assert().Equal("*bakery*", rule.Data.Match)
	suite.Assert().Equal("Fresh Bread", rule.Data.Category)
	suite.Assert().Equal(uint(2), rule.Data.Priority)
	suite.Assert().Equal(h.ID, rule.Data.HouseholdID)

	r := test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoryRuleCreateFails() {
	_, headers, _ := createTestMember(suite.T())
	_, noHouseholdHeaders := createTestUser(suite.T(), false)

	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: " ", Category: "Bread"}, http.StatusBadRequest)
	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*", Category: ""}, http.StatusBadRequest)
	createTestCategoryRule(suite.T(), noHouseholdHeaders, v1.CategoryRuleEditable{Match: "*", Category: "Bread"}, http.StatusForbidden)

	// One failing rule fails the whole request, the valid one is still created
	r := test.Request(suite.T(), http.MethodPost, baseURL+"/category-rules", []v1.CategoryRuleEditable{
		{Match: "*", Category: "Other"},
		{Match: "", Category: "Other"},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryRuleCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().NotNil(response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestCategoryRuleList() {
	_, headers, _ := createTestMember(suite.T())
	_, foreignHeaders, _ := createTestMember(suite.T())

	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*", Category: "Other", Priority: 10})
	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*bakery*", Category: "Bread", Priority: 1})
	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "Farm*", Category: "Produce", Priority: 5})
	createTestCategoryRule(suite.T(), foreignHeaders, v1.CategoryRuleEditable{Match: "*", Category: "Bread"})

	tests := []struct {
		name       string
		query      string
		categories []string
	}{
		{"All, by priority", "", []string{"Bread", "Produce", "Other"}},
		{"Category", "category=bread", []string{"Bread"}},
		{"Store", "store=Village%20Bakery", []string{"Bread", "Other"}},
		{"Store ignores case", "store=FARMERS", []string{"Produce", "Other"}},
		{"Limit", "limit=1", []string{"Bread"}},
		{"Offset", "offset=1", []string{"Produce", "Other"}},
		{"Offset beyond end", "offset=10", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/category-rules?%s", baseURL, tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryRuleListResponse
			test.DecodeResponse(t, &r, &response)

			categories := make([]string, 0, len(response.Data))
			for _, rule := range response.Data {
				categories = append(categories, rule.Category)
			}
			assert.Equal(t, tt.categories, categories)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRuleUpdate() {
	_, headers, _ := createTestMember(suite.T())
	rule := createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*", Category: "Other"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{ "category": "  snacks ", "priority": 3 }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Snacks", response.Data.Category)
	suite.Assert().Equal("*", response.Data.Match)
	suite.Assert().Equal(uint(3), response.Data.Priority)
}

func (suite *TestSuiteStandard) TestCategoryRuleUpdateFails() {
	_, headers, _ := createTestMember(suite.T())
	_, foreignHeaders, _ := createTestMember(suite.T())
	rule := createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*", Category: "Other"})

	tests := []struct {
		name    string
		id      string
		body    string
		headers map[string]string
		status  int
	}{
		{"Empty match", rule.Data.ID.String(), `{ "match": "" }`, headers, http.StatusBadRequest},
		{"Empty category", rule.Data.ID.String(), `{ "category": " " }`, headers, http.StatusBadRequest},
		{"Empty body", rule.Data.ID.String(), "", headers, http.StatusBadRequest},
		{"Not found", uuid.NewString(), `{ "match": "x" }`, headers, http.StatusNotFound},
		{"Foreign household", rule.Data.ID.String(), `{ "match": "x" }`, foreignHeaders, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, fmt.Sprintf("%s/category-rules/%s", baseURL, tt.id), tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRuleDelete() {
	_, headers, _ := createTestMember(suite.T())
	rule := createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*", Category: "Other"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/category-rules", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data)
}
