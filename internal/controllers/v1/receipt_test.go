package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/internal/events"
	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/types"
	"github.com/basketwise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReceiptCreate() {
	user, headers, h := createTestMember(suite.T())
	rec := recordEvents(suite.T())

	receipt := createTestReceipt(suite.T(), headers, v1.ReceiptEditable{
		Store:        "  Farmers Market ",
		PurchaseDate: types.NewDate(2024, 3, 14),
		Category:     "fresh   produce",
		Total:        decimal.RequireFromString("23.47"),
	})

	suite.Assert().Equal("Farmers Market", receipt.Data.Store)
	suite.Assert().Equal("Fresh Produce", receipt.Data.Category)
	suite.Assert().Equal(h.ID, receipt.Data.HouseholdID)
	suite.Assert().Equal(user.ID, receipt.Data.UserID)
	suite.Assert().NotEmpty(receipt.Data.ImportHash)
	suite.Assert().Equal(fmt.Sprintf("%s/receipts/%s", baseURL, receipt.Data.ID), receipt.Data.Links.Self)

	suite.Require().Len(rec.events, 1)
	event := rec.events[0]
	suite.Assert().Equal(events.ReceiptCreated, event.Type)
	suite.Assert().Equal(receipt.Data.ID, event.ResourceID)
	suite.Assert().Equal("2024-03-14", event.Data["purchaseDate"])
	suite.Assert().Equal("Fresh Produce", event.Data["category"])
	suite.Assert().Equal("23.47", event.Data["total"])
}

func (suite *TestSuiteStandard) TestReceiptCreateAppliesCategoryRules() {
	_, headers, _ := createTestMember(suite.T())

	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*bakery*", Category: "bread", Priority: 5})
	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "corner*", Category: "snacks", Priority: 1})
	createTestCategoryRule(suite.T(), headers, v1.CategoryRuleEditable{Match: "*", Category: "other", Priority: 10})

	tests := []struct {
		store    string
		category string
		want     string
	}{
		{"Corner Bakery", "", "Snacks"},
		{"Village Bakery", "", "Bread"},
		{"Supermarket", "", "Other"},
		{"Corner Bakery", "Cakes", "Cakes"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.store+tt.category, func(t *testing.T) {
			receipt := createTestReceipt(t, headers, v1.ReceiptEditable{
				Store:        tt.store,
				Category:     tt.category,
				PurchaseDate: types.NewDate(2024, 3, 1),
				Total:        decimal.NewFromInt(1),
			})
			assert.Equal(t, tt.want, receipt.Data.Category)
		})
	}
}

func (suite *TestSuiteStandard) TestReceiptCreateFails() {
	_, headers, _ := createTestMember(suite.T())
	_, noHouseholdHeaders := createTestUser(suite.T(), false)

	createTestReceipt(suite.T(), headers, v1.ReceiptEditable{Total: decimal.NewFromInt(-1)}, http.StatusBadRequest)
	createTestReceipt(suite.T(), noHouseholdHeaders, v1.ReceiptEditable{Total: decimal.NewFromInt(1)}, http.StatusForbidden)

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/receipts", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, baseURL+"/receipts", `[{ "purchaseDate": "31.12.2023" }]`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReceiptList() {
	user, headers, h := createTestMember(suite.T())
	other, otherHeaders := createTestUser(suite.T(), false)
	_, foreignHeaders, _ := createTestMember(suite.T())

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/households/join", v1.HouseholdJoin{InviteCode: h.InviteCode}, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	createTestReceipt(suite.T(), headers, v1.ReceiptEditable{Store: "Corner Market", PurchaseDate: types.NewDate(2024, 2, 29), Category: "Dairy", Total: decimal.NewFromInt(5)})
	createTestReceipt(suite.T(), headers, v1.ReceiptEditable{Store: "Farmers Market", PurchaseDate: types.NewDate(2024, 3, 1), Category: "Produce", Total: decimal.NewFromInt(7)})
	createTestReceipt(suite.T(), otherHeaders, v1.ReceiptEditable{Store: "Bakery", PurchaseDate: types.NewDate(2024, 3, 31), Category: "Bread", Total: decimal.NewFromInt(3)})
	createTestReceipt(suite.T(), foreignHeaders, v1.ReceiptEditable{Store: "Corner Market", PurchaseDate: types.NewDate(2024, 3, 10), Total: decimal.NewFromInt(1)})

	tests := []struct {
		name   string
		query  string
		stores []string
	}{
		{"All, newest first", "", []string{"Bakery", "Farmers Market", "Corner Market"}},
		{"From", "fromDate=2024-03-01", []string{"Bakery", "Farmers Market"}},
		{"Until", "untilDate=2024-03-01", []string{"Farmers Market", "Corner Market"}},
		{"Range", "fromDate=2024-03-01&untilDate=2024-03-30", []string{"Farmers Market"}},
		{"Category normalized", "category=dairy", []string{"Corner Market"}},
		{"Store", "store=market", []string{"Farmers Market", "Corner Market"}},
		{"User", fmt.Sprintf("user=%s", other.ID), []string{"Bakery"}},
		{"Owner", fmt.Sprintf("user=%s", user.ID), []string{"Farmers Market", "Corner Market"}},
		{"Limit", "limit=1", []string{"Bakery"}},
		{"Offset", "offset=2", []string{"Corner Market"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/receipts?%s", baseURL, tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ReceiptListResponse
			test.DecodeResponse(t, &r, &response)

			stores := make([]string, 0, len(response.Data))
			for _, receipt := range response.Data {
				stores = append(stores, receipt.Store)
			}
			assert.Equal(t, tt.stores, stores)
		})
	}
}

func (suite *TestSuiteStandard) TestReceiptListInvalidQuery() {
	_, headers, _ := createTestMember(suite.T())

	for _, query := range []string{"fromDate=yesterday", "untilDate=2024-13-01", "user=nope", "limit=many"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/receipts?%s", baseURL, query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestReceiptUpdate() {
	_, headers, _ := createTestMember(suite.T())
	receipt := createTestReceipt(suite.T(), headers, v1.ReceiptEditable{
		Store:        "Corner Market",
		PurchaseDate: types.NewDate(2024, 3, 14),
		Total:        decimal.NewFromInt(10),
	})

	r := test.Request(suite.T(), http.MethodPatch, receipt.Data.Links.Self, map[string]any{
		"store":    " Farmers Market ",
		"category": "produce",
		"note":     "Strawberries",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReceiptResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Farmers Market", response.Data.Store)
	suite.Assert().Equal("Produce", response.Data.Category)
	suite.Assert().Equal("Strawberries", response.Data.Note)
	suite.Assert().True(decimal.NewFromInt(10).Equal(response.Data.Total))
	suite.Assert().NotEqual(receipt.Data.ImportHash, response.Data.ImportHash)

	var stored models.Receipt
	suite.Require().Nil(models.DB.First(&stored, "id = ?", receipt.Data.ID).Error)
	suite.Assert().Equal("Farmers Market", stored.Store)
	suite.Assert().Equal(stored.Hash(), stored.ImportHash)
}

func (suite *TestSuiteStandard) TestReceiptUpdateFails() {
	_, headers, _ := createTestMember(suite.T())
	_, foreignHeaders, _ := createTestMember(suite.T())
	receipt := createTestReceipt(suite.T(), headers, v1.ReceiptEditable{Total: decimal.NewFromInt(10)})

	tests := []struct {
		name    string
		id      string
		body    any
		headers map[string]string
		status  int
	}{
		{"Negative total", receipt.Data.ID.String(), `{ "total": "-3" }`, headers, http.StatusBadRequest},
		{"Broken body", receipt.Data.ID.String(), `{ "store": 2 }`, headers, http.StatusBadRequest},
		{"Not found", uuid.NewString(), `{ "store": "Test" }`, headers, http.StatusNotFound},
		{"Foreign household", receipt.Data.ID.String(), `{ "store": "Test" }`, foreignHeaders, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, fmt.Sprintf("%s/receipts/%s", baseURL, tt.id), tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestReceiptDelete() {
	_, headers, _ := createTestMember(suite.T())
	_, foreignHeaders, _ := createTestMember(suite.T())
	receipt := createTestReceipt(suite.T(), headers, v1.ReceiptEditable{Total: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodDelete, receipt.Data.Links.Self, "", foreignHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, receipt.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, receipt.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestReceiptOptions() {
	_, headers, _ := createTestMember(suite.T())
	receipt := createTestReceipt(suite.T(), headers, v1.ReceiptEditable{Total: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodOptions, baseURL+"/receipts", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, receipt.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("%s/receipts/%s", baseURL, uuid.New()), "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
