package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/internal/events"
	"github.com/basketwise/backend/internal/types"
	"github.com/basketwise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestInflationRateCreate() {
	_, adminHeaders := createTestUser(suite.T(), true)
	rec := recordEvents(suite.T())

	rate := createTestInflationRate(suite.T(), adminHeaders, v1.InflationRateEditable{
		Month:    types.NewMonth(2024, 3),
		Category: "dairy",
		Rate:     decimal.RequireFromString("3.2"),
		Source:   " Statistics office ",
	})

	suite.Assert().Equal("2024-03", rate.Data.Month.String())
	suite.Assert().Equal("Dairy", rate.Data.Category)
	suite.Assert().Equal("Statistics office", rate.Data.Source)
	suite.Assert().True(decimal.RequireFromString("3.2").Equal(rate.Data.Rate))

	suite.Require().Len(rec.events, 1)
	suite.Assert().Equal(events.InflationRateChanged, rec.events[0].Type)
	suite.Assert().Equal("created", rec.events[0].Data["action"])
}

func (suite *TestSuiteStandard) TestInflationRateCreateFails() {
	_, adminHeaders := createTestUser(suite.T(), true)
	_, headers, _ := createTestMember(suite.T())

	march := v1.InflationRateEditable{Month: types.NewMonth(2024, 3), Rate: decimal.NewFromInt(2)}

	createTestInflationRate(suite.T(), headers, march, http.StatusForbidden)
	createTestInflationRate(suite.T(), adminHeaders, v1.InflationRateEditable{Rate: decimal.NewFromInt(2)}, http.StatusBadRequest)

	createTestInflationRate(suite.T(), adminHeaders, march)
	createTestInflationRate(suite.T(), adminHeaders, march, http.StatusBadRequest)

	// Same month, different category
	march.Category = "Produce"
	createTestInflationRate(suite.T(), adminHeaders, march)
}

func (suite *TestSuiteStandard) TestInflationRateList() {
	_, adminHeaders := createTestUser(suite.T(), true)
	_, headers, _ := createTestMember(suite.T())

	for _, editable := range []v1.InflationRateEditable{
		{Month: types.NewMonth(2024, 1), Rate: decimal.NewFromInt(1)},
		{Month: types.NewMonth(2024, 2), Rate: decimal.NewFromInt(2)},
		{Month: types.NewMonth(2024, 2), Category: "Dairy", Rate: decimal.NewFromInt(4)},
		{Month: types.NewMonth(2024, 3), Rate: decimal.NewFromInt(3)},
	} {
		createTestInflationRate(suite.T(), adminHeaders, editable)
	}

	tests := []struct {
		name  string
		query string
		rates []string
	}{
		{"All, newest first", "", []string{"3", "2", "4", "1"}},
		{"Month", "month=2024-02", []string{"2", "4"}},
		{"Month from date", "month=2024-02-17", []string{"2", "4"}},
		{"From", "fromMonth=2024-02", []string{"3", "2", "4"}},
		{"Until", "untilMonth=2024-02", []string{"2", "4", "1"}},
		{"All groceries", "category=", []string{"3", "2", "1"}},
		{"Category", "category=dairy", []string{"4"}},
		{"Limit", "limit=2", []string{"3", "2"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			// Every user can read inflation rates
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/inflation-rates?%s", baseURL, tt.query), "", headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InflationRateListResponse
			test.DecodeResponse(t, &r, &response)

			rates := make([]string, 0, len(response.Data))
			for _, rate := range response.Data {
				rates = append(rates, rate.Rate.String())
			}
			assert.Equal(t, tt.rates, rates)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/inflation-rates?month=March", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestInflationRateUpdate() {
	_, adminHeaders := createTestUser(suite.T(), true)
	_, headers, _ := createTestMember(suite.T())
	rec := recordEvents(suite.T())

	rate := createTestInflationRate(suite.T(), adminHeaders, v1.InflationRateEditable{Month: types.NewMonth(2024, 3), Rate: decimal.NewFromInt(2)})
	createTestInflationRate(suite.T(), adminHeaders, v1.InflationRateEditable{Month: types.NewMonth(2024, 4), Rate: decimal.NewFromInt(2)})

	r := test.Request(suite.T(), http.MethodPatch, rate.Data.Links.Self, `{ "rate": "2.5" }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPatch, rate.Data.Links.Self, `{ "rate": "2.5", "source": "Revised" }`, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InflationRateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.RequireFromString("2.5").Equal(response.Data.Rate))
	suite.Assert().Equal("Revised", response.Data.Source)
	suite.Assert().Equal("2024-03", response.Data.Month.String())

	// Moving the rate onto an existing month and category fails
	r = test.Request(suite.T(), http.MethodPatch, rate.Data.Links.Self, `{ "month": "2024-04" }`, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s/inflation-rates/%s", baseURL, uuid.New()), `{ "rate": "1" }`, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	suite.Assert().Equal([]string{events.InflationRateChanged, events.InflationRateChanged, events.InflationRateChanged}, rec.Types())
	suite.Assert().Equal("updated", rec.events[2].Data["action"])
}

func (suite *TestSuiteStandard) TestInflationRateDelete() {
	_, adminHeaders := createTestUser(suite.T(), true)
	_, headers, _ := createTestMember(suite.T())

	march := v1.InflationRateEditable{Month: types.NewMonth(2024, 3), Rate: decimal.NewFromInt(2)}
	rate := createTestInflationRate(suite.T(), adminHeaders, march)

	r := test.Request(suite.T(), http.MethodDelete, rate.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, rate.Data.Links.Self, "", adminHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rate.Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The month and category can be used again
	createTestInflationRate(suite.T(), adminHeaders, march)
}
