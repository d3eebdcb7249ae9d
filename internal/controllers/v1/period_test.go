package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/internal/period"
	"github.com/basketwise/backend/internal/types"
	"github.com/basketwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPeriodPresets() {
	_, headers := createTestUser(suite.T(), false)

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/periods/presets", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeriodPresetsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(period.Presets(), response.Data)
}

func (suite *TestSuiteStandard) TestPeriodAlign() {
	// Aligning periods does not need a household
	_, headers := createTestUser(suite.T(), false)

	tests := []struct {
		name       string
		body       v1.PeriodAlign
		preset     period.Preset
		current    bool
		comparison *period.Period
	}{
		{
			"Month on month clamps to leap day",
			v1.PeriodAlign{PeriodStart: types.NewDate(2024, 3, 31), PeriodEnd: types.NewDate(2024, 3, 31), Preset: "month-on-month"},
			period.PresetMonthOnMonth,
			true,
			&period.Period{From: types.NewDate(2024, 2, 29), To: types.NewDate(2024, 2, 29)},
		},
		{
			"Year on year",
			v1.PeriodAlign{PeriodStart: types.NewDate(2024, 3, 1), PeriodEnd: types.NewDate(2024, 3, 31), Preset: "year-on-year"},
			period.PresetYearOnYear,
			true,
			&period.Period{From: types.NewDate(2023, 3, 1), To: types.NewDate(2023, 3, 31)},
		},
		{
			"Unknown preset",
			v1.PeriodAlign{PeriodStart: types.NewDate(2024, 3, 1), PeriodEnd: types.NewDate(2024, 3, 31), Preset: "last-century"},
			period.PresetDefault,
			true,
			nil,
		},
		{
			"Missing end",
			v1.PeriodAlign{PeriodStart: types.NewDate(2024, 3, 1), Preset: "year-on-year"},
			period.PresetYearOnYear,
			false,
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, baseURL+"/periods/align", tt.body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PeriodAlignResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.preset, response.Data.Preset)
			assert.Equal(t, tt.current, response.Data.Current != nil)

			if tt.comparison == nil {
				assert.Nil(t, response.Data.Comparison)
				return
			}

			if assert.NotNil(t, response.Data.Comparison) {
				assert.Equal(t, tt.comparison.From.String(), response.Data.Comparison.From.String())
				assert.Equal(t, tt.comparison.To.String(), response.Data.Comparison.To.String())
			}
		})
	}

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/periods/align", `{ "periodStart": "soon" }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPeriodFilter() {
	_, headers := createTestUser(suite.T(), false)

	records := []period.Record{
		{PurchaseDate: "2024-03-20", Category: "Dairy", Cost: decimal.NewFromInt(4)},
		{PurchaseDate: "2024-02-29", Category: "Dairy", Cost: decimal.NewFromInt(100)},
		{PurchaseDate: "2024-03-01T08:30:00+01:00", Category: "Produce", Cost: decimal.RequireFromString("2.5")},
		{PurchaseDate: "someday", Category: "Produce", Cost: decimal.NewFromInt(100)},
		{PurchaseDate: "2024-03-31", Cost: decimal.NewFromInt(1)},
	}

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/periods/filter", v1.PeriodFilter{
		Records: records,
		From:    "2024-03-01",
		To:      "2024-03-31",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeriodFilterResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Records, 3)
	suite.Assert().Equal("2024-03-20", response.Data.Records[0].PurchaseDate)
	suite.Assert().Equal("2024-03-01T08:30:00+01:00", response.Data.Records[1].PurchaseDate)
	suite.Assert().Equal("2024-03-31", response.Data.Records[2].PurchaseDate)

	suite.Assert().Equal(3, response.Data.Summary.Count)
	suite.Assert().True(decimal.RequireFromString("7.5").Equal(response.Data.Summary.Total))
	suite.Assert().True(decimal.NewFromInt(1).Equal(response.Data.Summary.Categories["Uncategorized"]))
}

func (suite *TestSuiteStandard) TestPeriodFilterInvalidPeriod() {
	_, headers := createTestUser(suite.T(), false)

	records := []period.Record{{PurchaseDate: "2024-03-20", Cost: decimal.NewFromInt(4)}}

	for _, body := range []v1.PeriodFilter{
		{Records: records, From: "2024-03-01"},
		{Records: records, From: "March", To: "2024-03-31"},
		{From: "2024-03-01", To: "2024-03-31"},
	} {
		r := test.Request(suite.T(), http.MethodPost, baseURL+"/periods/filter", body, headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.PeriodFilterResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().NotNil(response.Data.Records)
		suite.Assert().Empty(response.Data.Records)
		suite.Assert().Equal(0, response.Data.Summary.Count)
	}
}

func (suite *TestSuiteStandard) TestPeriodOptions() {
	_, headers := createTestUser(suite.T(), false)

	for _, path := range []string{"/periods/presets", "/periods/align", "/periods/filter"} {
		r := test.Request(suite.T(), http.MethodOptions, baseURL+path, "", headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	}
}
