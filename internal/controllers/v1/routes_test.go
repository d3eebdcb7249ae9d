package v1_test

import (
	"net/http"

	v1 "github.com/basketwise/backend/internal/controllers/v1"
	"github.com/basketwise/backend/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, baseURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(baseURL+"/households/mine", response.Links.Households)
	suite.Assert().Equal(baseURL+"/budgets", response.Links.Budgets)
	suite.Assert().Equal(baseURL+"/periods/align", response.Links.Periods)
	suite.Assert().Equal(baseURL+"/receipts", response.Links.Receipts)
	suite.Assert().Equal(baseURL+"/category-rules", response.Links.CategoryRules)
	suite.Assert().Equal(baseURL+"/inflation-rates", response.Links.InflationRates)
	suite.Assert().Equal(baseURL+"/users/me", response.Links.Me)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	r := test.Request(suite.T(), http.MethodOptions, baseURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestV1RequiresAuthentication() {
	for _, path := range []string{"/budgets", "/receipts", "/category-rules", "/inflation-rates", "/periods/presets", "/users/me"} {
		r := test.Request(suite.T(), http.MethodGet, baseURL+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	}
}
