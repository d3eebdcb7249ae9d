package v1

import (
	"net/http"

	"github.com/basketwise/backend/internal/auth"
	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 routes. Everything except the v1 root
// requires authentication.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)

	authenticated := r.Group("", auth.Authenticate())
	{
		RegisterHouseholdRoutes(authenticated.Group("/households"))
		RegisterBudgetRoutes(authenticated.Group("/budgets"))
		RegisterPeriodRoutes(authenticated.Group("/periods"))
		RegisterReceiptRoutes(authenticated.Group("/receipts"))
		RegisterCategoryRuleRoutes(authenticated.Group("/category-rules"))
		RegisterInflationRateRoutes(authenticated.Group("/inflation-rates"))
		RegisterUserRoutes(authenticated.Group("/users"))
	}
}

type Links struct {
	Households     string `json:"households" example:"https://example.com/api/v1/households/mine"`
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`
	Periods        string `json:"periods" example:"https://example.com/api/v1/periods/align"`
	Receipts       string `json:"receipts" example:"https://example.com/api/v1/receipts"`
	CategoryRules  string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"`
	InflationRates string `json:"inflationRates" example:"https://example.com/api/v1/inflation-rates"`
	Me             string `json:"me" example:"https://example.com/api/v1/users/me"`
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Households:     url + "/v1/households/mine",
			Budgets:        url + "/v1/budgets",
			Periods:        url + "/v1/periods/align",
			Receipts:       url + "/v1/receipts",
			CategoryRules:  url + "/v1/category-rules",
			InflationRates: url + "/v1/inflation-rates",
			Me:             url + "/v1/users/me",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
