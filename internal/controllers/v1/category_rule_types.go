package v1

import (
	"fmt"

	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryRuleEditable represents all user configurable parameters
type CategoryRuleEditable struct {
	Priority uint   `json:"priority" example:"3" default:"0"`      // Rules with lower priority are applied first
	Match    string `json:"match" example:"*bakery*" default:""`   // Glob pattern matched against the store name, ignoring case
	Category string `json:"category" example:"Bread" default:""`   // Category for matching receipts
}

func (editable CategoryRuleEditable) model(householdID uuid.UUID) models.CategoryRule {
	return models.CategoryRule{
		HouseholdID: householdID,
		Priority:    editable.Priority,
		Match:       editable.Match,
		Category:    editable.Category,
	}
}

type CategoryRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The category rule itself
}

type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	HouseholdID uuid.UUID         `json:"householdId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the household
	Links       CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
		HouseholdID: model.HouseholdID,
		Links: CategoryRuleLinks{
			Self: fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of category rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created category rules or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the category rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleQueryFilter struct {
	Category string `form:"category" filterField:"false"` // By category
	Store    string `form:"store" filterField:"false"`    // Only rules matching this store name
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first rule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of rules to return. Defaults to 50.
}
