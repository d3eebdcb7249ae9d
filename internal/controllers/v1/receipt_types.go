package v1

import (
	"fmt"

	"github.com/basketwise/backend/internal/models"
	"github.com/basketwise/backend/internal/types"
	bw_uuid "github.com/basketwise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptEditable represents all user configurable parameters
type ReceiptEditable struct {
	Store        string          `json:"store" example:"Corner Market" default:""`                 // Name of the store
	PurchaseDate types.Date      `json:"purchaseDate" example:"2024-03-14" swaggertype:"string"` // Date of the purchase
	Category     string          `json:"category" example:"Dairy" default:""`                      // Category. When empty on creation, the category rules of the household are applied
	Total        decimal.Decimal `json:"total" example:"23.47" swaggertype:"string"`             // Total amount of the receipt
	Note         string          `json:"note" example:"Birthday cake" default:""`                  // A note
}

func (editable ReceiptEditable) model(householdID, userID uuid.UUID) models.Receipt {
	return models.Receipt{
		HouseholdID:  householdID,
		UserID:       userID,
		Store:        editable.Store,
		PurchaseDate: editable.PurchaseDate,
		Category:     editable.Category,
		Total:        editable.Total,
		Note:         editable.Note,
	}
}

type ReceiptLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/receipts/1e777d24-3f5b-4c43-8000-04f65f895578"` // The receipt itself
}

type Receipt struct {
	models.DefaultModel
	ReceiptEditable
	HouseholdID uuid.UUID    `json:"householdId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                  // ID of the household
	UserID      uuid.UUID    `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`                                       // ID of the user who created the receipt
	ImportHash  string       `json:"importHash" example:"2f9a1c0d7b6e5f4a3b2c1d0e9f8a7b6c5d4e3f2a1b0c9d8e7f6a5b4c3d2e1f0a"` // Identifies the purchase, equal for duplicates
	Links       ReceiptLinks `json:"links"`
}

func newReceipt(c *gin.Context, model models.Receipt) Receipt {
	url := c.GetString(string(models.DBContextURL))

	return Receipt{
		DefaultModel: model.DefaultModel,
		ReceiptEditable: ReceiptEditable{
			Store:        model.Store,
			PurchaseDate: model.PurchaseDate,
			Category:     model.Category,
			Total:        model.Total,
			Note:         model.Note,
		},
		HouseholdID: model.HouseholdID,
		UserID:      model.UserID,
		ImportHash:  model.ImportHash,
		Links: ReceiptLinks{
			Self: fmt.Sprintf("%s/v1/receipts/%s", url, model.ID),
		},
	}
}

type ReceiptListResponse struct {
	Data       []Receipt   `json:"data"`                                                          // List of receipts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReceiptCreateResponse struct {
	Data  []ReceiptResponse `json:"data"`                                                          // List of created receipts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ReceiptCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ReceiptResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReceiptResponse struct {
	Data  *Receipt `json:"data"`                                                          // Data for the receipt
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReceiptQueryFilter struct {
	FromDate  types.Date   `form:"fromDate" filterField:"false"`  // Receipts purchased on or after this date
	UntilDate types.Date   `form:"untilDate" filterField:"false"` // Receipts purchased on or before this date
	Category  string       `form:"category" filterField:"false"`  // By category
	Store     string       `form:"store" filterField:"false"`     // By text in the store name
	User      bw_uuid.UUID `form:"user" filterField:"false"`      // By ID of the user who created the receipt
	Offset    uint         `form:"offset" filterField:"false"`    // The offset of the first receipt returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`     // Maximum number of receipts to return. Defaults to 50.
}
