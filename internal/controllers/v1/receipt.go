package v1

import (
	"fmt"
	"net/http"

	"github.com/basketwise/backend/internal/events"
	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterReceiptRoutes registers the routes for receipts with
// the RouterGroup that is passed.
func RegisterReceiptRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReceiptList)
		r.GET("", GetReceipts)
		r.POST("", CreateReceipts)
	}

	// Receipt with ID
	{
		r.OPTIONS("/:id", OptionsReceiptDetail)
		r.GET("/:id", GetReceipt)
		r.PATCH("/:id", UpdateReceipt)
		r.DELETE("/:id", DeleteReceipt)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Router			/v1/receipts [options]
func OptionsReceiptList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/receipts/{id} [options]
func OptionsReceiptDetail(c *gin.Context) {
	_, err := householdReceipt(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func householdReceipt(c *gin.Context) (models.Receipt, error) {
	householdID, err := currentHousehold(c)
	if err != nil {
		return models.Receipt{}, err
	}

	return householdResource[models.Receipt](c, householdID)
}

// categoryRules returns the category rules of the household ordered by priority.
func categoryRules(c *gin.Context, householdID uuid.UUID) ([]models.CategoryRule, error) {
	var rules []models.CategoryRule
	err := models.DB.WithContext(c).
		Where("household_id = ?", householdID).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error

	return rules, err
}

// @Summary		Create receipts
// @Description	Creates new receipts for the household of the authenticated user. Receipts without category are categorized with the category rules of the household.
// @Tags			Receipts
// @Accept			json
// @Produce		json
// @Success		201			{object}	ReceiptCreateResponse
// @Failure		400			{object}	ReceiptCreateResponse
// @Failure		401			{object}	httpError
// @Failure		403			{object}	ReceiptCreateResponse
// @Failure		500			{object}	ReceiptCreateResponse
// @Param			receipts	body		[]ReceiptEditable	true	"Receipts"
// @Router			/v1/receipts [post]
func CreateReceipts(c *gin.Context) {
	householdID, err := currentHousehold(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceiptCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []ReceiptEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceiptCreateResponse{
			Error: &e,
		})
		return
	}

	rules, err := categoryRules(c, householdID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceiptCreateResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReceiptCreateResponse{}

	for _, editable := range editables {
		receipt := editable.model(householdID, user.ID)
		if receipt.Category == "" {
			receipt.Category, _ = models.ApplyCategoryRules(rules, receipt.Store)
		}

		err = models.DB.WithContext(c).Create(&receipt).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		events.Notify(c, events.Event{
			Type:        events.ReceiptCreated,
			HouseholdID: &receipt.HouseholdID,
			UserID:      &receipt.UserID,
			ResourceID:  receipt.ID,
			Data: map[string]any{
				"store":        receipt.Store,
				"purchaseDate": receipt.PurchaseDate.String(),
				"category":     receipt.RecordCategory(),
				"total":        receipt.Total.String(),
			},
		})

		data := newReceipt(c, receipt)
		r.Data = append(r.Data, ReceiptResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get receipts
// @Description	Returns a list of receipts of the household of the authenticated user, newest purchases first
// @Tags			Receipts
// @Produce		json
// @Success		200	{object}	ReceiptListResponse
// @Failure		400	{object}	ReceiptListResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	ReceiptListResponse
// @Failure		500	{object}	ReceiptListResponse
// @Router			/v1/receipts [get]
// @Param			fromDate	query	string	false	"Receipts purchased on or after this date"
// @Param			untilDate	query	string	false	"Receipts purchased on or before this date"
// @Param			category	query	string	false	"Filter by category"
// @Param			store		query	string	false	"Search for this text in the store name"
// @Param			user		query	string	false	"Filter by ID of the user who created the receipt"
// @Param			offset		query	uint	false	"The offset of the first receipt returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of receipts to return. Defaults to 50."
func GetReceipts(c *gin.Context) {
	householdID, err := currentHousehold(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptListResponse{
			Error: &s,
		})
		return
	}

	var filter ReceiptQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ReceiptListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.WithContext(c).
		Order("purchase_date DESC, created_at DESC").
		Where("household_id = ?", householdID)

	if !filter.FromDate.IsZero() {
		q = q.Where("purchase_date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("purchase_date <= ?", filter.UntilDate)
	}

	if slices.Contains(setFields, "Category") {
		q = q.Where("category = ?", models.NormalizeCategory(filter.Category))
	}

	if filter.Store != "" {
		q = q.Where("store LIKE ?", fmt.Sprintf("%%%s%%", filter.Store))
	}

	if slices.Contains(setFields, "User") {
		q = q.Where("user_id = ?", filter.User.UUID)
	}

	limit := queryLimit(setFields, filter.Limit)
	q = q.Offset(int(filter.Offset)).Limit(limit)

	var receipts []models.Receipt
	err = q.Find(&receipts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Model(&models.Receipt{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Receipt, 0, len(receipts))
	for _, receipt := range receipts {
		data = append(data, newReceipt(c, receipt))
	}

	c.JSON(http.StatusOK, ReceiptListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get receipt
// @Description	Returns a specific receipt
// @Tags			Receipts
// @Produce		json
// @Success		200	{object}	ReceiptResponse
// @Failure		400	{object}	ReceiptResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	ReceiptResponse
// @Failure		404	{object}	ReceiptResponse
// @Failure		500	{object}	ReceiptResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/receipts/{id} [get]
func GetReceipt(c *gin.Context) {
	receipt, err := householdReceipt(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	data := newReceipt(c, receipt)
	c.JSON(http.StatusOK, ReceiptResponse{Data: &data})
}

// @Summary		Update receipt
// @Description	Update an existing receipt. Only values to be updated need to be specified.
// @Tags			Receipts
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReceiptResponse
// @Failure		400		{object}	ReceiptResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	ReceiptResponse
// @Failure		404		{object}	ReceiptResponse
// @Failure		500		{object}	ReceiptResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			receipt	body		ReceiptEditable	true	"Receipt"
// @Router			/v1/receipts/{id} [patch]
func UpdateReceipt(c *gin.Context) {
	receipt, err := householdReceipt(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ReceiptEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	var data ReceiptEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	update := data.model(receipt.HouseholdID, receipt.UserID)
	merged := merge(receipt, update, updateFields)
	if err := merged.Validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	// Write the normalized values and keep the purchase hash current
	update.Store = merged.Store
	update.Category = merged.Category
	update.ImportHash = merged.Hash()
	updateFields = append(updateFields, "ImportHash")

	err = models.DB.WithContext(c).Model(&receipt).Select("", updateFields...).Updates(update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	r := newReceipt(c, receipt)
	c.JSON(http.StatusOK, ReceiptResponse{Data: &r})
}

// @Summary		Delete receipt
// @Description	Deletes a receipt
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/receipts/{id} [delete]
func DeleteReceipt(c *gin.Context) {
	receipt, err := householdReceipt(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c).Delete(&receipt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
