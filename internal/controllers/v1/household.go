package v1

import (
	"fmt"
	"net/http"

	"github.com/basketwise/backend/internal/events"
	"github.com/basketwise/backend/internal/household"
	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterHouseholdRoutes registers the routes for households with
// the RouterGroup that is passed.
func RegisterHouseholdRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHouseholdList)
	r.POST("", CreateHousehold)

	r.OPTIONS("/mine", OptionsHouseholdMine)
	r.GET("/mine", GetMyHousehold)
	r.POST("/mine", GetMyHousehold)

	r.OPTIONS("/join", OptionsHouseholdJoin)
	r.POST("/join", JoinHousehold)

	r.OPTIONS("/leave", OptionsHouseholdLeave)
	r.POST("/leave", LeaveHousehold)

	r.OPTIONS("/:id/members", OptionsHouseholdMembers)
	r.GET("/:id/members", GetHouseholdMembers)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Households
// @Success		204
// @Router			/v1/households [options]
func OptionsHouseholdList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Households
// @Success		204
// @Router			/v1/households/mine [options]
func OptionsHouseholdMine(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Households
// @Success		204
// @Router			/v1/households/join [options]
func OptionsHouseholdJoin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Households
// @Success		204
// @Router			/v1/households/leave [options]
func OptionsHouseholdLeave(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Households
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/households/{id}/members [options]
func OptionsHouseholdMembers(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get my household
// @Description	Returns the household of the authenticated user with all members. Users without a household get an empty household and a message.
// @Tags			Households
// @Produce		json
// @Success		200	{object}	HouseholdOverviewResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	HouseholdOverviewResponse
// @Router			/v1/households/mine [get]
// @Router			/v1/households/mine [post]
func GetMyHousehold(c *gin.Context) {
	overview, err := household.GetMyHousehold(c, household.NewStore(models.DB), currentUser(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdOverviewResponse{
			Error: &s,
		})
		return
	}

	data := newHouseholdOverview(c, overview)
	c.JSON(http.StatusOK, HouseholdOverviewResponse{Data: &data})
}

// @Summary		Create household
// @Description	Creates a new household. The authenticated user becomes its owner and the household becomes their current one.
// @Tags			Households
// @Accept			json
// @Produce		json
// @Success		201			{object}	HouseholdResponse
// @Failure		400			{object}	HouseholdResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	HouseholdResponse
// @Param			household	body		HouseholdEditable	true	"Household"
// @Router			/v1/households [post]
func CreateHousehold(c *gin.Context) {
	var editable HouseholdEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	model := editable.model()
	if model.Currency == "" && user.Currency != nil {
		model.Currency = *user.Currency
	}

	created, err := household.NewStore(models.DB).Create(c, &user, model)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &s,
		})
		return
	}

	events.Notify(c, events.Event{
		Type:        events.HouseholdCreated,
		HouseholdID: &created.ID,
		UserID:      &user.ID,
		ResourceID:  created.ID,
	})

	data := newHousehold(c, created)
	c.JSON(http.StatusCreated, HouseholdResponse{Data: &data})
}

// @Summary		Join household
// @Description	Joins the household with the invite code. It becomes the current household of the authenticated user.
// @Tags			Households
// @Accept			json
// @Produce		json
// @Success		200		{object}	HouseholdResponse
// @Failure		400		{object}	HouseholdResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	HouseholdResponse
// @Failure		500		{object}	HouseholdResponse
// @Param			join	body		HouseholdJoin	true	"Invite code"
// @Router			/v1/households/join [post]
func JoinHousehold(c *gin.Context) {
	var join HouseholdJoin
	err := httputil.BindData(c, &join)
	if err == nil && join.InviteCode == "" {
		err = errInviteCodeEmpty
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	joined, err := household.NewStore(models.DB).Join(c, &user, join.InviteCode)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &s,
		})
		return
	}

	events.Notify(c, events.Event{
		Type:        events.HouseholdJoined,
		HouseholdID: &joined.ID,
		UserID:      &user.ID,
		ResourceID:  joined.ID,
	})

	data := newHousehold(c, joined)
	c.JSON(http.StatusOK, HouseholdResponse{Data: &data})
}

// @Summary		Leave household
// @Description	Leaves the current household of the authenticated user
// @Tags			Households
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/households/leave [post]
func LeaveHousehold(c *gin.Context) {
	user := currentUser(c)

	id, err := household.NewStore(models.DB).Leave(c, &user)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	events.Notify(c, events.Event{
		Type:        events.HouseholdLeft,
		HouseholdID: &id,
		UserID:      &user.ID,
		ResourceID:  id,
	})

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get household members
// @Description	Returns all memberships of a household and the profiles of its members. Only members and admins can see them.
// @Tags			Households
// @Produce		json
// @Success		200	{object}	HouseholdMembersResponse
// @Failure		400	{object}	HouseholdMembersResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	HouseholdMembersResponse
// @Failure		404	{object}	HouseholdMembersResponse
// @Failure		500	{object}	HouseholdMembersResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/households/{id}/members [get]
func GetHouseholdMembers(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, HouseholdMembersResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	store := household.NewStore(models.DB)

	err := authorizeHousehold(c, store, user, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdMembersResponse{
			Error: &s,
		})
		return
	}

	members, err := household.GetHouseholdMembers(c, store, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdMembersResponse{
			Error: &s,
		})
		return
	}

	data := HouseholdMembers{
		Memberships: make([]Membership, 0, len(members.Memberships)),
		Members:     make([]User, 0, len(members.Profiles)),
	}

	for _, membership := range members.Memberships {
		data.Memberships = append(data.Memberships, newMembership(membership))
	}

	for _, profile := range members.Profiles {
		data.Members = append(data.Members, newUser(c, profile))
	}

	c.JSON(http.StatusOK, HouseholdMembersResponse{Data: &data})
}

// authorizeHousehold verifies that the user may see the household.
// Admins may see every existing household, other users only their own.
func authorizeHousehold(c *gin.Context, store household.Store, user models.User, id uuid.UUID) error {
	if user.Admin {
		h, err := store.Household(c, id)
		if err != nil {
			return err
		}

		if h == nil {
			return fmt.Errorf("%w household matching your query", models.ErrResourceNotFound)
		}

		return nil
	}

	member, err := store.IsMember(c, id, user.ID)
	if err != nil {
		return err
	}

	if !member {
		return errNotHouseholdMember
	}

	return nil
}
