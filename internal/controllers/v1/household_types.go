package v1

import (
	"fmt"

	"github.com/basketwise/backend/internal/household"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HouseholdEditable represents all user configurable parameters
type HouseholdEditable struct {
	Name     string `json:"name" example:"Flat share" default:""` // Name of the household
	Currency string `json:"currency" example:"EUR" default:""`    // ISO 4217 currency code used for all amounts
}

func (editable HouseholdEditable) model() models.Household {
	return models.Household{
		Name:     editable.Name,
		Currency: editable.Currency,
	}
}

type HouseholdLinks struct {
	Members string `json:"members" example:"https://example.com/api/v1/households/3b1ea324-d438-4419-882a-2fc91d71772f/members"` // Members of the household
}

type Household struct {
	models.DefaultModel
	HouseholdEditable
	InviteCode string         `json:"inviteCode" example:"4F1A9C02BE"` // Code other users join the household with
	Links      HouseholdLinks `json:"links"`
}

func newHousehold(c *gin.Context, model models.Household) Household {
	url := c.GetString(string(models.DBContextURL))

	return Household{
		DefaultModel: model.DefaultModel,
		HouseholdEditable: HouseholdEditable{
			Name:     model.Name,
			Currency: model.Currency,
		},
		InviteCode: model.InviteCode,
		Links: HouseholdLinks{
			Members: fmt.Sprintf("%s/v1/households/%s/members", url, model.ID),
		},
	}
}

type Membership struct {
	models.DefaultModel
	HouseholdID uuid.UUID         `json:"householdId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the household
	UserID      uuid.UUID         `json:"userId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`      // ID of the user
	Role        models.MemberRole `json:"role" example:"owner"`                                       // Role of the user in the household
}

func newMembership(model models.HouseholdMember) Membership {
	return Membership{
		DefaultModel: model.DefaultModel,
		HouseholdID:  model.HouseholdID,
		UserID:       model.UserID,
		Role:         model.Role,
	}
}

type HouseholdResponse struct {
	Data  *Household `json:"data"`                                                          // Data for the household
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HouseholdOverview struct {
	Household     *Household   `json:"household"`                                                // The household, null if the user has none
	Members       []User       `json:"members"`                                                  // Profiles of all members that could be loaded
	Memberships   []Membership `json:"memberships"`                                              // All memberships of the household
	CurrentUserID uuid.UUID    `json:"currentUserId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the requesting user
	Message       string       `json:"message,omitempty" example:"no household"`                 // Set when there is no household to show
}

func newHouseholdOverview(c *gin.Context, overview household.Overview) HouseholdOverview {
	o := HouseholdOverview{
		Members:       make([]User, 0, len(overview.Members)),
		Memberships:   make([]Membership, 0, len(overview.Memberships)),
		CurrentUserID: overview.CurrentUserID,
		Message:       overview.Message,
	}

	if overview.Household != nil {
		h := newHousehold(c, *overview.Household)
		o.Household = &h
	}

	for _, member := range overview.Members {
		o.Members = append(o.Members, newUser(c, member))
	}

	for _, membership := range overview.Memberships {
		o.Memberships = append(o.Memberships, newMembership(membership))
	}

	return o
}

type HouseholdOverviewResponse struct {
	Data  *HouseholdOverview `json:"data"`                                                          // The household of the user
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HouseholdMembers struct {
	Memberships []Membership `json:"memberships"` // All memberships of the household
	Members     []User       `json:"members"`     // Profiles of all members that could be loaded
}

type HouseholdMembersResponse struct {
	Data  *HouseholdMembers `json:"data"`                                                          // Members of the household
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HouseholdJoin struct {
	InviteCode string `json:"inviteCode" example:"4F1A9C02BE"` // Invite code of the household
}
