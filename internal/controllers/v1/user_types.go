package v1

import (
	"fmt"

	"github.com/basketwise/backend/internal/auth"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserEditable represents all parameters a user can change for themselves
type UserEditable struct {
	Name     string  `json:"name" example:"Alex" default:""` // Display name
	Currency *string `json:"currency" example:"EUR"`         // Preferred ISO 4217 currency code
}

// UserCreate represents all parameters an admin sets when creating a user
type UserCreate struct {
	UserEditable
	Email string `json:"email" example:"alex@example.com"` // Email address, must be unique
	Admin bool   `json:"admin" example:"false" default:"false"` // Is the user an administrator?
}

func (create UserCreate) model() models.User {
	return models.User{
		Email:    create.Email,
		Name:     create.Name,
		Currency: create.Currency,
		Admin:    create.Admin,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/me"` // The user itself, only set for the authenticated user
}

type User struct {
	models.DefaultModel
	UserEditable
	Email       string     `json:"email" example:"alex@example.com"`                         // Email address
	Admin       bool       `json:"admin" example:"false"`                                    // Is the user an administrator?
	HouseholdID *uuid.UUID `json:"householdId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // The current household of the user
	Links       UserLinks  `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	user := User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:     model.Name,
			Currency: model.Currency,
		},
		Email:       model.Email,
		Admin:       model.Admin,
		HouseholdID: model.HouseholdID,
	}

	if me, ok := auth.User(c); ok && me.ID == model.ID {
		user.Links.Self = fmt.Sprintf("%s/v1/users/me", c.GetString(string(models.DBContextURL)))
	}

	return user
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserCreateResponse struct {
	Data  *User   `json:"data"`                                                                    // Data for the user
	Token string  `json:"token" example:"8c3a0c2f5e1b4f6aa0b3d3b7c1f2e4d58c3a0c2f5e1b4f6aa0b3d3b7c1f2e4d5"` // Bearer token of the user. It is only returned once.
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`           // The error, if any occurred
}
