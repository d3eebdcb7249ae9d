package v1

import (
	"errors"
	"net/http"

	"github.com/basketwise/backend/internal/household"
	"github.com/basketwise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, household.ErrNoHousehold) || errors.Is(err, errNotHouseholdMember) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

var (
	errNotHouseholdMember = errors.New("you are not a member of this household")
	errInviteCodeEmpty    = errors.New("the inviteCode must be set")
)
