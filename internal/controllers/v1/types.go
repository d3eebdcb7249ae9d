package v1

import (
	"reflect"

	"github.com/basketwise/backend/internal/auth"
	"github.com/basketwise/backend/internal/household"
	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	bw_uuid "github.com/basketwise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

type URIID struct {
	ID bw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// defaultLimit is the number of resources returned by list endpoints
// when no limit is set.
const defaultLimit = 50

// currentUser returns the authenticated user. All v1 routes except the
// root run behind auth.Authenticate, so the user is always set.
func currentUser(c *gin.Context) models.User {
	user, _ := auth.User(c)
	return user
}

// currentHousehold returns the ID of the household of the authenticated user.
func currentHousehold(c *gin.Context) (uuid.UUID, error) {
	user := currentUser(c)

	id, err := household.ResolveHouseholdID(c, &user, household.NewStore(models.DB))
	if err != nil {
		return uuid.Nil, err
	}

	if id == nil {
		return uuid.Nil, household.ErrNoHousehold
	}

	return *id, nil
}

// householdResource returns the resource with the ID from the URI if it
// belongs to the household. Resources of other households are not found.
func householdResource[R models.Budget | models.Receipt | models.CategoryRule](c *gin.Context, householdID uuid.UUID) (R, error) {
	var resource R

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return resource, httputil.ErrInvalidUUID
	}

	err := models.DB.WithContext(c).First(&resource, "id = ? AND household_id = ?", uri.ID.UUID, householdID).Error
	return resource, err
}

// merge returns a copy of target with the named fields set to the values
// from source. It is used to validate updates before writing them.
func merge[M any](target, source M, fields []any) M {
	t := reflect.ValueOf(&target).Elem()
	s := reflect.ValueOf(source)

	for _, field := range fields {
		name, ok := field.(string)
		if !ok {
			continue
		}

		if f := t.FieldByName(name); f.IsValid() && f.CanSet() {
			f.Set(s.FieldByName(name))
		}
	}

	return target
}

// queryLimit returns the limit requested by the client or the default limit.
func queryLimit(setFields []string, requested int) int {
	if slices.Contains(setFields, "Limit") {
		return requested
	}

	return defaultLimit
}
