// Package household resolves the household of a user and aggregates its
// members.
package household

import (
	"context"

	"github.com/basketwise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Messages returned by GetMyHousehold when no household can be shown.
const (
	MessageNoHousehold       = "no household"
	MessageHouseholdNotFound = "household not found"
)

// profileFetchLimit bounds the number of concurrent profile fetches.
const profileFetchLimit = 8

// MembershipLookup queries memberships.
type MembershipLookup interface {
	// LatestMembership returns the most recently created membership of
	// the user, or nil if there is none.
	LatestMembership(ctx context.Context, userID uuid.UUID) (*models.HouseholdMember, error)

	// Memberships returns all memberships of a household.
	Memberships(ctx context.Context, householdID uuid.UUID) ([]models.HouseholdMember, error)
}

// UserLookup fetches user profiles. A missing user is an error.
type UserLookup interface {
	User(ctx context.Context, id uuid.UUID) (models.User, error)
}

// HouseholdLookup fetches households. A missing household is nil, not an error.
type HouseholdLookup interface {
	Household(ctx context.Context, id uuid.UUID) (*models.Household, error)
}

// MemberLookup is everything GetHouseholdMembers needs.
type MemberLookup interface {
	MembershipLookup
	UserLookup
}

// Lookup is everything GetMyHousehold needs.
type Lookup interface {
	MemberLookup
	HouseholdLookup
}

// ResolveHouseholdID returns the household the user belongs to.
//
// The household ID cached on the user wins. Without it, the household
// of the most recent membership is used. nil means the user has no
// household.
func ResolveHouseholdID(ctx context.Context, user *models.User, memberships MembershipLookup) (*uuid.UUID, error) {
	if user == nil {
		return nil, nil
	}

	if user.HouseholdID != nil && *user.HouseholdID != uuid.Nil {
		id := *user.HouseholdID
		return &id, nil
	}

	membership, err := memberships.LatestMembership(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if membership == nil {
		return nil, nil
	}

	id := membership.HouseholdID
	return &id, nil
}

// Members is a household's memberships and the profiles that could be
// resolved for them.
type Members struct {
	Memberships []models.HouseholdMember
	Profiles    []models.User
}

// GetHouseholdMembers returns all memberships of the household with the
// member profiles.
//
// Profiles are fetched concurrently. A profile that cannot be fetched is
// logged and left out, Profiles keeps the membership order otherwise.
func GetHouseholdMembers(ctx context.Context, store MemberLookup, householdID uuid.UUID) (Members, error) {
	memberships, err := store.Memberships(ctx, householdID)
	if err != nil {
		return Members{}, err
	}

	members := Members{
		Memberships: make([]models.HouseholdMember, 0, len(memberships)),
		Profiles:    make([]models.User, 0, len(memberships)),
	}
	members.Memberships = append(members.Memberships, memberships...)

	if len(memberships) == 0 {
		return members, nil
	}

	// One slot per membership, nil slots are dropped members
	profiles := make([]*models.User, len(memberships))

	var g errgroup.Group
	g.SetLimit(profileFetchLimit)

	for i, membership := range memberships {
		g.Go(func() error {
			user, err := store.User(ctx, membership.UserID)
			if err != nil {
				log.Warn().
					Err(err).
					Str("household", householdID.String()).
					Str("user", membership.UserID.String()).
					Msg("dropping household member without profile")
				return nil
			}

			profiles[i] = &user
			return nil
		})
	}

	// Fetch errors are handled inside the goroutines
	_ = g.Wait()

	for _, p := range profiles {
		if p != nil {
			members.Profiles = append(members.Profiles, *p)
		}
	}

	return members, nil
}

// Overview is the household view of a user.
type Overview struct {
	Household     *models.Household
	Members       []models.User
	Memberships   []models.HouseholdMember
	CurrentUserID uuid.UUID
	Message       string
}

// GetMyHousehold resolves the user's household and returns it with
// all members.
//
// A user without a household or with a household that does not exist
// anymore gets an empty overview with a message, not an error.
func GetMyHousehold(ctx context.Context, store Lookup, user models.User) (Overview, error) {
	overview := Overview{
		Members:       make([]models.User, 0),
		Memberships:   make([]models.HouseholdMember, 0),
		CurrentUserID: user.ID,
	}

	id, err := ResolveHouseholdID(ctx, &user, store)
	if err != nil {
		return Overview{}, err
	}

	if id == nil {
		overview.Message = MessageNoHousehold
		return overview, nil
	}

	household, err := store.Household(ctx, *id)
	if err != nil {
		return Overview{}, err
	}

	if household == nil {
		overview.Message = MessageHouseholdNotFound
		return overview, nil
	}

	members, err := GetHouseholdMembers(ctx, store, *id)
	if err != nil {
		return Overview{}, err
	}

	overview.Household = household
	overview.Members = members.Profiles
	overview.Memberships = members.Memberships

	return overview, nil
}
