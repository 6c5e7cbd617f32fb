// Package integrity holds the cross-entity checks run before a docket write:
// does a referenced user exist with the right role, is a case open, is a
// username or email free, and which ids in a list are usable.
package integrity

import (
	"context"
	"errors"
	"strings"

	"github.com/linesmerrill/court-docket-api/databases"
	"github.com/linesmerrill/court-docket-api/models"
)

// UniqueField names a user attribute that must be unique across users
type UniqueField string

// Unique user fields
const (
	FieldUsername UniqueField = "username"
	FieldEmail    UniqueField = "email"
)

// Guard runs integrity checks against the live collections. Errors it
// returns are either *models.Error or a store fault.
type Guard struct {
	Users databases.UserDatabase
	Cases databases.CourtCaseDatabase
}

// UserExists resolves id to a user
func (g Guard) UserExists(ctx context.Context, kind, id string) (*models.User, error) {
	user, err := g.Users.Get(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, models.NotFound(kind, id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserHasRole resolves id to a user holding role
func (g Guard) UserHasRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	user, err := g.UserExists(ctx, strings.ToLower(string(role)), id)
	if err != nil {
		return nil, err
	}
	if !user.HasRole(role) {
		return nil, models.RoleMismatch(id, role, user.Role)
	}
	return user, nil
}

// CaseExists resolves id to a case
func (g Guard) CaseExists(ctx context.Context, id string) (*models.CourtCase, error) {
	courtCase, err := g.Cases.Get(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, models.NotFound("case", id)
	}
	if err != nil {
		return nil, err
	}
	return courtCase, nil
}

// CaseIsOpenForModification resolves id to a case whose status is not Closed
func (g Guard) CaseIsOpenForModification(ctx context.Context, id string) (*models.CourtCase, error) {
	courtCase, err := g.CaseExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if courtCase.Status.IsClosed() {
		return nil, models.InvalidState("case " + id + " is Closed and cannot be reassigned")
	}
	return courtCase, nil
}

// UniquenessGuard fails with DuplicateUnique when another user than
// excludeID already holds value for field. Matching is exact.
func (g Guard) UniquenessGuard(ctx context.Context, field UniqueField, value, excludeID string) error {
	users, err := g.Users.Scan(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == excludeID {
			continue
		}
		if fieldValue(&u, field) == value {
			return models.DuplicateUnique(string(field), value)
		}
	}
	return nil
}

func fieldValue(u *models.User, field UniqueField) string {
	if field == FieldEmail {
		return u.Email
	}
	return u.Username
}

// IDListResult is the outcome of DedupeAndValidateIDList
type IDListResult struct {
	Valid   []string
	Users   []models.User
	Invalid []models.InvalidReference
}

// OK reports whether every entry was valid
func (r IDListResult) OK() bool {
	return len(r.Invalid) == 0
}

// DedupeAndValidateIDList classifies every entry of ids. An entry is
// malformed unless it is a non-empty string, and otherwise must resolve to
// a user holding role. Valid ids are returned once each, in first-seen
// order; every invalid entry is reported with its index.
func (g Guard) DedupeAndValidateIDList(ctx context.Context, ids []interface{}, role models.Role) (IDListResult, error) {
	result := IDListResult{Valid: []string{}, Users: []models.User{}}
	seen := make(map[string]bool, len(ids))

	for i, raw := range ids {
		id, ok := raw.(string)
		if !ok || strings.TrimSpace(id) == "" {
			result.Invalid = append(result.Invalid, models.InvalidReference{Index: i, Value: raw, Reason: models.ReasonMalformed})
			continue
		}
		if seen[id] {
			continue
		}

		user, err := g.Users.Get(ctx, id)
		switch {
		case errors.Is(err, databases.ErrNotFound):
			result.Invalid = append(result.Invalid, models.InvalidReference{Index: i, Value: id, Reason: models.ReasonNotFound})
		case err != nil:
			return IDListResult{}, err
		case !user.HasRole(role):
			result.Invalid = append(result.Invalid, models.InvalidReference{Index: i, Value: id, Reason: models.ReasonWrongRole})
		default:
			seen[id] = true
			result.Valid = append(result.Valid, id)
			result.Users = append(result.Users, *user)
		}
	}
	return result, nil
}
