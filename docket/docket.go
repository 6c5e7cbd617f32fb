// Package docket sequences the court docket operations: each mutation runs
// presence checks, format checks and integrity guards before it writes a
// single entity, and each query projects the three collections into a view.
package docket

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/databases"
	"github.com/linesmerrill/court-docket-api/integrity"
	"github.com/linesmerrill/court-docket-api/models"
	"github.com/linesmerrill/court-docket-api/validation"
)

// Clock is the single source of "now" for a process
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC at millisecond precision, the
// precision bson stores
type SystemClock struct{}

// Now returns the current UTC time
func (SystemClock) Now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// FixedClock always returns the same instant
type FixedClock time.Time

// Now returns the fixed instant
func (f FixedClock) Now() time.Time { return time.Time(f) }

// IDGenerator hands out identifiers unique across every collection
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs
type UUIDGenerator struct{}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Service runs docket operations against the entity stores
type Service struct {
	Users    databases.UserDatabase
	Cases    databases.CourtCaseDatabase
	Hearings databases.HearingDatabase
	Clock    Clock
	IDs      IDGenerator
	Hasher   validation.Hasher
}

// NewService returns a Service with the system clock, UUID ids and bcrypt hashing
func NewService(users databases.UserDatabase, cases databases.CourtCaseDatabase, hearings databases.HearingDatabase) *Service {
	return &Service{
		Users:    users,
		Cases:    cases,
		Hearings: hearings,
		Clock:    SystemClock{},
		IDs:      UUIDGenerator{},
		Hasher:   validation.NewHasher(validation.SchemeBcrypt),
	}
}

func (s *Service) guard() integrity.Guard {
	return integrity.Guard{Users: s.Users, Cases: s.Cases}
}

// fault passes domain errors through and turns anything else into a logged
// InternalFault.
func fault(op string, err error) error {
	if err == nil {
		return nil
	}
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	zap.S().Errorw("docket store failure", "operation", op, "error", err)
	return models.InternalFault(op + " failed")
}

// finish records the outcome of a mutation and normalizes its error
func finish(op string, err error) error {
	err = fault(op, err)
	recordMutation(op, err)
	return err
}

func normalizeCase(c *models.CourtCase) {
	if c.LawyerIDs == nil {
		c.LawyerIDs = []string{}
	}
}

// isNotFound reports whether err is the store's missing-key error
func isNotFound(err error) bool {
	return errors.Is(err, databases.ErrNotFound)
}

func (s *Service) now() time.Time {
	return s.Clock.Now()
}
