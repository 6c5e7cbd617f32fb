package databases

// go generate: mockery --name HearingDatabase

import (
	"context"

	"github.com/linesmerrill/court-docket-api/models"
)

const hearingName = "hearings"

// HearingDatabase contains the methods to use with the hearing database
type HearingDatabase interface {
	Get(ctx context.Context, id string) (*models.Hearing, error)
	Put(ctx context.Context, hearing *models.Hearing) error
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context) ([]models.Hearing, error)
}

func hearingID(h *models.Hearing) string { return h.ID }

// NewHearingDatabase initializes a new instance of hearing database with the provided db connection
func NewHearingDatabase(db DatabaseHelper) HearingDatabase {
	return &mongoStore[models.Hearing]{db: db, name: hearingName, id: hearingID}
}

// NewMemoryHearingDatabase returns a hearing database held in process memory
func NewMemoryHearingDatabase() HearingDatabase {
	return newMemoryStore(hearingID)
}

// NewSQLiteHearingDatabase returns a hearing database stored in the given sqlite file
func NewSQLiteHearingDatabase(s *SQLiteDatabase) HearingDatabase {
	return newSQLiteStore(s, hearingName, hearingID)
}
