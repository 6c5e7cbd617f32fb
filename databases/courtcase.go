package databases

// go generate: mockery --name CourtCaseDatabase

import (
	"context"

	"github.com/linesmerrill/court-docket-api/models"
)

const courtCaseName = "courtcases"

// CourtCaseDatabase contains the methods to use with the court case database
type CourtCaseDatabase interface {
	Get(ctx context.Context, id string) (*models.CourtCase, error)
	Put(ctx context.Context, courtCase *models.CourtCase) error
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context) ([]models.CourtCase, error)
}

func courtCaseID(c *models.CourtCase) string { return c.ID }

// NewCourtCaseDatabase initializes a new instance of court case database with the provided db connection
func NewCourtCaseDatabase(db DatabaseHelper) CourtCaseDatabase {
	return &mongoStore[models.CourtCase]{db: db, name: courtCaseName, id: courtCaseID}
}

// NewMemoryCourtCaseDatabase returns a court case database held in process memory
func NewMemoryCourtCaseDatabase() CourtCaseDatabase {
	return newMemoryStore(courtCaseID)
}

// NewSQLiteCourtCaseDatabase returns a court case database stored in the given sqlite file
func NewSQLiteCourtCaseDatabase(s *SQLiteDatabase) CourtCaseDatabase {
	return newSQLiteStore(s, courtCaseName, courtCaseID)
}
