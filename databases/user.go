package databases

// go generate: mockery --name UserDatabase

import (
	"context"

	"github.com/linesmerrill/court-docket-api/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Put(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context) ([]models.User, error)
}

func userID(u *models.User) string { return u.ID }

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &mongoStore[models.User]{db: db, name: userName, id: userID}
}

// NewMemoryUserDatabase returns a user database held in process memory
func NewMemoryUserDatabase() UserDatabase {
	return newMemoryStore(userID)
}

// NewSQLiteUserDatabase returns a user database stored in the given sqlite file
func NewSQLiteUserDatabase(s *SQLiteDatabase) UserDatabase {
	return newSQLiteStore(s, userName, userID)
}
