package repository

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseQuery narrows a log query. Bounds are inclusive and independently
// optional. Limit is applied only when > 0; callers that fail to parse a
// limit leave it at zero rather than erroring.
type ExerciseQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

// UserRepository defines the interface for interacting with user records.
type UserRepository interface {
	// Create inserts a new user and returns its generated ID.
	// Returns ErrDuplicate when the username is already taken.
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise records.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// GetByUserID returns the user's exercises sorted ascending by date,
	// filtered and truncated per the query.
	GetByUserID(ctx context.Context, userID primitive.ObjectID, query ExerciseQuery) ([]domain.Exercise, error)
}
