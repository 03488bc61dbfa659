// Package memory provides in-memory implementations of the repository
// interfaces. They back the service and handler tests, where spinning up a
// real MongoDB would add nothing to the contract under test.
package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is a map-backed repository.UserRepository.
type UserRepository struct {
	mu    sync.Mutex
	users []domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create inserts a new user, enforcing username uniqueness the way the
// Mongo unique index does.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}

	user.ID = primitive.NewObjectID()
	r.users = append(r.users, *user)
	return user.ID, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll returns every user in insertion order.
func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
