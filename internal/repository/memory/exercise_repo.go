package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseRepository is a slice-backed repository.ExerciseRepository.
type ExerciseRepository struct {
	mu        sync.Mutex
	exercises []domain.Exercise
}

// NewExerciseRepository creates an empty in-memory exercise repository.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{}
}

// Create inserts a new exercise.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

// GetByUserID mirrors the Mongo adapter's query semantics: inclusive date
// bounds applied independently, ascending date sort, limit only when > 0.
func (r *ExerciseRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID, query repository.ExerciseQuery) ([]domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Exercise
	for _, ex := range r.exercises {
		if ex.UserID != userID {
			continue
		}
		if query.From != nil && ex.Date.Before(*query.From) {
			continue
		}
		if query.To != nil && ex.Date.After(*query.To) {
			continue
		}
		result = append(result, ex)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	if query.Limit > 0 && int64(len(result)) > query.Limit {
		result = result[:query.Limit]
	}

	return result, nil
}
