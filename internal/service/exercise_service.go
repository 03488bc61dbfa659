package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrFieldsRequired  = errors.New("description and duration are required")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidDate     = errors.New("invalid date")
)

// Accepted calendar-date inputs.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	domain.DateLayout,
}

// ExerciseService handles exercise creation and log retrieval.
// Raw string inputs are normalized here so handlers stay as thin
// request/response glue.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*domain.User, *domain.Exercise, error)
	GetLogs(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*domain.User, []domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// AddExercise validates and stores a new exercise for an existing user.
// The user existence check runs first: a nonexistent user is reported as
// not-found no matter what the body contains. The date defaults to the
// current time when absent.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*domain.User, *domain.Exercise, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	if description == "" || duration == "" {
		return nil, nil, ErrFieldsRequired
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil || minutes <= 0 {
		return nil, nil, ErrInvalidDuration
	}

	when := time.Now().UTC()
	if date != "" {
		parsed, ok := parseDate(date)
		if !ok {
			return nil, nil, ErrInvalidDate
		}
		when = parsed
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    minutes,
		Date:        when,
	}

	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, nil, err
	}
	exercise.ID = id

	return user, exercise, nil
}

// GetLogs returns a user's exercises sorted ascending by date. The from/to
// bounds are inclusive; malformed bounds and limits are ignored rather than
// rejected, so a bad filter degrades to a broader result instead of an error.
func (s *exerciseService) GetLogs(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*domain.User, []domain.Exercise, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	var query repository.ExerciseQuery
	if from != "" {
		if t, ok := parseDate(from); ok {
			query.From = &t
		}
	}
	if to != "" {
		if t, ok := parseDate(to); ok {
			query.To = &t
		}
	}
	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			query.Limit = int64(n)
		}
	}

	exercises, err := s.exerciseRepo.GetByUserID(ctx, userID, query)
	if err != nil {
		return nil, nil, err
	}

	return user, exercises, nil
}

// parseDate tries each accepted layout in order. Parsed dates are UTC.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
