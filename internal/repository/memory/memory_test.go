package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/repository/memory"
)

func TestUserRepository(t *testing.T) {
	t.Parallel()
	repo := memory.NewUserRepository()

	id, err := repo.Create(t.Context(), &domain.User{Username: "alice"})
	require.NoError(t, err)
	require.False(t, id.IsZero())

	_, err = repo.Create(t.Context(), &domain.User{Username: "alice"})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	user, err := repo.GetByID(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = repo.GetByID(t.Context(), primitive.NewObjectID())
	require.ErrorIs(t, err, repository.ErrNotFound)

	users, err := repo.GetAll(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestExerciseRepository_GetByUserID(t *testing.T) {
	t.Parallel()

	repo := memory.NewExerciseRepository()
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}
	for _, d := range []int{3, 1, 2} {
		_, err := repo.Create(t.Context(), &domain.Exercise{
			UserID: userID, Description: "run", Duration: 30, Date: day(d),
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(t.Context(), &domain.Exercise{
		UserID: otherID, Description: "other", Duration: 10, Date: day(1),
	})
	require.NoError(t, err)

	t.Run("only the owner's exercises, sorted ascending", func(t *testing.T) {
		exercises, err := repo.GetByUserID(t.Context(), userID, repository.ExerciseQuery{})
		require.NoError(t, err)
		require.Len(t, exercises, 3)
		require.Equal(t, day(1), exercises[0].Date)
		require.Equal(t, day(2), exercises[1].Date)
		require.Equal(t, day(3), exercises[2].Date)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		from, to := day(1), day(2)
		exercises, err := repo.GetByUserID(t.Context(), userID, repository.ExerciseQuery{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, exercises, 2)
	})

	t.Run("limit truncates", func(t *testing.T) {
		exercises, err := repo.GetByUserID(t.Context(), userID, repository.ExerciseQuery{Limit: 1})
		require.NoError(t, err)
		require.Len(t, exercises, 1)
		require.Equal(t, day(1), exercises[0].Date)
	})
}
