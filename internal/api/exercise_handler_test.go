package api_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/exercise-tracker/internal/domain"
)

// seedExercise inserts an exercise directly into the store, bypassing the API.
func (app *testApp) seedExercise(t *testing.T, userID string, description string, duration int, date time.Time) {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(userID)
	require.NoError(t, err)
	_, err = app.exercises.Create(t.Context(), &domain.Exercise{
		UserID:      id,
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	require.NoError(t, err)
}

type exerciseBody struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type logBody struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
	ID       string `json:"_id"`
	Log      []struct {
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		Date        string `json:"date"`
	} `json:"log"`
}

func TestAddExercise(t *testing.T) {
	t.Parallel()

	t.Run("returns the user id and a readable date", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		rec := app.postJSON(t, "/api/users/"+userID+"/exercises",
			`{"description":"run","duration":"30","date":"2024-01-01"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body exerciseBody
		decodeBody(t, rec, &body)
		require.Equal(t, "alice", body.Username)
		require.Equal(t, "run", body.Description)
		require.Equal(t, 30, body.Duration)
		require.Equal(t, "Mon Jan 01 2024", body.Date)
		require.Equal(t, userID, body.ID, "response _id must be the user's id")
	})

	t.Run("duration accepted as a bare number", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		rec := app.postJSON(t, "/api/users/"+userID+"/exercises",
			`{"description":"run","duration":30}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body exerciseBody
		decodeBody(t, rec, &body)
		require.Equal(t, 30, body.Duration)
	})

	t.Run("form body accepted", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		form := url.Values{
			"description": {"swim"},
			"duration":    {"45"},
			"date":        {"2024-06-15"},
		}
		rec := app.do(t, http.MethodPost, "/api/users/"+userID+"/exercises",
			"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
		require.Equal(t, http.StatusOK, rec.Code)

		var body exerciseBody
		decodeBody(t, rec, &body)
		require.Equal(t, "swim", body.Description)
		require.Equal(t, 45, body.Duration)
		require.Equal(t, "Sat Jun 15 2024", body.Date)
	})

	t.Run("date defaults to today", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		rec := app.postJSON(t, "/api/users/"+userID+"/exercises",
			`{"description":"run","duration":"30"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body exerciseBody
		decodeBody(t, rec, &body)
		require.Equal(t, time.Now().UTC().Format(domain.DateLayout), body.Date)
	})

	t.Run("unknown user yields 404 regardless of body", func(t *testing.T) {
		app := newTestApp(t)
		app.createUser(t, "alice")

		rec := app.postJSON(t, "/api/users/"+primitive.NewObjectID().Hex()+"/exercises", `{}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "User not found", errorMessage(t, rec))
	})

	t.Run("malformed user id yields 400", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.postJSON(t, "/api/users/not-an-id/exercises",
			`{"description":"run","duration":"30"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid user ID", errorMessage(t, rec))
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		rec := app.postJSON(t, "/api/users/"+userID+"/exercises", `{"duration":"30"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Description and duration are required", errorMessage(t, rec))

		rec = app.postJSON(t, "/api/users/"+userID+"/exercises", `{"description":"run"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Description and duration are required", errorMessage(t, rec))
	})

	t.Run("invalid duration yields 400", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		for _, duration := range []string{`"abc"`, `"0"`, `"-5"`} {
			rec := app.postJSON(t, "/api/users/"+userID+"/exercises",
				`{"description":"run","duration":`+duration+`}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "Invalid duration", errorMessage(t, rec))
		}
	})

	t.Run("invalid date yields 400", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		rec := app.postJSON(t, "/api/users/"+userID+"/exercises",
			`{"description":"run","duration":"30","date":"yesterday"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid date", errorMessage(t, rec))
	})
}

func TestGetLogs(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("full log sorted ascending with matching count", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")
		app.seedExercise(t, userID, "swim", 20, day(2024, time.March, 5))
		app.seedExercise(t, userID, "run", 30, day(2024, time.January, 1))

		rec := app.do(t, http.MethodGet, "/api/users/"+userID+"/logs", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body logBody
		decodeBody(t, rec, &body)
		require.Equal(t, "alice", body.Username)
		require.Equal(t, userID, body.ID)
		require.Equal(t, len(body.Log), body.Count)
		require.Len(t, body.Log, 2)
		require.Equal(t, "run", body.Log[0].Description)
		require.Equal(t, "Mon Jan 01 2024", body.Log[0].Date)
		require.Equal(t, "swim", body.Log[1].Description)
	})

	t.Run("from and to filter inclusively", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")
		app.seedExercise(t, userID, "run", 30, day(2024, time.January, 1))
		app.seedExercise(t, userID, "bike", 45, day(2024, time.February, 10))
		app.seedExercise(t, userID, "swim", 20, day(2024, time.March, 5))

		rec := app.do(t, http.MethodGet,
			"/api/users/"+userID+"/logs?from=2024-01-01&to=2024-02-10", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body logBody
		decodeBody(t, rec, &body)
		require.Equal(t, 2, body.Count)
		require.Equal(t, "run", body.Log[0].Description)
		require.Equal(t, "bike", body.Log[1].Description)
	})

	t.Run("limit returns the earliest entries", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")
		for i := 1; i <= 5; i++ {
			app.seedExercise(t, userID, "run", 30, day(2024, time.January, i))
		}

		rec := app.do(t, http.MethodGet, "/api/users/"+userID+"/logs?limit=2", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body logBody
		decodeBody(t, rec, &body)
		require.Equal(t, 2, body.Count)
		require.Equal(t, "Mon Jan 01 2024", body.Log[0].Date)
		require.Equal(t, "Tue Jan 02 2024", body.Log[1].Date)
	})

	t.Run("malformed filters ignored", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")
		app.seedExercise(t, userID, "run", 30, day(2024, time.January, 1))

		rec := app.do(t, http.MethodGet,
			"/api/users/"+userID+"/logs?from=garbage&limit=NaN", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body logBody
		decodeBody(t, rec, &body)
		require.Equal(t, 1, body.Count)
	})

	t.Run("empty log is an array, not null", func(t *testing.T) {
		app := newTestApp(t)
		userID := app.createUser(t, "alice")

		rec := app.do(t, http.MethodGet, "/api/users/"+userID+"/logs", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"log":[]`)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(t, http.MethodGet,
			"/api/users/"+primitive.NewObjectID().Hex()+"/logs", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "User not found", errorMessage(t, rec))
	})

	t.Run("malformed user id yields 400", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(t, http.MethodGet, "/api/users/xyz/logs", "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid user ID", errorMessage(t, rec))
	})
}
