package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// FlexString decodes a JSON string or bare number into a string, so clients
// may send duration as either "30" or 30. Form binding works through the
// underlying string kind.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*s = FlexString(v)
	case float64:
		*s = FlexString(strconv.FormatFloat(v, 'f', -1, 64))
	case nil:
		*s = ""
	default:
		return fmt.Errorf("unsupported value %v", v)
	}
	return nil
}

// AddExerciseRequest defines the expected body for logging an exercise.
// Bodies may be JSON or form-encoded.
type AddExerciseRequest struct {
	Description string     `json:"description" form:"description"`
	Duration    FlexString `json:"duration" form:"duration"`
	Date        string     `json:"date" form:"date"`
}

// ExerciseResponse is the DTO returned after logging an exercise. The _id
// field carries the user's id, not the exercise's; existing tracker clients
// depend on that.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntry is one exercise inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the DTO for a user's exercise log.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, exercise, err := h.exerciseService.AddExercise(
		c.Request.Context(),
		userID,
		req.Description,
		string(req.Duration),
		req.Date,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
		ID:          user.ID.Hex(),
	})
}

// GetLogs handles GET /api/users/:id/logs.
func (h *ExerciseHandler) GetLogs(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, exercises, err := h.exerciseService.GetLogs(
		c.Request.Context(),
		userID,
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]LogEntry, len(exercises))
	for i := range exercises {
		entries[i] = LogEntry{
			Description: exercises[i].Description,
			Duration:    exercises[i].Duration,
			Date:        exercises[i].DateString(),
		}
	}

	c.JSON(http.StatusOK, LogResponse{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID.Hex(),
		Log:      entries,
	})
}
