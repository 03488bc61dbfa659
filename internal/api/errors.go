package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to HTTP statuses and client
// messages in one place. Anything unrecognized is a store failure: logged
// server-side, reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameRequired):
		abortWithError(c, http.StatusBadRequest, "Username is required")
	case errors.Is(err, service.ErrUsernameTaken):
		abortWithError(c, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, service.ErrFieldsRequired):
		abortWithError(c, http.StatusBadRequest, "Description and duration are required")
	case errors.Is(err, service.ErrInvalidDuration):
		abortWithError(c, http.StatusBadRequest, "Invalid duration")
	case errors.Is(err, service.ErrInvalidDate):
		abortWithError(c, http.StatusBadRequest, "Invalid date")
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, "User not found")
	default:
		log.Printf("ERROR: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Server error")
	}
}
