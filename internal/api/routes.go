package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all middleware and routes attached.
func NewRouter(userService service.UserService, exerciseService service.ExerciseService) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(), CORS(), Recovery())

	SetupRoutes(router, userService, exerciseService)
	return router
}

// SetupRoutes registers all API routes on the given engine.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	// Static landing page
	router.StaticFile("/", "./public/index.html")

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "OK"})
		})

		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.GET("/users", userHandler.ListUsers)

		apiGroup.POST("/users/:id/exercises", exerciseHandler.AddExercise)
		apiGroup.GET("/users/:id/logs", exerciseHandler.GetLogs)
	}

	// Unmatched API paths get a structured 404 distinct from the generic one.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
