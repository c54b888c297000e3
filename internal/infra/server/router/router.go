// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	categoryController *controller.CategoryController
	trackerController  *controller.TrackerController
	recordController   *controller.RecordController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	trackerController *controller.TrackerController,
	recordController *controller.RecordController,
) *Router {
	return &Router{
		healthController:   healthController,
		categoryController: categoryController,
		trackerController:  trackerController,
		recordController:   recordController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}

		if r.trackerController != nil {
			trackers := v1.Group("/trackers")
			{
				trackers.GET("", r.trackerController.List)
				trackers.POST("", r.trackerController.Create)
				trackers.PATCH("/:id", r.trackerController.Update)
				trackers.DELETE("/:id", r.trackerController.Delete)
				trackers.POST("/:id/pin", r.trackerController.Pin)
				trackers.POST("/:id/unpin", r.trackerController.Unpin)

				if r.recordController != nil {
					trackers.POST("/:id/records/toggle", r.recordController.Toggle)
				}
			}
		}

		if r.recordController != nil {
			v1.GET("/statistics", r.recordController.Statistics)
		}
	}
}
