// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-miniapp/backend/config"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/controller"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	userController     *controller.UserController
	categoryController *controller.CategoryController
	recordController   *controller.RecordController
	reportController   *controller.ReportController
	writeRateLimiter   *middleware.RateLimiter
	corsConfig         config.CORSConfig
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	recordController *controller.RecordController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
	corsConfig config.CORSConfig,
) *Router {
	return &Router{
		healthController:   healthController,
		userController:     userController,
		categoryController: categoryController,
		recordController:   recordController,
		reportController:   reportController,
		writeRateLimiter:   writeRateLimiter,
		corsConfig:         corsConfig,
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

	r.engine.Use(r.corsMiddleware())

	r.setupAPIRoutes()

	return r.engine
}

// corsMiddleware allows the Mini App frontend origin to call the API.
func (r *Router) corsMiddleware() gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(r.corsConfig.AllowedOrigins) == 1 && r.corsConfig.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = r.corsConfig.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cors.New(corsCfg)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		api.GET("/health", r.healthController.Check)

		// User settings routes
		api.POST("/init_user", r.userController.InitUser)
		api.GET("/get_user", r.userController.GetUser)

		// Category routes
		api.GET("/categories", r.categoryController.List)
		api.POST("/add_category", r.categoryController.Create)

		// Record routes (writes are rate limited)
		if r.writeRateLimiter != nil {
			api.POST("/add", r.writeRateLimiter.Middleware(), r.recordController.Add)
		} else {
			api.POST("/add", r.recordController.Add)
		}
		api.GET("/records", r.recordController.List)
		api.PUT("/update/:record_id", r.recordController.Update)

		// Report route
		api.GET("/report", r.reportController.Get)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
