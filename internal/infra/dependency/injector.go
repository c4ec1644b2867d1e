// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-miniapp/backend/config"
	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/application/usecase/category"
	"github.com/finance-miniapp/backend/internal/application/usecase/record"
	"github.com/finance-miniapp/backend/internal/application/usecase/report"
	"github.com/finance-miniapp/backend/internal/application/usecase/settings"
	"github.com/finance-miniapp/backend/internal/infra/server/router"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/controller"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-miniapp/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	SeedCategoriesUseCase *category.SeedCategoriesUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limiting falls back to the
// in-memory backend. notifier delivers record notifications.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, notifier adapter.Notifier) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	recordRepo := persistence.NewRecordRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create settings use cases
	initUserUseCase := settings.NewInitUserUseCase(settingsRepo)
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	seedCategoriesUseCase := category.NewSeedCategoriesUseCase(categoryRepo)

	// Create record use cases
	addRecordUseCase := record.NewAddRecordUseCase(recordRepo, notifier)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo)
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)

	// Create report use case
	buildReportUseCase := report.NewBuildReportUseCase(recordRepo, settingsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	userController := controller.NewUserController(initUserUseCase, getSettingsUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	recordController := controller.NewRecordController(addRecordUseCase, updateRecordUseCase, listRecordsUseCase)
	reportController := controller.NewReportController(buildReportUseCase)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiterWithConfig(
		redisClient,
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.WindowDuration,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		userController,
		categoryController,
		recordController,
		reportController,
		writeRateLimiter,
		cfg.CORS,
	)

	return &Injector{
		Config:                cfg,
		DB:                    db,
		Router:                r,
		SeedCategoriesUseCase: seedCategoriesUseCase,
	}
}
