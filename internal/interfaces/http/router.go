// Package http assembles the gin engine: repositories, use cases,
// handlers and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryusecases "github.com/reelhub/reelhub/internal/application/category/usecases"
	dashboardusecases "github.com/reelhub/reelhub/internal/application/dashboard/usecases"
	userusecases "github.com/reelhub/reelhub/internal/application/user/usecases"
	videousecases "github.com/reelhub/reelhub/internal/application/video/usecases"
	"github.com/reelhub/reelhub/internal/infrastructure/auth"
	"github.com/reelhub/reelhub/internal/infrastructure/config"
	"github.com/reelhub/reelhub/internal/infrastructure/repository"
	"github.com/reelhub/reelhub/internal/interfaces/http/handlers"
	"github.com/reelhub/reelhub/internal/interfaces/http/middleware"
	"github.com/reelhub/reelhub/internal/interfaces/http/routes"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

// NewRouter builds the gin engine with all routes and middleware wired.
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())

	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	categoryHandler := handlers.NewCategoryHandler(
		categoryusecases.NewCreateCategoryUseCase(categoryRepo, log),
		categoryusecases.NewUpdateCategoryUseCase(categoryRepo, log),
		categoryusecases.NewGetCategoryUseCase(categoryRepo, log),
		categoryusecases.NewListCategoriesUseCase(categoryRepo, log),
		categoryusecases.NewUpdateCategoryStatusUseCase(categoryRepo, log),
		categoryusecases.NewDeleteCategoryUseCase(categoryRepo, log),
		log,
	)

	userHandler := handlers.NewUserHandler(
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
		userusecases.NewUpdateUserUseCase(userRepo, hasher, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		userusecases.NewUpdateUserStatusUseCase(userRepo, log),
		userusecases.NewDeleteUserUseCase(userRepo, log),
		log,
	)

	videoHandler := handlers.NewVideoHandler(
		videousecases.NewCreateVideoUseCase(videoRepo, categoryRepo, userRepo, log),
		videousecases.NewUpdateVideoUseCase(videoRepo, categoryRepo, userRepo, log),
		videousecases.NewGetVideoUseCase(videoRepo, log),
		videousecases.NewListVideosUseCase(videoRepo, log),
		videousecases.NewUpdateVideoStatusUseCase(videoRepo, log),
		videousecases.NewDeleteVideoUseCase(videoRepo, log),
		videousecases.NewIncrementVideoCountersUseCase(videoRepo, log),
		log,
	)

	dashboardHandler := handlers.NewDashboardHandler(
		dashboardusecases.NewGetDashboardUseCase(categoryRepo, userRepo, videoRepo, log),
		log,
	)

	// The landing page and the admin root both show the dashboard counts.
	engine.GET("/", dashboardHandler.GetDashboard)

	admin := engine.Group("/admin")
	{
		admin.GET("", dashboardHandler.GetDashboard)
		routes.SetupCategoryRoutes(admin, categoryHandler)
		routes.SetupUserRoutes(admin, userHandler)
		routes.SetupVideoRoutes(admin, videoHandler)
	}

	return engine
}
