package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargolink_backend/database"
	"cargolink_backend/internal/auth"
	"cargolink_backend/internal/config"
	"cargolink_backend/internal/email"
	"cargolink_backend/internal/handlers"
	"cargolink_backend/internal/logger"
	"cargolink_backend/internal/middleware"
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/repositories"
	"cargolink_backend/internal/routes"
	"cargolink_backend/internal/services"
	"cargolink_backend/internal/validator"
	"cargolink_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без администратора очередь модерации мертва - не стартуем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB)

	startWorkers(context.Background(), cfg, gormDB, serviceContainer.EmailService)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	v := validator.New()

	var emailService email.Provider
	if cfg.Email.Enabled {
		provider, err := email.NewGomailProvider(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize email provider", "error", err)
		}
		emailService = provider
	} else {
		logger.Warn("Email is disabled, using noop provider")
		emailService = &NoopEmailProvider{}
	}

	// --- Репозитории ---
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	listingRepo := repositories.NewListingRepository(gormDB)
	ratingRepo := repositories.NewRatingRepository(gormDB)

	// --- Сервисы ---
	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, profileRepo, v),
		ProfileService: services.NewProfileService(profileRepo, listingRepo, ratingRepo, v),
		ListingService: services.NewListingService(listingRepo, v, emailService),
		BrowseService:  services.NewBrowseService(listingRepo, profileRepo, ratingRepo),
		RatingService:  services.NewRatingService(ratingRepo, userRepo),
		EmailService:   emailService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, sc.AuthService),
		ProfileHandler: handlers.NewProfileHandler(base, sc.ProfileService),
		ListingHandler: handlers.NewListingHandler(base, sc.ListingService, sc.BrowseService),
		RatingHandler:  handlers.NewRatingHandler(base, sc.RatingService),
		MetaHandler:    handlers.NewMetaHandler(base),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
	)
	return ginRouter
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, mail email.Provider) {
	if cfg.Moderation.ReminderIntervalMinutes <= 0 {
		logger.Info("Moderation reminder worker disabled")
		return
	}

	worker := workers.NewModerationWorker(
		repositories.NewListingRepository(gormDB),
		repositories.NewUserRepository(gormDB),
		mail,
		time.Duration(cfg.Moderation.ReminderIntervalMinutes)*time.Minute,
		time.Duration(cfg.Moderation.StalePendingHours)*time.Hour,
	)
	worker.Start(ctx)
	logger.Info("Moderation reminder worker started",
		"interval_minutes", cfg.Moderation.ReminderIntervalMinutes)
}

// seedFirstAdmin создает первого администратора из конфигурации,
// если его еще нет. Флаг is_admin меняется только здесь и вручную в БД.
func seedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials are not configured, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := gormDB.First(&existing, "email = ?", cfg.Admin.Email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		admin := &models.User{
			Email:        cfg.Admin.Email,
			PasswordHash: hash,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		profile := &models.Profile{
			UserID:        admin.ID,
			CompanyName:   "CargoLink",
			ContactPerson: "Administrator",
			IsAdmin:       true,
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		logger.Info("First admin user seeded", "email", cfg.Admin.Email)
		return nil
	})
}
