package app

import (
	"fmt"

	"internship_backend/internal/config"
	"internship_backend/internal/database"
	"internship_backend/internal/email"
	"internship_backend/internal/handlers"
	"internship_backend/internal/logger"
	"internship_backend/internal/middleware"
	"internship_backend/internal/repositories"
	"internship_backend/internal/routes"
	"internship_backend/internal/services"
	"internship_backend/internal/storage"
	"internship_backend/internal/token"
	"internship_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, and handlers into a gin
// engine. All collaborators are constructed here and injected; nothing
// reads process-wide state after this point.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	fileStorage, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	tokenService, err := token.NewService(cfg.JWT.Secret, cfg.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("initialize token service: %w", err)
	}

	var provider email.Provider = email.NoopProvider{}
	if cfg.Email.Enabled && cfg.Email.SMTPHost != "" {
		provider = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("SMTP not configured, auth notifications are disabled")
	}
	notifier := email.NewAsyncNotifier(provider, cfg.Email.FromName)

	userRepo := repositories.NewUserRepository(gormDB)
	internshipRepo := repositories.NewInternshipRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)

	serviceContainer := &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, tokenService, notifier),
		InternshipService:  services.NewInternshipService(internshipRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, internshipRepo, userRepo),
		ProfileService:     services.NewProfileService(profileRepo, fileStorage),
	}

	appHandlers := initializeHandlers(serviceContainer)
	authn := middleware.Authenticate(tokenService, userRepo)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, authn, fileStorage.BasePath())

	return router, nil
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, sc.AuthService),
		InternshipHandler:  handlers.NewInternshipHandler(baseHandler, sc.InternshipService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, sc.ProfileService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))
	return router
}
