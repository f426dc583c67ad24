// Package bootstrap wires configuration, storage and the HTTP surface
// together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/emre/campusvoice/internal/app/controllers"
	"github.com/emre/campusvoice/internal/app/migrations"
	"github.com/emre/campusvoice/internal/app/repositories"
	"github.com/emre/campusvoice/internal/app/routes"
	"github.com/emre/campusvoice/internal/app/services"
	"github.com/emre/campusvoice/internal/config"
	"github.com/emre/campusvoice/internal/db"
	"github.com/emre/campusvoice/internal/middleware"
	pkgAuth "github.com/emre/campusvoice/internal/pkg/auth"
	"github.com/emre/campusvoice/internal/pkg/filestorage"
	"github.com/emre/campusvoice/internal/pkg/logger"
	"github.com/emre/campusvoice/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *repositories.Repositories
	JWTService         *pkgAuth.JWTService
	AuthService        *services.AuthService
	UserService        *services.UserService
	FeedbackService    *services.FeedbackService
	AuthController     *controllers.AuthController
	AdminController    *controllers.AdminController
	FacultyController  *controllers.FacultyController
	StudentController  *controllers.StudentController
	FeedbackController *controllers.FeedbackController
	UploadController   *controllers.UploadController
	AuthMiddleware     *middleware.AuthMiddleware
	FileStorage        *filestorage.LocalStorage
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	// The base URL must match the static file serving path in the server.
	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = services.NewAuthService(deps.Repos.UserRepository, deps.JWTService, deps.FileStorage, lgr)
	deps.UserService = services.NewUserService(deps.Repos.UserRepository, deps.FileStorage, lgr)
	deps.FeedbackService = services.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = controllers.NewAuthController(deps.AuthService, lgr)
	deps.AdminController = controllers.NewAdminController(deps.UserService, deps.FeedbackService, lgr)
	deps.FacultyController = controllers.NewFacultyController(deps.UserService, deps.FeedbackService, lgr)
	deps.StudentController = controllers.NewStudentController(deps.UserService, lgr)
	deps.FeedbackController = controllers.NewFeedbackController(deps.FeedbackService, lgr)
	deps.UploadController = controllers.NewUploadController(deps.FileStorage, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	routes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.FacultyController,
		deps.StudentController,
		deps.FeedbackController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	return router
}
