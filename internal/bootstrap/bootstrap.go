package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vkapoor/studentinfo/internal/app/controllers"
	"github.com/vkapoor/studentinfo/internal/app/migrations"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/app/repositories"
	"github.com/vkapoor/studentinfo/internal/app/routes"
	"github.com/vkapoor/studentinfo/internal/app/services"
	"github.com/vkapoor/studentinfo/internal/config"
	"github.com/vkapoor/studentinfo/internal/db"
	"github.com/vkapoor/studentinfo/internal/middleware"
	"github.com/vkapoor/studentinfo/internal/pkg/auth"
	"github.com/vkapoor/studentinfo/internal/pkg/helpers"
	"github.com/vkapoor/studentinfo/internal/pkg/logger"
	"github.com/vkapoor/studentinfo/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Config      *config.Config
	DB          *db.PostgresDB
	JWTService  *auth.JWTService
	Controllers routes.Controllers
	AuthMW      *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and configures logging from it
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
		Output: os.Stdout,
	})

	return cfg, nil
}

// SetupDatabase opens the pool, applies migrations and seeds default data
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	if err := seed.SeedDatabase(ctx, database.Pool); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	tokenExp := helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database.Pool)

	authService := services.NewAuthService(repos.UserRepository, jwtService, log.Logger)
	studentService := services.NewStudentService(repos.StudentRepository)
	facultyService := services.NewFacultyService(repos.FacultyRepository, log.Logger)
	suspensionService := services.NewSuspensionService(repos.SuspensionRepository, log.Logger)

	ctrl := routes.Controllers{
		Auth:       controllers.NewAuthController(authService),
		Student:    controllers.NewStudentController(studentService),
		Faculty:    controllers.NewFacultyController(facultyService),
		Suspension: controllers.NewSuspensionController(suspensionService),
	}

	authMW := middleware.NewAuthMiddleware(jwtService, repos.UserRepository, log.Logger)

	return &Dependencies{
		Config:      cfg,
		DB:          database,
		JWTService:  jwtService,
		Controllers: ctrl,
		AuthMW:      authMW,
	}, nil
}

// SetupRouter creates the gin engine with middleware and all routes mounted
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterTagNameFunc()

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewMessageResponse("Internal server error!"))
	}))

	routes.RegisterRoutes(router, deps.Controllers, deps.AuthMW)

	return router
}
