package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/documents"
	"portal-backend/internal/projects"
	"portal-backend/internal/services/health"
	"portal-backend/internal/shared/config"
	"portal-backend/internal/shared/metrics"
	"portal-backend/internal/shared/server"
	"portal-backend/internal/shared/server/middleware"
	"portal-backend/internal/shared/server/respond"
	"portal-backend/internal/shared/storage/db"
	"portal-backend/internal/shared/storage/object"
	localstore "portal-backend/internal/shared/storage/object/local"
	s3store "portal-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Store object.ObjectStore

	DocumentsRepo    documents.Repo
	ProjectsRepo     projects.Repo
	DocumentsService *documents.Service
	ProjectsService  *projects.Service
	DocumentsHandler *documents.Handler
	ProjectsHandler  *projects.Handler
	HealthService    *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 5
	}
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	buildServices(app)
	buildRouter(app)
	return app, nil
}

// buildDB connects and migrates when DATABASE_URL is set; on any failure the
// app falls back to in-memory repositories.
func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.ProjectsRepo = &projects.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.ProjectsRepo = projects.NewMemoryRepo()
	}

	app.ProjectsService = projects.NewService(app.ProjectsRepo)
	app.DocumentsService = &documents.Service{
		Store:     app.Store,
		Repo:      app.DocumentsRepo,
		Projects:  app.ProjectsService,
		Validator: documents.NewValidator(app.Config.MaxUploadBytes()),
	}
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.ProjectsHandler = projects.NewHandler(app.ProjectsService)
	app.HealthService = health.NewService(app.DB)
}

func buildRouter(app *App) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(app.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/documents" {
					return "UPLOAD"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 20, Burst: 40},
				"UPLOAD":  {Rate: 2, Burst: 5},
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, app.HealthService.Status(c.Request.Context()))
	})
	api.GET("/metrics", metrics.Handler())
	app.DocumentsHandler.RegisterRoutes(api)
	app.ProjectsHandler.RegisterRoutes(api)

	app.Router = r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	return server.Addr(port)
}
