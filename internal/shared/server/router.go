package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"intellidocs-backend/internal/analyses"
	"intellidocs-backend/internal/convert"
	"intellidocs-backend/internal/documents"
	"intellidocs-backend/internal/report"
	"intellidocs-backend/internal/shared/config"
	"intellidocs-backend/internal/shared/metrics"
	"intellidocs-backend/internal/shared/server/middleware"
	"intellidocs-backend/internal/shared/server/respond"
	"intellidocs-backend/internal/shared/storage/db"
	localstore "intellidocs-backend/internal/shared/storage/object/local"
	"intellidocs-backend/internal/shared/telemetry"
	"intellidocs-backend/internal/summarizer"
	"intellidocs-backend/internal/summarizer/gemini"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.Env == "production" || cfg.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 30},
			},
		}),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Warn("db.connect_failed", map[string]any{"error": err.Error()})
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				telemetry.Warn("db.migrate_failed", map[string]any{"error": err.Error()})
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var docRepo documents.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	summaries := newSummarizer(cfg)

	docSvc := &documents.Service{Store: store, Repo: docRepo}
	docHandler := documents.NewHandler(docSvc, cfg.MaxUploadMB)
	analysisSvc := &analyses.Service{Docs: docRepo, Summaries: summaries}
	analysisHandler := analyses.NewHandler(analysisSvc)
	convertHandler := convert.NewHandler()
	reportHandler := report.NewHandler(docRepo)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"ok":         true,
			"summarizer": summarizerStateLabel(summaries.State()),
		})
	})
	docHandler.RegisterRoutes(api)
	analysisHandler.RegisterRoutes(api)
	convertHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)

	return r
}

// newSummarizer builds the summarization capability. Without an API key the
// service still works through its deterministic fallback.
func newSummarizer(cfg config.Config) *summarizer.Service {
	if cfg.GeminiAPIKey == "" {
		telemetry.Info("summarizer.disabled", map[string]any{"reason": "no api key"})
		return summarizer.New(nil, cfg.SummarizerTimeout)
	}
	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.SummarizerModel)
	if err != nil {
		telemetry.Warn("summarizer.init_failed", map[string]any{"error": err.Error()})
		return summarizer.New(nil, cfg.SummarizerTimeout)
	}
	telemetry.Info("summarizer.ready", map[string]any{"model": client.Model()})
	return summarizer.New(client, cfg.SummarizerTimeout)
}

func summarizerStateLabel(state summarizer.State) string {
	switch state {
	case summarizer.StateReady:
		return "ready"
	case summarizer.StateUnavailable:
		return "unavailable"
	default:
		return "uninitialized"
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
