// Package bootstrap wires configuration, storage, and handlers into a
// runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"mentorcv-backend/internal/ai"
	"mentorcv-backend/internal/analyses"
	"mentorcv-backend/internal/intake"
	"mentorcv-backend/internal/mentees"
	"mentorcv-backend/internal/quota"
	"mentorcv-backend/internal/requestlog"
	"mentorcv-backend/internal/resumes"
	"mentorcv-backend/internal/shared/config"
	"mentorcv-backend/internal/shared/server"
	"mentorcv-backend/internal/shared/storage/blob"
	"mentorcv-backend/internal/shared/storage/db"
	"mentorcv-backend/internal/shared/telemetry"
)

// App is the fully wired application.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
	Config config.Config
}

// Build constructs the application from configuration. Without a
// database URL outside production it falls back to in-memory stores so
// the server stays usable for local development.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	database, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var (
		requestRepo quota.RequestLogStore
		menteeRepo  mentees.Repo
		resumeRepo  resumes.Repo
		analysisRepo analyses.Repo
	)
	if database != nil {
		requestRepo = &requestlog.PGRepo{DB: database}
		menteeRepo = &mentees.PGRepo{DB: database}
		resumeRepo = &resumes.PGRepo{DB: database}
		analysisRepo = &analyses.PGRepo{DB: database}
	} else {
		telemetry.Warn("running with in-memory stores", map[string]any{"env": cfg.Env})
		memMentees := mentees.NewMemoryRepo()
		memResumes := resumes.NewMemoryRepo()
		requestRepo = requestlog.NewMemoryRepo()
		menteeRepo = memMentees
		resumeRepo = memResumes
		analysisRepo = analyses.NewMemoryRepo(memResumes, memMentees)
	}

	menteeSvc := mentees.NewService(menteeRepo)
	guard := quota.NewGuard(requestRepo, analysisRepo)
	blobs := blob.NewGateway(buildUploader(ctx, cfg), cfg.S3Prefix)
	aiClient := buildAIClient(cfg)

	uploadSvc := intake.NewService(menteeSvc, resumeRepo, analysisRepo, guard, blobs, aiClient)

	router := server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Upload:   intake.NewHandler(uploadSvc),
		Analyses: analyses.NewHandler(analysisRepo),
	})

	return &App{Router: router, DB: database, Config: cfg}, nil
}

// buildDB connects and migrates. A missing DATABASE_URL is fatal in
// production and a warning everywhere else.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		return nil, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return database, nil
}

// buildUploader returns nil when object storage is off or misconfigured;
// the blob gateway handles nil with local placeholder URLs.
func buildUploader(ctx context.Context, cfg config.Config) blob.Uploader {
	if cfg.ObjectStoreType != "s3" {
		return nil
	}
	uploader, err := blob.NewS3Uploader(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		telemetry.Warn("s3 uploader unavailable", map[string]any{"error": err.Error()})
		return nil
	}
	return uploader
}

func buildAIClient(cfg config.Config) ai.Client {
	if cfg.AnalysisAPIURL == "" {
		return ai.Placeholder{}
	}
	return ai.NewHTTPClient(cfg.AnalysisAPIURL, cfg.AnalysisTimeout)
}
