package app

import (
	"context"

	"careernest/internal/application"
	"careernest/internal/bookmark"
	"careernest/internal/company"
	"careernest/internal/identity"
	"careernest/internal/job"
	"careernest/internal/middleware"
	"careernest/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// moduleDeps exposes the repositories other startup steps (seeding) need.
type moduleDeps struct {
	companyRepo company.Repository
	jobRepo     job.Repository
}

func registerModules(
	router *gin.Engine,
	db *mongo.Database,
	rdb *redis.Client,
) (*moduleDeps, error) {
	ctx := context.Background()

	// --- Indexes ---
	for _, ensure := range []func(context.Context, *mongo.Database) error{
		company.EnsureIndexes,
		job.EnsureIndexes,
		application.EnsureIndexes,
		bookmark.EnsureIndexes,
	} {
		if err := ensure(ctx, db); err != nil {
			return nil, err
		}
	}

	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	jobRepo := job.NewRepository(db)
	applicationRepo := application.NewRepository(db)
	bookmarkRepo := bookmark.NewRepository(db)

	// --- External collaborators ---
	verifier := identity.NewGoogleVerifier()

	// --- Services ---
	jobService := job.NewService(jobRepo, companyRepo)
	companyService := company.NewService(companyRepo,
		func(ctx context.Context, companyID string) (any, int, error) {
			jobs, err := jobService.ListActiveByCompany(ctx, companyID)
			if err != nil {
				return nil, 0, err
			}
			return jobs, len(jobs), nil
		})
	applicationService := application.NewService(applicationRepo, jobRepo, companyRepo, verifier)
	bookmarkService := bookmark.NewService(bookmarkRepo, jobRepo, companyRepo)
	statsService := stats.NewService(companyRepo, jobRepo, applicationRepo, bookmarkRepo)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	jobHandler := job.NewHandler(jobService)
	applicationHandler := application.NewHandler(applicationService)
	bookmarkHandler := bookmark.NewHandler(bookmarkService)
	statsHandler := stats.NewHandler(statsService)

	// --- Routes ---
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler)
		job.RegisterRoutes(api, jobHandler)
		application.RegisterRoutes(api, applicationHandler, rdb)
		bookmark.RegisterRoutes(api, bookmarkHandler)
		stats.RegisterRoutes(api, statsHandler)
	}

	stats.RegisterHealthRoute(router, statsHandler)

	return &moduleDeps{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}, nil
}
