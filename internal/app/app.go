package app

import (
	"context"
	"os"

	"careernest/internal/seed"
	"careernest/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module's routes
// on the router.
func BuildApp(router *gin.Engine) error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "careernest"
	}

	db, err := connection.ConnectMongoWithRetry(mongoURI, dbName, 5)
	if err != nil {
		return err
	}

	// Redis only backs the idempotency middleware; the API runs without it.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	}

	deps, err := registerModules(router, db, rdb)
	if err != nil {
		return err
	}

	if os.Getenv("SEED_ON_START") == "true" {
		if err := seed.Run(context.Background(), deps.companyRepo, deps.jobRepo, zap.L().Named("seed")); err != nil {
			return err
		}
	}

	return nil
}
