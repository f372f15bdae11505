package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/davantedent/clinic-scheduler/internal/config"
	"github.com/davantedent/clinic-scheduler/internal/infra/blob"
	"github.com/davantedent/clinic-scheduler/internal/logger"
	"github.com/davantedent/clinic-scheduler/internal/middleware"
	"github.com/davantedent/clinic-scheduler/internal/routes"
	"github.com/davantedent/clinic-scheduler/internal/store"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel)

	var substrate store.Blob
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		substrate = blob.NewRedisBlob(client, cfg.StoreKey)
	case "file":
		substrate = blob.NewFileBlob(cfg.StoreFile)
	default:
		substrate = blob.NewMemoryBlob()
	}

	st := store.New(substrate, cfg.StoreTTL(), appLog)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, appLog)

	appLog.Infof("Server running on %s (store backend: %s)", cfg.Addr(), cfg.StoreBackend)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
