package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/config"
	"github.com/taskflowhq/taskflow-api/internal/middleware"
	"github.com/taskflowhq/taskflow-api/internal/routes"
	"github.com/taskflowhq/taskflow-api/internal/storage"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

func main() {

	cfg := config.Load()

	st, err := storage.Open(cfg.StoragePath)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	// touching the collections at startup seeds first runs and surfaces
	// corrupt persisted data as a hard init failure instead of letting it
	// leak into date arithmetic later
	if _, err := store.New(st).Events(); err != nil {
		log.Fatalf("failed to initialize data: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
