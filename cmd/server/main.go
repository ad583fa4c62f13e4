package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/database"
	"github.com/zaqqye/navodaya_web/internal/routes"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	if err := database.SeedAdmin(ctx, store, cfg); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}
	if err := database.SeedContent(ctx, store); err != nil {
		log.Fatalf("content seed failed: %v", err)
	}

	r := gin.Default()
	routes.Register(r, store, cfg)

	addr := ":" + cfg.Port
	log.Printf("Server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Println("server exited with error:", err)
		os.Exit(1)
	}
}
