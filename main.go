package main

import (
	"fmt"
	"log"

	"github.com/MilindByte/food-delivery-app-test/cache"
	"github.com/MilindByte/food-delivery-app-test/configs"
	"github.com/MilindByte/food-delivery-app-test/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// Catalog cache is optional; without REDIS_URL every read hits the DB.
	var cacheClient *cache.Client
	if cfg.RedisURL != "" {
		var err error
		cacheClient, err = cache.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
	}

	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), cacheClient, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
