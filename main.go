package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/configs"
	"github.com/mohanwork1803-cell/Foodie-Express/middlewares"
	"github.com/mohanwork1803-cell/Foodie-Express/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
