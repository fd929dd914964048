package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodie/configs"
	"foodie/middlewares"
	"foodie/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectDB(cfg)
	db := configs.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := configs.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}
	if err := configs.SeedAdmin(ctx, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Frontend
	r.Static("/assets", "./web/assets")
	r.StaticFile("/", "./web/index.html")
	for _, page := range []string{"checkout.html", "login.html", "admin-login.html", "admin.html"} {
		r.StaticFile("/"+page, "./web/"+page)
	}

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
