package main

import (
	"fmt"
	"log"

	"github.com/Priyans1727C/backend/configs"
	"github.com/Priyans1727C/backend/middlewares"
	"github.com/Priyans1727C/backend/notifier"
	"github.com/Priyans1727C/backend/repository"
	"github.com/Priyans1727C/backend/routes"
	"github.com/Priyans1727C/backend/tasks"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Background purge of dead password-reset tokens
	tokenTask := tasks.NewResetTokenTask(repository.NewResetTokenRepository(db))
	tokenTask.Start()
	defer tokenTask.Stop()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, notifier.NewSESMailer(cfg))

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
