package main

import (
	"os"
	"time"

	"ledger-classifier-backend/internal/config"
	"ledger-classifier-backend/internal/models"
	"ledger-classifier-backend/internal/routes"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledger",
	})

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on system env")
	}

	cfg := config.Load()
	db := config.InitDB(cfg)

	db.AutoMigrate(
		&models.Statement{},
		&models.BankStatement{},
		&models.Card{},
		&models.ClassificationRule{},
		&models.LedgerRecord{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, logger)

	logger.Info("starting server", "addr", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
