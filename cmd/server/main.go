package main

import (
	"fmt"
	"log"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/routes"
	"inventory-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log)

	gin.SetMode(cfg.Server.Mode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to auto migrate")
	}

	router := routes.Setup(db, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.WithField("addr", addr).Info("server starting")
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
