package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/config"
	"github.com/somap/somap-backend/internal/storefront"
	"github.com/somap/somap-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console",
		EnableColor: true,
	})

	gin.SetMode(cfg.Server.GinMode)

	client := storefront.NewClient(cfg.Storefront.APIBaseURL)
	cart := storefront.NewCart()
	server := storefront.NewServer(client, cart, cfg.Storefront.APIBaseURL)
	engine := server.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Storefront.Port)
		logger.Info("Storefront started", map[string]interface{}{
			"address": addr,
			"api":     cfg.Storefront.APIBaseURL,
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start storefront", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down storefront...")
}
