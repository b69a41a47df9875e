package main

import (
	"fmt"
	"net/http"
	"os"

	"food-delivery-api/auth"
	"food-delivery-api/config"
	"food-delivery-api/mailer"
	"food-delivery-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := config.InitDB(cfg.Database.Path); err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}
	logger.Info().Str("path", cfg.Database.Path).Msg("database connected and migrated")

	mail := mailer.New(cfg.Mail.From, cfg.Mail.HostURL, logger)
	store := auth.NewStore(config.DB, logger, mail)

	r := gin.New()
	r.Use(gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Delivery API",
		})
	})

	routes.SetupRoutes(r, store)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
