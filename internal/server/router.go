// Package server assembles the gin router for the HTTP API.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fairwayworks/cartwright/internal/handlers"
	"github.com/fairwayworks/cartwright/internal/logger"
)

type RouterConfig struct {
	Log                  *logger.Logger
	CatalogHandler       *handlers.CatalogHandler
	ConfigurationHandler *handlers.ConfigurationHandler
	QuoteHandler         *handlers.QuoteHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/catalog", cfg.CatalogHandler.GetCatalog)
		api.GET("/catalog/validate", cfg.CatalogHandler.ValidateCatalog)

		api.POST("/configurations/validate", cfg.ConfigurationHandler.Validate)
		api.POST("/configurations/price", cfg.ConfigurationHandler.Price)
		api.POST("/configurations/options", cfg.ConfigurationHandler.Options)

		api.POST("/quotes", cfg.QuoteHandler.CreateQuote)
		api.GET("/quotes", cfg.QuoteHandler.ListQuotes)
		api.GET("/quotes/:id", cfg.QuoteHandler.GetQuote)
		api.DELETE("/quotes/:id", cfg.QuoteHandler.DeleteQuote)
	}

	return router
}
