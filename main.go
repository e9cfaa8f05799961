package main

import (
	"net/http"
	"os"

	"party-room-api/config"
	"party-room-api/lookups"
	"party-room-api/middleware"
	"party-room-api/pkg/logger"
	"party-room-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	log := logger.New(config.GetEnv("LOG_LEVEL", "info"))

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(config.CORSOrigins()))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Party Room Planning API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Party Room Planning API",
			"health":  "/health",
		})
	})

	// Static lookup tables are built once and injected into the handlers
	routes.SetupRoutes(r, lookups.Default())

	// Start server
	port := config.GetEnv("PORT", "8080")
	log.Infof("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
