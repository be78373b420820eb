package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nakhazaman/restaurant-foh/config"
	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/middlewares"
	"github.com/nakhazaman/restaurant-foh/router"
	"github.com/nakhazaman/restaurant-foh/session"
	"github.com/nakhazaman/restaurant-foh/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	// Initialize logger
	utils.InfoLogger = logrus.New()
	utils.ErrorLogger = logrus.New()

	utils.InfoLogger.SetOutput(os.Stdout)
	utils.ErrorLogger.SetOutput(os.Stderr)

	utils.InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
	utils.ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
}

func main() {
	cfg := config.Load()
	utils.InfoLogger.Printf("Central API: %s", cfg.ServerURL)

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	gw := gateway.NewClient(cfg.ServerURL, cfg.HTTPTimeout)

	sessions := session.NewManager(gw, cfg.SessionTTL)
	sessions.StartCleanup(1 * time.Hour)
	defer sessions.StopCleanup()

	// Rate limiter umum per IP (50 request per detik)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(cfg, gw, sessions)
	r.Use(rateLimiter.RateLimit())

	if err := r.SetTrustedProxies([]string{"127.0.0.1", "localhost"}); err != nil {
		utils.ErrorLogger.Fatal(err)
	}

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
