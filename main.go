package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/handlers"
	"github.com/y345-git/Campus-Navigation/services"
	"github.com/y345-git/Campus-Navigation/store"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dataDir := getEnv("DATA_DIR", ".")
	listenAddr := getEnv("LISTEN_ADDR", ":5000")

	campusStore := store.NewCampusStore(dataDir)
	interiorStore := store.NewInteriorStore(dataDir)

	doc, err := campusStore.Load()
	if err != nil {
		logger.Fatal("failed to load campus config", zap.Error(err))
	}
	logger.Info("campus config loaded",
		zap.Int("buildings", len(doc.Buildings)),
		zap.Int("intersections", len(doc.Intersections)),
		zap.Int("paths", len(doc.CampusPaths)))

	interiors := services.NewInteriorCache(interiorStore, logger)
	navigator := services.NewNavigator(doc, interiors, logger)
	editor := services.NewEditor(doc, campusStore, interiorStore, navigator, logger)

	adminPassword := getEnv("ADMIN_PASSWORD", doc.AdminSettings.AdminPassword)
	sessionTTL := time.Duration(doc.AdminSettings.SessionTimeoutHours) * time.Hour
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	sessions := handlers.NewSessionManager(adminPassword, sessionTTL)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	handlers.NewNavigationHandler(navigator, logger).RegisterRoutes(router)
	handlers.NewAdminHandler(editor, sessions, logger).RegisterRoutes(router)

	logger.Info("campus navigation server listening", zap.String("addr", listenAddr))
	if err := router.Run(listenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
