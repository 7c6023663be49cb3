package main

import (
	"log"
	"net/http"
	"os"

	"hotelflow/config"
	"hotelflow/jobs"
	"hotelflow/models"
	"hotelflow/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.RoomHistory{},
		&models.Request{},
		&models.Staff{},
		&models.Maintenance{},
		&models.User{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, using the existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	config.InitWebSocket(router, m)

	registry := routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	jobs.SetTrialExpirer(registry.Hotels)
	jobs.SetOverdueSweeper(registry.Maintenance)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
