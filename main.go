// main.go
package main

import (
	"log"

	"evoting-backend/config"
	"evoting-backend/controllers"
	"evoting-backend/mailer"
	"evoting-backend/models"
	"evoting-backend/otp"
	"evoting-backend/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	log.Println("Database connected successfully")

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	log.Println("Database migrated successfully")

	handler := controllers.New(db, otp.New(cfg.OTPTTL), mailer.NewSMTPSender(cfg), cfg.JWTSecret)
	router := routes.SetupRouter(handler)

	log.Printf("Starting server on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
