package main

import (
	"log"

	"travel_agency/config"
	"travel_agency/database"
	"travel_agency/helper"
	"travel_agency/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // cho phép upload tối đa 100MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	if err := helper.InitCloudinary(); err != nil {
		log.Printf("Lỗi khởi tạo Cloudinary: %v", err)
	}

	// các worker nền
	helper.StartTourStatusScheduler()
	helper.StartBookingExpiryScheduler()
	helper.StartSeatHoldWorker()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
