package database

import (
	"fmt"
	"log"
	"strconv"

	"travel_agency/config"
	"travel_agency/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB kết nối Postgres, migrate schema và seed dữ liệu ban đầu
func ConnectDB() {
	port, err := strconv.ParseUint(config.Config("DB_PORT"), 10, 32)
	if err != nil {
		log.Println("Lỗi đọc DB_PORT, dùng mặc định 5432")
		port = 5432
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Không kết nối được database")
	}

	log.Println("Connection Opened to Database")

	err = DB.AutoMigrate(
		&model.Customer{},
		&model.Profile{},
		&model.PasswordResetToken{},
		&model.TourCategory{},
		&model.Transportation{},
		&model.SeatLayout{},
		&model.Seat{},
		&model.Tour{},
		&model.TourImage{},
		&model.TourSeat{},
		&model.Discount{},
		&model.TourBooking{},
		&model.Passenger{},
		&model.SeatAssignment{},
		&model.BookingDiscount{},
		&model.PostCategory{},
		&model.Tag{},
		&model.Post{},
		&model.Comment{},
		&model.Page{},
		&model.Destination{},
		&model.DestinationImage{},
		&model.Service{},
		&model.Testimonial{},
		&model.Contact{},
		&model.NewsletterSubscriber{},
	)
	if err != nil {
		log.Fatalf("Lỗi migrate database: %v", err)
	}
	log.Println("Database Migrated")

	SeedData()
}
