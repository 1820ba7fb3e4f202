package database

import (
	"fmt"
	"log"

	"travel_agency/config"
	"travel_agency/constants"
	"travel_agency/model"

	"golang.org/x/crypto/bcrypt"
)

// SeedData tạo tài khoản quản trị và dữ liệu danh mục ban đầu
func SeedData() {
	admin := seedSuperAdmin()
	seedTourCategories()
	seedTransportations()
	seedServices()
	if admin != nil {
		seedPages(admin.ID)
	}
}

func seedSuperAdmin() *model.Customer {
	email := config.ConfigDefault("ADMIN_EMAIL", "admin@travel.local")

	var existing model.Customer
	if err := DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return &existing
	}

	password := config.ConfigDefault("ADMIN_PASSWORD", "admin@123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Printf("Lỗi hash mật khẩu admin: %v", err)
		return nil
	}

	firstName := "Quản trị"
	lastName := "Hệ thống"
	admin := model.Customer{
		Email:     email,
		Phone:     "0000000000",
		Password:  string(hashed),
		FirstName: &firstName,
		LastName:  &lastName,
		IsActive:  true,
		Profile: &model.Profile{
			Level: constants.LEVEL_SUPER_ADMIN,
		},
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Lỗi tạo tài khoản admin: %v", err)
		return nil
	}
	log.Printf("Đã tạo tài khoản super admin: %s", email)
	return &admin
}

func seedTourCategories() {
	categories := []model.TourCategory{
		{Name: "Tour trong nước", Slug: "tour-trong-nuoc", Description: "Các tour du lịch nội địa", DisplayOrder: 1},
		{Name: "Tour nước ngoài", Slug: "tour-nuoc-ngoai", Description: "Các tour du lịch quốc tế", DisplayOrder: 2},
		{Name: "Tour biển đảo", Slug: "tour-bien-dao", Description: "Tour nghỉ dưỡng biển đảo", DisplayOrder: 3},
		{Name: "Tour mạo hiểm", Slug: "tour-mao-hiem", Description: "Trekking, leo núi, khám phá", DisplayOrder: 4},
	}

	for _, category := range categories {
		DB.Where(model.TourCategory{Slug: category.Slug}).FirstOrCreate(&category)
	}
}

func seedTransportations() {
	var count int64
	DB.Model(&model.Transportation{}).Count(&count)
	if count > 0 {
		return
	}

	transports := []struct {
		transport model.Transportation
		rows      int
		columns   []string
		aisle     int
	}{
		{
			transport: model.Transportation{Name: "Xe giường nằm 40 chỗ", TransportType: "bus", Capacity: 40, Facilities: "Điều hòa\nWifi\nNước uống"},
			rows:      10,
			columns:   []string{"A", "B", "C", "D"},
			aisle:     2,
		},
		{
			transport: model.Transportation{Name: "Limousine 9 chỗ", TransportType: "minibus", Capacity: 9, Facilities: "Ghế massage\nWifi"},
			rows:      3,
			columns:   []string{"A", "B", "C"},
			aisle:     1,
		},
	}

	for _, t := range transports {
		transport := t.transport
		if err := DB.Create(&transport).Error; err != nil {
			log.Printf("Lỗi seed phương tiện: %v", err)
			continue
		}

		layout := model.SeatLayout{
			TransportationId: transport.ID,
			Rows:             t.rows,
			Columns:          len(t.columns),
			AisleAfterColumn: t.aisle,
		}
		if err := DB.Create(&layout).Error; err != nil {
			log.Printf("Lỗi seed sơ đồ ghế: %v", err)
		}

		seats := []model.Seat{}
		for row := 1; row <= t.rows; row++ {
			for _, col := range t.columns {
				seats = append(seats, model.Seat{
					TransportationId: transport.ID,
					SeatNumber:       fmt.Sprintf("%s%d", col, row),
					SeatClass:        "economy",
					Row:              row,
					Column:           col,
				})
			}
		}
		if err := DB.Create(&seats).Error; err != nil {
			log.Printf("Lỗi seed ghế: %v", err)
		}
	}
	log.Println("Đã seed phương tiện và sơ đồ ghế")
}

func seedServices() {
	services := []model.Service{
		{Name: "Đặt vé máy bay", ServiceType: "flight", Description: "Vé máy bay giá tốt trong và ngoài nước", Icon: "plane", IsActive: true, DisplayOrder: 1},
		{Name: "Đặt phòng khách sạn", ServiceType: "hotel", Description: "Khách sạn 3-5 sao toàn quốc", Icon: "hotel", IsActive: true, DisplayOrder: 2},
		{Name: "Dịch vụ visa", ServiceType: "visa", Description: "Hỗ trợ làm visa các nước", Icon: "passport", IsActive: true, DisplayOrder: 3},
		{Name: "Thuê xe du lịch", ServiceType: "car_rental", Description: "Xe 4-45 chỗ đời mới", Icon: "car", IsActive: true, DisplayOrder: 4},
	}

	for _, service := range services {
		DB.Where(model.Service{Name: service.Name}).FirstOrCreate(&service)
	}
}

func seedPages(authorId uint) {
	pages := []model.Page{
		{Title: "Giới thiệu", Slug: "gioi-thieu", PageType: "about", Status: "published", AccessLevel: "public", ShowInMenu: true, MenuOrder: 1, AuthorId: authorId},
		{Title: "Điều khoản sử dụng", Slug: "dieu-khoan", PageType: "policy", Status: "published", AccessLevel: "public", ShowInMenu: false, ShowInFooter: true, AuthorId: authorId},
		{Title: "Chính sách bảo mật", Slug: "chinh-sach-bao-mat", PageType: "policy", Status: "published", AccessLevel: "public", ShowInMenu: false, ShowInFooter: true, AuthorId: authorId},
	}

	for _, page := range pages {
		DB.Where(model.Page{Slug: page.Slug}).FirstOrCreate(&page)
	}
}
