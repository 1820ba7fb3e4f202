package model

type Service struct {
	DTO
	Name        string `gorm:"not null" validate:"required" json:"name"`
	ServiceType string `gorm:"not null" json:"serviceType"` // flight, hotel, visa, insurance, transfer, tour_guide, car_rental
	Description string `gorm:"type:text" json:"description"`
	Features    string `gorm:"type:text" json:"features"` // mỗi dòng một mục
	PriceRange  string `gorm:"size:100" json:"priceRange"`

	Icon     string  `gorm:"size:50" json:"icon"`
	ImageUrl *string `json:"imageUrl"`

	IsActive     bool `gorm:"default:true" json:"isActive"`
	DisplayOrder int  `gorm:"default:0" json:"displayOrder"`
}

type CreateServiceInput struct {
	Name         string `json:"name" validate:"required"`
	ServiceType  string `json:"serviceType" validate:"required,oneof=flight hotel visa insurance transfer tour_guide car_rental"`
	Description  string `json:"description"`
	Features     string `json:"features"`
	PriceRange   string `json:"priceRange"`
	Icon         string `json:"icon"`
	ImageUrl     *string `json:"imageUrl"`
	DisplayOrder int    `json:"displayOrder"`
}
