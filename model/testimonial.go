package model

type Testimonial struct {
	DTO
	FullName string `gorm:"size:100;not null" validate:"required" json:"fullName"`
	Position string `gorm:"size:100" json:"position"`
	Company  string `gorm:"size:100" json:"company"`

	Text   string `gorm:"type:text;not null" json:"text"`
	Rating int    `gorm:"default:5" validate:"min=1,max=5" json:"rating"`
	TourId *uint  `json:"tourId"`

	ImageUrl *string `json:"imageUrl"`
	VideoUrl *string `json:"videoUrl"`

	IsApproved bool `gorm:"default:false" json:"isApproved"`
	IsFeatured bool `gorm:"default:false" json:"isFeatured"`
	IsActive   bool `gorm:"default:true" json:"isActive"`

	Tour *Tour `gorm:"foreignKey:TourId;constraint:OnDelete:SET NULL" json:"tour,omitempty"`
}

type CreateTestimonialInput struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Text     string `json:"text" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	TourId   *uint  `json:"tourId"`
}
