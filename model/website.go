package model

type Contact struct {
	DTO
	Name    string `gorm:"size:100;not null" validate:"required" json:"name"`
	Email   string `gorm:"size:100;not null" validate:"required,email" json:"email"`
	Subject string `gorm:"size:200;not null" validate:"required" json:"subject"`
	Message string `gorm:"type:text;not null" validate:"required" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}

type NewsletterSubscriber struct {
	DTO
	Email  string `gorm:"unique;not null" validate:"required,email" json:"email"`
	Status bool   `gorm:"default:true" json:"status"`
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type NewsletterInput struct {
	Email string `json:"email" validate:"required,email"`
}
