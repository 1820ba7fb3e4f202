package model

import "time"

type Customer struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Password string `gorm:"not null" json:"-"`

	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	// Profile luôn tồn tại — tạo trong cùng transaction với Customer khi đăng ký
	Profile *Profile `gorm:"foreignKey:CustomerId" json:"profile,omitempty"`
}

type Customers []Customer

// Profile giữ level phân quyền và thông tin mở rộng của khách hàng
type Profile struct {
	DTO
	CustomerId uint   `gorm:"not null;uniqueIndex" json:"customerId"`
	Level      string `gorm:"not null;default:'normal';index" json:"level"` // normal, writer, admin, super_admin

	Bio         string     `gorm:"type:text" json:"bio"`
	AvatarUrl   *string    `json:"avatarUrl"`
	BirthDate   *time.Time `json:"birthDate"`
	JobTitle    *string    `json:"jobTitle"`
	Company     *string    `json:"company"`
	Website     *string    `json:"website"`
	NationalId  *string    `json:"nationalId"`
	AddressLine *string    `json:"addressLine"`
}

type RegisterCustomerInput struct {
	Email     string  `validate:"required,email" json:"email"`
	Phone     string  `validate:"required" json:"phone"`
	Password  string  `validate:"required,min=8" json:"password"`
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
}

type EditProfileInput struct {
	FirstName   *string `json:"firstname"`
	LastName    *string `json:"lastname"`
	Phone       *string `json:"phone"`
	Bio         *string `json:"bio"`
	AvatarUrl   *string `json:"avatarUrl"`
	JobTitle    *string `json:"jobTitle"`
	Company     *string `json:"company"`
	Website     *string `json:"website"`
	NationalId  *string `json:"nationalId"`
	AddressLine *string `json:"addressLine"`
}

type CustomerChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	RepeatPassword  string `json:"repeatPassword" validate:"required"`
}

type ChangeLevelInput struct {
	Level string `json:"level" validate:"required,oneof=normal writer admin super_admin"`
}

type FilterCustomer struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Level     *string `json:"level"`
	Active    *bool   `json:"active"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetToken struct {
	DTO
	CustomerId uint      `gorm:"not null" json:"customerId"`
	Token      string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt  time.Time `gorm:"not null" json:"expiresAt"`
	Customer   Customer  `gorm:"foreignKey:CustomerId" json:"-"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
