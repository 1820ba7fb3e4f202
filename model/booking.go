package model

import "time"

type TourBooking struct {
	DTO
	BookingReference string `gorm:"uniqueIndex;size:20;not null" json:"bookingReference"`
	TourId           uint   `gorm:"not null;index" json:"tourId"`
	CustomerId       uint   `gorm:"not null;index" json:"customerId"`

	AdultCount  int `gorm:"default:1" json:"adultCount"`
	ChildCount  int `gorm:"default:0" json:"childCount"`
	InfantCount int `gorm:"default:0" json:"infantCount"`

	BaseAmount     float64 `gorm:"type:decimal(12,2);not null" json:"baseAmount"`
	TaxAmount      float64 `gorm:"type:decimal(12,2);default:0" json:"taxAmount"`
	DiscountAmount float64 `gorm:"type:decimal(12,2);default:0" json:"discountAmount"`
	TotalAmount    float64 `gorm:"type:decimal(12,2);not null" json:"totalAmount"`

	Status        string `gorm:"not null;default:'PENDING';index" json:"status"` // PENDING, CONFIRMED, CANCELLED, COMPLETED, REFUNDED
	PaymentMethod string `json:"paymentMethod"`                                  // online, bank_transfer, cash
	PaymentStatus bool   `gorm:"default:false" json:"paymentStatus"`

	SpecialRequests  string `gorm:"type:text" json:"specialRequests"`
	EmergencyContact string `gorm:"size:100" json:"emergencyContact"`
	EmergencyPhone   string `gorm:"size:20" json:"emergencyPhone"`

	ExpiresAt   *time.Time `json:"expiresAt"`
	ConfirmedAt *time.Time `json:"confirmedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`

	Tour       Tour              `gorm:"foreignKey:TourId" json:"tour,omitempty"`
	Customer   Customer          `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	Passengers []Passenger       `gorm:"foreignKey:BookingId" json:"passengers,omitempty"`
	Discounts  []BookingDiscount `gorm:"foreignKey:BookingId" json:"appliedDiscounts,omitempty"`
}

type TourBookings []TourBooking

func (b *TourBooking) TotalPassengers() int {
	return b.AdultCount + b.ChildCount + b.InfantCount
}

func (b *TourBooking) IsExpired(now time.Time) bool {
	return b.Status == "PENDING" && b.ExpiresAt != nil && now.After(*b.ExpiresAt)
}

// CanTransition kiểm tra state machine của booking:
// PENDING → CONFIRMED|CANCELLED; CONFIRMED → COMPLETED|REFUNDED|CANCELLED
func (b *TourBooking) CanTransition(next string) bool {
	switch b.Status {
	case "PENDING":
		return next == "CONFIRMED" || next == "CANCELLED"
	case "CONFIRMED":
		return next == "COMPLETED" || next == "REFUNDED" || next == "CANCELLED"
	}
	return false
}

type Passenger struct {
	DTO
	BookingId     uint       `gorm:"not null;index" json:"bookingId"`
	FirstName     string     `gorm:"size:50;not null" json:"firstName"`
	LastName      string     `gorm:"size:50;not null" json:"lastName"`
	NationalId    string     `gorm:"size:20" json:"nationalId"`
	PassportNo    string     `gorm:"size:20" json:"passportNo"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	Gender        string     `gorm:"size:10" json:"gender"`                            // male, female
	PassengerType string     `gorm:"size:10;default:'adult'" json:"passengerType"` // adult, child, infant

	Booking TourBooking `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"-"`
}

// SeatAssignment gắn một hành khách với một TourSeat theo chặng.
// Ràng buộc "một ghế + một chặng chỉ thuộc một booking active" nằm ở
// trạng thái BOOKED của TourSeat (cập nhật trong cùng transaction)
type SeatAssignment struct {
	DTO
	BookingId   uint   `gorm:"not null;index" json:"bookingId"`
	PassengerId uint   `gorm:"not null;index" json:"passengerId"`
	TourSeatId  uint   `gorm:"not null;uniqueIndex" json:"tourSeatId"`
	Leg         string `gorm:"not null" json:"leg"`

	Booking   TourBooking `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"-"`
	Passenger Passenger   `gorm:"foreignKey:PassengerId" json:"-"`
	TourSeat  TourSeat    `gorm:"foreignKey:TourSeatId" json:"-"`
}

type PassengerInput struct {
	FirstName     string     `json:"firstName" validate:"required,max=50"`
	LastName      string     `json:"lastName" validate:"required,max=50"`
	NationalId    string     `json:"nationalId"`
	PassportNo    string     `json:"passportNo"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=male female"`
	PassengerType string     `json:"passengerType" validate:"required,oneof=adult child infant"`

	// Ghế chọn theo chặng, chỉ dùng khi tour bật seat selection
	DepartureSeatId *uint `json:"departureSeatId"`
	ReturnSeatId    *uint `json:"returnSeatId"`
}

type CreateBookingInput struct {
	AdultCount  int `json:"adultCount" validate:"required,min=1"`
	ChildCount  int `json:"childCount" validate:"min=0"`
	InfantCount int `json:"infantCount" validate:"min=0"`

	DiscountCode string `json:"discountCode"`

	Passengers []PassengerInput `json:"passengers" validate:"required,min=1,dive"`

	PaymentMethod    string `json:"paymentMethod" validate:"omitempty,oneof=online bank_transfer cash"`
	SpecialRequests  string `json:"specialRequests"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
}

type FilterBookingInput struct {
	Pagination
	Status    string     `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED REFUNDED"`
	TourId    uint       `json:"tourId" validate:"omitempty,gt=0"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}
