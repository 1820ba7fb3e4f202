package model

import (
	"time"

	"travel_agency/constants"
	"travel_agency/utils"
)

type Discount struct {
	DTO
	Name         string  `gorm:"not null" validate:"required" json:"name"`
	Code         string  `gorm:"uniqueIndex;not null" validate:"required" json:"code"`
	DiscountType string  `gorm:"not null" json:"discountType"` // percentage, fixed
	Value        float64 `gorm:"type:decimal(10,2);not null" json:"value"`
	ApplyTo      string  `gorm:"not null;default:'all_tours'" json:"applyTo"` // all_tours, specific_tours, tour_categories

	MaxDiscount     *float64 `gorm:"type:decimal(10,2)" json:"maxDiscount"`
	MinBookingValue float64  `gorm:"type:decimal(10,2);default:0" json:"minBookingValue"`
	MaxUses         int      `gorm:"default:0" json:"maxUses"` // 0 = không giới hạn
	UsedCount       int      `gorm:"default:0" json:"usedCount"`

	ValidFrom utils.CustomDate `gorm:"type:date;not null" json:"validFrom"`
	ValidTo   utils.CustomDate `gorm:"type:date;not null" json:"validTo"`

	IsActive bool `gorm:"default:true;index" json:"isActive"`
	IsPublic bool `gorm:"default:true" json:"isPublic"`

	Tours      []Tour         `gorm:"many2many:discount_tours" json:"tours,omitempty"`
	Categories []TourCategory `gorm:"many2many:discount_categories" json:"categories,omitempty"`
}

type Discounts []Discount

// calendarDay quy thời điểm về ngày lịch theo múi giờ của chính thời điểm đó
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsValidOn kiểm tra hiệu lực của mã tại một ngày cụ thể:
// đang active, nằm trong khoảng ngày, và chưa chạm trần lượt dùng.
// So sánh theo ngày lịch địa phương, không theo mốc 24h UTC
func (d *Discount) IsValidOn(today time.Time) bool {
	if !d.IsActive {
		return false
	}
	day := calendarDay(today)
	if day.Before(calendarDay(d.ValidFrom.Time)) || day.After(calendarDay(d.ValidTo.Time)) {
		return false
	}
	if d.MaxUses != 0 && d.UsedCount >= d.MaxUses {
		return false
	}
	return true
}

// CanApplyToTour — Tours/Categories phải được preload trước khi gọi
func (d *Discount) CanApplyToTour(tour *Tour, today time.Time) bool {
	if !d.IsValidOn(today) {
		return false
	}
	switch d.ApplyTo {
	case constants.APPLY_ALL_TOURS:
		return true
	case constants.APPLY_SPECIFIC_TOURS:
		for _, t := range d.Tours {
			if t.ID == tour.ID {
				return true
			}
		}
	case constants.APPLY_CATEGORIES:
		if tour.CategoryId == nil {
			return false
		}
		for _, c := range d.Categories {
			if c.ID == *tour.CategoryId {
				return true
			}
		}
	}
	return false
}

// CalculateAmount trả về số tiền được giảm cho một booking, 0 nếu không áp dụng được
func (d *Discount) CalculateAmount(bookingAmount float64, tour *Tour, today time.Time) float64 {
	if !d.CanApplyToTour(tour, today) {
		return 0
	}
	if bookingAmount < d.MinBookingValue {
		return 0
	}

	var discount float64
	if d.DiscountType == constants.DISCOUNT_PERCENTAGE {
		discount = bookingAmount * d.Value / 100
	} else {
		discount = d.Value
	}

	if d.MaxDiscount != nil && discount > *d.MaxDiscount {
		discount = *d.MaxDiscount
	}
	if discount > bookingAmount {
		discount = bookingAmount
	}
	return discount
}

// BookingDiscount là bản ghi audit cho mỗi lần áp mã — không sửa sau khi ghi
type BookingDiscount struct {
	DTO
	BookingId      uint    `gorm:"not null;index" json:"bookingId"`
	DiscountId     uint    `gorm:"not null;index" json:"discountId"`
	DiscountAmount float64 `gorm:"type:decimal(10,2);not null" json:"discountAmount"`
	DiscountCode   string  `gorm:"size:50" json:"discountCode"`

	Discount Discount `gorm:"foreignKey:DiscountId" json:"-"`
}

type CreateDiscountInput struct {
	Name            string           `json:"name" validate:"required"`
	Code            string           `json:"code" validate:"required,min=3,max=20"`
	DiscountType    string           `json:"discountType" validate:"required,oneof=percentage fixed"`
	Value           float64          `json:"value" validate:"required,gt=0"`
	ApplyTo         string           `json:"applyTo" validate:"omitempty,oneof=all_tours specific_tours tour_categories"`
	MaxDiscount     *float64         `json:"maxDiscount" validate:"omitempty,gt=0"`
	MinBookingValue float64          `json:"minBookingValue" validate:"gte=0"`
	MaxUses         int              `json:"maxUses" validate:"gte=0"`
	ValidFrom       utils.CustomDate `json:"validFrom" validate:"required"`
	ValidTo         utils.CustomDate `json:"validTo" validate:"required"`
	IsPublic        *bool            `json:"isPublic"`
	TourIds         []uint           `json:"tourIds"`
	CategoryIds     []uint           `json:"categoryIds"`
}

type ApplyDiscountInput struct {
	Code   string  `json:"code" validate:"required"`
	TourId uint    `json:"tourId" validate:"required,gt=0"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
