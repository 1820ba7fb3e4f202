package helper

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckBookingPreconditions kiểm tra điều kiện đặt tour: tour còn mở,
// chưa khởi hành và đủ chỗ. Gọi trên row tour đã khóa trong transaction
func CheckBookingPreconditions(tour *model.Tour, totalPassengers int, now time.Time) error {
	if !tour.IsActive {
		return errors.New("tour đã đóng")
	}
	if !tour.DepartureDatetime.After(now) {
		return errors.New("tour đã khởi hành")
	}
	if tour.AvailableCapacity < totalPassengers {
		return fmt.Errorf("tour chỉ còn %d chỗ", tour.AvailableCapacity)
	}
	return nil
}

// NewBookingReference sinh mã đặt chỗ dạng TRV-XXXXXXXXXXXX (12 ký tự hex hoa)
func NewBookingReference() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TRV-" + strings.ToUpper(raw[:12])
}

// GenerateBookingReference sinh mã và kiểm tra trùng trong transaction,
// unique index trên booking_reference là chốt chặn cuối cùng.
func GenerateBookingReference(tx *gorm.DB) (string, error) {
	for i := 0; i < 5; i++ {
		ref := NewBookingReference()
		var count int64
		if err := tx.Model(&model.TourBooking{}).Where("booking_reference = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", fmt.Errorf("không sinh được mã đặt chỗ duy nhất")
}

// ExpireBookings hủy các booking PENDING quá hạn thanh toán và trả lại chỗ
func ExpireBookings() {
	db := database.DB
	now := time.Now()

	var bookings []model.TourBooking
	if err := db.Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", constants.BOOKING_PENDING, now).
		Find(&bookings).Error; err != nil {
		log.Printf("Lỗi quét booking hết hạn: %v", err)
		return
	}

	for i := range bookings {
		ref := bookings[i].BookingReference
		cancelled := false
		err := db.Transaction(func(tx *gorm.DB) error {
			// đọc lại dưới lock — booking có thể đã được xác nhận
			// giữa lúc quét và lúc hủy
			var booking model.TourBooking
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("booking_reference = ?", ref).First(&booking).Error; err != nil {
				return err
			}
			if !booking.IsExpired(now) {
				return nil
			}
			if err := ReleaseBookingResources(tx, &booking, false); err != nil {
				return err
			}
			booking.Status = constants.BOOKING_CANCELLED
			booking.CancelledAt = &now
			cancelled = true
			return tx.Save(&booking).Error
		})
		if err != nil {
			log.Printf("Lỗi hủy booking hết hạn %s: %v", ref, err)
		} else if cancelled {
			log.Printf("Booking %s hết hạn thanh toán, đã hủy", ref)
		}
	}
}

// ReleaseBookingResources trả lại capacity, nhả ghế và (tùy cấu hình) hoàn lượt mã giảm giá
func ReleaseBookingResources(tx *gorm.DB, booking *model.TourBooking, refundDiscount bool) error {
	// trả lại chỗ cho tour
	if err := tx.Model(&model.Tour{}).Where("id = ?", booking.TourId).
		UpdateColumn("available_capacity", gorm.Expr("available_capacity + ?", booking.TotalPassengers())).Error; err != nil {
		return err
	}

	// nhả ghế đã gán
	var assignments []model.SeatAssignment
	if err := tx.Where("booking_id = ?", booking.ID).Find(&assignments).Error; err != nil {
		return err
	}
	for _, a := range assignments {
		if err := tx.Model(&model.TourSeat{}).Where("id = ?", a.TourSeatId).
			Updates(map[string]interface{}{
				"status":     constants.SEAT_AVAILABLE,
				"held_by":    nil,
				"expired_at": nil,
			}).Error; err != nil {
			return err
		}
	}
	if len(assignments) > 0 {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&model.SeatAssignment{}).Error; err != nil {
			return err
		}
	}

	// hoàn lượt sử dụng mã giảm giá nếu chính sách cho phép
	if refundDiscount {
		var applied []model.BookingDiscount
		if err := tx.Where("booking_id = ?", booking.ID).Find(&applied).Error; err != nil {
			return err
		}
		for _, bd := range applied {
			if err := tx.Model(&model.Discount{}).
				Where("id = ? AND used_count > 0", bd.DiscountId).
				UpdateColumn("used_count", gorm.Expr("used_count - 1")).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// StartBookingExpiryScheduler chạy cron quét booking quá hạn mỗi 10 phút
func StartBookingExpiryScheduler() {
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", ExpireBookings)
	if err != nil {
		log.Printf("Lỗi khởi tạo cron expire booking: %v", err)
		return
	}
	c.Start()
	log.Println("Booking expiry scheduler started")
}
