package helper

import (
	"log"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaterializeTourSeats tạo bản ghi ghế cho tour từ sơ đồ ghế của phương tiện.
// Tour khứ hồi sinh ghế cho cả 2 chiều, mỗi chiều theo phương tiện riêng.
func MaterializeTourSeats(tx *gorm.DB, tour *model.Tour) error {
	if !tour.SeatSelectionAvailable {
		return nil
	}

	legTransports := map[string]*uint{
		constants.LEG_DEPARTURE: tour.DepartureTransportationId,
	}
	if tour.IsRoundTrip() {
		returnTransportId := tour.ReturnTransportationId
		if returnTransportId == nil {
			returnTransportId = tour.DepartureTransportationId
		}
		legTransports[constants.LEG_RETURN] = returnTransportId
	}

	tourSeats := []model.TourSeat{}
	for leg, transportId := range legTransports {
		if transportId == nil {
			continue
		}
		var seats []model.Seat
		if err := tx.Where("transportation_id = ? AND is_active = ?", *transportId, true).Find(&seats).Error; err != nil {
			return err
		}
		for _, seat := range seats {
			tourSeats = append(tourSeats, model.TourSeat{
				TourId: tour.ID,
				SeatId: seat.ID,
				Leg:    leg,
				Status: constants.SEAT_AVAILABLE,
			})
		}
	}

	if len(tourSeats) == 0 {
		return nil
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tourSeats).Error
}

// ExpireSeatHolds nhả các ghế giữ quá hạn
func ExpireSeatHolds() {
	db := database.DB
	result := db.Model(&model.TourSeat{}).
		Where("status = ? AND expired_at IS NOT NULL AND expired_at < ?", constants.SEAT_HELD, time.Now()).
		Updates(map[string]interface{}{
			"status":     constants.SEAT_AVAILABLE,
			"held_by":    nil,
			"expired_at": nil,
		})
	if result.Error != nil {
		log.Printf("Lỗi nhả ghế giữ quá hạn: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã nhả %d ghế giữ quá hạn", result.RowsAffected)
	}
}

// StartSeatHoldWorker chạy nền nhả ghế mỗi phút
func StartSeatHoldWorker() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			ExpireSeatHolds()
		}
	}()
}

// UpdateTourStatuses đóng tour đã khởi hành hoặc hết hạn đặt chỗ
func UpdateTourStatuses() {
	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)

	result := db.Model(&model.Tour{}).
		Where("is_active = ? AND departure_datetime < ?", true, today).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("Lỗi cập nhật trạng thái tour: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã đóng %d tour quá ngày khởi hành", result.RowsAffected)
	}

	// booking đã xác nhận của tour đã kết thúc chuyển sang hoàn thành
	result = db.Model(&model.TourBooking{}).
		Where("status = ? AND tour_id IN (?)", constants.BOOKING_CONFIRMED,
			db.Model(&model.Tour{}).Select("id").
				Where("COALESCE(return_datetime, departure_datetime) < ?", today)).
		Update("status", constants.BOOKING_COMPLETED)
	if result.Error != nil {
		log.Printf("Lỗi hoàn thành booking: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã hoàn thành %d booking của tour đã kết thúc", result.RowsAffected)
	}
}

// StartTourStatusScheduler chạy cập nhật trạng thái tour lúc 0h05 mỗi ngày
func StartTourStatusScheduler() {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(UpdateTourStatuses),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký job cập nhật tour: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Tour status scheduler started")
}
