package handler

import (
	"fmt"
	"strconv"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

const HoldTimeout = 10 * time.Minute

type SeatUI struct {
	Id            uint       `json:"id"`
	SeatId        uint       `json:"seatId"`
	Label         string     `json:"label"`
	Class         string     `json:"class"`
	Row           int        `json:"row"`
	Column        string     `json:"column"`
	Status        string     `json:"status"`
	PriceModifier float64    `json:"priceModifier"`
	HeldBy        string     `json:"heldBy,omitempty"`
	ExpiredAt     *time.Time `json:"expiredAt,omitempty"`
}

func toSeatUI(s model.TourSeat) SeatUI {
	return SeatUI{
		Id:            s.ID,
		SeatId:        s.SeatId,
		Label:         s.Seat.SeatNumber,
		Class:         s.Seat.SeatClass,
		Row:           s.Seat.Row,
		Column:        s.Seat.Column,
		Status:        s.Status,
		PriceModifier: s.Seat.PriceModifier,
		HeldBy:        s.HeldBy,
		ExpiredAt:     s.ExpiredAt,
	}
}

// FetchTourSeatMap trả về sơ đồ ghế của tour, nhóm theo chặng
func FetchTourSeatMap(tourId uint) (map[string][]SeatUI, error) {
	db := database.DB

	var seats []model.TourSeat
	if err := db.
		Preload("Seat").
		Where("tour_id = ?", tourId).
		Find(&seats).Error; err != nil {
		return nil, err
	}

	result := map[string][]SeatUI{}
	for _, s := range seats {
		result[s.Leg] = append(result[s.Leg], toSeatUI(s))
	}
	return result, nil
}

// GetTourSeats API JSON cho trang chọn ghế
func GetTourSeats(c *fiber.Ctx) error {
	tourIdStr := c.Params("tourId")
	tourId, err := strconv.ParseUint(tourIdStr, 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	seatMap, err := FetchTourSeatMap(uint(tourId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, seatMap)
}

// HoldSeat giữ ghế tạm thời trong lúc khách điền form đặt tour.
// Lock row ghế bằng SELECT ... FOR UPDATE để hai người không giữ cùng ghế
func HoldSeat(c *fiber.Ctx) error {
	db := database.DB

	tourIdStr := c.Params("tourId")
	tourId, err := strconv.ParseUint(tourIdStr, 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var input struct {
		TourSeatIds    []uint `json:"tourSeatIds" validate:"required"`
		GuestSessionId string `json:"guestSessionId"` // Nếu guest
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, 400, "Invalid input", err)
	}

	if len(input.TourSeatIds) == 0 {
		return utils.ErrorResponse(c, 400, "Cần chọn ít nhất một ghế", nil)
	}

	// Lấy HeldBy
	customer, _ := c.Locals("customer").(*model.Customer)
	heldBy := ""
	if customer != nil {
		heldBy = fmt.Sprintf("USER_%d", customer.ID)
	} else {
		if input.GuestSessionId != "" {
			heldBy = input.GuestSessionId
		} else {
			heldBy = "GUEST_" + uuid.New().String() // Tạo session ID cho guest
		}
	}

	tx := db.Begin()

	var tour model.Tour
	if err := tx.First(&tour, tourId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 404, constants.TOUR_NOT_FOUND, err)
	}
	if !tour.IsAvailable() {
		tx.Rollback()
		return utils.ErrorResponse(c, 400, "Tour đã đóng hoặc hết chỗ", nil)
	}

	expTime := time.Now().Add(HoldTimeout)
	var updatedSeats []SeatUI
	for _, tourSeatId := range input.TourSeatIds {
		var tourSeat model.TourSeat
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Seat").
			Where("id = ? AND tour_id = ? AND status = ?", tourSeatId, tour.ID, constants.SEAT_AVAILABLE).
			First(&tourSeat).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, 400, fmt.Sprintf("Ghế %d không còn trống", tourSeatId), err)
		}

		// Hold ghế
		if err := tx.Model(&tourSeat).Updates(map[string]any{
			"status":     constants.SEAT_HELD,
			"held_by":    heldBy,
			"expired_at": expTime,
		}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, 500, "Không giữ được ghế", err)
		}

		tourSeat.Status = constants.SEAT_HELD
		tourSeat.HeldBy = heldBy
		tourSeat.ExpiredAt = &expTime
		updatedSeats = append(updatedSeats, toSeatUI(tourSeat))
	}

	tx.Commit()
	PublishSeatUpdate(tour.ID, updatedSeats)

	return utils.SuccessResponse(c, 200, fiber.Map{
		"heldSeatIds": input.TourSeatIds,
		"expiresAt":   expTime,
		"heldBy":      heldBy, // Trả về cho guest
	})
}

// ReleaseSeat nhả ghế khi khách bỏ chọn hoặc rời trang
func ReleaseSeat(c *fiber.Ctx) error {
	db := database.DB

	tourIdStr := c.Params("tourId")
	tourId, err := strconv.ParseUint(tourIdStr, 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var input struct {
		TourSeatIds []uint `json:"tourSeatIds" validate:"required"`
		HeldBy      string `json:"heldBy" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, 400, "Invalid input", err)
	}

	tx := db.Begin()

	var updatedSeats []SeatUI
	for _, tourSeatId := range input.TourSeatIds {
		var tourSeat model.TourSeat
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Seat").
			Where("id = ? AND tour_id = ? AND status = ? AND held_by = ?",
				tourSeatId, tourId, constants.SEAT_HELD, input.HeldBy).
			First(&tourSeat).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, 400, fmt.Sprintf("Ghế %d không được giữ bởi bạn", tourSeatId), err)
		}

		// Release ghế
		if err := tx.Model(&tourSeat).Updates(map[string]any{
			"status":     constants.SEAT_AVAILABLE,
			"held_by":    "",
			"expired_at": nil,
		}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, 500, "Không nhả được ghế", err)
		}

		tourSeat.Status = constants.SEAT_AVAILABLE
		tourSeat.HeldBy = ""
		tourSeat.ExpiredAt = nil
		updatedSeats = append(updatedSeats, toSeatUI(tourSeat))
	}

	tx.Commit()
	PublishSeatUpdate(uint(tourId), updatedSeats)

	return utils.SuccessResponse(c, 200, fiber.Map{"releasedSeatIds": input.TourSeatIds})
}
