package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"travel_agency/config"
	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PendingTimeout thời hạn thanh toán cho booking PENDING
const PendingTimeout = 24 * time.Hour

func taxRate() float64 {
	rate, err := strconv.ParseFloat(config.ConfigDefault("TAX_RATE", "0"), 64)
	if err != nil {
		return 0
	}
	return rate
}

// refundDiscountOnCancel chính sách hoàn lượt mã giảm giá khi hủy booking
func refundDiscountOnCancel() bool {
	return config.ConfigDefault("DISCOUNT_REFUND_ON_CANCEL", "false") == "true"
}

// CreateBooking là transaction trung tâm của hệ thống:
// lock tour → lock mã giảm giá → lock từng ghế → tạo booking.
// Mọi bước fail đều rollback toàn bộ, không để lại trạng thái dở dang
func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, customer := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Cần đăng nhập để đặt tour", errors.New("unauthenticated"))
	}

	totalPassengers := input.AdultCount + input.ChildCount + input.InfantCount
	slug := c.Params("slug")

	var booking model.TourBooking
	var lockedTour model.Tour

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 1. Lock row tour, kiểm tra lại capacity dưới lock
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("slug = ?", slug).First(&lockedTour).Error; err != nil {
			return fmt.Errorf("tour: %w", err)
		}
		if err := helper.CheckBookingPreconditions(&lockedTour, totalPassengers, time.Now()); err != nil {
			return err
		}

		// 2. Tính tiền gốc
		baseAmount := helper.CalculateBaseAmount(&lockedTour, input.AdultCount, input.ChildCount, input.InfantCount)

		// 3. Lock và gán ghế cho từng hành khách
		heldBy := fmt.Sprintf("USER_%d", customer.ID)
		type seatPick struct {
			passengerIdx int
			tourSeatId   uint
			leg          string
		}
		picks := []seatPick{}
		for i, p := range input.Passengers {
			if p.DepartureSeatId != nil {
				picks = append(picks, seatPick{i, *p.DepartureSeatId, constants.LEG_DEPARTURE})
			}
			if p.ReturnSeatId != nil {
				picks = append(picks, seatPick{i, *p.ReturnSeatId, constants.LEG_RETURN})
			}
		}

		for _, pick := range picks {
			var tourSeat model.TourSeat
			// Ghế hợp lệ nếu còn trống, hoặc đang được chính khách này giữ
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Preload("Seat").
				Where("id = ? AND tour_id = ? AND leg = ?", pick.tourSeatId, lockedTour.ID, pick.leg).
				Where("status = ? OR (status = ? AND held_by = ?)", constants.SEAT_AVAILABLE, constants.SEAT_HELD, heldBy).
				First(&tourSeat).Error; err != nil {
				return fmt.Errorf("ghế %d không còn trống", pick.tourSeatId)
			}
			if err := tx.Model(&tourSeat).Updates(map[string]any{
				"status":     constants.SEAT_BOOKED,
				"held_by":    heldBy,
				"expired_at": nil,
			}).Error; err != nil {
				return err
			}
			baseAmount += tourSeat.Seat.PriceModifier
		}

		// 4. Mã giảm giá: lock row, validate và tăng used_count dưới cùng lock
		var discount *model.Discount
		discountAmount := float64(0)
		if input.DiscountCode != "" {
			var d model.Discount
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Preload("Tours").Preload("Categories").
				Where("code = ?", input.DiscountCode).First(&d).Error; err != nil {
				return errors.New(constants.DISCOUNT_NOT_FOUND)
			}
			discountAmount = d.CalculateAmount(baseAmount, &lockedTour, time.Now())
			if discountAmount == 0 {
				return errors.New("mã giảm giá không áp dụng được cho đơn này")
			}
			if err := tx.Model(&d).UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
			discount = &d
		}

		taxAmount := baseAmount * taxRate()
		totalAmount := helper.CalculateTotalAmount(baseAmount, taxAmount, discountAmount)

		// 5. Sinh mã đặt chỗ duy nhất
		reference, err := helper.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		expiresAt := time.Now().Add(PendingTimeout)
		booking = model.TourBooking{
			BookingReference: reference,
			TourId:           lockedTour.ID,
			CustomerId:       customer.ID,
			AdultCount:       input.AdultCount,
			ChildCount:       input.ChildCount,
			InfantCount:      input.InfantCount,
			BaseAmount:       baseAmount,
			TaxAmount:        taxAmount,
			DiscountAmount:   discountAmount,
			TotalAmount:      totalAmount,
			Status:           constants.BOOKING_PENDING,
			PaymentMethod:    input.PaymentMethod,
			SpecialRequests:  input.SpecialRequests,
			EmergencyContact: input.EmergencyContact,
			EmergencyPhone:   input.EmergencyPhone,
			ExpiresAt:        &expiresAt,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		// 6. Hành khách + ghế
		for i, p := range input.Passengers {
			passenger := model.Passenger{
				BookingId:     booking.ID,
				FirstName:     p.FirstName,
				LastName:      p.LastName,
				NationalId:    p.NationalId,
				PassportNo:    p.PassportNo,
				DateOfBirth:   p.DateOfBirth,
				Gender:        p.Gender,
				PassengerType: p.PassengerType,
			}
			if err := tx.Create(&passenger).Error; err != nil {
				return err
			}

			for _, pick := range picks {
				if pick.passengerIdx != i {
					continue
				}
				assignment := model.SeatAssignment{
					BookingId:   booking.ID,
					PassengerId: passenger.ID,
					TourSeatId:  pick.tourSeatId,
					Leg:         pick.leg,
				}
				if err := tx.Create(&assignment).Error; err != nil {
					return err
				}
			}
		}

		// 7. Audit mã giảm giá
		if discount != nil {
			bookingDiscount := model.BookingDiscount{
				BookingId:      booking.ID,
				DiscountId:     discount.ID,
				DiscountAmount: discountAmount,
				DiscountCode:   discount.Code,
			}
			if err := tx.Create(&bookingDiscount).Error; err != nil {
				return err
			}
		}

		// 8. Trừ chỗ của tour (vẫn đang giữ lock)
		return tx.Model(&model.Tour{}).Where("id = ?", lockedTour.ID).
			UpdateColumn("available_capacity", gorm.Expr("available_capacity - ?", totalPassengers)).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	// Báo realtime cho client khác đang xem sơ đồ ghế
	if seatMap, err := FetchTourSeatMap(lockedTour.ID); err == nil {
		PublishSeatUpdate(lockedTour.ID, seatMap)
	}

	utils.SendBookingConfirmationEmail(customer.Email, utils.BookingConfirmationData{
		BookingReference: booking.BookingReference,
		TourTitle:        lockedTour.Title,
		Route:            fmt.Sprintf("%s → %s", lockedTour.OriginCity, lockedTour.DestinationCity),
		Departure:        lockedTour.DepartureDatetime.Format("02/01/2006 15:04"),
		Passengers:       booking.TotalPassengers(),
		BaseAmount:       booking.BaseAmount,
		DiscountAmount:   booking.DiscountAmount,
		TotalAmount:      booking.TotalAmount,
		DetailLink:       fmt.Sprintf("%s/booking/%s", config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"), booking.BookingReference),
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"booking":   booking,
		"expiresAt": booking.ExpiresAt,
	})
}

// QuickBookingQuote báo giá nhanh không tạo booking, không giữ chỗ
func QuickBookingQuote(c *fiber.Ctx) error {
	slug := c.Params("slug")

	adults, _ := strconv.Atoi(c.Query("adults", "1"))
	children, _ := strconv.Atoi(c.Query("children", "0"))
	infants, _ := strconv.Atoi(c.Query("infants", "0"))
	discountCode := c.Query("discountCode")

	if adults < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cần ít nhất một người lớn", nil)
	}

	db := database.DB

	var tour model.Tour
	if err := db.Where("slug = ?", slug).First(&tour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	totalPassengers := adults + children + infants
	baseAmount := helper.CalculateBaseAmount(&tour, adults, children, infants)

	discountAmount := float64(0)
	discountMessage := ""
	if discountCode != "" {
		var discount model.Discount
		if err := db.Preload("Tours").Preload("Categories").
			Where("code = ?", discountCode).First(&discount).Error; err != nil {
			discountMessage = constants.DISCOUNT_NOT_FOUND
		} else {
			discountAmount = discount.CalculateAmount(baseAmount, &tour, time.Now())
			if discountAmount == 0 {
				discountMessage = "Mã giảm giá không áp dụng được cho đơn này"
			}
		}
	}

	taxAmount := baseAmount * taxRate()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tour":            fiber.Map{"title": tour.Title, "slug": tour.Slug},
		"available":       helper.CheckBookingPreconditions(&tour, totalPassengers, time.Now()) == nil,
		"passengers":      totalPassengers,
		"baseAmount":      baseAmount,
		"taxAmount":       taxAmount,
		"discountAmount":  discountAmount,
		"discountMessage": discountMessage,
		"totalAmount":     helper.CalculateTotalAmount(baseAmount, taxAmount, discountAmount),
	})
}

// GetBookingByReference tra cứu bằng mã đặt chỗ — chủ booking hoặc admin
func GetBookingByReference(c *fiber.Ctx) error {
	reference := c.Params("reference")

	claim, _ := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Chưa đăng nhập", errors.New("unauthenticated"))
	}

	var booking model.TourBooking
	if err := database.DB.
		Preload("Tour").
		Preload("Passengers").
		Preload("Discounts").
		Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.CustomerId != claim.CustomerId && !helper.HasCapability(claim.Level, constants.CAN_MANAGE_BOOKINGS) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("not booking owner"))
	}

	// ghế đã gán, kèm nhãn ghế
	var assignments []model.SeatAssignment
	database.DB.Preload("TourSeat").Preload("TourSeat.Seat").
		Where("booking_id = ?", booking.ID).Find(&assignments)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":         booking,
		"seatAssignments": assignments,
	})
}

// MyBookings danh sách booking của khách hiện tại
func MyBookings(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Chưa đăng nhập", errors.New("unauthenticated"))
	}

	var bookings model.TourBookings
	if err := database.DB.
		Preload("Tour").
		Where("customer_id = ?", claim.CustomerId).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

// CancelBooking hủy booking và trả lại toàn bộ tài nguyên trong một transaction
func CancelBooking(c *fiber.Ctx) error {
	reference := c.Params("reference")

	claim, customer := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Chưa đăng nhập", errors.New("unauthenticated"))
	}

	var booking model.TourBooking
	var tour model.Tour

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
			return errors.New(constants.BOOKING_NOT_FOUND)
		}

		if booking.CustomerId != claim.CustomerId && !helper.HasCapability(claim.Level, constants.CAN_MANAGE_BOOKINGS) {
			return errors.New(constants.FORBIDDEN)
		}

		if !booking.CanTransition(constants.BOOKING_CANCELLED) {
			return fmt.Errorf("không thể hủy booking ở trạng thái %s", booking.Status)
		}

		if err := tx.First(&tour, booking.TourId).Error; err != nil {
			return err
		}

		if err := helper.ReleaseBookingResources(tx, &booking, refundDiscountOnCancel()); err != nil {
			return err
		}

		now := time.Now()
		booking.Status = constants.BOOKING_CANCELLED
		booking.CancelledAt = &now
		return tx.Save(&booking).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	if seatMap, err := FetchTourSeatMap(booking.TourId); err == nil {
		PublishSeatUpdate(booking.TourId, seatMap)
	}

	utils.SendBookingCancelledEmail(customer.Email, utils.BookingConfirmationData{
		BookingReference: booking.BookingReference,
		TourTitle:        tour.Title,
		TotalAmount:      booking.TotalAmount,
		CancelledAt:      booking.CancelledAt.Format("02/01/2006 15:04"),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// ConfirmBooking xác nhận thanh toán — admin hoặc callback thanh toán
func ConfirmBooking(c *fiber.Ctx) error {
	reference := c.Params("reference")

	var booking model.TourBooking

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
			return errors.New(constants.BOOKING_NOT_FOUND)
		}

		if !booking.CanTransition(constants.BOOKING_CONFIRMED) {
			return fmt.Errorf("không thể xác nhận booking ở trạng thái %s", booking.Status)
		}

		now := time.Now()
		booking.Status = constants.BOOKING_CONFIRMED
		booking.ConfirmedAt = &now
		booking.ExpiresAt = nil
		booking.PaymentStatus = true
		return tx.Save(&booking).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// CompleteBooking đánh dấu hoàn thành sau ngày về — admin
func CompleteBooking(c *fiber.Ctx) error {
	reference := c.Params("reference")

	var booking model.TourBooking
	if err := database.DB.Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if !booking.CanTransition(constants.BOOKING_COMPLETED) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("không thể hoàn thành booking ở trạng thái %s", booking.Status), nil)
	}

	booking.Status = constants.BOOKING_COMPLETED
	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetBookings danh sách booking cho admin, filter + phân trang
func GetBookings(c *fiber.Ctx) error {
	input, _ := c.Locals("input").(model.FilterBookingInput)

	db := database.DB
	query := db.Model(&model.TourBooking{}).Preload("Tour").Preload("Customer")

	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	if input.TourId > 0 {
		query = query.Where("tour_id = ?", input.TourId)
	}
	if input.StartDate != nil {
		query = query.Where("created_at >= ?", *input.StartDate)
	}
	if input.EndDate != nil {
		query = query.Where("created_at <= ?", *input.EndDate)
	}

	var totalCount int64
	query.Count(&totalCount)

	var bookings model.TourBookings
	query = utils.ApplyPagination(query, input.Limit, input.Page)
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}
