package validate

import (
	"fmt"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBooking kiểm tra input đặt tour trước khi vào transaction chính.
// Các check về capacity/ghế chỉ là pre-check — transaction trong handler
// khóa row và kiểm tra lại để chống race
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")

		var tour model.Tour
		if err := database.DB.Where("slug = ?", slug).First(&tour).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if !tour.IsAvailable() || !tour.DepartureDatetime.After(time.Now()) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tour đã đóng, hết chỗ hoặc đã khởi hành", fmt.Errorf("tour not available"))
		}

		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		totalPassengers := input.AdultCount + input.ChildCount + input.InfantCount

		// Số hành khách trong danh sách phải khớp với số lượng khai báo
		if len(input.Passengers) != totalPassengers {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				"Danh sách hành khách không khớp với số lượng khai báo",
				fmt.Errorf("passengers mismatch"), "passengers")
		}

		// Đếm theo loại phải khớp từng loại
		counts := map[string]int{}
		for _, p := range input.Passengers {
			counts[p.PassengerType]++
		}
		if counts["adult"] != input.AdultCount || counts["child"] != input.ChildCount || counts["infant"] != input.InfantCount {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				"Loại hành khách không khớp với số lượng khai báo",
				fmt.Errorf("passenger type counts mismatch"), "passengers")
		}

		if totalPassengers < tour.MinTravelers {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				fmt.Sprintf("Tour yêu cầu tối thiểu %d khách", tour.MinTravelers),
				fmt.Errorf("below minTravelers"), "adultCount")
		}
		if tour.MaxTravelers > 0 && totalPassengers > tour.MaxTravelers {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				fmt.Sprintf("Tour cho phép tối đa %d khách mỗi lần đặt", tour.MaxTravelers),
				fmt.Errorf("above maxTravelers"), "adultCount")
		}

		// Ghế chỉ được chọn khi tour bật seat selection
		if !tour.SeatSelectionAvailable {
			for _, p := range input.Passengers {
				if p.DepartureSeatId != nil || p.ReturnSeatId != nil {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
						"Tour này không hỗ trợ chọn ghế",
						fmt.Errorf("seat selection disabled"), "passengers")
				}
			}
		}

		// Chặn chọn trùng ghế ngay trong request
		seen := map[string]bool{}
		for _, p := range input.Passengers {
			if p.DepartureSeatId != nil {
				key := fmt.Sprintf("%s-%d", constants.LEG_DEPARTURE, *p.DepartureSeatId)
				if seen[key] {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
						"Hai hành khách chọn trùng ghế chiều đi",
						fmt.Errorf("duplicate departure seat"), "passengers")
				}
				seen[key] = true
			}
			if p.ReturnSeatId != nil {
				if !tour.IsRoundTrip() {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
						"Tour một chiều không có ghế chiều về",
						fmt.Errorf("return seat on one-way tour"), "passengers")
				}
				key := fmt.Sprintf("%s-%d", constants.LEG_RETURN, *p.ReturnSeatId)
				if seen[key] {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
						"Hai hành khách chọn trùng ghế chiều về",
						fmt.Errorf("duplicate return seat"), "passengers")
				}
				seen[key] = true
			}
		}

		c.Locals("input", input)
		c.Locals("tour", &tour)
		return c.Next()
	}
}

func ApplyDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ApplyDiscountInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func FilterBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("input", input)
		return c.Next()
	}
}
