package validate

import (
	"fmt"
	"strconv"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateTour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTourInput

		// Parse JSON từ request body vào struct
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Kiểm tra category tồn tại
		if input.CategoryId != nil {
			var category model.TourCategory
			if err := database.DB.First(&category, *input.CategoryId).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Danh mục không tồn tại", fmt.Errorf("categoryId not found"), "categoryId")
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		// Kiểm tra phương tiện tồn tại
		for key, transportId := range map[string]*uint{
			"departureTransportationId": input.DepartureTransportationId,
			"returnTransportationId":    input.ReturnTransportationId,
		} {
			if transportId == nil {
				continue
			}
			var transport model.Transportation
			if err := database.DB.First(&transport, *transportId).Error; err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phương tiện không tồn tại", fmt.Errorf("%s not found", key), key)
			}
		}

		// Tour khứ hồi phải có ngày về, và ngày về sau ngày đi
		if input.TourType == constants.TOUR_ROUND_TRIP {
			if input.ReturnDatetime == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tour khứ hồi phải có ngày về", fmt.Errorf("returnDatetime required"), "returnDatetime")
			}
			if !input.ReturnDatetime.After(input.DepartureDatetime) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày về phải sau ngày khởi hành", fmt.Errorf("invalid returnDatetime"), "returnDatetime")
			}
		}

		if input.DepartureDatetime.Before(time.Now()) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày khởi hành phải ở tương lai", fmt.Errorf("invalid departureDatetime"), "departureDatetime")
		}

		if input.MaxTravelers > 0 && input.MinTravelers > input.MaxTravelers {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số khách tối thiểu không được lớn hơn tối đa", fmt.Errorf("minTravelers > maxTravelers"), "minTravelers")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditTour(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, fmt.Errorf("params invalid"))
		}

		var tour model.Tour
		if err := database.DB.First(&tour, valueKey).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var input model.CreateTourInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("inputId", valueKey)
		c.Locals("input", input)
		c.Locals("tour", &tour)
		return c.Next()
	}
}

func FilterTour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterTourInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CreateTransportation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTransportationInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		if input.Rows*input.Columns < input.Capacity {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Sơ đồ ghế nhỏ hơn sức chứa", fmt.Errorf("layout smaller than capacity"), "rows")
		}

		c.Locals("input", input)
		return c.Next()
	}
}
