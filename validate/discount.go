package validate

import (
	"fmt"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDiscountInput

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

		// Kiểm tra code chưa tồn tại
		var existing model.Discount
		if err := database.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mã giảm giá đã tồn tại", fmt.Errorf("code already exists"), "code")
		}

		if input.ValidTo.Time.Before(input.ValidFrom.Time) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau ngày bắt đầu", fmt.Errorf("invalid validTo"), "validTo")
		}

		if input.DiscountType == constants.DISCOUNT_PERCENTAGE && input.Value > 100 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phần trăm giảm không được quá 100", fmt.Errorf("percentage over 100"), "value")
		}

		// Phạm vi áp dụng phải đi kèm danh sách tương ứng
		if input.ApplyTo == constants.APPLY_SPECIFIC_TOURS && len(input.TourIds) == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cần chọn ít nhất một tour áp dụng", fmt.Errorf("tourIds required"), "tourIds")
		}
		if input.ApplyTo == constants.APPLY_CATEGORIES && len(input.CategoryIds) == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cần chọn ít nhất một danh mục áp dụng", fmt.Errorf("categoryIds required"), "categoryIds")
		}

		c.Locals("input", input)
		return c.Next()
	}
}
