package handler

import (
	"errors"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// ApplyDiscount API kiểm tra mã cho trang đặt tour — chỉ báo giá,
// used_count chỉ tăng khi booking thực sự được tạo
func ApplyDiscount(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ApplyDiscountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	db := database.DB

	var discount model.Discount
	if err := db.Preload("Tours").Preload("Categories").
		Where("code = ?", input.Code).First(&discount).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DISCOUNT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var tour model.Tour
	if err := db.First(&tour, input.TourId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
	}

	discountAmount := discount.CalculateAmount(input.Amount, &tour, time.Now())
	if discountAmount == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mã giảm giá không áp dụng được cho đơn này", errors.New("discount not applicable"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":           discount.Code,
		"discountType":   discount.DiscountType,
		"discountAmount": discountAmount,
		"finalAmount":    input.Amount - discountAmount,
	})
}

func CreateDiscount(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateDiscountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var discount model.Discount
	if err := copier.Copy(&discount, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	discount.IsActive = true
	if input.ApplyTo == "" {
		discount.ApplyTo = constants.APPLY_ALL_TOURS
	}
	if input.IsPublic != nil {
		discount.IsPublic = *input.IsPublic
	} else {
		discount.IsPublic = true
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&discount).Error; err != nil {
			return err
		}

		if discount.ApplyTo == constants.APPLY_SPECIFIC_TOURS {
			var tours []model.Tour
			if err := tx.Where("id IN ?", input.TourIds).Find(&tours).Error; err != nil {
				return err
			}
			if err := tx.Model(&discount).Association("Tours").Replace(tours); err != nil {
				return err
			}
		}
		if discount.ApplyTo == constants.APPLY_CATEGORIES {
			var categories []model.TourCategory
			if err := tx.Where("id IN ?", input.CategoryIds).Find(&categories).Error; err != nil {
				return err
			}
			if err := tx.Model(&discount).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, discount)
}

func GetDiscounts(c *fiber.Ctx) error {
	var discounts model.Discounts
	if err := database.DB.Preload("Tours").Preload("Categories").
		Order("created_at DESC").Find(&discounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, discounts)
}

// GetPublicDiscounts mã đang hiệu lực cho trang khuyến mãi
func GetPublicDiscounts(c *fiber.Ctx) error {
	today := time.Now().Truncate(24 * time.Hour)

	var discounts model.Discounts
	if err := database.DB.
		Where("is_active = ? AND is_public = ? AND valid_from <= ? AND valid_to >= ?", true, true, today, today).
		Order("created_at DESC").Find(&discounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// lọc mã đã hết lượt
	valid := model.Discounts{}
	for _, d := range discounts {
		if d.IsValidOn(time.Now()) {
			valid = append(valid, d)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, valid)
}

func ToggleDiscount(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var discount model.Discount
	if err := database.DB.First(&discount, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DISCOUNT_NOT_FOUND, err)
	}

	if err := database.DB.Model(&discount).Update("is_active", !discount.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":       discount.ID,
		"isActive": !discount.IsActive,
	})
}

func DeleteDiscounts(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	// mã đã từng dùng thì chỉ vô hiệu, giữ audit
	var usedIds []uint
	database.DB.Model(&model.BookingDiscount{}).Where("discount_id IN ?", input.IDs).
		Distinct().Pluck("discount_id", &usedIds)

	used := map[uint]bool{}
	for _, id := range usedIds {
		used[id] = true
	}

	deletable := []uint{}
	deactivate := []uint{}
	for _, id := range input.IDs {
		if used[id] {
			deactivate = append(deactivate, id)
		} else {
			deletable = append(deletable, id)
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if len(deletable) > 0 {
			if err := tx.Where("id IN ?", deletable).Delete(&model.Discount{}).Error; err != nil {
				return err
			}
		}
		if len(deactivate) > 0 {
			if err := tx.Model(&model.Discount{}).Where("id IN ?", deactivate).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted":     deletable,
		"deactivated": deactivate,
	})
}
