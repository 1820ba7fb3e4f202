package handler

import (
	"errors"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register tạo Customer kèm Profile trong cùng một transaction —
// không bao giờ tồn tại customer thiếu profile
func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.RegisterCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customer := model.Customer{
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  hashed,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		IsActive:  true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		profile := model.Profile{
			CustomerId: customer.ID,
			Level:      constants.LEVEL_NORMAL,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		customer.Profile = &profile
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, customer)
}

func EditProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.EditProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, customer := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Chưa đăng nhập", errors.New("unauthenticated"))
	}

	db := database.DB

	err := db.Transaction(func(tx *gorm.DB) error {
		customerUpdates := map[string]interface{}{}
		if input.FirstName != nil {
			customerUpdates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			customerUpdates["last_name"] = *input.LastName
		}
		if input.Phone != nil {
			customerUpdates["phone"] = *input.Phone
		}
		if len(customerUpdates) > 0 {
			if err := tx.Model(&model.Customer{}).Where("id = ?", customer.ID).Updates(customerUpdates).Error; err != nil {
				return err
			}
		}

		profileUpdates := map[string]interface{}{}
		if input.Bio != nil {
			profileUpdates["bio"] = *input.Bio
		}
		if input.AvatarUrl != nil {
			profileUpdates["avatar_url"] = *input.AvatarUrl
		}
		if input.JobTitle != nil {
			profileUpdates["job_title"] = *input.JobTitle
		}
		if input.Company != nil {
			profileUpdates["company"] = *input.Company
		}
		if input.Website != nil {
			profileUpdates["website"] = *input.Website
		}
		if input.NationalId != nil {
			profileUpdates["national_id"] = *input.NationalId
		}
		if input.AddressLine != nil {
			profileUpdates["address_line"] = *input.AddressLine
		}
		if len(profileUpdates) > 0 {
			if err := tx.Model(&model.Profile{}).Where("customer_id = ?", customer.ID).Updates(profileUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var updated model.Customer
	database.DB.Preload("Profile").First(&updated, customer.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CustomerChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, customer := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Chưa đăng nhập", errors.New("unauthenticated"))
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mật khẩu hiện tại không đúng", errors.New("wrong current password"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&model.Customer{}).Where("id = ?", customer.ID).
		Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}

// ChangeLevel — chỉ super_admin (middleware chặn), không cho tự hạ cấp chính mình
func ChangeLevel(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ChangeLevelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	targetId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoCustomerFromToken(c)
	if uint(targetId) == claim.CustomerId && input.Level != constants.LEVEL_SUPER_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể tự hạ cấp chính mình", errors.New("self demotion"))
	}

	db := database.DB

	var profile model.Profile
	if err := db.Where("customer_id = ?", targetId).First(&profile).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách hàng", err)
	}

	if err := db.Model(&profile).Update("level", input.Level).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customerId": targetId,
		"level":      input.Level,
	})
}

// GetCustomers filter + phân trang, chỉ admin
func GetCustomers(c *fiber.Ctx) error {
	var input model.FilterCustomer
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	db := database.DB
	query := db.Model(&model.Customer{}).Preload("Profile")

	if input.SearchKey != "" {
		like := "%" + input.SearchKey + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?", like, like, like, like)
	}
	if input.Level != nil {
		query = query.Joins("JOIN profiles ON profiles.customer_id = customers.id").
			Where("profiles.level = ?", *input.Level)
	}
	if input.Active != nil {
		query = query.Where("customers.is_active = ?", *input.Active)
	}

	var totalCount int64
	query.Count(&totalCount)

	var customers model.Customers
	query = utils.ApplyPagination(query, input.Limit, input.Page)
	if err := query.Order("customers.created_at DESC").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var customer model.Customer
	if err := database.DB.Preload("Profile").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách hàng", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// ToggleCustomerActive khóa/mở khóa tài khoản
func ToggleCustomerActive(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var customer model.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách hàng", err)
	}

	if err := database.DB.Model(&customer).Update("is_active", !customer.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customerId": customer.ID,
		"isActive":   !customer.IsActive,
	})
}
