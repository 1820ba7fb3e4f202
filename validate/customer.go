package validate

import (
	"fmt"

	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

func RegisterCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterCustomerInput

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

		// Kiểm tra email đã tồn tại
		var existing model.Customer
		if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email đã được đăng ký", fmt.Errorf("email already exists"), "email")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditProfileInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CustomerChangePassword
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mật khẩu nhập lại không khớp", fmt.Errorf("repeat password mismatch"), "repeatPassword")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func ChangeLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangeLevelInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordRequest
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordRequest
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}
