package validate

import (
	"fmt"

	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ContactInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func SubscribeNewsletter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.NewsletterInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CreateTestimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTestimonialInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		// Nếu gắn với tour thì tour phải tồn tại
		if input.TourId != nil {
			var tour model.Tour
			if err := database.DB.First(&tour, *input.TourId).Error; err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tour không tồn tại", fmt.Errorf("tourId not found"), "tourId")
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}
