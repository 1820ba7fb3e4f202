package handler

import (
	"travel_agency/config"
	"travel_agency/helper"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUploadSignature ký params cho client upload ảnh trực tiếp lên Cloudinary
func GetUploadSignature(c *fiber.Ctx) error {
	folder := c.Query("folder", "travel_agency")

	params := map[string]string{
		"folder": folder,
	}

	signature, timestamp := helper.GenerateUploadSignature(params)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
		"folder":    folder,
	})
}
