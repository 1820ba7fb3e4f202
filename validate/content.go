package validate

import (
	"fmt"

	"travel_agency/database"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePostInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		// Kiểm tra category tồn tại
		if len(input.CategoryIds) > 0 {
			var categories []model.PostCategory
			if err := database.DB.Where("id IN ?", input.CategoryIds).Find(&categories).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": fmt.Sprintf("Lỗi truy vấn cơ sở dữ liệu: %s", err.Error()),
				})
			}
			if len(categories) != len(input.CategoryIds) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Một hoặc nhiều danh mục không tồn tại", fmt.Errorf("some categoryIds not found"), "categoryIds")
			}
			c.Locals("categories", categories)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditPostInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")

		var post model.Post
		if err := database.DB.Where("slug = ? AND status = ?", slug, "published").First(&post).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Bài viết không tồn tại", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi hệ thống", err)
		}

		var input model.CreateCommentInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}

		c.Locals("input", input)
		c.Locals("post", &post)
		return c.Next()
	}
}

func CreatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePageInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func EditPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditPageInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CreateDestination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDestinationInput
		if err := parseAndValidate(c, &input); err != nil {
			return err
		}
		c.Locals("input", input)
		return c.Next()
	}
}
