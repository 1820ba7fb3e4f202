package handler

import (
	"errors"
	"time"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPageBySlug trang tĩnh public — private/premium yêu cầu đăng nhập
func GetPageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var page model.Page
	if err := database.DB.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Trang không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !page.IsVisible(time.Now()) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Trang không tồn tại", errors.New("page not visible"))
	}

	if page.AccessLevel != constants.ACCESS_PUBLIC {
		claim, _ := helper.GetInfoCustomerFromToken(c)
		if claim.CustomerId == 0 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Trang này yêu cầu đăng nhập", errors.New("login required"))
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

// GetMenuPages danh sách trang cho menu/footer
func GetMenuPages(c *fiber.Ctx) error {
	var menuPages, footerPages model.Pages

	db := database.DB
	base := db.Where("status = ? AND (expiration_date IS NULL OR expiration_date > ?)",
		constants.CONTENT_PUBLISHED, time.Now())

	if err := base.Session(&gorm.Session{}).Where("show_in_menu = ?", true).
		Order("menu_order ASC").Find(&menuPages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := base.Session(&gorm.Session{}).Where("show_in_footer = ?", true).
		Order("menu_order ASC").Find(&footerPages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"menu":   menuPages,
		"footer": footerPages,
	})
}

func CreatePage(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoCustomerFromToken(c)

	page := model.Page{
		Title:          input.Title,
		Content:        input.Content,
		Excerpt:        input.Excerpt,
		FeaturedImage:  input.FeaturedImage,
		PageType:       input.PageType,
		AccessLevel:    input.AccessLevel,
		MenuOrder:      input.MenuOrder,
		AuthorId:       claim.CustomerId,
		ExpirationDate: input.ExpirationDate,
		Status:         constants.CONTENT_DRAFT,
	}
	if page.PageType == "" {
		page.PageType = "custom"
	}
	if page.AccessLevel == "" {
		page.AccessLevel = constants.ACCESS_PUBLIC
	}
	if input.ShowInMenu != nil {
		page.ShowInMenu = *input.ShowInMenu
	}
	if input.ShowInFooter != nil {
		page.ShowInFooter = *input.ShowInFooter
	}
	if input.Publish {
		now := time.Now()
		page.Status = constants.CONTENT_PUBLISHED
		page.PublishedDate = &now
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		page.Slug = helper.GenerateUniquePageSlug(tx, input.Title)
		return tx.Create(&page).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, page)
}

func EditPage(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.EditPageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var page model.Page
	if err := database.DB.First(&page, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Trang không tồn tại", err)
	}

	if input.Title != nil {
		page.Title = *input.Title
	}
	if input.Content != nil {
		page.Content = *input.Content
	}
	if input.Excerpt != nil {
		page.Excerpt = *input.Excerpt
	}
	if input.FeaturedImage != nil {
		page.FeaturedImage = input.FeaturedImage
	}
	if input.PageType != nil {
		page.PageType = *input.PageType
	}
	if input.AccessLevel != nil {
		page.AccessLevel = *input.AccessLevel
	}
	if input.Status != nil {
		if *input.Status == constants.CONTENT_PUBLISHED && page.Status != constants.CONTENT_PUBLISHED {
			now := time.Now()
			page.PublishedDate = &now
		}
		page.Status = *input.Status
	}
	if input.ShowInMenu != nil {
		page.ShowInMenu = *input.ShowInMenu
	}
	if input.ShowInFooter != nil {
		page.ShowInFooter = *input.ShowInFooter
	}
	if input.MenuOrder != nil {
		page.MenuOrder = *input.MenuOrder
	}
	if input.ExpirationDate != nil {
		page.ExpirationDate = input.ExpirationDate
	}

	if err := database.DB.Save(&page).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func DeletePages(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := database.DB.Where("id IN ?", input.IDs).Delete(&model.Page{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
