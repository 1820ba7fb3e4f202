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

// CreateContact lưu liên hệ từ form, không yêu cầu đăng nhập
func CreateContact(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ContactInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	contact := model.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := database.DB.Create(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Đã nhận được liên hệ của bạn, chúng tôi sẽ phản hồi sớm",
	})
}

func GetContacts(c *fiber.Ctx) error {
	var contacts []model.Contact
	if err := database.DB.Order("is_read ASC, created_at DESC").Find(&contacts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, contacts)
}

func MarkContactRead(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := database.DB.Model(&model.Contact{}).Where("id = ?", id).
		Update("is_read", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id, "isRead": true})
}

// SubscribeNewsletter — email đã hủy đăng ký thì kích hoạt lại
func SubscribeNewsletter(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.NewsletterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	db := database.DB

	var existing model.NewsletterSubscriber
	err := db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		if existing.Status {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email đã đăng ký nhận tin", errors.New("already subscribed"))
		}
		if err := db.Model(&existing).Update("status", true).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đăng ký lại thành công"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	subscriber := model.NewsletterSubscriber{Email: input.Email, Status: true}
	if err := db.Create(&subscriber).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"message": "Đăng ký nhận tin thành công"})
}

func UnsubscribeNewsletter(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu email", errors.New("email required"))
	}

	if err := database.DB.Model(&model.NewsletterSubscriber{}).
		Where("email = ?", email).Update("status", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã hủy đăng ký nhận tin"})
}

func GetServices(c *fiber.Ctx) error {
	var services []model.Service
	if err := database.DB.Where("is_active = ?", true).
		Order("display_order ASC").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, services)
}

func CreateService(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	service := model.Service{
		Name:         input.Name,
		ServiceType:  input.ServiceType,
		Description:  input.Description,
		Features:     input.Features,
		PriceRange:   input.PriceRange,
		Icon:         input.Icon,
		ImageUrl:     input.ImageUrl,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}

	if err := database.DB.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

// CreateTestimonial khách gửi đánh giá, chờ duyệt mới hiện
func CreateTestimonial(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTestimonialInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	testimonial := model.Testimonial{
		FullName: input.FullName,
		Position: input.Position,
		Company:  input.Company,
		Text:     input.Text,
		Rating:   input.Rating,
		TourId:   input.TourId,
		IsActive: true,
	}

	if err := database.DB.Create(&testimonial).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":     "Cảm ơn đánh giá của bạn, nội dung sẽ hiện sau khi duyệt",
		"testimonial": testimonial,
	})
}

func GetTestimonials(c *fiber.Ctx) error {
	var testimonials []model.Testimonial
	if err := database.DB.
		Where("is_approved = ? AND is_active = ?", true, true).
		Order("is_featured DESC, created_at DESC").Find(&testimonials).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, testimonials)
}

func ApproveTestimonial(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := database.DB.Model(&model.Testimonial{}).Where("id = ?", id).
		Update("is_approved", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id, "isApproved": true})
}

// GetDestinations danh sách điểm đến, ?popular=true chỉ lấy nổi bật
func GetDestinations(c *fiber.Ctx) error {
	db := database.DB
	query := db.Model(&model.Destination{}).Where("is_active = ?", true)

	if c.Query("popular") == "true" {
		query = query.Where("is_popular = ?", true)
	}
	if continent := c.Query("continent"); continent != "" {
		query = query.Where("continent = ?", continent)
	}

	var destinations []model.Destination
	if err := query.Order("name ASC").Find(&destinations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, destinations)
}

// GetDestinationBySlug chi tiết điểm đến kèm các tour đang mở đến đó
func GetDestinationBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var destination model.Destination
	if err := database.DB.Preload("Images").
		Where("slug = ? AND is_active = ?", slug, true).First(&destination).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Điểm đến không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var tours model.Tours
	database.DB.Where("destination_city ILIKE ? AND is_active = ?", "%"+destination.Name+"%", true).
		Order("departure_datetime ASC").Limit(12).Find(&tours)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"destination": destination,
		"tours":       tours,
	})
}

func CreateDestination(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateDestinationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	destination := model.Destination{
		Name:             input.Name,
		Country:          input.Country,
		Continent:        input.Continent,
		Description:      input.Description,
		BestTimeToVisit:  input.BestTimeToVisit,
		VisaRequirements: input.VisaRequirements,
		Climate:          input.Climate,
		Culture:          input.Culture,
		FeaturedImage:    input.FeaturedImage,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		IsPopular:        input.IsPopular,
		IsActive:         true,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		destination.Slug = helper.GenerateUniqueDestinationSlug(tx, input.Name)
		return tx.Create(&destination).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, destination)
}
