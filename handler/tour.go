package handler

import (
	"errors"
	"fmt"

	"travel_agency/constants"
	"travel_agency/database"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetTours danh sách tour public, có filter + phân trang
func GetTours(c *fiber.Ctx) error {
	input, _ := c.Locals("input").(model.FilterTourInput)

	db := database.DB
	query := db.Model(&model.Tour{}).
		Preload("Category").
		Where("is_active = ?", true)

	if input.Category != "" {
		query = query.Joins("JOIN tour_categories ON tour_categories.id = tours.category_id").
			Where("tour_categories.slug = ?", input.Category)
	}
	if input.TourType != "" {
		query = query.Where("tour_type = ?", input.TourType)
	}
	if input.Destination != "" {
		query = query.Where("destination_city ILIKE ?", "%"+input.Destination+"%")
	}
	if input.MinPrice != nil {
		query = query.Where("base_price >= ?", *input.MinPrice)
	}
	if input.MaxPrice != nil {
		query = query.Where("base_price <= ?", *input.MaxPrice)
	}
	if input.IsFeatured != nil {
		query = query.Where("is_featured = ?", *input.IsFeatured)
	}
	if input.SearchKey != "" {
		like := "%" + input.SearchKey + "%"
		query = query.Where("title ILIKE ? OR destination_city ILIKE ? OR short_description ILIKE ?", like, like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var tours model.Tours
	query = utils.ApplyPagination(query, input.Limit, input.Page)
	if err := query.Order("is_featured DESC, departure_datetime ASC").Find(&tours).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       tours,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

// GetTourBySlug chi tiết tour kèm ảnh, phương tiện và tour liên quan
func GetTourBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	db := database.DB

	var tour model.Tour
	if err := db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("DepartureTransportation").
		Preload("DepartureTransportation.Layout").
		Preload("ReturnTransportation").
		Preload("ReturnTransportation.Layout").
		Where("slug = ?", slug).First(&tour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// tour cùng danh mục, cùng điểm đến
	var related model.Tours
	relatedQuery := db.Where("id != ? AND is_active = ?", tour.ID, true)
	if tour.CategoryId != nil {
		relatedQuery = relatedQuery.Where("category_id = ? OR destination_city = ?", *tour.CategoryId, tour.DestinationCity)
	} else {
		relatedQuery = relatedQuery.Where("destination_city = ?", tour.DestinationCity)
	}
	relatedQuery.Limit(4).Find(&related)

	// đánh giá đã duyệt của tour
	var testimonials []model.Testimonial
	db.Where("tour_id = ? AND is_approved = ? AND is_active = ?", tour.ID, true, true).
		Order("created_at DESC").Limit(10).Find(&testimonials)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tour":         tour,
		"includes":     utils.SplitLines(tour.Includes),
		"excludes":     utils.SplitLines(tour.Excludes),
		"relatedTours": related,
		"testimonials": testimonials,
	})
}

// CreateTour tạo tour + sinh ghế theo sơ đồ phương tiện trong cùng transaction
func CreateTour(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTourInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var tour model.Tour
	if err := copier.Copy(&tour, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tour.AvailableCapacity = input.TotalCapacity
	tour.IsActive = true
	if input.SeatSelectionAvailable != nil {
		tour.SeatSelectionAvailable = *input.SeatSelectionAvailable
	} else {
		tour.SeatSelectionAvailable = input.DepartureTransportationId != nil
	}
	if tour.MinTravelers == 0 {
		tour.MinTravelers = 1
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		tour.Slug = helper.GenerateUniqueTourSlug(tx, input.Title)
		if err := tx.Create(&tour).Error; err != nil {
			return err
		}
		return helper.MaterializeTourSeats(tx, &tour)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, tour)
}

// EditTour cập nhật tour, không cho giảm capacity dưới số chỗ đã bán
func EditTour(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTourInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	tour, ok := c.Locals("tour").(*model.Tour)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booked := tour.TotalCapacity - tour.AvailableCapacity
	if input.TotalCapacity < booked {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
			fmt.Sprintf("Không thể giảm sức chứa dưới %d chỗ đã bán", booked),
			errors.New("capacity below booked"), "totalCapacity")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := copier.CopyWithOption(tour, &input, copier.Option{IgnoreEmpty: true}); err != nil {
			return err
		}
		tour.AvailableCapacity = input.TotalCapacity - booked
		if input.SeatSelectionAvailable != nil {
			tour.SeatSelectionAvailable = *input.SeatSelectionAvailable
		}
		return tx.Save(tour).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

// DeleteTours ẩn tour thay vì xóa cứng — booking cũ vẫn cần tham chiếu
func DeleteTours(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := database.DB.Model(&model.Tour{}).Where("id IN ?", input.IDs).
		Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deactivated": input.IDs})
}

func GetTourCategories(c *fiber.Ctx) error {
	var categories []model.TourCategory
	if err := database.DB.Where("is_active = ?", true).
		Order("display_order ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

// CreateTransportation tạo phương tiện kèm sơ đồ ghế sinh tự động
func CreateTransportation(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTransportationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	transport := model.Transportation{
		Name:          input.Name,
		TransportType: input.TransportType,
		Capacity:      input.Capacity,
		Facilities:    input.Facilities,
		IsActive:      true,
	}

	columnLabels := "ABCDEFGHIJ"

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transport).Error; err != nil {
			return err
		}

		layout := model.SeatLayout{
			TransportationId: transport.ID,
			Rows:             input.Rows,
			Columns:          input.Columns,
			AisleAfterColumn: input.AisleAfterColumn,
		}
		if err := tx.Create(&layout).Error; err != nil {
			return err
		}

		seats := []model.Seat{}
		created := 0
		for row := 1; row <= input.Rows && created < input.Capacity; row++ {
			for col := 0; col < input.Columns && created < input.Capacity; col++ {
				colLabel := string(columnLabels[col])
				seats = append(seats, model.Seat{
					TransportationId: transport.ID,
					SeatNumber:       fmt.Sprintf("%s%d", colLabel, row),
					SeatClass:        "economy",
					Row:              row,
					Column:           colLabel,
				})
				created++
			}
		}
		return tx.Create(&seats).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var result model.Transportation
	database.DB.Preload("Layout").Preload("Seats").First(&result, transport.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func GetTransportations(c *fiber.Ctx) error {
	var transports []model.Transportation
	if err := database.DB.Preload("Layout").Where("is_active = ?", true).Find(&transports).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, transports)
}
