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

// GetPosts danh sách bài viết đã publish, filter theo danh mục/tag
func GetPosts(c *fiber.Ctx) error {
	var input model.FilterPostInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	db := database.DB
	query := db.Model(&model.Post{}).
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Where("posts.status = ?", constants.CONTENT_PUBLISHED)

	if input.Category != "" {
		query = query.Joins("JOIN post_categories_map pcm ON pcm.post_id = posts.id").
			Joins("JOIN post_categories pc ON pc.id = pcm.post_category_id").
			Where("pc.name = ?", input.Category)
	}
	if input.Tag != "" {
		query = query.Joins("JOIN post_tags pt ON pt.post_id = posts.id").
			Joins("JOIN tags t ON t.id = pt.tag_id").
			Where("t.slug = ?", input.Tag)
	}
	if input.SearchKey != "" {
		like := "%" + input.SearchKey + "%"
		query = query.Where("posts.title ILIKE ? OR posts.content ILIKE ?", like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var posts model.Posts
	query = utils.ApplyPagination(query, input.Limit, input.Page)
	if err := query.Order("posts.published_date DESC").Find(&posts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       posts,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

// GetPostBySlug chi tiết bài viết + tăng lượt xem + comment đã duyệt
func GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	db := database.DB

	var post model.Post
	if err := db.
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = ?", true).Order("created_at DESC")
		}).
		Where("slug = ? AND status = ?", slug, constants.CONTENT_PUBLISHED).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Bài viết không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// đếm view, không cần chính xác tuyệt đối nên bỏ qua lỗi
	db.Model(&post).UpdateColumn("counted_views", gorm.Expr("counted_views + 1"))

	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

// CreatePost — writer trở lên. Tag tạo mới tự động nếu chưa có
func CreatePost(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePostInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoCustomerFromToken(c)

	post := model.Post{
		AuthorId: claim.CustomerId,
		Title:    input.Title,
		Content:  input.Content,
		ImageUrl: input.ImageUrl,
		Status:   constants.CONTENT_DRAFT,
	}
	if input.Publish {
		now := time.Now()
		post.Status = constants.CONTENT_PUBLISHED
		post.PublishedDate = &now
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		post.Slug = helper.GenerateUniquePostSlug(tx, input.Title)
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		if categories, ok := c.Locals("categories").([]model.PostCategory); ok && len(categories) > 0 {
			if err := tx.Model(&post).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}

		if len(input.Tags) > 0 {
			tags := []model.Tag{}
			for _, name := range input.Tags {
				tag := model.Tag{Name: name}
				if err := tx.Where(model.Tag{Name: name}).
					Attrs(model.Tag{Slug: helper.GenerateUniqueTagSlug(tx, name)}).
					FirstOrCreate(&tag).Error; err != nil {
					return err
				}
				tags = append(tags, tag)
			}
			if err := tx.Model(&post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, post)
}

// EditPost — writer chỉ sửa bài của mình, admin sửa mọi bài
func EditPost(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.EditPostInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	claim, _ := helper.GetInfoCustomerFromToken(c)

	var post model.Post
	if err := database.DB.First(&post, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Bài viết không tồn tại", err)
	}

	// writer chỉ sửa bài của mình, admin trở lên sửa mọi bài
	if claim.Level == constants.LEVEL_WRITER && post.AuthorId != claim.CustomerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Chỉ được sửa bài viết của chính mình", errors.New("not author"))
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.Title != nil {
			post.Title = *input.Title
		}
		if input.Content != nil {
			post.Content = *input.Content
		}
		if input.ImageUrl != nil {
			post.ImageUrl = input.ImageUrl
		}
		if input.Status != nil {
			if *input.Status == constants.CONTENT_PUBLISHED && post.Status != constants.CONTENT_PUBLISHED {
				now := time.Now()
				post.PublishedDate = &now
			}
			post.Status = *input.Status
		}
		if err := tx.Save(&post).Error; err != nil {
			return err
		}

		if len(input.CategoryIds) > 0 {
			var categories []model.PostCategory
			if err := tx.Where("id IN ?", input.CategoryIds).Find(&categories).Error; err != nil {
				return err
			}
			if err := tx.Model(&post).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		if len(input.Tags) > 0 {
			tags := []model.Tag{}
			for _, name := range input.Tags {
				tag := model.Tag{Name: name}
				if err := tx.Where(model.Tag{Name: name}).
					Attrs(model.Tag{Slug: helper.GenerateUniqueTagSlug(tx, name)}).
					FirstOrCreate(&tag).Error; err != nil {
					return err
				}
				tags = append(tags, tag)
			}
			if err := tx.Model(&post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func DeletePosts(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := database.DB.Where("id IN ?", input.IDs).Delete(&model.Post{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

// CreateComment — comment chờ duyệt, không hiện ngay
func CreateComment(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateCommentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	post, ok := c.Locals("post").(*model.Post)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	comment := model.Comment{
		PostId: post.ID,
		Name:   input.Name,
		Email:  input.Email,
		Body:   input.Body,
	}

	claim, _ := helper.GetInfoCustomerFromToken(c)
	if claim.CustomerId > 0 {
		comment.CustomerId = &claim.CustomerId
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Bình luận đã gửi, chờ duyệt",
		"comment": comment,
	})
}

// ApproveComment duyệt bình luận — quyền quản lý nội dung
func ApproveComment(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var comment model.Comment
	if err := database.DB.First(&comment, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Bình luận không tồn tại", err)
	}

	if err := database.DB.Model(&comment).Update("is_approved", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, comment)
}

func GetPostCategories(c *fiber.Ctx) error {
	var categories []model.PostCategory
	if err := database.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}
