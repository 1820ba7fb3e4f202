package helper

import (
	"fmt"

	"travel_agency/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func generateUniqueSlug(tx *gorm.DB, mdl interface{}, text string) string {
	base := slug.Make(text)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(mdl).Where("slug = ?", result).Count(&count)
		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

func GenerateUniqueTourSlug(tx *gorm.DB, title string) string {
	return generateUniqueSlug(tx, &model.Tour{}, title)
}

func GenerateUniquePostSlug(tx *gorm.DB, title string) string {
	return generateUniqueSlug(tx, &model.Post{}, title)
}

func GenerateUniquePageSlug(tx *gorm.DB, title string) string {
	return generateUniqueSlug(tx, &model.Page{}, title)
}

func GenerateUniqueDestinationSlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.Destination{}, name)
}

func GenerateUniqueCategorySlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.TourCategory{}, name)
}

func GenerateUniqueTagSlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.Tag{}, name)
}
