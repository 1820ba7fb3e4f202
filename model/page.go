package model

import "time"

type Page struct {
	DTO
	Title   string `gorm:"not null" validate:"required" json:"title"`
	Slug    string `gorm:"uniqueIndex;not null" json:"slug"`
	Content string `gorm:"type:text" json:"content"`
	Excerpt string `gorm:"size:300" json:"excerpt"`

	FeaturedImage *string `json:"featuredImage"`

	PageType    string `gorm:"not null;default:'custom';index" json:"pageType"` // about, service, policy, contact, news, promotion, tour_info, custom
	Status      string `gorm:"not null;default:'draft';index" json:"status"`    // draft, published, archived
	AccessLevel string `gorm:"not null;default:'public'" json:"accessLevel"`    // public, private, premium

	ShowInMenu   bool `gorm:"default:true" json:"showInMenu"`
	ShowInFooter bool `gorm:"default:false" json:"showInFooter"`
	MenuOrder    int  `gorm:"default:0" json:"menuOrder"`

	AuthorId       uint       `gorm:"not null" json:"authorId"`
	PublishedDate  *time.Time `json:"publishedDate"`
	ExpirationDate *time.Time `json:"expirationDate"`

	Author Customer `gorm:"foreignKey:AuthorId" json:"-"`
}

type Pages []Page

// IsVisible: đã publish, chưa hết hạn
func (p *Page) IsVisible(now time.Time) bool {
	if p.Status != "published" {
		return false
	}
	if p.ExpirationDate != nil && now.After(*p.ExpirationDate) {
		return false
	}
	return true
}

type CreatePageInput struct {
	Title          string     `json:"title" validate:"required"`
	Content        string     `json:"content" validate:"required"`
	Excerpt        string     `json:"excerpt" validate:"max=300"`
	FeaturedImage  *string    `json:"featuredImage"`
	PageType       string     `json:"pageType" validate:"omitempty,oneof=about service policy contact news promotion tour_info custom"`
	AccessLevel    string     `json:"accessLevel" validate:"omitempty,oneof=public private premium"`
	ShowInMenu     *bool      `json:"showInMenu"`
	ShowInFooter   *bool      `json:"showInFooter"`
	MenuOrder      int        `json:"menuOrder"`
	Publish        bool       `json:"publish"`
	ExpirationDate *time.Time `json:"expirationDate"`
}

type EditPageInput struct {
	Title          *string    `json:"title"`
	Content        *string    `json:"content"`
	Excerpt        *string    `json:"excerpt" validate:"omitempty,max=300"`
	FeaturedImage  *string    `json:"featuredImage"`
	PageType       *string    `json:"pageType" validate:"omitempty,oneof=about service policy contact news promotion tour_info custom"`
	AccessLevel    *string    `json:"accessLevel" validate:"omitempty,oneof=public private premium"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
	ShowInMenu     *bool      `json:"showInMenu"`
	ShowInFooter   *bool      `json:"showInFooter"`
	MenuOrder      *int       `json:"menuOrder"`
	ExpirationDate *time.Time `json:"expirationDate"`
}
