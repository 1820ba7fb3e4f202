package model

import "time"

type PostCategory struct {
	DTO
	Name string `gorm:"not null;unique" validate:"required" json:"name"`
}

type Tag struct {
	DTO
	Name string `gorm:"not null;uniqueIndex" json:"name"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`
}

type Post struct {
	DTO
	AuthorId     uint    `gorm:"not null;index" json:"authorId"`
	Title        string  `gorm:"not null" validate:"required" json:"title"`
	Slug         string  `gorm:"uniqueIndex;not null" json:"slug"`
	Content      string  `gorm:"type:text" json:"content"`
	ImageUrl     *string `json:"imageUrl"`
	CountedViews int     `gorm:"default:0" json:"countedViews"`

	Status        string     `gorm:"not null;default:'draft';index" json:"status"` // draft, published
	PublishedDate *time.Time `json:"publishedDate"`

	Author     Customer       `gorm:"foreignKey:AuthorId" json:"author,omitempty"`
	Categories []PostCategory `gorm:"many2many:post_categories_map" json:"categories,omitempty"`
	Tags       []Tag          `gorm:"many2many:post_tags" json:"tags,omitempty"`
	Comments   []Comment      `gorm:"foreignKey:PostId" json:"comments,omitempty"`
}

type Posts []Post

type Comment struct {
	DTO
	PostId     uint   `gorm:"not null;index" json:"postId"`
	CustomerId *uint  `json:"customerId"`
	Name       string `gorm:"size:100" json:"name"`
	Email      string `gorm:"size:100" json:"email"`
	Body       string `gorm:"type:text;not null" json:"body"`
	IsApproved bool   `gorm:"default:false" json:"isApproved"`

	Post Post `gorm:"foreignKey:PostId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreatePostInput struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	ImageUrl    *string  `json:"imageUrl"`
	CategoryIds []uint   `json:"categoryIds"`
	Tags        []string `json:"tags"`
	Publish     bool     `json:"publish"`
}

type EditPostInput struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	ImageUrl    *string  `json:"imageUrl"`
	CategoryIds []uint   `json:"categoryIds"`
	Tags        []string `json:"tags"`
	Status      *string  `json:"status" validate:"omitempty,oneof=draft published"`
}

type CreateCommentInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required"`
}

type FilterPostInput struct {
	Pagination
	Category  string `json:"category"`
	Tag       string `json:"tag"`
	SearchKey string `json:"searchKey"`
}
