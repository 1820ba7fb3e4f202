package model

type Destination struct {
	DTO
	Name             string `gorm:"not null" validate:"required" json:"name"`
	Slug             string `gorm:"uniqueIndex;not null" json:"slug"`
	Country          string `gorm:"not null" json:"country"`
	Continent        string `gorm:"not null" json:"continent"` // asia, europe, africa, north_america, south_america, oceania, middle_east
	Description      string `gorm:"type:text" json:"description"`
	BestTimeToVisit  string `gorm:"size:200" json:"bestTimeToVisit"`
	VisaRequirements string `gorm:"type:text" json:"visaRequirements"`
	Climate          string `gorm:"type:text" json:"climate"`
	Culture          string `gorm:"type:text" json:"culture"`

	FeaturedImage string   `json:"featuredImage"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`

	IsPopular bool `gorm:"default:false" json:"isPopular"`
	IsActive  bool `gorm:"default:true" json:"isActive"`

	Images []DestinationImage `gorm:"foreignKey:DestinationId" json:"images,omitempty"`
}

type DestinationImage struct {
	DTO
	DestinationId uint   `gorm:"not null;index" json:"destinationId"`
	Url           string `gorm:"not null" json:"url"`
	Caption       string `json:"caption"`
	AltText       string `json:"altText"`
}

type CreateDestinationInput struct {
	Name             string   `json:"name" validate:"required"`
	Country          string   `json:"country" validate:"required"`
	Continent        string   `json:"continent" validate:"required,oneof=asia europe africa north_america south_america oceania middle_east"`
	Description      string   `json:"description"`
	BestTimeToVisit  string   `json:"bestTimeToVisit"`
	VisaRequirements string   `json:"visaRequirements"`
	Climate          string   `json:"climate"`
	Culture          string   `json:"culture"`
	FeaturedImage    string   `json:"featuredImage"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	IsPopular        bool     `json:"isPopular"`
}
