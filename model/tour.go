package model

import "time"

type TourCategory struct {
	DTO
	Name         string  `gorm:"not null" validate:"required" json:"name"`
	Slug         string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string  `gorm:"type:text" json:"description"`
	ImageUrl     *string `json:"imageUrl"`
	IsActive     bool    `gorm:"default:true" json:"isActive"`
	DisplayOrder int     `gorm:"default:0" json:"displayOrder"`
}

type TourImage struct {
	DTO
	TourId       uint   `gorm:"not null;index" json:"tourId"`
	Url          string `gorm:"not null" json:"url"`
	Caption      string `json:"caption"`
	AltText      string `json:"altText"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
}

type Tour struct {
	DTO
	Title            string `gorm:"not null" validate:"required" json:"title"`
	Slug             string `gorm:"uniqueIndex;not null" json:"slug"`
	Description      string `gorm:"type:text" json:"description"`
	ShortDescription string `gorm:"size:300" json:"shortDescription"`
	TourType         string `gorm:"not null;index" json:"tourType"` // one_way, round_trip, multi_city, package
	CategoryId       *uint  `json:"categoryId"`

	OriginCity      string `gorm:"not null" json:"originCity"`
	DestinationCity string `gorm:"not null;index" json:"destinationCity"`
	DurationDays    int    `gorm:"not null" json:"durationDays"`
	DurationNights  int    `gorm:"not null" json:"durationNights"`

	DepartureDatetime         time.Time  `gorm:"not null;index" json:"departureDatetime"`
	DepartureTransportationId *uint      `json:"departureTransportationId"`
	ReturnDatetime            *time.Time `json:"returnDatetime"`
	ReturnTransportationId    *uint      `json:"returnTransportationId"`

	BasePrice     float64  `gorm:"not null" json:"basePrice"`
	ChildPrice    *float64 `json:"childPrice"`
	InfantPrice   *float64 `json:"infantPrice"`
	DiscountPrice *float64 `json:"discountPrice"`

	TotalCapacity     int `gorm:"not null" json:"totalCapacity"`
	AvailableCapacity int `gorm:"not null" json:"availableCapacity"`
	MinTravelers      int `gorm:"default:1" json:"minTravelers"`
	MaxTravelers      int `gorm:"default:50" json:"maxTravelers"`

	FeaturedImage string `json:"featuredImage"`
	Includes      string `gorm:"type:text" json:"includes"` // mỗi dòng một mục
	Excludes      string `gorm:"type:text" json:"excludes"`
	Itinerary     string `gorm:"type:text" json:"itinerary"`
	Requirements  string `gorm:"type:text" json:"requirements"`

	IsActive               bool `gorm:"default:true;index" json:"isActive"`
	IsFeatured             bool `gorm:"default:false" json:"isFeatured"`
	InstantConfirmation    bool `gorm:"default:true" json:"instantConfirmation"`
	SeatSelectionAvailable bool `gorm:"default:true" json:"seatSelectionAvailable"`

	Category                *TourCategory   `gorm:"foreignKey:CategoryId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	DepartureTransportation *Transportation `gorm:"foreignKey:DepartureTransportationId" json:"departureTransportation,omitempty"`
	ReturnTransportation    *Transportation `gorm:"foreignKey:ReturnTransportationId" json:"returnTransportation,omitempty"`
	Images                  []TourImage     `gorm:"foreignKey:TourId" json:"images,omitempty"`
}

type Tours []Tour

func (t *Tour) IsRoundTrip() bool {
	return t.TourType == "round_trip"
}

func (t *Tour) IsAvailable() bool {
	return t.IsActive && t.AvailableCapacity > 0
}

// CurrentPrice ưu tiên giá khuyến mãi nếu có
func (t *Tour) CurrentPrice() float64 {
	if t.DiscountPrice != nil && *t.DiscountPrice > 0 {
		return *t.DiscountPrice
	}
	return t.BasePrice
}

// TourSeat là instance ghế của một tour theo từng chặng (đi/về),
// sinh ra từ danh sách ghế của phương tiện khi tạo tour
type TourSeat struct {
	DTO
	TourId    uint       `gorm:"not null;uniqueIndex:idx_tour_leg_seat" json:"tourId"`
	SeatId    uint       `gorm:"not null;uniqueIndex:idx_tour_leg_seat" json:"seatId"`
	Leg       string     `gorm:"not null;uniqueIndex:idx_tour_leg_seat" json:"leg"` // DEPARTURE, RETURN
	Status    string     `gorm:"not null;default:'AVAILABLE'" json:"status"`        // AVAILABLE, HELD, BOOKED
	HeldBy    string     `json:"heldBy,omitempty"`
	ExpiredAt *time.Time `json:"expiredAt,omitempty"`

	Tour Tour `gorm:"foreignKey:TourId;constraint:OnDelete:CASCADE" json:"-"`
	Seat Seat `gorm:"foreignKey:SeatId" json:"-"`
}

type CreateTourInput struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription" validate:"max=300"`
	TourType         string `json:"tourType" validate:"required,oneof=one_way round_trip multi_city package"`
	CategoryId       *uint  `json:"categoryId"`

	OriginCity      string `json:"originCity" validate:"required"`
	DestinationCity string `json:"destinationCity" validate:"required"`
	DurationDays    int    `json:"durationDays" validate:"required,min=1"`
	DurationNights  int    `json:"durationNights" validate:"min=0"`

	DepartureDatetime         time.Time  `json:"departureDatetime" validate:"required"`
	DepartureTransportationId *uint      `json:"departureTransportationId"`
	ReturnDatetime            *time.Time `json:"returnDatetime"`
	ReturnTransportationId    *uint      `json:"returnTransportationId"`

	BasePrice   float64  `json:"basePrice" validate:"required,gt=0"`
	ChildPrice  *float64 `json:"childPrice" validate:"omitempty,gt=0"`
	InfantPrice *float64 `json:"infantPrice" validate:"omitempty,gte=0"`

	TotalCapacity int `json:"totalCapacity" validate:"required,min=1"`
	MinTravelers  int `json:"minTravelers" validate:"omitempty,min=1"`
	MaxTravelers  int `json:"maxTravelers" validate:"omitempty,min=1"`

	FeaturedImage          string `json:"featuredImage"`
	Includes               string `json:"includes"`
	Excludes               string `json:"excludes"`
	Itinerary              string `json:"itinerary"`
	Requirements           string `json:"requirements"`
	IsFeatured             bool   `json:"isFeatured"`
	SeatSelectionAvailable *bool  `json:"seatSelectionAvailable"`
}

type FilterTourInput struct {
	Pagination
	Category    string   `json:"category"` // category slug
	TourType    string   `json:"tourType"`
	Destination string   `json:"destination"`
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
	IsFeatured  *bool    `json:"isFeatured"`
	SearchKey   string   `json:"searchKey"`
}
