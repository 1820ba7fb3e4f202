package model

type Transportation struct {
	DTO
	Name          string  `gorm:"not null" validate:"required" json:"name"`
	TransportType string  `gorm:"not null" validate:"required,oneof=bus train airplane cruise minibus car" json:"transportType"`
	Capacity      int     `gorm:"not null" validate:"required,min=1" json:"capacity"`
	Facilities    string  `gorm:"type:text" json:"facilities"`
	ImageUrl      *string `json:"imageUrl"`
	IsActive      bool    `gorm:"default:true" json:"isActive"`

	Layout *SeatLayout `gorm:"foreignKey:TransportationId" json:"layout,omitempty"`
	Seats  []Seat      `gorm:"foreignKey:TransportationId" json:"seats,omitempty"`
}

type SeatLayout struct {
	DTO
	TransportationId uint `gorm:"not null;uniqueIndex" json:"transportationId"`
	Rows             int  `gorm:"not null" json:"rows"`
	Columns          int  `gorm:"not null" json:"columns"`
	AisleAfterColumn int  `gorm:"default:0" json:"aisleAfterColumn"`
}

type Seat struct {
	DTO
	TransportationId uint    `gorm:"not null;index;uniqueIndex:idx_transport_seat" json:"transportationId"`
	SeatNumber       string  `gorm:"not null;uniqueIndex:idx_transport_seat" json:"seatNumber"` // "A1", "B3"
	SeatClass        string  `gorm:"not null;default:'economy'" json:"seatClass"`               // economy, business, first, premium
	Row              int     `gorm:"not null" json:"row"`
	Column           string  `gorm:"not null" json:"column"`
	Features         string  `gorm:"type:text" json:"features"` // "window,extra_legroom"
	PriceModifier    float64 `gorm:"default:0" json:"priceModifier"`
	IsActive         bool    `gorm:"default:true" json:"isActive"`

	Transportation Transportation `gorm:"foreignKey:TransportationId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type CreateTransportationInput struct {
	Name             string `json:"name" validate:"required"`
	TransportType    string `json:"transportType" validate:"required,oneof=bus train airplane cruise minibus car"`
	Capacity         int    `json:"capacity" validate:"required,min=1"`
	Facilities       string `json:"facilities"`
	Rows             int    `json:"rows" validate:"required,min=1"`
	Columns          int    `json:"columns" validate:"required,min=1,max=10"`
	AisleAfterColumn int    `json:"aisleAfterColumn"`
}
