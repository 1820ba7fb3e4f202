package helper

import (
	"testing"

	"travel_agency/model"
)

func TestPassengerPrice(t *testing.T) {
	child := 3000000.0
	infant := 500000.0
	tour := model.Tour{BasePrice: 5000000, ChildPrice: &child, InfantPrice: &infant}

	if got := PassengerPrice(&tour, "adult"); got != 5000000 {
		t.Errorf("adult price = %v, want 5000000", got)
	}
	if got := PassengerPrice(&tour, "child"); got != 3000000 {
		t.Errorf("child price = %v, want 3000000", got)
	}
	if got := PassengerPrice(&tour, "infant"); got != 500000 {
		t.Errorf("infant price = %v, want 500000", got)
	}
}

func TestPassengerPriceFallbacks(t *testing.T) {
	tour := model.Tour{BasePrice: 5000000}

	// chưa cấu hình giá trẻ em → dùng giá người lớn
	if got := PassengerPrice(&tour, "child"); got != 5000000 {
		t.Errorf("child without configured price should use adult price, got %v", got)
	}
	// chưa cấu hình giá em bé → miễn phí
	if got := PassengerPrice(&tour, "infant"); got != 0 {
		t.Errorf("infant without configured price should be free, got %v", got)
	}
}

func TestCalculateBaseAmount(t *testing.T) {
	child := 3000000.0
	infant := 500000.0
	tour := model.Tour{BasePrice: 5000000, ChildPrice: &child, InfantPrice: &infant}

	// 2 người lớn + 1 trẻ em + 1 em bé
	want := 2*5000000.0 + 3000000 + 500000
	if got := CalculateBaseAmount(&tour, 2, 1, 1); got != want {
		t.Errorf("base amount = %v, want %v", got, want)
	}

	// giá khuyến mãi áp cho người lớn
	promo := 4000000.0
	tour.DiscountPrice = &promo
	want = 2*4000000.0 + 3000000 + 500000
	if got := CalculateBaseAmount(&tour, 2, 1, 1); got != want {
		t.Errorf("base amount with promo = %v, want %v", got, want)
	}
}

func TestCalculateTotalAmount(t *testing.T) {
	if got := CalculateTotalAmount(1000000, 80000, 200000); got != 880000 {
		t.Errorf("total = %v, want 880000", got)
	}

	// tổng không bao giờ âm
	if got := CalculateTotalAmount(100000, 0, 500000); got != 0 {
		t.Errorf("total must floor at 0, got %v", got)
	}
}

func TestSeatPriceModifier(t *testing.T) {
	seats := []model.Seat{
		{PriceModifier: 50000},
		{PriceModifier: 0},
		{PriceModifier: 100000},
	}
	if got := SeatPriceModifier(seats); got != 150000 {
		t.Errorf("seat modifier sum = %v, want 150000", got)
	}
}
