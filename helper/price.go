package helper

import "travel_agency/model"

// PassengerPrice giá cho 1 hành khách theo loại.
// Child chưa cấu hình → dùng giá người lớn, infant chưa cấu hình → miễn phí.
func PassengerPrice(tour *model.Tour, passengerType string) float64 {
	adultPrice := tour.CurrentPrice()

	switch passengerType {
	case "child":
		if tour.ChildPrice != nil && *tour.ChildPrice > 0 {
			return *tour.ChildPrice
		}
		return adultPrice
	case "infant":
		if tour.InfantPrice != nil {
			return *tour.InfantPrice
		}
		return 0
	default:
		return adultPrice
	}
}

// CalculateBaseAmount tổng tiền trước thuế và giảm giá
func CalculateBaseAmount(tour *model.Tour, adults, children, infants int) float64 {
	total := float64(adults) * PassengerPrice(tour, "adult")
	total += float64(children) * PassengerPrice(tour, "child")
	total += float64(infants) * PassengerPrice(tour, "infant")
	return total
}

// SeatPriceModifier cộng thêm phụ phí chọn ghế (nếu có)
func SeatPriceModifier(seats []model.Seat) float64 {
	var extra float64
	for _, s := range seats {
		extra += s.PriceModifier
	}
	return extra
}

// CalculateTotalAmount = base + tax - discount, không bao giờ âm
func CalculateTotalAmount(baseAmount, taxAmount, discountAmount float64) float64 {
	total := baseAmount + taxAmount - discountAmount
	if total < 0 {
		return 0
	}
	return total
}
