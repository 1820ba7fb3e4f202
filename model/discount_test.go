package model

import (
	"testing"
	"time"

	"travel_agency/utils"
)

func makeDiscount(discountType string, value float64) Discount {
	return Discount{
		Name:         "Test",
		Code:         "TEST10",
		DiscountType: discountType,
		Value:        value,
		ApplyTo:      "all_tours",
		ValidFrom:    utils.DateOnly("2026-01-01"),
		ValidTo:      utils.DateOnly("2026-12-31"),
		IsActive:     true,
	}
}

func TestDiscountIsValidOn(t *testing.T) {
	d := makeDiscount("percentage", 10)

	inWindow := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	if !d.IsValidOn(inWindow) {
		t.Errorf("expected discount valid on %v", inWindow)
	}

	// ngày biên vẫn hợp lệ
	firstDay := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	if !d.IsValidOn(firstDay) {
		t.Errorf("expected discount valid on first day of window")
	}
	lastDay := time.Date(2026, 12, 31, 0, 1, 0, 0, time.UTC)
	if !d.IsValidOn(lastDay) {
		t.Errorf("expected discount valid on last day of window")
	}

	before := time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)
	if d.IsValidOn(before) {
		t.Errorf("expected discount invalid before window")
	}
	after := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	if d.IsValidOn(after) {
		t.Errorf("expected discount invalid after window")
	}

	d.IsActive = false
	if d.IsValidOn(inWindow) {
		t.Errorf("inactive discount must never be valid")
	}
}

func TestDiscountValidityLocalTimezone(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)

	d := makeDiscount("percentage", 10)
	d.ValidTo = utils.DateOnly("2026-06-15")

	// 1h sáng 16/06 giờ VN vẫn là 15/06 theo UTC — mã phải hết hạn theo ngày địa phương
	if d.IsValidOn(time.Date(2026, 6, 16, 1, 0, 0, 0, ict)) {
		t.Errorf("discount with validTo=2026-06-15 must be expired on local 2026-06-16")
	}

	if !d.IsValidOn(time.Date(2026, 6, 15, 23, 0, 0, 0, ict)) {
		t.Errorf("discount should stay valid until end of local 2026-06-15")
	}
}

func TestDiscountMaxUses(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	d := makeDiscount("fixed", 50)
	d.MaxUses = 0
	d.UsedCount = 99999
	if !d.IsValidOn(now) {
		t.Errorf("maxUses=0 means unlimited uses")
	}

	d.MaxUses = 100
	d.UsedCount = 99
	if !d.IsValidOn(now) {
		t.Errorf("discount with remaining uses should be valid")
	}

	d.UsedCount = 100
	if d.IsValidOn(now) {
		t.Errorf("discount at use cap must be invalid")
	}
}

func TestDiscountScope(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	catId := uint(7)
	tour := Tour{DTO: DTO{ID: 3}, CategoryId: &catId}
	otherTour := Tour{DTO: DTO{ID: 8}}

	d := makeDiscount("percentage", 10)
	if !d.CanApplyToTour(&tour, now) {
		t.Errorf("all_tours discount must apply to any tour")
	}

	d.ApplyTo = "specific_tours"
	d.Tours = []Tour{{DTO: DTO{ID: 3}}}
	if !d.CanApplyToTour(&tour, now) {
		t.Errorf("discount should apply to whitelisted tour")
	}
	if d.CanApplyToTour(&otherTour, now) {
		t.Errorf("discount must not apply outside its tour list")
	}

	d.ApplyTo = "tour_categories"
	d.Categories = []TourCategory{{DTO: DTO{ID: 7}}}
	if !d.CanApplyToTour(&tour, now) {
		t.Errorf("discount should apply to tour in whitelisted category")
	}
	if d.CanApplyToTour(&otherTour, now) {
		t.Errorf("tour without category must not match category scope")
	}
}

func TestDiscountCalculateAmount(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tour := Tour{DTO: DTO{ID: 1}}

	percent := makeDiscount("percentage", 10)
	if got := percent.CalculateAmount(2000000, &tour, now); got != 200000 {
		t.Errorf("10%% of 2,000,000 = 200,000, got %v", got)
	}

	// trần giảm giá
	maxDiscount := 150000.0
	percent.MaxDiscount = &maxDiscount
	if got := percent.CalculateAmount(2000000, &tour, now); got != 150000 {
		t.Errorf("discount should clamp to maxDiscount 150,000, got %v", got)
	}

	fixed := makeDiscount("fixed", 500000)
	if got := fixed.CalculateAmount(2000000, &tour, now); got != 500000 {
		t.Errorf("fixed discount = 500,000, got %v", got)
	}

	// trần giảm giá áp cho cả loại cố định
	fixedCap := 30000.0
	smallFixed := makeDiscount("fixed", 50000)
	smallFixed.MaxDiscount = &fixedCap
	if got := smallFixed.CalculateAmount(2000000, &tour, now); got != 30000 {
		t.Errorf("fixed discount should clamp to maxDiscount 30,000, got %v", got)
	}

	// giảm cố định lớn hơn đơn → không vượt quá giá trị đơn
	if got := fixed.CalculateAmount(300000, &tour, now); got != 300000 {
		t.Errorf("discount must not exceed booking amount, got %v", got)
	}

	// dưới giá trị đơn tối thiểu → không giảm
	fixed.MinBookingValue = 1000000
	if got := fixed.CalculateAmount(900000, &tour, now); got != 0 {
		t.Errorf("booking below minBookingValue gets no discount, got %v", got)
	}

	// hết hạn → không giảm
	expired := makeDiscount("percentage", 10)
	if got := expired.CalculateAmount(2000000, &tour, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("expired discount must return 0, got %v", got)
	}
}
