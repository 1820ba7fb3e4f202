package model

import (
	"testing"
	"time"
)

func TestTourCurrentPrice(t *testing.T) {
	tour := Tour{BasePrice: 5000000}
	if got := tour.CurrentPrice(); got != 5000000 {
		t.Errorf("expected base price, got %v", got)
	}

	promo := 4200000.0
	tour.DiscountPrice = &promo
	if got := tour.CurrentPrice(); got != 4200000 {
		t.Errorf("expected discount price, got %v", got)
	}

	// giá khuyến mãi 0 coi như không có
	zero := 0.0
	tour.DiscountPrice = &zero
	if got := tour.CurrentPrice(); got != 5000000 {
		t.Errorf("zero discount price falls back to base, got %v", got)
	}
}

func TestTourAvailability(t *testing.T) {
	tour := Tour{IsActive: true, AvailableCapacity: 3}
	if !tour.IsAvailable() {
		t.Errorf("active tour with capacity should be available")
	}

	tour.AvailableCapacity = 0
	if tour.IsAvailable() {
		t.Errorf("sold out tour must not be available")
	}

	tour = Tour{IsActive: false, AvailableCapacity: 10}
	if tour.IsAvailable() {
		t.Errorf("inactive tour must not be available")
	}
}

func TestTourIsRoundTrip(t *testing.T) {
	if !(&Tour{TourType: "round_trip"}).IsRoundTrip() {
		t.Errorf("round_trip tour should report round trip")
	}
	if (&Tour{TourType: "one_way"}).IsRoundTrip() {
		t.Errorf("one_way tour must not report round trip")
	}
}

func TestPageVisibility(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	page := Page{Status: "published"}
	if !page.IsVisible(now) {
		t.Errorf("published page without expiration should be visible")
	}

	page.ExpirationDate = &future
	if !page.IsVisible(now) {
		t.Errorf("published page before expiration should be visible")
	}

	page.ExpirationDate = &past
	if page.IsVisible(now) {
		t.Errorf("expired page must be hidden")
	}

	page = Page{Status: "draft"}
	if page.IsVisible(now) {
		t.Errorf("draft page must be hidden")
	}
}
