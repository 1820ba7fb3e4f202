package model

import (
	"testing"
	"time"
)

func TestTotalPassengers(t *testing.T) {
	b := TourBooking{AdultCount: 2, ChildCount: 1, InfantCount: 1}
	if got := b.TotalPassengers(); got != 4 {
		t.Errorf("expected 4 passengers, got %d", got)
	}
}

func TestBookingIsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	b := TourBooking{Status: "PENDING", ExpiresAt: &past}
	if !b.IsExpired(now) {
		t.Errorf("pending booking past deadline must be expired")
	}

	b.ExpiresAt = &future
	if b.IsExpired(now) {
		t.Errorf("pending booking before deadline must not be expired")
	}

	// booking đã xác nhận không bao giờ hết hạn — worker quét hết hạn
	// dựa vào check này sau khi đọc lại dưới lock
	b = TourBooking{Status: "CONFIRMED", ExpiresAt: &past}
	if b.IsExpired(now) {
		t.Errorf("confirmed booking must never expire")
	}

	b = TourBooking{Status: "CANCELLED", ExpiresAt: &past}
	if b.IsExpired(now) {
		t.Errorf("cancelled booking must not be counted as expired")
	}

	b = TourBooking{Status: "PENDING", ExpiresAt: nil}
	if b.IsExpired(now) {
		t.Errorf("booking without deadline must not expire")
	}
}

func TestBookingStateMachine(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{"PENDING", "CONFIRMED", true},
		{"PENDING", "CANCELLED", true},
		{"PENDING", "COMPLETED", false},
		{"PENDING", "REFUNDED", false},
		{"CONFIRMED", "COMPLETED", true},
		{"CONFIRMED", "REFUNDED", true},
		{"CONFIRMED", "CANCELLED", true},
		{"CONFIRMED", "PENDING", false},
		{"CANCELLED", "CONFIRMED", false},
		{"CANCELLED", "PENDING", false},
		{"COMPLETED", "REFUNDED", false},
		{"REFUNDED", "CONFIRMED", false},
	}

	for _, tc := range cases {
		b := TourBooking{Status: tc.from}
		if got := b.CanTransition(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}
