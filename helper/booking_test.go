package helper

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"travel_agency/model"
)

func TestNewBookingReferenceFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^TRV-[0-9A-F]{12}$`)

	for i := 0; i < 100; i++ {
		ref := NewBookingReference()
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match TRV-XXXXXXXXXXXX format", ref)
		}
	}
}

func TestNewBookingReferenceUniqueness(t *testing.T) {
	const workers = 10
	const perWorker = 1000

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, NewBookingReference())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, ref := range local {
				if seen[ref] {
					t.Errorf("duplicate booking reference generated: %s", ref)
				}
				seen[ref] = true
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("expected %d unique references, got %d", workers*perWorker, len(seen))
	}
}

func TestCheckBookingPreconditions(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	tour := model.Tour{IsActive: true, AvailableCapacity: 10, DepartureDatetime: future}
	if err := CheckBookingPreconditions(&tour, 4, now); err != nil {
		t.Errorf("bookable tour rejected: %v", err)
	}

	// tour khởi hành 8h sáng, đặt lúc 9h cùng ngày phải bị từ chối
	// dù job đóng tour hằng ngày chưa chạy
	departed := model.Tour{IsActive: true, AvailableCapacity: 10,
		DepartureDatetime: time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)}
	if err := CheckBookingPreconditions(&departed, 1, now); err == nil {
		t.Errorf("booking against a departed tour must be rejected")
	}

	closed := model.Tour{IsActive: false, AvailableCapacity: 10, DepartureDatetime: future}
	if err := CheckBookingPreconditions(&closed, 1, now); err == nil {
		t.Errorf("booking against an inactive tour must be rejected")
	}

	full := model.Tour{IsActive: true, AvailableCapacity: 3, DepartureDatetime: future}
	if err := CheckBookingPreconditions(&full, 4, now); err == nil {
		t.Errorf("booking beyond available capacity must be rejected")
	}
}

// Hai request tranh ghế cuối chạy tuần tự dưới row lock:
// đúng một request thành công, hủy booking trả lại chỗ
func TestLastSeatCheckThenDecrement(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	tour := model.Tour{IsActive: true, AvailableCapacity: 1, DepartureDatetime: now.Add(time.Hour)}

	booking := model.TourBooking{AdultCount: 1}

	if err := CheckBookingPreconditions(&tour, booking.TotalPassengers(), now); err != nil {
		t.Fatalf("first booking for the last seat should pass: %v", err)
	}
	tour.AvailableCapacity -= booking.TotalPassengers()

	if err := CheckBookingPreconditions(&tour, 1, now); err == nil {
		t.Errorf("second booking for the last seat must be rejected")
	}
	if tour.AvailableCapacity != 0 {
		t.Errorf("capacity after booking = %d, want 0", tour.AvailableCapacity)
	}

	// hủy booking trả lại đúng số khách đã giữ
	tour.AvailableCapacity += booking.TotalPassengers()
	if tour.AvailableCapacity != 1 {
		t.Errorf("capacity after cancel = %d, want 1", tour.AvailableCapacity)
	}
	if err := CheckBookingPreconditions(&tour, 1, now); err != nil {
		t.Errorf("seat freed by cancellation should be bookable again: %v", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("password must not be stored in plain text")
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Errorf("correct password should verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Errorf("wrong password must not verify")
	}
}

func TestCapabilities(t *testing.T) {
	cases := []struct {
		level      string
		capability string
		want       bool
	}{
		{"normal", "can_manage_content", false},
		{"normal", "can_manage_users", false},
		{"writer", "can_manage_content", true},
		{"writer", "can_manage_tours", false},
		{"writer", "can_manage_users", false},
		{"admin", "can_manage_tours", true},
		{"admin", "can_manage_bookings", true},
		{"admin", "can_manage_discounts", true},
		{"admin", "can_view_financial_reports", true},
		{"admin", "can_manage_users", false},
		{"super_admin", "can_manage_users", true},
		{"super_admin", "can_manage_content", true},
		{"unknown_level", "can_manage_content", false},
	}

	for _, tc := range cases {
		if got := HasCapability(tc.level, tc.capability); got != tc.want {
			t.Errorf("HasCapability(%q, %q) = %v, want %v", tc.level, tc.capability, got, tc.want)
		}
	}
}
