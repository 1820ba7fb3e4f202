package utils

import (
	"encoding/json"
	"testing"
)

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`"2026-08-30"`), &d); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if d.String() != "2026-08-30" {
		t.Errorf("parsed date = %q, want 2026-08-30", d.String())
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(out) != `"2026-08-30"` {
		t.Errorf("marshaled = %s, want \"2026-08-30\"", out)
	}

	if err := json.Unmarshal([]byte(`"30/08/2026"`), &d); err == nil {
		t.Errorf("expected error for wrong date format")
	}

	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("null should not error: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("null date should be zero")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("Vé máy bay khứ hồi\n  Khách sạn 4 sao  \n\nĂn sáng buffet\n")
	want := []string{"Vé máy bay khứ hồi", "Khách sạn 4 sao", "Ăn sáng buffet"}

	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	if lines := SplitLines(""); len(lines) != 0 {
		t.Errorf("empty text should produce no lines, got %v", lines)
	}
}

func TestIsValidValueOfConstant(t *testing.T) {
	levels := []string{"normal", "writer", "admin", "super_admin"}
	if !IsValidValueOfConstant("writer", levels) {
		t.Errorf("writer should be valid")
	}
	if IsValidValueOfConstant("root", levels) {
		t.Errorf("root should not be valid")
	}
}
