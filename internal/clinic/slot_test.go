package clinic

import (
	"errors"
	"testing"
)

func TestParseSlot(t *testing.T) {
	for code := 1; code <= 12; code++ {
		if _, err := ParseSlot(code); err != nil {
			t.Errorf("ParseSlot(%d) = %v, want nil", code, err)
		}
	}
	for _, code := range []int{0, 13, -1, 100} {
		if _, err := ParseSlot(code); !errors.Is(err, ErrInvalidSlot) {
			t.Errorf("ParseSlot(%d) = %v, want ErrInvalidSlot", code, err)
		}
	}
}

func TestSlotTimes(t *testing.T) {
	tests := []struct {
		code         int
		hour, minute int
		str          string
	}{
		{1, 9, 0, "9:00 AM"},
		{2, 9, 30, "9:30 AM"},
		{6, 11, 30, "11:30 AM"},
		{7, 14, 0, "2:00 PM"},
		{10, 15, 30, "3:30 PM"},
		{12, 16, 30, "4:30 PM"},
	}
	for _, tt := range tests {
		slot, err := ParseSlot(tt.code)
		if err != nil {
			t.Fatalf("ParseSlot(%d): %v", tt.code, err)
		}
		if slot.Hour() != tt.hour || slot.Minute() != tt.minute {
			t.Errorf("slot %d = %d:%02d, want %d:%02d", tt.code, slot.Hour(), slot.Minute(), tt.hour, tt.minute)
		}
		if got := slot.String(); got != tt.str {
			t.Errorf("slot %d String() = %q, want %q", tt.code, got, tt.str)
		}
	}
}

func TestSlotCompare(t *testing.T) {
	// Slot codes ascend with wall-clock time across the lunch gap.
	for code := 1; code < 12; code++ {
		a, b := Slot(code), Slot(code+1)
		if a.Compare(b) >= 0 {
			t.Errorf("slot %d should order before slot %d", code, code+1)
		}
		if b.Compare(a) <= 0 {
			t.Errorf("slot %d should order after slot %d", code+1, code)
		}
	}
	if got := Slot(5).Compare(Slot(5)); got != 0 {
		t.Errorf("Compare(same slot) = %d, want 0", got)
	}
}
