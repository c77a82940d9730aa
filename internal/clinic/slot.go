package clinic

import (
	"errors"
	"fmt"
)

var ErrInvalidSlot = errors.New("not a valid timeslot")

// Slot is one of the 12 fixed half-hour appointment windows: codes 1-6 cover
// the morning block (9:00-11:30) and 7-12 the afternoon block (14:00-16:30).
type Slot int

var slotTimes = [13]struct{ hour, minute int }{
	{},
	{9, 0}, {9, 30}, {10, 0}, {10, 30}, {11, 0}, {11, 30},
	{14, 0}, {14, 30}, {15, 0}, {15, 30}, {16, 0}, {16, 30},
}

// ParseSlot converts a slot code to a Slot, failing on anything outside 1-12.
func ParseSlot(code int) (Slot, error) {
	if code < 1 || code > 12 {
		return 0, fmt.Errorf("slot %d: %w", code, ErrInvalidSlot)
	}
	return Slot(code), nil
}

func (s Slot) Hour() int   { return slotTimes[s].hour }
func (s Slot) Minute() int { return slotTimes[s].minute }

// Compare orders slots by wall-clock time.
func (s Slot) Compare(other Slot) int {
	if s.Hour() != other.Hour() {
		return cmpInt(s.Hour(), other.Hour())
	}
	return cmpInt(s.Minute(), other.Minute())
}

func (s Slot) String() string {
	hour, minute := s.Hour(), s.Minute()
	period := "AM"
	display := hour
	if hour >= 12 {
		period = "PM"
		if hour > 12 {
			display = hour - 12
		}
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}
