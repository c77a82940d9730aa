package clinic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate   = errors.New("not a valid calendar date")
	ErrPastOrToday   = errors.New("appointment date must be after today")
	ErrOutsideWindow = errors.New("appointment date is outside the booking window")
	ErrWeekend       = errors.New("appointment date falls on a weekend")
	ErrFutureDOB     = errors.New("date of birth must be before today")
)

// Date is a plain Gregorian calendar date. Construction never validates;
// an out-of-range date is still printable and reportable, and validity is
// queried with IsValid.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Today returns the current local calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate reads a date in M/D/YYYY form. The result may still be an
// invalid calendar date; callers check IsValid separately so the bad value
// can be echoed back in the error message.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q: %w", s, ErrInvalidDate)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("date %q: %w", s, ErrInvalidDate)
		}
		nums[i] = n
	}
	return Date{Year: nums[2], Month: nums[0], Day: nums[1]}, nil
}

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

func daysInMonth(month, year int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// IsValid reports whether the date exists on the Gregorian calendar,
// with February 29 legal only in leap years by the 4/100/400 rule.
func (d Date) IsValid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Month, d.Year)
}

// Compare orders dates lexicographically by (year, month, day).
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return cmpInt(d.Year, other.Year)
	}
	if d.Month != other.Month {
		return cmpInt(d.Month, other.Month)
	}
	return cmpInt(d.Day, other.Day)
}

func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// CheckFuture rejects a booking date that is today or earlier.
func (d Date) CheckFuture(today Date) error {
	if d.Compare(today) <= 0 {
		return ErrPastOrToday
	}
	return nil
}

// CheckWithinWindow rejects a booking date more than the given number of
// calendar months after today. The limit day is clamped to the end of the
// target month, matching ordinary calendar arithmetic.
func (d Date) CheckWithinWindow(today Date, months int) error {
	limit := today.addMonths(months)
	if d.Compare(limit) > 0 {
		return ErrOutsideWindow
	}
	return nil
}

// CheckWeekday rejects Saturdays and Sundays.
func (d Date) CheckWeekday() error {
	switch d.weekday() {
	case time.Saturday, time.Sunday:
		return ErrWeekend
	}
	return nil
}

// CheckBirthDate rejects a date of birth that is today or later.
func (d Date) CheckBirthDate(today Date) error {
	if d.Compare(today) >= 0 {
		return ErrFutureDOB
	}
	return nil
}

func (d Date) addMonths(months int) Date {
	year := d.Year
	month := d.Month + months
	for month > 12 {
		month -= 12
		year++
	}
	day := d.Day
	if max := daysInMonth(month, year); day > max {
		day = max
	}
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
