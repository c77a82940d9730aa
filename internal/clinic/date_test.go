package clinic

import "testing"

func TestDateIsValid(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"leap year feb 29", Date{2020, 2, 29}, true},
		{"end of year", Date{2021, 12, 31}, true},
		{"non-leap feb 29", Date{2019, 2, 29}, false},
		{"century non-leap feb 29", Date{1900, 2, 29}, false},
		{"400-year leap feb 29", Date{2000, 2, 29}, true},
		{"april 31", Date{2023, 4, 31}, false},
		{"month 13", Date{2022, 13, 1}, false},
		{"month 0", Date{2022, 0, 1}, false},
		{"negative day", Date{2023, 2, -1}, false},
		{"day 0", Date{2023, 6, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.IsValid(); got != tt.want {
				t.Errorf("IsValid(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{Date{2024, 3, 1}, Date{2024, 3, 1}, 0},
		{Date{2023, 12, 31}, Date{2024, 1, 1}, -1},
		{Date{2024, 2, 1}, Date{2024, 1, 31}, 1},
		{Date{2024, 3, 4}, Date{2024, 3, 5}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDateBookingGates(t *testing.T) {
	today := Date{2024, 10, 1} // a Tuesday

	if err := (Date{2024, 10, 1}).CheckFuture(today); err != ErrPastOrToday {
		t.Errorf("CheckFuture(today) = %v, want ErrPastOrToday", err)
	}
	if err := (Date{2024, 9, 30}).CheckFuture(today); err != ErrPastOrToday {
		t.Errorf("CheckFuture(past) = %v, want ErrPastOrToday", err)
	}
	if err := (Date{2024, 10, 2}).CheckFuture(today); err != nil {
		t.Errorf("CheckFuture(tomorrow) = %v, want nil", err)
	}

	if err := (Date{2025, 4, 1}).CheckWithinWindow(today, 6); err != nil {
		t.Errorf("CheckWithinWindow(exactly six months) = %v, want nil", err)
	}
	if err := (Date{2025, 4, 2}).CheckWithinWindow(today, 6); err != ErrOutsideWindow {
		t.Errorf("CheckWithinWindow(past window) = %v, want ErrOutsideWindow", err)
	}

	// 2024-10-05 is a Saturday, 10-06 a Sunday, 10-07 a Monday.
	if err := (Date{2024, 10, 5}).CheckWeekday(); err != ErrWeekend {
		t.Errorf("CheckWeekday(Saturday) = %v, want ErrWeekend", err)
	}
	if err := (Date{2024, 10, 6}).CheckWeekday(); err != ErrWeekend {
		t.Errorf("CheckWeekday(Sunday) = %v, want ErrWeekend", err)
	}
	if err := (Date{2024, 10, 7}).CheckWeekday(); err != nil {
		t.Errorf("CheckWeekday(Monday) = %v, want nil", err)
	}

	if err := (Date{2024, 10, 1}).CheckBirthDate(today); err != ErrFutureDOB {
		t.Errorf("CheckBirthDate(today) = %v, want ErrFutureDOB", err)
	}
	if err := (Date{2024, 10, 15}).CheckBirthDate(today); err != ErrFutureDOB {
		t.Errorf("CheckBirthDate(future) = %v, want ErrFutureDOB", err)
	}
	if err := (Date{1989, 12, 13}).CheckBirthDate(today); err != nil {
		t.Errorf("CheckBirthDate(past) = %v, want nil", err)
	}
}

func TestDateWindowClampsToMonthEnd(t *testing.T) {
	// Six months after Aug 31 lands in February, which has no day 31.
	today := Date{2024, 8, 31}
	if err := (Date{2025, 2, 28}).CheckWithinWindow(today, 6); err != nil {
		t.Errorf("CheckWithinWindow(clamped limit) = %v, want nil", err)
	}
	if err := (Date{2025, 3, 1}).CheckWithinWindow(today, 6); err != ErrOutsideWindow {
		t.Errorf("CheckWithinWindow(past clamped limit) = %v, want ErrOutsideWindow", err)
	}
}

func TestDateString(t *testing.T) {
	if got := (Date{2024, 9, 30}).String(); got != "9/30/2024" {
		t.Errorf("String() = %q, want %q", got, "9/30/2024")
	}
}
