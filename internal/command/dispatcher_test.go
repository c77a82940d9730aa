package command

import (
	"strings"
	"testing"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
	"github.com/clinicdesk/clinic-scheduling/internal/roster"
	"github.com/clinicdesk/clinic-scheduling/internal/schedule"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	providers := []*clinic.Provider{
		clinic.NewSpecialist(
			clinic.Profile{First: "Andrew", Last: "Patel", DOB: clinic.Date{Year: 1989, Month: 1, Day: 21}},
			clinic.Bridgewater, clinic.Family, "120"),
		clinic.NewTechnician(
			clinic.Profile{First: "Jenny", Last: "Patel", DOB: clinic.Date{Year: 1991, Month: 8, Day: 9}},
			clinic.Bridgewater, 125),
	}
	svc := schedule.NewService(roster.New(providers), schedule.Options{
		Now: func() clinic.Date { return clinic.Date{Year: 2024, Month: 10, Day: 1} },
	})
	return NewDispatcher(svc)
}

func TestDispatcherBookAndCancel(t *testing.T) {
	d := newTestDispatcher(t)

	out, done := d.Execute("D,10/2/2024,1,John,Doe,12/13/1989,120")
	if done {
		t.Fatal("booking should not terminate the session")
	}
	if !strings.Contains(out, "booked") {
		t.Errorf("booking output = %q", out)
	}

	out, _ = d.Execute("C,10/2/2024,1,john,doe,12/13/1989")
	if !strings.Contains(out, "has been canceled") {
		t.Errorf("cancel output = %q", out)
	}

	out, _ = d.Execute("C,10/2/2024,1,John,Doe,12/13/1989")
	if !strings.Contains(out, "does not exist") {
		t.Errorf("cancel of missing appointment = %q", out)
	}
}

func TestDispatcherImagingAndReports(t *testing.T) {
	d := newTestDispatcher(t)

	if out, _ := d.Execute("T,10/2/2024,1,John,Doe,12/13/1989,xray"); !strings.Contains(out, "booked") {
		t.Fatalf("imaging output = %q", out)
	}
	if out, _ := d.Execute("D,10/3/2024,2,Ann,Smith,3/1/1985,120"); !strings.Contains(out, "booked") {
		t.Fatalf("office output = %q", out)
	}

	for _, cmd := range []string{"PA", "PP", "PL", "PO", "PI"} {
		out, _ := d.Execute(cmd)
		if !strings.Contains(out, "** end of list **") {
			t.Errorf("%s output = %q", cmd, out)
		}
	}

	out, _ := d.Execute("PC")
	if !strings.Contains(out, "credit amount") {
		t.Errorf("PC output = %q", out)
	}

	// PS closes the billing period and drains the schedule.
	out, _ = d.Execute("PS")
	if !strings.Contains(out, "Billing statement") {
		t.Errorf("PS output = %q", out)
	}
	if out, _ := d.Execute("PA"); out != "Schedule calendar is empty." {
		t.Errorf("PA after PS = %q, want empty-calendar message", out)
	}
}

func TestDispatcherErrors(t *testing.T) {
	d := newTestDispatcher(t)

	tests := []struct {
		name, line, contains string
	}{
		{"unknown command", "Z,stuff", "Invalid command!"},
		{"missing tokens", "D,10/2/2024,1,John", "missing data tokens"},
		{"bad slot", "D,10/2/2024,99,John,Doe,12/13/1989,120", "not a valid timeslot"},
		{"bad slot text", "D,10/2/2024,one,John,Doe,12/13/1989,120", "not a valid timeslot"},
		{"bad date", "D,2024-10-02,1,John,Doe,12/13/1989,120", "not a valid calendar date"},
		{"weekend", "D,10/5/2024,1,John,Doe,12/13/1989,120", "weekend"},
		{"unknown npi", "D,10/2/2024,1,John,Doe,12/13/1989,999", "not in the roster"},
		{"bad room", "T,10/2/2024,1,John,Doe,12/13/1989,mri", "imaging service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, done := d.Execute(tt.line)
			if done {
				t.Fatal("error should not terminate the session")
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("Execute(%q) = %q, want substring %q", tt.line, out, tt.contains)
			}
		})
	}
}

func TestDispatcherQuitAndBlank(t *testing.T) {
	d := newTestDispatcher(t)

	if out, _ := d.Execute("   "); out != "" {
		t.Errorf("blank line output = %q, want empty", out)
	}
	out, done := d.Execute("Q")
	if !done || out != "Scheduler is terminated." {
		t.Errorf("Q = (%q, %v)", out, done)
	}
}

func TestDispatcherReschedule(t *testing.T) {
	d := newTestDispatcher(t)
	d.Execute("D,10/2/2024,1,John,Doe,12/13/1989,120")

	out, _ := d.Execute("R,10/2/2024,1,John,Doe,12/13/1989,4")
	if !strings.Contains(out, "Rescheduled to") {
		t.Errorf("reschedule output = %q", out)
	}
	if out, _ := d.Execute("R,10/2/2024,1,John,Doe,12/13/1989,4"); !strings.Contains(out, "not found") {
		t.Errorf("reschedule of moved appointment = %q", out)
	}
}
