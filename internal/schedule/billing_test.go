package schedule

import (
	"testing"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
)

func TestCloseBillingPeriod(t *testing.T) {
	doc := newDocPatel() // family, $250
	tech := clinic.NewTechnician(
		clinic.Profile{First: "Jenny", Last: "Patel", DOB: clinic.Date{Year: 1991, Month: 8, Day: 9}},
		clinic.Bridgewater, 125)
	svc := newTestService(t, doc, tech)

	if _, err := svc.BookOffice(wed, 1, john, "120"); err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := svc.BookOffice(thu, 1, john, "120"); err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := svc.BookImaging(wed, 7, jane, clinic.XRay); err != nil {
		t.Fatalf("booking: %v", err)
	}

	statements := svc.CloseBillingPeriod()
	if len(statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(statements))
	}
	// Ordered by last name: Doe before Smith.
	if statements[0].Patient.Profile.Last != "Doe" || statements[1].Patient.Profile.Last != "Smith" {
		t.Errorf("statement order: %s, %s", statements[0].Patient.Profile.Last, statements[1].Patient.Profile.Last)
	}
	if statements[0].Visits != 2 || statements[0].Amount != 500 {
		t.Errorf("Doe statement = %d visits $%d, want 2 visits $500", statements[0].Visits, statements[0].Amount)
	}
	if statements[1].Visits != 1 || statements[1].Amount != 125 {
		t.Errorf("Smith statement = %d visits $%d, want 1 visit $125", statements[1].Visits, statements[1].Amount)
	}

	// Closing the period drains the schedule.
	if got := len(svc.Appointments()); got != 0 {
		t.Errorf("store holds %d appointments after close, want 0", got)
	}
	if got := svc.CloseBillingPeriod(); len(got) != 0 {
		t.Errorf("second close produced %d statements, want 0", len(got))
	}
}

func TestProviderCredits(t *testing.T) {
	docPatel := newDocPatel() // family, $250
	docLim := clinic.NewSpecialist(
		clinic.Profile{First: "Rachael", Last: "Lim", DOB: clinic.Date{Year: 1975, Month: 11, Day: 30}},
		clinic.Piscataway, clinic.Allergist, "23") // $350
	svc := newTestService(t, docPatel, docLim)

	if _, err := svc.BookOffice(wed, 1, john, "120"); err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := svc.BookOffice(thu, 2, john, "120"); err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := svc.BookOffice(wed, 3, jane, "23"); err != nil {
		t.Fatalf("booking: %v", err)
	}

	credits := svc.ProviderCredits()
	if len(credits) != 2 {
		t.Fatalf("got %d credits, want 2", len(credits))
	}
	// Ordered by last name: Lim before Patel.
	if credits[0].Provider.NPI != "23" || credits[1].Provider.NPI != "120" {
		t.Errorf("credit order: %s, %s", credits[0].Provider.NPI, credits[1].Provider.NPI)
	}
	if credits[0].Visits != 1 || credits[0].Amount != 350 {
		t.Errorf("Lim credit = %d visits $%d, want 1 visit $350", credits[0].Visits, credits[0].Amount)
	}
	if credits[1].Visits != 2 || credits[1].Amount != 500 {
		t.Errorf("Patel credit = %d visits $%d, want 2 visits $500", credits[1].Visits, credits[1].Amount)
	}

	// Credits do not drain the schedule.
	if got := len(svc.Appointments()); got != 3 {
		t.Errorf("store holds %d appointments after credits, want 3", got)
	}
}
