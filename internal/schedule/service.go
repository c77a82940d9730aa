package schedule

import (
	"fmt"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
	"github.com/clinicdesk/clinic-scheduling/internal/report"
	"github.com/clinicdesk/clinic-scheduling/internal/roster"
)

const defaultWindowMonths = 6

// Options tune the service. The zero value means: real clock, six-month
// booking window.
type Options struct {
	// Now supplies "today" for the booking gates. Tests pin it.
	Now func() clinic.Date
	// WindowMonths is how far ahead bookings are accepted.
	WindowMonths int
}

// Service runs the scheduling operations over the store, the technician
// rotation, and the provider roster. Every operation validates fully before
// mutating anything, so a failed command leaves the schedule untouched.
type Service struct {
	store    *Store
	rotation *Rotation
	roster   *roster.Roster
	now      func() clinic.Date
	window   int
}

func NewService(r *roster.Roster, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = clinic.Today
	}
	window := opts.WindowMonths
	if window <= 0 {
		window = defaultWindowMonths
	}
	return &Service{
		store:    NewStore(),
		rotation: NewRotation(r.Technicians()),
		roster:   r,
		now:      now,
		window:   window,
	}
}

// BookOffice books an office visit with the specialist holding the given
// NPI.
func (s *Service) BookOffice(date clinic.Date, slot clinic.Slot, profile clinic.Profile, npi string) (*clinic.Appointment, error) {
	if err := s.checkBooking(date, profile); err != nil {
		return nil, err
	}

	provider := s.roster.SpecialistByNPI(npi)
	if provider == nil {
		return nil, fmt.Errorf("npi %s: %w", npi, ErrUnknownProvider)
	}

	if s.store.FindByKey(date, slot, profile) != nil {
		return nil, ErrDuplicateAppointment
	}
	if s.store.ProviderBusy(provider, date, slot) {
		return nil, fmt.Errorf("%s at %s on %s: %w", provider.Profile, slot, date, ErrProviderBusy)
	}

	appt := clinic.NewOffice(date, slot, clinic.NewPatient(profile), provider)
	if err := s.store.Add(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// BookImaging books an imaging visit, delegating technician selection to the
// rotation. The rotation cursor moves only when the booking goes through.
func (s *Service) BookImaging(date clinic.Date, slot clinic.Slot, profile clinic.Profile, room clinic.RoomKind) (*clinic.Appointment, error) {
	if err := s.checkBooking(date, profile); err != nil {
		return nil, err
	}

	// Duplicate check comes before the rotation scan so a rejected booking
	// cannot advance the cursor.
	if s.store.FindByKey(date, slot, profile) != nil {
		return nil, ErrDuplicateAppointment
	}

	tech, err := s.rotation.Assign(s.store, date, slot, room)
	if err != nil {
		return nil, err
	}

	appt := clinic.NewImaging(date, slot, clinic.NewPatient(profile), tech, room)
	if err := s.store.Add(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Cancel removes the appointment matching (date, slot, patient) and returns
// it. The provider is not part of the match key.
func (s *Service) Cancel(date clinic.Date, slot clinic.Slot, profile clinic.Profile) (*clinic.Appointment, error) {
	probe := &clinic.Appointment{Date: date, Slot: slot, Patient: clinic.NewPatient(profile)}
	return s.store.Remove(probe)
}

// Reschedule moves an existing appointment to a new slot on the same date
// with the same provider. If the provider is busy at the new slot the
// original appointment is left untouched.
func (s *Service) Reschedule(date clinic.Date, oldSlot clinic.Slot, profile clinic.Profile, newSlot clinic.Slot) (*clinic.Appointment, error) {
	existing := s.store.FindByKey(date, oldSlot, profile)
	if existing == nil {
		return nil, ErrNotFound
	}

	if s.store.ProviderBusy(existing.Provider, date, newSlot) {
		return nil, fmt.Errorf("%s at %s on %s: %w", existing.Provider.Profile, newSlot, date, ErrProviderBusy)
	}
	if s.store.FindByKey(date, newSlot, profile) != nil {
		return nil, ErrDuplicateAppointment
	}

	if _, err := s.store.Remove(existing); err != nil {
		return nil, err
	}
	updated := &clinic.Appointment{
		Kind:     existing.Kind,
		Date:     date,
		Slot:     newSlot,
		Patient:  existing.Patient,
		Provider: existing.Provider,
		Room:     existing.Room,
	}
	if err := s.store.Add(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Appointments returns the current schedule in insertion order.
func (s *Service) Appointments() []*clinic.Appointment {
	return s.store.Appointments()
}

// Providers returns the roster in load order.
func (s *Service) Providers() []*clinic.Provider {
	return s.roster.Providers()
}

// CloseBillingPeriod generates the per-patient statements and empties the
// schedule: billed appointments do not carry into the next period.
func (s *Service) CloseBillingPeriod() []report.PatientStatement {
	statements := report.PatientStatements(s.store.Appointments())
	s.store.Clear()
	return statements
}

// ProviderCredits sums each provider's booked visits at their rate, ordered
// by last name.
func (s *Service) ProviderCredits() []report.ProviderCredit {
	return report.ProviderCredits(s.roster.Providers(), s.store.Appointments())
}

func (s *Service) checkBooking(date clinic.Date, profile clinic.Profile) error {
	if !date.IsValid() {
		return fmt.Errorf("appointment date %s: %w", date, clinic.ErrInvalidDate)
	}
	today := s.now()
	if err := date.CheckFuture(today); err != nil {
		return fmt.Errorf("appointment date %s: %w", date, err)
	}
	if err := date.CheckWithinWindow(today, s.window); err != nil {
		return fmt.Errorf("appointment date %s: %w", date, err)
	}
	if err := date.CheckWeekday(); err != nil {
		return fmt.Errorf("appointment date %s: %w", date, err)
	}

	if !profile.DOB.IsValid() {
		return fmt.Errorf("date of birth %s: %w", profile.DOB, clinic.ErrInvalidDate)
	}
	if err := profile.DOB.CheckBirthDate(today); err != nil {
		return fmt.Errorf("date of birth %s: %w", profile.DOB, err)
	}
	return nil
}
