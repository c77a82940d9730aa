// Package schedule owns the authoritative in-memory appointment collection,
// the conflict checks over it, and the technician rotation. Everything is
// single-writer: one command mutates the store to completion before the next
// one runs.
package schedule

import (
	"errors"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
)

var (
	ErrDuplicateAppointment = errors.New("patient already has an appointment at that date and slot")
	ErrProviderBusy         = errors.New("provider already has an appointment at that slot")
	ErrUnknownProvider      = errors.New("provider is not in the roster")
	ErrNotFound             = errors.New("appointment not found")
	ErrNoTechnician         = errors.New("no technician available for the requested service and slot")
)

// Store is the insertion-ordered appointment collection. Insertion order is
// load-bearing: billing statements group visits in booking order.
// Invariant: no two stored appointments share the (date, slot, patient)
// equality key.
type Store struct {
	appts []*clinic.Appointment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Len() int { return len(s.appts) }

// Add inserts an appointment, rejecting a duplicate equality key.
func (s *Store) Add(a *clinic.Appointment) error {
	if s.FindByKey(a.Date, a.Slot, a.Patient.Profile) != nil {
		return ErrDuplicateAppointment
	}
	s.appts = append(s.appts, a)
	return nil
}

// Remove deletes the appointment matching the given one's equality key and
// returns it, preserving the order of the rest.
func (s *Store) Remove(a *clinic.Appointment) (*clinic.Appointment, error) {
	for i, existing := range s.appts {
		if existing.Equal(a) {
			s.appts = append(s.appts[:i], s.appts[i+1:]...)
			return existing, nil
		}
	}
	return nil, ErrNotFound
}

// FindByKey looks an appointment up by the patient-facing key, ignoring
// provider. Name matching folds case via the profile comparison.
func (s *Store) FindByKey(date clinic.Date, slot clinic.Slot, profile clinic.Profile) *clinic.Appointment {
	for _, a := range s.appts {
		if a.Date.Equal(date) && a.Slot == slot && a.Patient.Profile.Equal(profile) {
			return a
		}
	}
	return nil
}

// ProviderBusy reports whether the provider already holds any appointment at
// (date, slot), regardless of patient.
func (s *Store) ProviderBusy(provider *clinic.Provider, date clinic.Date, slot clinic.Slot) bool {
	for _, a := range s.appts {
		if a.Provider == provider && a.Date.Equal(date) && a.Slot == slot {
			return true
		}
	}
	return false
}

// RoomBusy reports whether an imaging appointment already occupies the given
// room kind at the given location and slot. Room contention is
// per-location-per-room-type, not per-technician, and is keyed on the slot
// alone.
func (s *Store) RoomBusy(location clinic.Location, room clinic.RoomKind, slot clinic.Slot) bool {
	for _, a := range s.appts {
		if a.Kind != clinic.Imaging {
			continue
		}
		if a.Provider.Location == location && a.Room == room && a.Slot == slot {
			return true
		}
	}
	return false
}

// Appointments returns a copy of the collection in insertion order.
func (s *Store) Appointments() []*clinic.Appointment {
	out := make([]*clinic.Appointment, len(s.appts))
	copy(out, s.appts)
	return out
}

// Clear empties the store. Used when the billing period closes.
func (s *Store) Clear() {
	s.appts = nil
}
