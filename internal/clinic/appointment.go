package clinic

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRoomKind = errors.New("unknown imaging service")

// RoomKind is the radiology room an imaging appointment occupies.
type RoomKind string

const (
	CatScan    RoomKind = "CATSCAN"
	Ultrasound RoomKind = "ULTRASOUND"
	XRay       RoomKind = "XRAY"
)

func ParseRoomKind(s string) (RoomKind, error) {
	room := RoomKind(strings.ToUpper(s))
	switch room {
	case CatScan, Ultrasound, XRay:
		return room, nil
	}
	return "", fmt.Errorf("imaging service %q: %w", s, ErrUnknownRoomKind)
}

type AppointmentKind string

const (
	Office  AppointmentKind = "office"
	Imaging AppointmentKind = "imaging"
)

// Appointment binds a date, slot, patient, and provider. Imaging
// appointments additionally occupy a radiology room at the provider's
// location. The provider is deliberately excluded from the equality key so
// cancel/reschedule can look an appointment up by what the patient knows.
type Appointment struct {
	Kind     AppointmentKind
	Date     Date
	Slot     Slot
	Patient  *Patient
	Provider *Provider

	// Imaging only.
	Room RoomKind
}

func NewOffice(date Date, slot Slot, patient *Patient, provider *Provider) *Appointment {
	return &Appointment{
		Kind:     Office,
		Date:     date,
		Slot:     slot,
		Patient:  patient,
		Provider: provider,
	}
}

func NewImaging(date Date, slot Slot, patient *Patient, provider *Provider, room RoomKind) *Appointment {
	return &Appointment{
		Kind:     Imaging,
		Date:     date,
		Slot:     slot,
		Patient:  patient,
		Provider: provider,
		Room:     room,
	}
}

// Equal reports whether two appointments share the lookup key
// (date, slot, patient profile). Provider and room do not participate.
func (a *Appointment) Equal(other *Appointment) bool {
	return a.Date.Equal(other.Date) &&
		a.Slot == other.Slot &&
		a.Patient.Profile.Equal(other.Patient.Profile)
}

// Compare orders appointments by (date, slot, patient profile).
func (a *Appointment) Compare(other *Appointment) int {
	if c := a.Date.Compare(other.Date); c != 0 {
		return c
	}
	if c := a.Slot.Compare(other.Slot); c != 0 {
		return c
	}
	return a.Patient.Profile.Compare(other.Patient.Profile)
}

func (a *Appointment) String() string {
	s := fmt.Sprintf("%s %s %s %s", a.Date, a.Slot, a.Patient, a.Provider)
	if a.Kind == Imaging {
		s += fmt.Sprintf(" for %s imaging", a.Room)
	}
	return s
}
