// Package report produces the ordered listings and billing summaries over
// the appointment collection. Sorting is a stable insertion sort with
// explicit multi-key comparators; ties beyond the listed keys keep their
// relative order.
package report

import (
	"errors"
	"strings"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
)

var ErrBadSortKey = errors.New("unknown sort key")

// Sort keys for appointment listings.
const (
	ByDate      byte = 'A' // date, slot, provider last name
	ByPatient   byte = 'P' // patient, then date, slot
	ByLocation  byte = 'L' // provider county, date, slot
	OfficeOnly  byte = 'O' // office before imaging, then as ByLocation
	ImagingOnly byte = 'I' // imaging before office, then as ByLocation
)

// SortAppointments orders the slice in place by the given key. An unknown
// key is a caller bug, reported as ErrBadSortKey without touching the slice.
func SortAppointments(appts []*clinic.Appointment, key byte) error {
	cmp, err := comparator(key)
	if err != nil {
		return err
	}
	insertionSort(appts, cmp)
	return nil
}

func comparator(key byte) (func(a, b *clinic.Appointment) int, error) {
	switch key {
	case ByDate:
		return compareByDate, nil
	case ByPatient:
		return compareByPatient, nil
	case ByLocation:
		return compareByLocation, nil
	case OfficeOnly:
		return compareOfficeFirst, nil
	case ImagingOnly:
		return compareImagingFirst, nil
	}
	return nil, ErrBadSortKey
}

func compareByDate(a, b *clinic.Appointment) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := a.Slot.Compare(b.Slot); c != 0 {
		return c
	}
	return compareFold(a.Provider.Profile.Last, b.Provider.Profile.Last)
}

func compareByPatient(a, b *clinic.Appointment) int {
	if c := a.Patient.Profile.Compare(b.Patient.Profile); c != 0 {
		return c
	}
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.Slot.Compare(b.Slot)
}

func compareByLocation(a, b *clinic.Appointment) int {
	if c := strings.Compare(a.Provider.Location.County(), b.Provider.Location.County()); c != 0 {
		return c
	}
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.Slot.Compare(b.Slot)
}

func compareOfficeFirst(a, b *clinic.Appointment) int {
	if c := kindRank(a) - kindRank(b); c != 0 {
		return c
	}
	return compareByLocation(a, b)
}

func compareImagingFirst(a, b *clinic.Appointment) int {
	if c := kindRank(b) - kindRank(a); c != 0 {
		return c
	}
	return compareByLocation(a, b)
}

func kindRank(a *clinic.Appointment) int {
	if a.Kind == clinic.Imaging {
		return 1
	}
	return 0
}

// SortProviders orders providers by last name, case-insensitively. Ties keep
// roster order.
func SortProviders(providers []*clinic.Provider) {
	insertionSort(providers, func(a, b *clinic.Provider) int {
		return compareFold(a.Profile.Last, b.Profile.Last)
	})
}

// insertionSort is stable: equal elements never swap past each other.
func insertionSort[E any](list []E, cmp func(a, b E) int) {
	for i := 1; i < len(list); i++ {
		tmp := list[i]
		j := i - 1
		for j >= 0 && cmp(list[j], tmp) > 0 {
			list[j+1] = list[j]
			j--
		}
		list[j+1] = tmp
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
