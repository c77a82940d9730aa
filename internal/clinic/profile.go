package clinic

import (
	"fmt"
	"strings"
)

// Profile identifies a person by name and date of birth. Name comparisons
// fold case everywhere (lookup and report ordering use the same rule), so
// "john smith" and "John Smith" are the same person.
type Profile struct {
	First string
	Last  string
	DOB   Date
}

// Compare orders profiles by (last name, first name, date of birth),
// names case-insensitively.
func (p Profile) Compare(other Profile) int {
	if c := compareFold(p.Last, other.Last); c != 0 {
		return c
	}
	if c := compareFold(p.First, other.First); c != 0 {
		return c
	}
	return p.DOB.Compare(other.DOB)
}

func (p Profile) Equal(other Profile) bool {
	return p.Compare(other) == 0
}

func (p Profile) String() string {
	return fmt.Sprintf("%s %s %s", p.First, p.Last, p.DOB)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Visit is one billable appointment attributed to a patient, chained in
// booking order for statement generation.
type Visit struct {
	Appointment *Appointment
	next        *Visit
}

func (v *Visit) Next() *Visit { return v.next }

// Patient is a profile plus the chain of visits accumulated against it.
// The chain is owned by the patient and dropped when the billing period
// closes.
type Patient struct {
	Profile Profile

	visit *Visit
}

func NewPatient(profile Profile) *Patient {
	return &Patient{Profile: profile}
}

// AddVisit appends a visit at the end of the chain, preserving booking order.
func (p *Patient) AddVisit(appt *Appointment) {
	v := &Visit{Appointment: appt}
	if p.visit == nil {
		p.visit = v
		return
	}
	cur := p.visit
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = v
}

// FirstVisit returns the head of the visit chain, or nil.
func (p *Patient) FirstVisit() *Visit { return p.visit }

// ClearVisits drops the whole chain.
func (p *Patient) ClearVisits() { p.visit = nil }

func (p *Patient) String() string { return p.Profile.String() }
