package clinic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownLocation  = errors.New("unknown practice location")
	ErrUnknownSpecialty = errors.New("unknown specialty")
)

// Location is one of the fixed practice towns.
type Location string

const (
	Bridgewater Location = "BRIDGEWATER"
	Edison      Location = "EDISON"
	Piscataway  Location = "PISCATAWAY"
	Princeton   Location = "PRINCETON"
	Morristown  Location = "MORRISTOWN"
	Clark       Location = "CLARK"
)

var locationInfo = map[Location]struct{ county, zip string }{
	Bridgewater: {"Somerset", "08807"},
	Edison:      {"Middlesex", "08817"},
	Piscataway:  {"Middlesex", "08854"},
	Princeton:   {"Mercer", "08542"},
	Morristown:  {"Morris", "07960"},
	Clark:       {"Union", "07066"},
}

func ParseLocation(s string) (Location, error) {
	loc := Location(strings.ToUpper(s))
	if _, ok := locationInfo[loc]; !ok {
		return "", fmt.Errorf("location %q: %w", s, ErrUnknownLocation)
	}
	return loc, nil
}

func (l Location) County() string { return locationInfo[l].county }
func (l Location) Zip() string    { return locationInfo[l].zip }

func (l Location) String() string {
	return fmt.Sprintf("%s, %s %s", string(l), l.County(), l.Zip())
}

// Specialty carries a fixed per-visit charge.
type Specialty string

const (
	Family       Specialty = "FAMILY"
	Pediatrician Specialty = "PEDIATRICIAN"
	Allergist    Specialty = "ALLERGIST"
)

var specialtyCharge = map[Specialty]int{
	Family:       250,
	Pediatrician: 300,
	Allergist:    350,
}

func ParseSpecialty(s string) (Specialty, error) {
	sp := Specialty(strings.ToUpper(s))
	if _, ok := specialtyCharge[sp]; !ok {
		return "", fmt.Errorf("specialty %q: %w", s, ErrUnknownSpecialty)
	}
	return sp, nil
}

func (s Specialty) Charge() int { return specialtyCharge[s] }

type ProviderKind string

const (
	KindSpecialist ProviderKind = "specialist"
	KindTechnician ProviderKind = "technician"
)

// Provider is a tagged variant: a Specialist carries a specialty and NPI,
// a Technician a per-visit rate set at roster load time.
type Provider struct {
	Kind     ProviderKind
	Profile  Profile
	Location Location

	// Specialist only.
	Specialty Specialty
	NPI       string

	// Technician only.
	RatePerVisit int
}

func NewSpecialist(profile Profile, location Location, specialty Specialty, npi string) *Provider {
	return &Provider{
		Kind:      KindSpecialist,
		Profile:   profile,
		Location:  location,
		Specialty: specialty,
		NPI:       npi,
	}
}

func NewTechnician(profile Profile, location Location, rate int) *Provider {
	return &Provider{
		Kind:         KindTechnician,
		Profile:      profile,
		Location:     location,
		RatePerVisit: rate,
	}
}

// Rate is the charge for one visit with this provider.
func (p *Provider) Rate() int {
	if p.Kind == KindSpecialist {
		return p.Specialty.Charge()
	}
	return p.RatePerVisit
}

func (p *Provider) SetRate(rate int) { p.RatePerVisit = rate }

func (p *Provider) String() string {
	base := fmt.Sprintf("[%s, Location: %s]", p.Profile, p.Location)
	if p.Kind == KindSpecialist {
		return fmt.Sprintf("%s [%s #%s]", base, p.Specialty, p.NPI)
	}
	return fmt.Sprintf("%s Rate per visit: $%d", base, p.RatePerVisit)
}
