// Package roster loads the provider roster from its flat file and resolves
// providers for the scheduling service. Load order is preserved: the
// technician rotation starts in file order.
package roster

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
)

// Roster holds the loaded providers in file order.
type Roster struct {
	providers []*clinic.Provider
	byNPI     map[string]*clinic.Provider
}

// Load reads a roster file with one provider per line:
//
//	D <first> <last> <dob> <town> <specialty> <npi>
//	T <first> <last> <dob> <town> <rate>
//
// Fields are whitespace-separated, dates M/D/YYYY. A malformed line fails
// the whole load.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	r := &Roster{byNPI: make(map[string]*clinic.Provider)}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("roster line %d: %w", lineNo, err)
		}
		r.add(p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	return r, nil
}

// New builds a roster from already-constructed providers, preserving order.
// Used by tests and the simulator.
func New(providers []*clinic.Provider) *Roster {
	r := &Roster{byNPI: make(map[string]*clinic.Provider)}
	for _, p := range providers {
		r.add(p)
	}
	return r
}

func (r *Roster) add(p *clinic.Provider) {
	r.providers = append(r.providers, p)
	if p.Kind == clinic.KindSpecialist {
		r.byNPI[p.NPI] = p
	}
}

func parseLine(line string) (*clinic.Provider, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 6 {
		return nil, fmt.Errorf("expected at least 6 fields, got %d", len(tokens))
	}

	dob, err := clinic.ParseDate(tokens[3])
	if err != nil {
		return nil, err
	}
	profile := clinic.Profile{First: tokens[1], Last: tokens[2], DOB: dob}

	location, err := clinic.ParseLocation(tokens[4])
	if err != nil {
		return nil, err
	}

	switch tokens[0] {
	case "D":
		if len(tokens) != 7 {
			return nil, fmt.Errorf("specialist line needs 7 fields, got %d", len(tokens))
		}
		specialty, err := clinic.ParseSpecialty(tokens[5])
		if err != nil {
			return nil, err
		}
		return clinic.NewSpecialist(profile, location, specialty, tokens[6]), nil
	case "T":
		if len(tokens) != 6 {
			return nil, fmt.Errorf("technician line needs 6 fields, got %d", len(tokens))
		}
		rate, err := strconv.Atoi(tokens[5])
		if err != nil {
			return nil, fmt.Errorf("technician rate %q: %w", tokens[5], err)
		}
		return clinic.NewTechnician(profile, location, rate), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", tokens[0])
	}
}

// Providers returns all providers in load order.
func (r *Roster) Providers() []*clinic.Provider {
	return r.providers
}

// Technicians returns the technicians in load order, which is the initial
// rotation order.
func (r *Roster) Technicians() []*clinic.Provider {
	var techs []*clinic.Provider
	for _, p := range r.providers {
		if p.Kind == clinic.KindTechnician {
			techs = append(techs, p)
		}
	}
	return techs
}

// SpecialistByNPI resolves a specialist by registration number, or nil.
func (r *Roster) SpecialistByNPI(npi string) *clinic.Provider {
	return r.byNPI[npi]
}
