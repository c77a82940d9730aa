package report

import (
	"fmt"
	"strings"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
)

// ProviderCredit is one provider's earned total for the period.
type ProviderCredit struct {
	Provider *clinic.Provider
	Visits   int
	Amount   int
}

// ProviderCredits sums count*rate per provider, ordered by last name.
// Providers with no booked visits appear with a zero credit.
func ProviderCredits(providers []*clinic.Provider, appts []*clinic.Appointment) []ProviderCredit {
	ordered := make([]*clinic.Provider, len(providers))
	copy(ordered, providers)
	SortProviders(ordered)

	credits := make([]ProviderCredit, 0, len(ordered))
	for _, p := range ordered {
		visits := 0
		for _, a := range appts {
			if a.Provider == p {
				visits++
			}
		}
		credits = append(credits, ProviderCredit{
			Provider: p,
			Visits:   visits,
			Amount:   visits * p.Rate(),
		})
	}
	return credits
}

// PatientStatement is one patient's billable total for the period. The
// patient carries the visit chain behind the total, in booking order.
type PatientStatement struct {
	Patient *clinic.Patient
	Visits  int
	Amount  int
}

// PatientStatements groups appointments into per-patient visit chains in
// insertion order and totals each chain at the visit provider's rate.
// Patients are ordered by last name; patients sharing a last name order by
// first name, then date of birth.
func PatientStatements(appts []*clinic.Appointment) []PatientStatement {
	var patients []*clinic.Patient
	byKey := make(map[string]*clinic.Patient)

	for _, a := range appts {
		key := profileKey(a.Patient.Profile)
		p, ok := byKey[key]
		if !ok {
			p = clinic.NewPatient(a.Patient.Profile)
			byKey[key] = p
			patients = append(patients, p)
		}
		p.AddVisit(a)
	}

	insertionSort(patients, func(a, b *clinic.Patient) int {
		return a.Profile.Compare(b.Profile)
	})

	statements := make([]PatientStatement, 0, len(patients))
	for _, p := range patients {
		visits, amount := 0, 0
		for v := p.FirstVisit(); v != nil; v = v.Next() {
			visits++
			amount += v.Appointment.Provider.Rate()
		}
		statements = append(statements, PatientStatement{Patient: p, Visits: visits, Amount: amount})
	}
	return statements
}

func profileKey(p clinic.Profile) string {
	return fmt.Sprintf("%s|%s|%s", strings.ToLower(p.Last), strings.ToLower(p.First), p.DOB)
}
