package clinic

import "testing"

func TestProfileCompare(t *testing.T) {
	dob := Date{1989, 12, 13}
	tests := []struct {
		name string
		a, b Profile
		want int
	}{
		{"earlier dob", Profile{"John", "Doe", Date{1989, 12, 13}}, Profile{"John", "Doe", Date{1990, 12, 13}}, -1},
		{"later dob", Profile{"John", "Doe", Date{1990, 12, 13}}, Profile{"John", "Doe", Date{1989, 12, 13}}, 1},
		{"earlier last name", Profile{"John", "Smith", dob}, Profile{"John", "Zoe", dob}, -1},
		{"later last name", Profile{"John", "Zoe", dob}, Profile{"John", "Smith", dob}, 1},
		{"earlier first name", Profile{"Alice", "Doe", dob}, Profile{"John", "Doe", dob}, -1},
		{"later first name", Profile{"John", "Doe", dob}, Profile{"Alice", "Doe", dob}, 1},
		{"equal", Profile{"John", "Doe", dob}, Profile{"John", "Doe", dob}, 0},
		{"equal ignoring case", Profile{"JOHN", "doe", dob}, Profile{"john", "DOE", dob}, 0},
		{"last name beats first name case", Profile{"Zed", "adams", dob}, Profile{"Abe", "Baker", dob}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			if got < 0 {
				got = -1
			} else if got > 0 {
				got = 1
			}
			if got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPatientVisitChain(t *testing.T) {
	p := NewPatient(Profile{"John", "Doe", Date{1989, 12, 13}})
	if p.FirstVisit() != nil {
		t.Fatal("new patient should have no visits")
	}

	a1 := &Appointment{Kind: Office, Date: Date{2024, 11, 4}, Slot: 1, Patient: p}
	a2 := &Appointment{Kind: Office, Date: Date{2024, 11, 5}, Slot: 2, Patient: p}
	a3 := &Appointment{Kind: Imaging, Date: Date{2024, 11, 6}, Slot: 3, Patient: p, Room: XRay}
	p.AddVisit(a1)
	p.AddVisit(a2)
	p.AddVisit(a3)

	var got []*Appointment
	for v := p.FirstVisit(); v != nil; v = v.Next() {
		got = append(got, v.Appointment)
	}
	if len(got) != 3 || got[0] != a1 || got[1] != a2 || got[2] != a3 {
		t.Errorf("visit chain out of order: %v", got)
	}

	p.ClearVisits()
	if p.FirstVisit() != nil {
		t.Error("ClearVisits should drop the chain")
	}
}
