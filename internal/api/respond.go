package api

import (
	"encoding/json"
	"net/http"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}

func toPatientResponse(p *clinic.Patient) PatientResponse {
	return PatientResponse{
		FirstName: p.Profile.First,
		LastName:  p.Profile.Last,
		DOB:       p.Profile.DOB.String(),
	}
}

func toProviderResponse(p *clinic.Provider) ProviderResponse {
	resp := ProviderResponse{
		Kind:      string(p.Kind),
		FirstName: p.Profile.First,
		LastName:  p.Profile.Last,
		Location:  string(p.Location),
		County:    p.Location.County(),
		Rate:      p.Rate(),
	}
	if p.Kind == clinic.KindSpecialist {
		resp.Specialty = string(p.Specialty)
		resp.NPI = p.NPI
	}
	return resp
}

func toAppointmentResponse(a *clinic.Appointment) AppointmentResponse {
	return AppointmentResponse{
		Kind:     string(a.Kind),
		Date:     a.Date.String(),
		Slot:     int(a.Slot),
		Time:     a.Slot.String(),
		Patient:  toPatientResponse(a.Patient),
		Provider: toProviderResponse(a.Provider),
		Room:     string(a.Room),
	}
}
