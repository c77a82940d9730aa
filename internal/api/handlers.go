package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
	"github.com/clinicdesk/clinic-scheduling/internal/report"
	"github.com/clinicdesk/clinic-scheduling/internal/schedule"
)

// handlers adapts HTTP requests onto the single-threaded scheduling service.
// The mutex is the point where net/http concurrency meets the one-command-
// at-a-time execution model: every request runs a whole command under it.
type handlers struct {
	mu  sync.Mutex
	svc *schedule.Service
}

func newHandlers(svc *schedule.Service) *handlers {
	return &handlers{svc: svc}
}

func (h *handlers) bookOffice(w http.ResponseWriter, r *http.Request) {
	var req BookOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	date, slot, profile, ok := h.parseBookingKey(w, req.Date, req.Slot, req.FirstName, req.LastName, req.DOB)
	if !ok {
		return
	}

	h.mu.Lock()
	appt, err := h.svc.BookOffice(date, slot, profile, req.NPI)
	h.mu.Unlock()
	if err != nil {
		handleSchedulingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAppointmentResponse(appt))
}

func (h *handlers) bookImaging(w http.ResponseWriter, r *http.Request) {
	var req BookImagingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	date, slot, profile, ok := h.parseBookingKey(w, req.Date, req.Slot, req.FirstName, req.LastName, req.DOB)
	if !ok {
		return
	}
	room, err := clinic.ParseRoomKind(req.Service)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_service", err.Error())
		return
	}

	h.mu.Lock()
	appt, err := h.svc.BookImaging(date, slot, profile, room)
	h.mu.Unlock()
	if err != nil {
		handleSchedulingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAppointmentResponse(appt))
}

func (h *handlers) cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	date, slot, profile, ok := h.parseBookingKey(w, req.Date, req.Slot, req.FirstName, req.LastName, req.DOB)
	if !ok {
		return
	}

	h.mu.Lock()
	appt, err := h.svc.Cancel(date, slot, profile)
	h.mu.Unlock()
	if err != nil {
		handleSchedulingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentResponse(appt))
}

func (h *handlers) reschedule(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	date, slot, profile, ok := h.parseBookingKey(w, req.Date, req.Slot, req.FirstName, req.LastName, req.DOB)
	if !ok {
		return
	}
	newSlot, err := clinic.ParseSlot(req.NewSlot)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_slot", err.Error())
		return
	}

	h.mu.Lock()
	appt, err := h.svc.Reschedule(date, slot, profile, newSlot)
	h.mu.Unlock()
	if err != nil {
		handleSchedulingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentResponse(appt))
}

func (h *handlers) listAppointments(w http.ResponseWriter, r *http.Request) {
	key := byte(report.ByDate)
	if s := r.URL.Query().Get("sort"); s != "" {
		if len(s) != 1 {
			writeError(w, http.StatusBadRequest, "invalid_sort_key", "sort must be one of A, P, L, O, I")
			return
		}
		key = s[0]
	}

	h.mu.Lock()
	appts := h.svc.Appointments()
	h.mu.Unlock()

	if err := report.SortAppointments(appts, key); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_sort_key", "sort must be one of A, P, L, O, I")
		return
	}

	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) listProviders(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	providers := h.svc.Providers()
	h.mu.Unlock()

	out := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, toProviderResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) providerCredits(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	credits := h.svc.ProviderCredits()
	h.mu.Unlock()

	out := make([]CreditResponse, 0, len(credits))
	for _, c := range credits {
		out = append(out, CreditResponse{
			Provider: toProviderResponse(c.Provider),
			Visits:   c.Visits,
			Amount:   c.Amount,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// closeBilling generates the patient statements and drains the schedule.
// It is a POST because it mutates: the billing period ends here.
func (h *handlers) closeBilling(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	statements := h.svc.CloseBillingPeriod()
	h.mu.Unlock()

	out := make([]StatementResponse, 0, len(statements))
	for _, s := range statements {
		out = append(out, StatementResponse{
			Patient: PatientResponse{
				FirstName: s.Patient.Profile.First,
				LastName:  s.Patient.Profile.Last,
				DOB:       s.Patient.Profile.DOB.String(),
			},
			Visits: s.Visits,
			Amount: s.Amount,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) parseBookingKey(w http.ResponseWriter, dateStr string, slotCode int, first, last, dobStr string) (clinic.Date, clinic.Slot, clinic.Profile, bool) {
	date, err := clinic.ParseDate(dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return clinic.Date{}, 0, clinic.Profile{}, false
	}
	slot, err := clinic.ParseSlot(slotCode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_slot", err.Error())
		return clinic.Date{}, 0, clinic.Profile{}, false
	}
	dob, err := clinic.ParseDate(dobStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_dob", err.Error())
		return clinic.Date{}, 0, clinic.Profile{}, false
	}
	return date, slot, clinic.Profile{First: first, Last: last, DOB: dob}, true
}

func handleSchedulingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, clinic.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "invalid_date", err.Error())
	case errors.Is(err, schedule.ErrUnknownProvider):
		writeError(w, http.StatusNotFound, "unknown_provider", err.Error())
	case errors.Is(err, schedule.ErrNotFound):
		writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
	case errors.Is(err, clinic.ErrPastOrToday):
		writeError(w, http.StatusConflict, "date_not_in_future", err.Error())
	case errors.Is(err, clinic.ErrOutsideWindow):
		writeError(w, http.StatusConflict, "outside_booking_window", err.Error())
	case errors.Is(err, clinic.ErrWeekend):
		writeError(w, http.StatusConflict, "weekend_date", err.Error())
	case errors.Is(err, clinic.ErrFutureDOB):
		writeError(w, http.StatusConflict, "dob_not_in_past", err.Error())
	case errors.Is(err, schedule.ErrProviderBusy):
		writeError(w, http.StatusConflict, "provider_busy", err.Error())
	case errors.Is(err, schedule.ErrDuplicateAppointment):
		writeError(w, http.StatusConflict, "duplicate_appointment", err.Error())
	case errors.Is(err, schedule.ErrNoTechnician):
		writeError(w, http.StatusConflict, "no_technician_available", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
