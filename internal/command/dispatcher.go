// Package command is the line-oriented console adapter. It parses one
// comma-separated command per line, routes it to the scheduling service, and
// formats the reply. All scheduling decisions live in the schedule and
// report packages; nothing here mutates state directly.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
	"github.com/clinicdesk/clinic-scheduling/internal/report"
	"github.com/clinicdesk/clinic-scheduling/internal/schedule"
)

// Dispatcher routes parsed commands into the scheduling service.
type Dispatcher struct {
	svc *schedule.Service
}

func NewDispatcher(svc *schedule.Service) *Dispatcher {
	return &Dispatcher{svc: svc}
}

// Execute runs one command line and returns the text to print. done is true
// only for the quit command. Malformed input never panics; it comes back as
// an error message.
func (d *Dispatcher) Execute(line string) (out string, done bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	tokens := strings.Split(line, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	switch tokens[0] {
	case "D":
		return d.bookOffice(tokens), false
	case "T":
		return d.bookImaging(tokens), false
	case "C":
		return d.cancel(tokens), false
	case "R":
		return d.reschedule(tokens), false
	case "PA":
		return d.listAppointments(report.ByDate, "** List of appointments, ordered by date/time/provider."), false
	case "PP":
		return d.listAppointments(report.ByPatient, "** List of appointments, ordered by patient/date/time."), false
	case "PL":
		return d.listAppointments(report.ByLocation, "** List of appointments, ordered by county/date/time."), false
	case "PO":
		return d.listAppointments(report.OfficeOnly, "** List of office appointments ordered by county/date/time."), false
	case "PI":
		return d.listAppointments(report.ImagingOnly, "** List of radiology appointments ordered by county/date/time."), false
	case "PS":
		return d.billingStatements(), false
	case "PC":
		return d.providerCredits(), false
	case "Q":
		return "Scheduler is terminated.", true
	default:
		return "Invalid command!", false
	}
}

func (d *Dispatcher) bookOffice(tokens []string) string {
	date, slot, profile, err := parseBookingKey(tokens, 7)
	if err != nil {
		return err.Error()
	}
	appt, err := d.svc.BookOffice(date, slot, profile, tokens[6])
	if err != nil {
		return err.Error()
	}
	return appt.String() + " booked."
}

func (d *Dispatcher) bookImaging(tokens []string) string {
	date, slot, profile, err := parseBookingKey(tokens, 7)
	if err != nil {
		return err.Error()
	}
	room, err := clinic.ParseRoomKind(tokens[6])
	if err != nil {
		return err.Error()
	}
	appt, err := d.svc.BookImaging(date, slot, profile, room)
	if err != nil {
		return err.Error()
	}
	return appt.String() + " booked."
}

func (d *Dispatcher) cancel(tokens []string) string {
	date, slot, profile, err := parseBookingKey(tokens, 6)
	if err != nil {
		return err.Error()
	}
	appt, err := d.svc.Cancel(date, slot, profile)
	if err != nil {
		return fmt.Sprintf("%s %s %s %s %s - appointment does not exist.",
			date, slot, profile.First, profile.Last, profile.DOB)
	}
	return fmt.Sprintf("%s %s %s %s %s - appointment has been canceled.",
		appt.Date, appt.Slot, profile.First, profile.Last, profile.DOB)
}

func (d *Dispatcher) reschedule(tokens []string) string {
	date, slot, profile, err := parseBookingKey(tokens, 7)
	if err != nil {
		return err.Error()
	}
	newSlot, err := parseSlotToken(tokens[6])
	if err != nil {
		return err.Error()
	}
	appt, err := d.svc.Reschedule(date, slot, profile, newSlot)
	if err != nil {
		return err.Error()
	}
	return "Rescheduled to " + appt.String()
}

func (d *Dispatcher) listAppointments(key byte, header string) string {
	appts := d.svc.Appointments()
	if len(appts) == 0 {
		return "Schedule calendar is empty."
	}
	if err := report.SortAppointments(appts, key); err != nil {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(header)
	for _, a := range appts {
		b.WriteString("\n")
		b.WriteString(a.String())
	}
	b.WriteString("\n** end of list **")
	return b.String()
}

func (d *Dispatcher) billingStatements() string {
	statements := d.svc.CloseBillingPeriod()
	if len(statements) == 0 {
		return "Schedule calendar is empty."
	}

	var b strings.Builder
	b.WriteString("** Billing statement ordered by patient. **")
	for i, s := range statements {
		fmt.Fprintf(&b, "\n(%d) %s [due: $%d.00]", i+1, s.Patient.Profile, s.Amount)
	}
	b.WriteString("\n** end of list **")
	return b.String()
}

func (d *Dispatcher) providerCredits() string {
	if len(d.svc.Appointments()) == 0 {
		return "Schedule calendar is empty."
	}
	credits := d.svc.ProviderCredits()

	var b strings.Builder
	b.WriteString("** Credit amount ordered by provider. **")
	for i, c := range credits {
		fmt.Fprintf(&b, "\n(%d) %s [credit amount: $%d.00]", i+1, c.Provider.Profile, c.Amount)
	}
	b.WriteString("\n** end of list **")
	return b.String()
}

// parseBookingKey reads tokens[1:6] as date, slot, first, last, dob. want is
// the total token count for the command.
func parseBookingKey(tokens []string, want int) (clinic.Date, clinic.Slot, clinic.Profile, error) {
	if len(tokens) != want {
		return clinic.Date{}, 0, clinic.Profile{}, fmt.Errorf("missing data tokens")
	}
	date, err := clinic.ParseDate(tokens[1])
	if err != nil {
		return clinic.Date{}, 0, clinic.Profile{}, err
	}
	slot, err := parseSlotToken(tokens[2])
	if err != nil {
		return clinic.Date{}, 0, clinic.Profile{}, err
	}
	dob, err := clinic.ParseDate(tokens[5])
	if err != nil {
		return clinic.Date{}, 0, clinic.Profile{}, err
	}
	profile := clinic.Profile{First: tokens[3], Last: tokens[4], DOB: dob}
	return date, slot, profile, nil
}

func parseSlotToken(s string) (clinic.Slot, error) {
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("slot %q: %w", s, clinic.ErrInvalidSlot)
	}
	return clinic.ParseSlot(code)
}
