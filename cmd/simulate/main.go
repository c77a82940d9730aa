package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
	"github.com/clinicdesk/clinic-scheduling/internal/roster"
	"github.com/clinicdesk/clinic-scheduling/internal/schedule"
)

// The simulator drives random scheduling operations through an in-process
// service and reports per-operation outcome counts. The service processes
// one command at a time, so the load runs serially.

type SimConfig struct {
	Operations  int
	Specialists int
	Technicians int
	Patients    int
	CloseEvery  int // close the billing period every N operations, 0 disables
}

type OperationMetrics struct {
	Total     int64
	Success   int64
	Conflict  int64
	Error     int64
	Latencies []time.Duration
}

func (om *OperationMetrics) Record(latency time.Duration, err error) {
	om.Total++
	switch {
	case err == nil:
		om.Success++
	case isConflict(err):
		om.Conflict++
	default:
		om.Error++
	}
	om.Latencies = append(om.Latencies, latency)
}

func isConflict(err error) bool {
	return errors.Is(err, schedule.ErrProviderBusy) ||
		errors.Is(err, schedule.ErrDuplicateAppointment) ||
		errors.Is(err, schedule.ErrNoTechnician) ||
		errors.Is(err, schedule.ErrNotFound)
}

func (om *OperationMetrics) Stats() (avg, min, max, p95 time.Duration) {
	if len(om.Latencies) == 0 {
		return 0, 0, 0, 0
	}
	latencies := make([]time.Duration, len(om.Latencies))
	copy(latencies, om.Latencies)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]

	p95Idx := len(latencies) * 95 / 100
	if p95Idx >= len(latencies) {
		p95Idx = len(latencies) - 1
	}
	p95 = latencies[p95Idx]
	return avg, min, max, p95
}

type Metrics struct {
	BookOffice  OperationMetrics
	BookImaging OperationMetrics
	Cancel      OperationMetrics
	Reschedule  OperationMetrics
}

type bookingKey struct {
	date    clinic.Date
	slot    clinic.Slot
	profile clinic.Profile
}

type Simulator struct {
	config   SimConfig
	svc      *schedule.Service
	rng      *rand.Rand
	patients []clinic.Profile
	npis     []string
	rooms    []clinic.RoomKind
	booked   []bookingKey
	metrics  Metrics
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	runID := uuid.New().String()
	log.Printf("simulator starting run_id=%s", runID)

	cfg := loadConfig()
	log.Printf("config: operations=%d specialists=%d technicians=%d patients=%d",
		cfg.Operations, cfg.Specialists, cfg.Technicians, cfg.Patients)

	gofakeit.Seed(time.Now().UnixNano())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	r, npis := buildRoster(cfg)
	svc := schedule.NewService(r, schedule.Options{})

	sim := &Simulator{
		config:   cfg,
		svc:      svc,
		rng:      rng,
		patients: buildPatients(cfg.Patients),
		npis:     npis,
		rooms:    []clinic.RoomKind{clinic.CatScan, clinic.Ultrasound, clinic.XRay},
	}

	sim.Run()
	sim.PrintReport()
}

func loadConfig() SimConfig {
	return SimConfig{
		Operations:  getInt("SIM_OPERATIONS", 10000),
		Specialists: getInt("SIM_SPECIALISTS", 8),
		Technicians: getInt("SIM_TECHNICIANS", 5),
		Patients:    getInt("SIM_PATIENTS", 200),
		CloseEvery:  getInt("SIM_CLOSE_EVERY", 2500),
	}
}

func buildRoster(cfg SimConfig) (*roster.Roster, []string) {
	towns := []clinic.Location{
		clinic.Bridgewater, clinic.Edison, clinic.Piscataway,
		clinic.Princeton, clinic.Morristown, clinic.Clark,
	}
	specialties := []clinic.Specialty{clinic.Family, clinic.Pediatrician, clinic.Allergist}

	var providers []*clinic.Provider
	var npis []string
	for i := 0; i < cfg.Specialists; i++ {
		npi := strconv.Itoa(100 + i)
		providers = append(providers, clinic.NewSpecialist(
			fakeProfile(),
			towns[gofakeit.Number(0, len(towns)-1)],
			specialties[gofakeit.Number(0, len(specialties)-1)],
			npi))
		npis = append(npis, npi)
	}
	for i := 0; i < cfg.Technicians; i++ {
		providers = append(providers, clinic.NewTechnician(
			fakeProfile(),
			towns[gofakeit.Number(0, len(towns)-1)],
			gofakeit.Number(4, 30)*25))
	}
	return roster.New(providers), npis
}

func buildPatients(count int) []clinic.Profile {
	patients := make([]clinic.Profile, count)
	for i := range patients {
		patients[i] = fakeProfile()
	}
	return patients
}

func fakeProfile() clinic.Profile {
	return clinic.Profile{
		First: gofakeit.FirstName(),
		Last:  gofakeit.LastName(),
		DOB: clinic.Date{
			Year:  gofakeit.Number(1940, 2020),
			Month: gofakeit.Number(1, 12),
			Day:   gofakeit.Number(1, 28),
		},
	}
}

func (s *Simulator) Run() {
	log.Printf("running %d operations", s.config.Operations)
	for i := 0; i < s.config.Operations; i++ {
		r := s.rng.Float64()
		switch {
		case r < 0.40:
			s.doBookOffice()
		case r < 0.70:
			s.doBookImaging()
		case r < 0.85:
			s.doCancel()
		default:
			s.doReschedule()
		}

		if s.config.CloseEvery > 0 && (i+1)%s.config.CloseEvery == 0 {
			statements := s.svc.CloseBillingPeriod()
			s.booked = s.booked[:0]
			log.Printf("billing period closed at op %d: %d statements", i+1, len(statements))
		}
	}
	log.Println("simulation complete")
}

// randomDate picks a weekday within the booking window.
func (s *Simulator) randomDate() clinic.Date {
	for {
		t := time.Now().AddDate(0, 0, s.rng.Intn(60)+1)
		if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			continue
		}
		y, m, d := t.Date()
		return clinic.Date{Year: y, Month: int(m), Day: d}
	}
}

func (s *Simulator) randomSlot() clinic.Slot {
	return clinic.Slot(s.rng.Intn(12) + 1)
}

func (s *Simulator) randomPatient() clinic.Profile {
	return s.patients[s.rng.Intn(len(s.patients))]
}

func (s *Simulator) doBookOffice() {
	date, slot, profile := s.randomDate(), s.randomSlot(), s.randomPatient()
	npi := s.npis[s.rng.Intn(len(s.npis))]

	start := time.Now()
	_, err := s.svc.BookOffice(date, slot, profile, npi)
	s.metrics.BookOffice.Record(time.Since(start), err)

	if err == nil {
		s.booked = append(s.booked, bookingKey{date, slot, profile})
	}
}

func (s *Simulator) doBookImaging() {
	date, slot, profile := s.randomDate(), s.randomSlot(), s.randomPatient()
	room := s.rooms[s.rng.Intn(len(s.rooms))]

	start := time.Now()
	_, err := s.svc.BookImaging(date, slot, profile, room)
	s.metrics.BookImaging.Record(time.Since(start), err)

	if err == nil {
		s.booked = append(s.booked, bookingKey{date, slot, profile})
	}
}

func (s *Simulator) doCancel() {
	if len(s.booked) == 0 {
		return
	}
	idx := s.rng.Intn(len(s.booked))
	key := s.booked[idx]

	start := time.Now()
	_, err := s.svc.Cancel(key.date, key.slot, key.profile)
	s.metrics.Cancel.Record(time.Since(start), err)

	if err == nil {
		s.booked = append(s.booked[:idx], s.booked[idx+1:]...)
	}
}

func (s *Simulator) doReschedule() {
	if len(s.booked) == 0 {
		return
	}
	idx := s.rng.Intn(len(s.booked))
	key := s.booked[idx]
	newSlot := s.randomSlot()

	start := time.Now()
	_, err := s.svc.Reschedule(key.date, key.slot, key.profile, newSlot)
	s.metrics.Reschedule.Record(time.Since(start), err)

	if err == nil {
		s.booked[idx].slot = newSlot
	}
}

func (s *Simulator) PrintReport() {
	fmt.Println("\n================================================================")
	fmt.Println("SIMULATION REPORT")
	fmt.Println("================================================================")
	fmt.Printf("Operations: %d\n", s.config.Operations)
	fmt.Printf("Remaining on schedule: %d\n\n", len(s.svc.Appointments()))

	printOperationReport("Book Office", &s.metrics.BookOffice)
	printOperationReport("Book Imaging", &s.metrics.BookImaging)
	printOperationReport("Cancel", &s.metrics.Cancel)
	printOperationReport("Reschedule", &s.metrics.Reschedule)
}

func printOperationReport(name string, om *OperationMetrics) {
	if om.Total == 0 {
		return
	}

	avg, min, max, p95 := om.Stats()

	fmt.Printf("%s:\n", name)
	fmt.Printf("  Total: %d\n", om.Total)
	fmt.Printf("  Success: %d (%.1f%%)\n", om.Success, float64(om.Success)/float64(om.Total)*100)
	if om.Conflict > 0 {
		fmt.Printf("  Conflicts: %d (%.1f%%)\n", om.Conflict, float64(om.Conflict)/float64(om.Total)*100)
	}
	if om.Error > 0 {
		fmt.Printf("  Errors: %d (%.1f%%)\n", om.Error, float64(om.Error)/float64(om.Total)*100)
	}
	fmt.Printf("  Latency: avg=%s min=%s max=%s p95=%s\n\n",
		avg.Round(time.Microsecond), min.Round(time.Microsecond),
		max.Round(time.Microsecond), p95.Round(time.Microsecond))
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
