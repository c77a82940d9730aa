package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
	"github.com/clinicdesk/clinic-scheduling/internal/command"
	"github.com/clinicdesk/clinic-scheduling/internal/config"
	"github.com/clinicdesk/clinic-scheduling/internal/report"
	"github.com/clinicdesk/clinic-scheduling/internal/roster"
	"github.com/clinicdesk/clinic-scheduling/internal/schedule"
)

// The console scheduler reads one command per line from stdin until Q.
// The roster path comes from the first argument, or ROSTER_PATH when absent.
func main() {
	log.SetFlags(0)

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("config load error: %v", err)
		}
		path = cfg.RosterPath
	}

	r, err := roster.Load(path)
	if err != nil {
		log.Fatalf("roster load error: %v", err)
	}

	fmt.Println("Providers loaded to the list.")
	sorted := append([]*clinic.Provider(nil), r.Providers()...)
	report.SortProviders(sorted)
	for _, p := range sorted {
		fmt.Println(p)
	}

	fmt.Println("\nRotation list for the technicians.")
	techs := r.Technicians()
	for i, t := range techs {
		if i > 0 {
			fmt.Print(" --> ")
		}
		fmt.Printf("%s %s (%s)", t.Profile.First, t.Profile.Last, t.Location)
	}
	fmt.Println()

	fmt.Println("\nClinic Manager is running...")
	fmt.Println()

	svc := schedule.NewService(r, schedule.Options{})
	dispatcher := command.NewDispatcher(svc)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out, done := dispatcher.Execute(scanner.Text())
		if out != "" {
			fmt.Println(out)
		}
		if done {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
}
