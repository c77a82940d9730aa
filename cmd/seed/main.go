package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// seed writes a random roster file usable by the console scheduler and the
// HTTP server. Specialist NPIs are sequential so booking by hand is easy.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	out := getEnv("SEED_OUT", "providers.txt")
	specialists := getInt("SEED_SPECIALISTS", 8)
	technicians := getInt("SEED_TECHNICIANS", 5)

	gofakeit.Seed(time.Now().UnixNano())

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("create %s: %v", out, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	towns := []string{"BRIDGEWATER", "EDISON", "PISCATAWAY", "PRINCETON", "MORRISTOWN", "CLARK"}
	specialties := []string{"FAMILY", "PEDIATRICIAN", "ALLERGIST"}

	log.Printf("seeding %d specialists", specialists)
	for i := 0; i < specialists; i++ {
		fmt.Fprintf(w, "D %s %s %s %s %s %d\n",
			gofakeit.FirstName(),
			gofakeit.LastName(),
			fakeDOB(),
			towns[gofakeit.Number(0, len(towns)-1)],
			specialties[gofakeit.Number(0, len(specialties)-1)],
			100+i)
	}

	log.Printf("seeding %d technicians", technicians)
	for i := 0; i < technicians; i++ {
		fmt.Fprintf(w, "T %s %s %s %s %d\n",
			gofakeit.FirstName(),
			gofakeit.LastName(),
			fakeDOB(),
			towns[gofakeit.Number(0, len(towns)-1)],
			gofakeit.Number(4, 30)*25)
	}

	if err := w.Flush(); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}

	log.Printf("seed complete: %s", out)
}

// fakeDOB returns an adult date of birth in M/D/YYYY form.
func fakeDOB() string {
	year := gofakeit.Number(1955, 2000)
	month := gofakeit.Number(1, 12)
	day := gofakeit.Number(1, 28)
	return fmt.Sprintf("%d/%d/%d", month, day, year)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
