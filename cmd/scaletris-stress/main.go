package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/scaletris/session"
)

func main() {
	games := flag.Int("games", 100, "The number of games to simulate.")
	duration := flag.Duration("duration", time.Minute, "Stop starting new games after this long.")
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	perTick := flag.Int("actions", 3, "Random actions attempted before every tick.")
	maxTicks := flag.Int("max-ticks", 100000, "Abandon a game after this many ticks.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	flag.Parse()

	cfg := session.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = session.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	log.Println("Starting scaletris stress test...")

	report := &Report{
		Config:         cfg,
		Games:          *games,
		ActionsPerTick: *perTick,
		MaxTicks:       *maxTicks,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Simulating %d games for at most %s...\n", *games, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for i := range *games {
		select {
		case <-ctx.Done():
			log.Printf("Time limit reached after %d games.\n", i)
			break Loop
		default:
			g, err := playGame(cfg, *seed+uint64(i), *perTick, *maxTicks, &report.TickTime)
			if err != nil {
				log.Fatalf("Failed to start game %d: %v", i, err)
			}
			report.Add(g)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
