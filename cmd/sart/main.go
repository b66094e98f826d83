package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/mwlab/sart/internal/config"
	"github.com/mwlab/sart/internal/data"
	"github.com/mwlab/sart/internal/session"
	"github.com/mwlab/sart/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "1.0.0"

func main() {
	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		log.Fatal(err)
	}

	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// A zero seed means the session is not meant to be replayed;
	// derive one and log it so it still can be.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("session: participant=%s %s preset=%s trials=%d seed=%d",
		cfg.Participant, cfg.Order, cfg.Preset, cfg.Params.TotalTrials, seed)

	sess, err := session.Plan(cfg.Order, cfg.Params, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal(err)
	}

	rec, err := data.NewRecorder(cfg.OutputDir, cfg.Participant, int(cfg.Order))
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	model := ui.NewModel(sess, rec, ui.Timing{
		Fixation: cfg.Fixation,
		Stimulus: cfg.StimulusDuration,
		ISI:      cfg.ISI,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	// Handle signals in a separate goroutine
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		p.Kill()
	}()

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		os.Exit(1)
	}

	log.Printf("results saved to %s", rec.Path())
	fmt.Printf("\nResults saved to %s\n", rec.Path())
}
