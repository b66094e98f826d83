package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mwlab/sart/internal/sart"
	"github.com/mwlab/sart/internal/session"
	"github.com/mwlab/sart/internal/util"
)

// Config is everything the binary needs to run one session. It is
// built once from flags and never mutated afterwards.
type Config struct {
	Preset      Preset
	Params      sart.Params
	Order       session.Order
	Participant string
	OutputDir   string
	Seed        int64

	StimulusDuration time.Duration
	ISI              time.Duration
	Fixation         time.Duration
}

// ParseFlags parses os.Args into a Config. Version and help requests
// print and exit; anything else invalid returns an error.
func ParseFlags(version string) (*Config, error) {
	flags := flag.NewFlagSet("sart", flag.ExitOnError)

	preset := flags.String("preset", "main", "Study variant: main, short, or demo")
	order := flags.Int("order", 1, "Counterbalancing order (1-4)")
	participant := flags.String("participant", "demo", "Participant code")
	output := flags.String("output", "data", "Directory for result CSV files")
	seed := flags.Int64("seed", 0, "Random seed (0 = derive from clock)")
	trials := flags.Int("trials", 0, "Override trials per block (0 = preset value)")
	steps := flags.Int("steps", 0, "Override steps per block (0 = preset value)")
	stim := flags.String("stim", "", "Stimulus duration (e.g. \"500\" or \"500ms\")")
	isi := flags.String("isi", "", "Inter-stimulus interval (e.g. \"900\" or \"900ms\")")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if *showVersion {
		fmt.Printf("sart version %s\n", version)
		os.Exit(0)
	}

	cfg := &Config{
		Participant:      *participant,
		OutputDir:        *output,
		Seed:             *seed,
		StimulusDuration: DefaultStimulusDuration,
		ISI:              DefaultISI,
		Fixation:         DefaultFixationDuration,
	}

	var err error
	if cfg.Preset, err = ParsePreset(*preset); err != nil {
		return nil, err
	}
	if cfg.Order, err = session.ParseOrder(*order); err != nil {
		return nil, err
	}

	cfg.Params = cfg.Preset.Params()
	if *trials > 0 {
		cfg.Params.TotalTrials = *trials
	}
	if *steps > 0 {
		cfg.Params.Steps = *steps
	}

	if *stim != "" {
		if cfg.StimulusDuration, err = util.ParseDuration(*stim); err != nil {
			return nil, err
		}
	}
	if *isi != "" {
		if cfg.ISI, err = util.ParseDuration(*isi); err != nil {
			return nil, err
		}
	}
	if cfg.StimulusDuration <= 0 || cfg.ISI < 0 {
		return nil, fmt.Errorf("stimulus duration must be positive and ISI non-negative")
	}

	return cfg, nil
}
