package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwlab/sart/internal/sart"
)

// Preset names one of the study variants that used to exist as
// separate launcher scripts. All of them share the digit pools and
// probe strategy; they differ only in block length and step structure.
type Preset int

const (
	// PresetMain is the full study: 120 trials per block in 8 steps of
	// 13-17 trials.
	PresetMain Preset = iota
	// PresetShort is the shortened walkthrough: 40 trials in 8 steps
	// of exactly 5.
	PresetShort
	// PresetDemo is the smoke-test variant: 2 trials in a single step,
	// probe included.
	PresetDemo
)

// ParsePreset maps a -preset flag value to a Preset.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(s) {
	case "main":
		return PresetMain, nil
	case "short":
		return PresetShort, nil
	case "demo":
		return PresetDemo, nil
	default:
		return 0, fmt.Errorf("unknown preset %q (valid: main, short, demo)", s)
	}
}

func (p Preset) String() string {
	switch p {
	case PresetMain:
		return "main"
	case PresetShort:
		return "short"
	case PresetDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// Params returns the block parameters for the preset, without a
// condition; the session assigns conditions per block.
func (p Preset) Params() sart.Params {
	base := sart.Params{
		TargetDigit:     3,
		NonTargetDigits: []int{0, 1, 2, 4, 5, 6, 7, 8, 9},
		Probes:          sart.ProbeByStep,
	}
	switch p {
	case PresetShort:
		base.TotalTrials = 40
		base.Steps = 8
		base.ProbeMin, base.ProbeMax = 5, 5
	case PresetDemo:
		base.TotalTrials = 2
		base.Steps = 1
		base.ProbeMin, base.ProbeMax = 2, 2
	default:
		base.TotalTrials = 120
		base.Steps = 8
		base.ProbeMin, base.ProbeMax = 13, 17
	}
	return base
}

// Default trial timing, shared by every preset.
const (
	DefaultStimulusDuration = 500 * time.Millisecond
	DefaultISI              = 900 * time.Millisecond
	DefaultFixationDuration = 500 * time.Millisecond
)
