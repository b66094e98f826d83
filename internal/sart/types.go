// Package sart generates and scores trial sequences for the Sustained
// Attention to Response Task. The generator is pure: all randomness
// comes from an injected *rand.Rand, so a seeded source reproduces a
// block exactly.
package sart

// Side is the side of the fixation mark a digit is shown on.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Condition selects the response rule for a block. Under
// ResponseInhibition the target digit is a no-go stimulus; under
// NonInhibition every trial expects a response and no trial is a
// target, whatever its digit.
type Condition int

const (
	ResponseInhibition Condition = iota
	NonInhibition
)

func (c Condition) String() string {
	switch c {
	case ResponseInhibition:
		return "RI"
	case NonInhibition:
		return "NRI"
	default:
		return "unknown"
	}
}

// ProbeStrategy selects how mind-wandering probe positions are placed
// within a block. The two strategies come from different revisions of
// the protocol and are never mixed.
type ProbeStrategy int

const (
	// ProbeByStep partitions the block into a fixed number of
	// contiguous steps and places a probe after every step. The probe
	// count is always Steps.
	ProbeByStep ProbeStrategy = iota

	// ProbeEveryInterval walks through the block drawing a fresh gap
	// in [ProbeMin, ProbeMax] for each probe. The probe count varies
	// with the draws; a block shorter than ProbeMin gets no probes.
	ProbeEveryInterval
)

func (p ProbeStrategy) String() string {
	switch p {
	case ProbeByStep:
		return "step"
	case ProbeEveryInterval:
		return "interval"
	default:
		return "unknown"
	}
}

// TrialSpec describes one trial of a block.
type TrialSpec struct {
	Index    int // 1-based position within the block
	Digit    int
	Side     Side
	IsTarget bool // true only for the target digit under ResponseInhibition
}

// BlockPlan is the generator's output for one block. It is built once,
// consumed trial by trial, and never mutated.
type BlockPlan struct {
	Trials []TrialSpec

	// ProbePositions are the 1-based trial indices after which a
	// mind-wandering probe is presented, in increasing order.
	ProbePositions []int
}

// IsProbeAfter reports whether a probe follows the trial at index
// (1-based).
func (b *BlockPlan) IsProbeAfter(index int) bool {
	for _, p := range b.ProbePositions {
		if p == index {
			return true
		}
		if p > index {
			return false
		}
	}
	return false
}

// Params are the inputs to GenerateBlock. A Params value is passed by
// value and never mutated, replacing the globally patched parameter
// table the original protocol scripts shared.
type Params struct {
	Condition       Condition
	TotalTrials     int
	TargetDigit     int
	NonTargetDigits []int

	Probes ProbeStrategy

	// Steps is the number of contiguous segments for ProbeByStep.
	// Ignored by ProbeEveryInterval.
	Steps int

	// ProbeMin and ProbeMax bound the trials per step (ProbeByStep)
	// or the gap between consecutive probes (ProbeEveryInterval).
	ProbeMin int
	ProbeMax int
}
