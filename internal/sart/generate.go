package sart

import (
	"fmt"
	"math/rand"
)

// targetPercent is the proportion of target (no-go) trials in a
// response-inhibition block, in hundredths. The target count is
// floor(TotalTrials * 15%).
const targetPercent = 15

// GenerateBlock derives a trial sequence and probe schedule from p.
// All parameters are validated before the first random draw; on
// failure the error wraps ErrInvalidConfig or ErrInfeasiblePartition
// and no partial plan is returned.
func GenerateBlock(p Params, rng *rand.Rand) (*BlockPlan, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	digits := p.digitList()
	rng.Shuffle(len(digits), func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})

	trials := make([]TrialSpec, len(digits))
	for i, d := range digits {
		side := Left
		if rng.Intn(2) == 1 {
			side = Right
		}
		trials[i] = TrialSpec{
			Index:    i + 1,
			Digit:    d,
			Side:     side,
			IsTarget: d == p.TargetDigit && p.Condition == ResponseInhibition,
		}
	}

	return &BlockPlan{
		Trials:         trials,
		ProbePositions: p.probePositions(rng),
	}, nil
}

func (p Params) validate() error {
	if p.TotalTrials < 1 {
		return fmt.Errorf("%w: total trials must be positive, got %d", ErrInvalidConfig, p.TotalTrials)
	}
	if p.TargetDigit < 0 || p.TargetDigit > 9 {
		return fmt.Errorf("%w: target digit must be 0-9, got %d", ErrInvalidConfig, p.TargetDigit)
	}
	if len(p.NonTargetDigits) == 0 {
		return fmt.Errorf("%w: non-target digit pool is empty", ErrInvalidConfig)
	}
	for _, d := range p.NonTargetDigits {
		if d < 0 || d > 9 {
			return fmt.Errorf("%w: non-target digit must be 0-9, got %d", ErrInvalidConfig, d)
		}
		if d == p.TargetDigit {
			return fmt.Errorf("%w: target digit %d also appears in the non-target pool", ErrInvalidConfig, d)
		}
	}
	if p.ProbeMin <= 0 || p.ProbeMax <= 0 {
		return fmt.Errorf("%w: probe bounds must be positive, got [%d, %d]", ErrInvalidConfig, p.ProbeMin, p.ProbeMax)
	}
	if p.ProbeMin > p.ProbeMax {
		return fmt.Errorf("%w: probe minimum %d exceeds maximum %d", ErrInvalidConfig, p.ProbeMin, p.ProbeMax)
	}

	if p.Probes == ProbeByStep {
		if p.Steps < 1 {
			return fmt.Errorf("%w: step count must be positive, got %d", ErrInvalidConfig, p.Steps)
		}
		if p.Steps*p.ProbeMin > p.TotalTrials {
			return fmt.Errorf("%w: %d steps of at least %d trials need %d trials, block has %d",
				ErrInfeasiblePartition, p.Steps, p.ProbeMin, p.Steps*p.ProbeMin, p.TotalTrials)
		}
		if p.Steps*p.ProbeMax < p.TotalTrials {
			return fmt.Errorf("%w: %d steps of at most %d trials cover %d trials, block has %d",
				ErrInfeasiblePartition, p.Steps, p.ProbeMax, p.Steps*p.ProbeMax, p.TotalTrials)
		}
	}
	return nil
}

// digitList builds the unshuffled digit sequence. Under
// ResponseInhibition the first targetCount entries are the target
// digit and the rest cycle through the non-target pool; under
// NonInhibition every entry cycles through the non-target pool. The
// round robin keeps every non-target digit's count within 1 of even
// for any trial count.
func (p Params) digitList() []int {
	list := make([]int, 0, p.TotalTrials)

	nonTargets := p.TotalTrials
	if p.Condition == ResponseInhibition {
		targets := p.TotalTrials * targetPercent / 100
		nonTargets = p.TotalTrials - targets
		for i := 0; i < targets; i++ {
			list = append(list, p.TargetDigit)
		}
	}
	for i := 0; i < nonTargets; i++ {
		list = append(list, p.NonTargetDigits[i%len(p.NonTargetDigits)])
	}
	return list
}
