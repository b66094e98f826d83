package sart

import "math/rand"

// probePositions places probes according to the configured strategy.
// Params are already validated, so neither branch can fail.
func (p Params) probePositions(rng *rand.Rand) []int {
	if p.Probes == ProbeEveryInterval {
		return intervalWalk(rng, p.TotalTrials, p.ProbeMin, p.ProbeMax)
	}
	sizes := partitionSteps(rng, p.TotalTrials, p.Steps, p.ProbeMin, p.ProbeMax)
	positions := make([]int, 0, len(sizes))
	after := 0
	for _, size := range sizes {
		after += size
		positions = append(positions, after)
	}
	return positions
}

// intervalWalk draws a fresh gap in [min, max] for each probe and
// stops once the cursor reaches the end of the block. A block shorter
// than min gets no probes.
func intervalWalk(rng *rand.Rand, total, min, max int) []int {
	var positions []int
	cursor := drawBetween(rng, min, max)
	for cursor < total {
		positions = append(positions, cursor)
		cursor += drawBetween(rng, min, max)
	}
	return positions
}

// partitionSteps splits total into steps contiguous segment sizes,
// each within [min, max], summing exactly to total. Each draw is
// clamped to what keeps the remaining segments feasible, so the last
// segment absorbs exactly what is left.
func partitionSteps(rng *rand.Rand, total, steps, min, max int) []int {
	sizes := make([]int, steps)
	remaining := total
	for i := range sizes {
		rest := steps - i - 1
		lo := remaining - rest*max
		if lo < min {
			lo = min
		}
		hi := remaining - rest*min
		if hi > max {
			hi = max
		}
		sizes[i] = drawBetween(rng, lo, hi)
		remaining -= sizes[i]
	}
	return sizes
}

// drawBetween returns a uniform draw from [lo, hi] inclusive.
func drawBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
