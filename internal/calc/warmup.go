package calc

import (
	"math"
	"sort"
)

// WarmupPolicy selects how warm-up ramps are derived.
type WarmupPolicy string

const (
	// PolicyPercentRamp builds rungs from a fixed ladder of percentages of
	// the top working weight.
	PolicyPercentRamp WarmupPolicy = "percent"

	// PolicyOffset builds rungs relative to the first working set, with the
	// last rung a fixed offset below it.
	PolicyOffset WarmupPolicy = "offset"
)

// WarmupRung is one step of the ascending warm-up ramp.
type WarmupRung struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// LadderStep is one (reps, percent-of-top) entry of the percent-ramp ladder.
type LadderStep struct {
	Reps    int     `json:"reps" yaml:"reps"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// DefaultLadder is the stock percent ramp: 5x40%, 4x50%, 3x60%, 2x70%.
var DefaultLadder = []LadderStep{{5, 40}, {4, 50}, {3, 60}, {2, 70}}

// WarmupOptions configures GenerateWarmups. The zero value selects the
// percent-ramp policy with DefaultLadder.
type WarmupOptions struct {
	Policy    WarmupPolicy
	Ladder    []LadderStep // percent policy; DefaultLadder when empty
	BarWeight float64      // offset policy: floor for every rung
	Offset    float64      // offset policy: kg below the first set, clamped to [5,10]
	Heavy     bool         // offset policy: add a near-work single
}

// GenerateWarmups derives the warm-up ramp from the driving weight — the top
// suggested weight for the percent policy, the first working weight for the
// offset policy. A zero or negative weight yields no ramp; callers show a
// prompt instead.
func GenerateWarmups(weight, step float64, opts WarmupOptions) []WarmupRung {
	if weight <= 0 {
		return nil
	}
	if opts.Policy == PolicyOffset {
		return offsetRamp(weight, step, opts)
	}
	return percentRamp(weight, step, opts.Ladder)
}

func percentRamp(top, step float64, ladder []LadderStep) []WarmupRung {
	if len(ladder) == 0 {
		ladder = DefaultLadder
	}
	rungs := make([]WarmupRung, len(ladder))
	for i, ls := range ladder {
		rungs[i] = WarmupRung{Reps: ls.Reps, Weight: RoundTo(top*ls.Percent/100, step)}
	}
	return rungs
}

func offsetRamp(firstSet, step float64, opts WarmupOptions) []WarmupRung {
	offset := clamp(opts.Offset, 5, 10)
	bar := opts.BarWeight

	last := RoundTo(math.Max(bar, firstSet-offset), step)
	rungs := []WarmupRung{
		{Reps: 5, Weight: RoundTo(math.Max(bar, firstSet*0.4), step)},
		{Reps: 3, Weight: RoundTo(math.Max(bar, firstSet*0.6), step)},
		{Reps: 1, Weight: last},
	}

	if opts.Heavy {
		// One heavier single before the work sets, but never at or above the
		// last rung — that would just repeat it.
		single := RoundTo(math.Min(last, math.Max(bar, firstSet*0.82)), step)
		if single < last {
			rungs = append(rungs, WarmupRung{Reps: 1, Weight: single})
		}
	}

	sort.SliceStable(rungs, func(i, j int) bool { return rungs[i].Weight < rungs[j].Weight })
	return rungs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
