package calc

import "math"

// SuggestedSet is one working set of the coming session. Reps is 0 when the
// rep pattern gave no count for the set; callers render that as "?".
type SuggestedSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// SuggestWorkingSets computes this session's working sets from last session's
// weights and a felt tag.
//
// The target set count is the pattern's, falling back to the weight list's
// length. Weight lists shorter than the target carry their last value
// forward; an empty list bases every set on 0. The delta is table[felt] in
// absolute mode, or the rounded percentage of the average last weight in
// percent mode, and is applied uniformly before rounding each set to step.
func SuggestWorkingSets(pattern RepsPattern, weights WeightList, felt FeltTag, table IncrementTable, mode Mode, step float64) []SuggestedSet {
	target := len(pattern)
	if target == 0 {
		target = len(weights)
	}
	if target == 0 {
		return nil
	}

	base := make([]float64, target)
	for i := range base {
		switch {
		case i < len(weights):
			base[i] = weights[i]
		case len(weights) > 0:
			base[i] = weights[len(weights)-1]
		}
	}

	delta := table[felt]
	if mode == ModePercent {
		delta = RoundTo(mean(weights)*delta/100, step)
	}

	sets := make([]SuggestedSet, target)
	for i := range sets {
		reps := 0
		if i < len(pattern) {
			reps = pattern[i]
		} else if len(pattern) > 0 {
			reps = pattern[0]
		}
		sets[i] = SuggestedSet{Reps: reps, Weight: RoundTo(base[i]+delta, step)}
	}
	return sets
}

// mean returns the arithmetic average, NaN for an empty list. The NaN flows
// into RoundTo, which turns it into a zero delta.
func mean(ws WeightList) float64 {
	if len(ws) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, w := range ws {
		sum += w
	}
	return sum / float64(len(ws))
}

// TopWeight returns the heaviest suggested weight, 0 when there are no sets.
func TopWeight(sets []SuggestedSet) float64 {
	var top float64
	for _, s := range sets {
		if s.Weight > top {
			top = s.Weight
		}
	}
	return top
}

// FirstWeight returns the first suggested weight, 0 when there are no sets.
func FirstWeight(sets []SuggestedSet) float64 {
	if len(sets) == 0 {
		return 0
	}
	return sets[0].Weight
}
