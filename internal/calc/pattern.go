package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// setsByRepsRe matches shorthand like "3x6" or "3 X 6".
	setsByRepsRe = regexp.MustCompile(`^\s*(\d+)\s*[xX]\s*(\d+)\s*$`)

	// bareIntRe matches a single non-negative integer token.
	bareIntRe = regexp.MustCompile(`^\d+$`)
)

// RepsPattern holds the per-set repetition counts for a session. An empty
// pattern means the input was blank or unparseable.
type RepsPattern []int

// Sets returns the number of working sets the pattern describes.
func (p RepsPattern) Sets() int { return len(p) }

// ParseRepsPattern parses a free-text rep scheme. "NxR" shorthand yields N
// sets of R reps; a comma- or dash-separated list of bare integers yields one
// set per token. Anything else yields an empty pattern.
func ParseRepsPattern(text string) RepsPattern {
	if m := setsByRepsRe.FindStringSubmatch(text); m != nil {
		sets, _ := strconv.Atoi(m[1])
		reps, _ := strconv.Atoi(m[2])
		pattern := make(RepsPattern, sets)
		for i := range pattern {
			pattern[i] = reps
		}
		return pattern
	}

	tokens := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == '-' })
	var pattern RepsPattern
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if !bareIntRe.MatchString(tok) {
			return nil
		}
		reps, _ := strconv.Atoi(tok)
		pattern = append(pattern, reps)
	}
	return pattern
}

// WeightList is an ordered list of working weights in kilograms.
type WeightList []float64

// ParseWeightList parses comma/newline-separated decimal weights.
// Non-numeric and non-positive tokens are dropped silently.
func ParseWeightList(text string) WeightList {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var weights WeightList
	for _, tok := range tokens {
		w, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil || w <= 0 {
			continue
		}
		weights = append(weights, w)
	}
	return weights
}
