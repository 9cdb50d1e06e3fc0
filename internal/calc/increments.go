package calc

import "strings"

// FeltTag is the subjective difficulty of the previous session.
type FeltTag string

const (
	FeltEasy   FeltTag = "easy"
	FeltSolid  FeltTag = "solid"
	FeltHard   FeltTag = "hard"
	FeltMissed FeltTag = "missed"
)

// ParseFeltTag parses a felt tag, case-insensitively. The second return is
// false for anything outside the fixed enumeration.
func ParseFeltTag(s string) (FeltTag, bool) {
	switch tag := FeltTag(strings.ToLower(strings.TrimSpace(s))); tag {
	case FeltEasy, FeltSolid, FeltHard, FeltMissed:
		return tag, true
	}
	return "", false
}

// Mode selects how increment deltas are interpreted.
type Mode string

const (
	ModeAbsolute Mode = "absolute" // deltas are kilograms
	ModePercent  Mode = "percent"  // deltas are % of the average last weight
)

// IncrementTable maps a felt tag to its signed progression delta.
type IncrementTable map[FeltTag]float64

// DefaultIncrements returns the stock increment table for a lift. Pressing
// lifts progress in smaller steps than squat/deadlift-class lifts.
func DefaultIncrements(liftName string) IncrementTable {
	if isPressing(liftName) {
		return IncrementTable{FeltEasy: 2.5, FeltSolid: 1.25, FeltHard: 0, FeltMissed: -2.5}
	}
	return IncrementTable{FeltEasy: 5, FeltSolid: 2.5, FeltHard: 0, FeltMissed: -5}
}

func isPressing(liftName string) bool {
	return strings.Contains(strings.ToLower(liftName), "press")
}

// ResolveIncrements returns the caller's override when present, otherwise the
// lift's defaults. User edits survive until the lift changes; defaults are
// recomputed per lift with no cached state.
func ResolveIncrements(liftName string, override IncrementTable) IncrementTable {
	if len(override) > 0 {
		return override
	}
	return DefaultIncrements(liftName)
}
