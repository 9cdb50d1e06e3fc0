package calc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// schemeTokenRe matches one manual entry: "<reps> x <number>" or
// "<reps> @ <number>", with an optional trailing % marking the number as a
// percentage of the base weight.
var schemeTokenRe = regexp.MustCompile(`^\s*(\d+)\s*[xX@]\s*(\d+(?:\.\d+)?)\s*(%?)\s*$`)

// SchemeToken is one parsed manual-scheme entry.
type SchemeToken struct {
	Reps      int     `json:"reps"`
	Value     float64 `json:"value"`
	IsPercent bool    `json:"is_percent"`
}

// ParseManualScheme splits free text on commas and newlines and keeps the
// tokens matching "<reps> (x|@) <number>[%]". Everything else is dropped
// silently.
func ParseManualScheme(text string) []SchemeToken {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var tokens []SchemeToken
	for _, part := range parts {
		m := schemeTokenRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		reps, _ := strconv.Atoi(m[1])
		value, _ := strconv.ParseFloat(m[2], 64)
		tokens = append(tokens, SchemeToken{
			Reps:      reps,
			Value:     value,
			IsPercent: m[3] == "%",
		})
	}
	return tokens
}

// ResolvedRow is a scheme token turned into a concrete load.
type ResolvedRow struct {
	Reps    int     `json:"reps"`
	Weight  float64 `json:"weight"`
	Display string  `json:"display"`
}

// ResolveScheme turns tokens into concrete rows against a base weight.
// Percentage tokens resolve to value% of base, absolute tokens use the value
// directly; both are rounded to step. Rows lighter than minLoad are dropped
// (minLoad 0 keeps everything).
func ResolveScheme(tokens []SchemeToken, base, step, minLoad float64) []ResolvedRow {
	var rows []ResolvedRow
	for _, tok := range tokens {
		weight := tok.Value
		if tok.IsPercent {
			weight = base * tok.Value / 100
		}
		weight = RoundTo(weight, step)
		if weight < minLoad {
			continue
		}
		rows = append(rows, ResolvedRow{
			Reps:    tok.Reps,
			Weight:  weight,
			Display: fmt.Sprintf("%d x %s kg", tok.Reps, FormatWeight(weight)),
		})
	}
	return rows
}

// FormatWeight renders a weight without trailing zeros: 57.5 stays "57.5",
// 40.0 becomes "40".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
