package calc

import "math"

// Denominations is the standard per-side plate set in kilograms, heaviest
// first. No 15: a greedy pass over a set with both 15 and 10 would pick
// 1x15 for a 40 kg side where 25+10+5 is the expected loading.
var Denominations = []float64{25, 20, 10, 5, 2.5, 1.25}

// PlateCount is how many plates of one denomination go on each side of the
// bar.
type PlateCount struct {
	Count        int     `json:"count"`
	Denomination float64 `json:"denomination"`
}

// PlateBreakdown decomposes a total bar load into per-side plate counts with
// a greedy pass over Denominations. The per-side target is (total-bar)/2; a
// target of zero or less yields no plates. Counts assume unlimited inventory
// and the result is greedy, not plate-minimal.
func PlateBreakdown(total, bar float64) []PlateCount {
	remaining := (total - bar) / 2
	if remaining <= 0 {
		return nil
	}

	var plates []PlateCount
	for _, d := range Denominations {
		count := int(remaining / d)
		if count <= 0 {
			continue
		}
		plates = append(plates, PlateCount{Count: count, Denomination: d})
		// Round the carry to 3 decimals so float drift cannot eat the next
		// denomination.
		remaining = math.Round((remaining-float64(count)*d)*1000) / 1000
	}
	return plates
}
