package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/claude/liftcalc/internal/calc"
	"github.com/go-chi/chi/v5"
)

type suggestRequest struct {
	Pattern    string             `json:"pattern"`
	Weights    string             `json:"weights"`
	Felt       string             `json:"felt"`
	Lift       string             `json:"lift"`
	Mode       string             `json:"mode"`
	Step       float64            `json:"step"`
	Heavy      bool               `json:"heavy"`
	Increments map[string]float64 `json:"increments"`
}

type suggestedSetJSON struct {
	Reps    string            `json:"reps"` // "?" when the pattern gave no count
	Weight  float64           `json:"weight"`
	Display string            `json:"display"`
	Plates  []calc.PlateCount `json:"plates"`
}

type suggestResponse struct {
	Sets    []suggestedSetJSON `json:"sets"`
	Warmups []calc.WarmupRung  `json:"warmups"`
}

// handleSuggest runs the whole pipeline: parse pattern and weights, suggest
// working sets, derive the warm-up ramp and per-set plate loadings.
// Unparseable calculator text is not an error — it degrades to empty results.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	felt, ok := calc.ParseFeltTag(req.Felt)
	if !ok {
		felt = calc.FeltSolid
	}

	mode := s.cfg.Mode()
	if m := calc.Mode(req.Mode); m == calc.ModeAbsolute || m == calc.ModePercent {
		mode = m
	}

	step := req.Step
	if step <= 0 {
		step = s.cfg.Gym.RoundingStep
	}

	override := incrementsFromRequest(req.Increments)
	if len(override) == 0 {
		override = s.cfg.LiftIncrements(req.Lift)
	}
	table := calc.ResolveIncrements(req.Lift, override)

	pattern := calc.ParseRepsPattern(req.Pattern)
	weights := calc.ParseWeightList(req.Weights)
	sets := calc.SuggestWorkingSets(pattern, weights, felt, table, mode, step)

	policy := s.cfg.WarmupPolicy()
	driving := calc.TopWeight(sets)
	if policy == calc.PolicyOffset {
		driving = calc.FirstWeight(sets)
	}
	warmups := calc.GenerateWarmups(driving, step, calc.WarmupOptions{
		Policy:    policy,
		Ladder:    s.cfg.Warmup.Ladder,
		BarWeight: s.cfg.Gym.BarWeight,
		Offset:    s.cfg.Gym.WarmupOffset,
		Heavy:     req.Heavy,
	})

	resp := suggestResponse{Warmups: warmups}
	for _, set := range sets {
		resp.Sets = append(resp.Sets, suggestedSetJSON{
			Reps:    repsLabel(set.Reps),
			Weight:  set.Weight,
			Display: fmt.Sprintf("%s x %s kg", repsLabel(set.Reps), calc.FormatWeight(set.Weight)),
			Plates:  calc.PlateBreakdown(set.Weight, s.cfg.Gym.BarWeight),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type warmupsRequest struct {
	Weight float64 `json:"weight"`
	Step   float64 `json:"step"`
	Policy string  `json:"policy"`
	Offset float64 `json:"offset"`
	Heavy  bool    `json:"heavy"`
}

func (s *Server) handleWarmups(w http.ResponseWriter, r *http.Request) {
	var req warmupsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	step := req.Step
	if step <= 0 {
		step = s.cfg.Gym.RoundingStep
	}
	policy := s.cfg.WarmupPolicy()
	if p := calc.WarmupPolicy(req.Policy); p == calc.PolicyPercentRamp || p == calc.PolicyOffset {
		policy = p
	}
	offset := req.Offset
	if offset == 0 {
		offset = s.cfg.Gym.WarmupOffset
	}

	rungs := calc.GenerateWarmups(req.Weight, step, calc.WarmupOptions{
		Policy:    policy,
		Ladder:    s.cfg.Warmup.Ladder,
		BarWeight: s.cfg.Gym.BarWeight,
		Offset:    offset,
		Heavy:     req.Heavy,
	})
	writeJSON(w, http.StatusOK, map[string]any{"warmups": rungs})
}

type schemeRequest struct {
	Text    string  `json:"text"`
	Base    float64 `json:"base"`
	Step    float64 `json:"step"`
	MinLoad float64 `json:"min_load"`
}

func (s *Server) handleScheme(w http.ResponseWriter, r *http.Request) {
	var req schemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	step := req.Step
	if step <= 0 {
		step = s.cfg.Gym.RoundingStep
	}

	tokens := calc.ParseManualScheme(req.Text)
	rows := calc.ResolveScheme(tokens, req.Base, step, req.MinLoad)
	writeJSON(w, http.StatusOK, map[string]any{"rows": rows})
}

type platesRequest struct {
	Total float64 `json:"total"`
	Bar   float64 `json:"bar"`
}

func (s *Server) handlePlates(w http.ResponseWriter, r *http.Request) {
	var req platesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	bar := req.Bar
	if bar <= 0 {
		bar = s.cfg.Gym.BarWeight
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"per_side": (req.Total - bar) / 2,
		"plates":   calc.PlateBreakdown(req.Total, bar),
	})
}

func (s *Server) handleIncrements(w http.ResponseWriter, r *http.Request) {
	lift := chi.URLParam(r, "lift")
	table := calc.ResolveIncrements(lift, s.cfg.LiftIncrements(lift))
	writeJSON(w, http.StatusOK, map[string]any{
		"lift":       lift,
		"mode":       s.cfg.Increments.Mode,
		"increments": table,
	})
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	ladder := s.cfg.Warmup.Ladder
	if len(ladder) == 0 {
		ladder = calc.DefaultLadder
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bar_weight":    s.cfg.Gym.BarWeight,
		"rounding_step": s.cfg.Gym.RoundingStep,
		"warmup_offset": s.cfg.Gym.WarmupOffset,
		"warmup_policy": s.cfg.Warmup.Policy,
		"ladder":        ladder,
		"denominations": calc.Denominations,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// repsLabel renders a rep count, with "?" for the unknown (0) case.
func repsLabel(reps int) string {
	if reps <= 0 {
		return "?"
	}
	return fmt.Sprintf("%d", reps)
}

// incrementsFromRequest converts a request's felt→delta map, ignoring keys
// outside the felt enumeration.
func incrementsFromRequest(m map[string]float64) calc.IncrementTable {
	if len(m) == 0 {
		return nil
	}
	table := make(calc.IncrementTable, len(m))
	for k, v := range m {
		if tag, ok := calc.ParseFeltTag(k); ok {
			table[tag] = v
		}
	}
	return table
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
