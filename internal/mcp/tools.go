package mcp

import (
	"context"
	"strconv"

	"github.com/claude/liftcalc/internal/calc"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolSuggestWorkingSets = mcp.NewTool("suggest_working_sets",
	mcp.WithDescription("Suggest this session's working sets from last session's weights and a felt rating. Returns sets with reps and weights, plus a warm-up ramp."),
	mcp.WithString("weights", mcp.Required(), mcp.Description("Last session's working weights, comma-separated kilograms (e.g. '60, 62.5, 65')")),
	mcp.WithString("pattern", mcp.Description("Rep scheme: 'NxR' shorthand (e.g. '3x6') or a per-set list (e.g. '8-6-4'). Defaults to one set per weight.")),
	mcp.WithString("felt", mcp.Description("How the last session felt"), mcp.Enum("easy", "solid", "hard", "missed")),
	mcp.WithString("lift", mcp.Description("Lift name; pressing lifts default to smaller increments (e.g. 'bench press', 'squat')")),
	mcp.WithString("mode", mcp.Description("Increment mode: flat kilograms or percent of the average last weight"), mcp.Enum("absolute", "percent")),
	mcp.WithNumber("step", mcp.Description("Rounding step in kilograms. Defaults to the configured gym step.")),
	mcp.WithBoolean("heavy", mcp.Description("Offset-policy warm-ups only: add a near-work single")),
)

var toolGenerateWarmups = mcp.NewTool("generate_warmups",
	mcp.WithDescription("Generate an ascending warm-up ramp toward a working weight."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Driving weight in kilograms: the top set for the percent policy, the first working set for the offset policy")),
	mcp.WithString("policy", mcp.Description("Warm-up policy. Defaults to the configured one."), mcp.Enum("percent", "offset")),
	mcp.WithNumber("offset", mcp.Description("Offset policy: kilograms below the first set for the last rung, clamped to 5-10")),
	mcp.WithBoolean("heavy", mcp.Description("Offset policy: add a near-work single")),
	mcp.WithNumber("step", mcp.Description("Rounding step in kilograms. Defaults to the configured gym step.")),
)

var toolResolveScheme = mcp.NewTool("resolve_scheme",
	mcp.WithDescription("Resolve a free-text rep/weight scheme into concrete loads. Tokens look like '5x30' (absolute kg) or '4x40%' (percent of the base weight); anything else is ignored."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Comma- or newline-separated scheme tokens")),
	mcp.WithNumber("base", mcp.Description("Base weight for percentage tokens (e.g. a training max)")),
	mcp.WithNumber("min_load", mcp.Description("Hide rows lighter than this. Defaults to 0 (show all).")),
	mcp.WithNumber("step", mcp.Description("Rounding step in kilograms. Defaults to the configured gym step.")),
)

var toolPlateBreakdown = mcp.NewTool("plate_breakdown",
	mcp.WithDescription("Decompose a total bar load into per-side plate counts over the standard 25/20/10/5/2.5/1.25 kg set."),
	mcp.WithNumber("total", mcp.Required(), mcp.Description("Total bar load in kilograms, bar included")),
	mcp.WithNumber("bar", mcp.Description("Bar weight in kilograms. Defaults to the configured bar.")),
)

var toolDefaultIncrements = mcp.NewTool("default_increments",
	mcp.WithDescription("Get the increment table for a lift: the signed delta applied per felt rating. Pressing lifts get smaller deltas."),
	mcp.WithString("lift", mcp.Required(), mcp.Description("Lift name")),
)

// --- Tool handlers ---

func (h *handlers) suggestWorkingSets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weightsText, err := req.RequireString("weights")
	if err != nil {
		return mcp.NewToolResultError("weights parameter is required"), nil
	}

	felt, ok := calc.ParseFeltTag(req.GetString("felt", "solid"))
	if !ok {
		felt = calc.FeltSolid
	}
	lift := req.GetString("lift", "")

	mode := h.cfg.Mode()
	if m := calc.Mode(req.GetString("mode", "")); m == calc.ModeAbsolute || m == calc.ModePercent {
		mode = m
	}

	step := req.GetFloat("step", h.cfg.Gym.RoundingStep)
	table := calc.ResolveIncrements(lift, h.cfg.LiftIncrements(lift))

	pattern := calc.ParseRepsPattern(req.GetString("pattern", ""))
	weights := calc.ParseWeightList(weightsText)
	sets := calc.SuggestWorkingSets(pattern, weights, felt, table, mode, step)

	policy := h.cfg.WarmupPolicy()
	driving := calc.TopWeight(sets)
	if policy == calc.PolicyOffset {
		driving = calc.FirstWeight(sets)
	}
	warmups := calc.GenerateWarmups(driving, step, calc.WarmupOptions{
		Policy:    policy,
		Ladder:    h.cfg.Warmup.Ladder,
		BarWeight: h.cfg.Gym.BarWeight,
		Offset:    h.cfg.Gym.WarmupOffset,
		Heavy:     req.GetBool("heavy", false),
	})

	out := make([]suggestedSetPayload, len(sets))
	for i, set := range sets {
		out[i] = suggestedSetPayload{Reps: repsLabel(set.Reps), Weight: set.Weight}
	}
	result, err := mcp.NewToolResultJSON(map[string]any{
		"sets":    out,
		"warmups": warmups,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// suggestedSetPayload renders a suggested set for the tool result; Reps is
// "?" when the rep pattern gave no count for the set.
type suggestedSetPayload struct {
	Reps   string  `json:"reps"`
	Weight float64 `json:"weight"`
}

func repsLabel(reps int) string {
	if reps <= 0 {
		return "?"
	}
	return strconv.Itoa(reps)
}

func (h *handlers) generateWarmups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}

	policy := h.cfg.WarmupPolicy()
	if p := calc.WarmupPolicy(req.GetString("policy", "")); p == calc.PolicyPercentRamp || p == calc.PolicyOffset {
		policy = p
	}

	rungs := calc.GenerateWarmups(weight, req.GetFloat("step", h.cfg.Gym.RoundingStep), calc.WarmupOptions{
		Policy:    policy,
		Ladder:    h.cfg.Warmup.Ladder,
		BarWeight: h.cfg.Gym.BarWeight,
		Offset:    req.GetFloat("offset", h.cfg.Gym.WarmupOffset),
		Heavy:     req.GetBool("heavy", false),
	})

	result, err := mcp.NewToolResultJSON(map[string]any{"warmups": rungs})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) resolveScheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	tokens := calc.ParseManualScheme(text)
	rows := calc.ResolveScheme(tokens,
		req.GetFloat("base", 0),
		req.GetFloat("step", h.cfg.Gym.RoundingStep),
		req.GetFloat("min_load", 0),
	)

	result, err := mcp.NewToolResultJSON(map[string]any{"rows": rows})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) plateBreakdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	total, err := req.RequireFloat("total")
	if err != nil {
		return mcp.NewToolResultError("total parameter is required"), nil
	}
	bar := req.GetFloat("bar", h.cfg.Gym.BarWeight)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"per_side": (total - bar) / 2,
		"plates":   calc.PlateBreakdown(total, bar),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) defaultIncrements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lift, err := req.RequireString("lift")
	if err != nil {
		return mcp.NewToolResultError("lift parameter is required"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"lift":       lift,
		"mode":       h.cfg.Increments.Mode,
		"increments": calc.ResolveIncrements(lift, h.cfg.LiftIncrements(lift)),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
