// liftcalc-plan prints a one-shot session plan to stdout: suggested working
// sets, a warm-up ramp, and per-side plate loadings.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/claude/liftcalc/internal/calc"
	"github.com/claude/liftcalc/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional; stock gym defaults when omitted)")
	lift := flag.String("lift", "", "lift name (pressing lifts get smaller increments)")
	pattern := flag.String("pattern", "", "rep scheme, e.g. '3x6' or '8-6-4'")
	weights := flag.String("weights", "", "last session's weights, comma-separated kg (required)")
	felt := flag.String("felt", "solid", "last session's difficulty: easy, solid, hard, missed")
	mode := flag.String("mode", "", "increment mode: absolute or percent (default from config)")
	step := flag.Float64("step", 0, "rounding step in kg (default from config)")
	heavy := flag.Bool("heavy", false, "offset-policy warm-ups: add a near-work single")
	scheme := flag.String("scheme", "", "manual scheme, e.g. '5x30, 4x40%' (replaces suggestion)")
	base := flag.Float64("base", 0, "base weight for percentage scheme tokens")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if *weights == "" && *scheme == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftcalc-plan -weights '60, 62.5, 65' [-pattern 3x6] [-felt solid] [-lift squat]\n")
		fmt.Fprintf(os.Stderr, "       liftcalc-plan -scheme '5x30, 4x40%%' -base 80\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	roundStep := *step
	if roundStep <= 0 {
		roundStep = cfg.Gym.RoundingStep
	}

	if *scheme != "" {
		printScheme(cfg, *scheme, *base, roundStep)
		return
	}

	feltTag, ok := calc.ParseFeltTag(*felt)
	if !ok {
		log.Error("unknown felt tag", "felt", *felt)
		os.Exit(1)
	}
	incMode := cfg.Mode()
	if m := calc.Mode(*mode); m == calc.ModeAbsolute || m == calc.ModePercent {
		incMode = m
	}

	table := calc.ResolveIncrements(*lift, cfg.LiftIncrements(*lift))
	sets := calc.SuggestWorkingSets(
		calc.ParseRepsPattern(*pattern),
		calc.ParseWeightList(*weights),
		feltTag, table, incMode, roundStep,
	)
	if len(sets) == 0 {
		fmt.Println("nothing to suggest — check the weights and pattern")
		return
	}

	policy := cfg.WarmupPolicy()
	driving := calc.TopWeight(sets)
	if policy == calc.PolicyOffset {
		driving = calc.FirstWeight(sets)
	}
	warmups := calc.GenerateWarmups(driving, roundStep, calc.WarmupOptions{
		Policy:    policy,
		Ladder:    cfg.Warmup.Ladder,
		BarWeight: cfg.Gym.BarWeight,
		Offset:    cfg.Gym.WarmupOffset,
		Heavy:     *heavy,
	})

	if len(warmups) > 0 {
		fmt.Println("Warm-up:")
		for _, r := range warmups {
			fmt.Printf("  %d x %s kg\n", r.Reps, calc.FormatWeight(r.Weight))
		}
	}

	fmt.Println("Working sets:")
	for _, s := range sets {
		reps := "?"
		if s.Reps > 0 {
			reps = fmt.Sprintf("%d", s.Reps)
		}
		fmt.Printf("  %s x %s kg%s\n", reps, calc.FormatWeight(s.Weight), plateSuffix(s.Weight, cfg.Gym.BarWeight))
	}
}

func printScheme(cfg *config.Config, text string, base, step float64) {
	rows := calc.ResolveScheme(calc.ParseManualScheme(text), base, step, 0)
	if len(rows) == 0 {
		fmt.Println("no valid scheme tokens — expected entries like '5x30' or '4x40%'")
		return
	}
	fmt.Println("Scheme:")
	for _, row := range rows {
		fmt.Printf("  %s%s\n", row.Display, plateSuffix(row.Weight, cfg.Gym.BarWeight))
	}
}

// plateSuffix renders the per-side plate loading for a weight, empty when
// nothing goes on the bar.
func plateSuffix(weight, bar float64) string {
	plates := calc.PlateBreakdown(weight, bar)
	if len(plates) == 0 {
		return ""
	}
	parts := make([]string, len(plates))
	for i, p := range plates {
		parts[i] = fmt.Sprintf("%dx%s", p.Count, calc.FormatWeight(p.Denomination))
	}
	return "  (per side: " + strings.Join(parts, " + ") + ")"
}
