// Command compare runs the decision rule once over two literal series.
//
//	compare -self 1.0,1.0 -env 1.0,5.0 -trend last_first
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hanayukiz/aifunny/internal/policy"
	sig "github.com/hanayukiz/aifunny/internal/signal"
	"github.com/hanayukiz/aifunny/internal/trend"
	"github.com/hanayukiz/aifunny/internal/util"
)

func parseSeries(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid reading %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func main() {
	selfRaw := flag.String("self", "", "comma-separated q_self readings")
	envRaw := flag.String("env", "", "comma-separated q_env readings")
	mode := flag.String("trend", trend.ModeMedianDiff, "trend estimator: last_first, last_prev, median_diff")
	flag.Parse()

	log := util.NewConsoleLogger("info")

	selfVals, err := parseSeries(*selfRaw)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -self")
	}
	envVals, err := parseSeries(*envRaw)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -env")
	}

	self := sig.NewHistory(sig.SourceSelf)
	for _, v := range selfVals {
		self.Append(v)
	}
	env := sig.NewHistory(sig.SourceEnv)
	for _, v := range envVals {
		env.Append(v)
	}

	cmp := policy.New(trend.Build(*mode), policy.DefaultBands())
	out, err := cmp.Evaluate(self, env)
	if err != nil {
		log.Error().Err(err).Msg("no decision")
		os.Exit(1)
	}

	fmt.Printf("trend(q_self) ≈ %+.3f\n", out.SelfDelta)
	fmt.Printf("trend(q_env)  ≈ %+.3f\n", out.EnvDelta)
	fmt.Printf("decision      → %s\n", out.Decision)
	fmt.Printf("action        → %s\n", out.Action)
	fmt.Printf("rationale     → %s\n", out.Action.Rationale())
}
