// Command eval runs the builtin scenario suite against one estimator and
// exits nonzero if any case fails.
package main

import (
	"flag"
	"os"

	"github.com/hanayukiz/aifunny/internal/scenario"
	"github.com/hanayukiz/aifunny/internal/trend"
	"github.com/hanayukiz/aifunny/internal/util"
)

func main() {
	mode := flag.String("trend", trend.ModeMedianDiff, "trend estimator: last_first, last_prev, median_diff")
	flag.Parse()

	log := util.NewConsoleLogger("info")

	results := scenario.Run(scenario.Builtin(), trend.Build(*mode))
	failed := 0
	for _, res := range results {
		if res.Pass {
			log.Info().Str("case", res.Name).Str("decision", string(res.Got)).Msg("pass")
			continue
		}
		failed++
		ev := log.Error().Str("case", res.Name).Str("want", string(res.Want)).Str("got", string(res.Got))
		if res.Err != nil {
			ev = ev.Err(res.Err)
		}
		ev.Msg("fail")
	}

	log.Info().Int("total", len(results)).Int("failed", failed).Str("trend", *mode).Msg("suite finished")
	if failed > 0 {
		os.Exit(1)
	}
}
