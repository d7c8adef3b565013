package main

import (
	"context"
	"errors"
	"flag"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/hanayukiz/aifunny/internal/config"
	"github.com/hanayukiz/aifunny/internal/feed"
	"github.com/hanayukiz/aifunny/internal/guard"
	"github.com/hanayukiz/aifunny/internal/journal"
	"github.com/hanayukiz/aifunny/internal/metrics"
	"github.com/hanayukiz/aifunny/internal/policy"
	"github.com/hanayukiz/aifunny/internal/report"
	sig "github.com/hanayukiz/aifunny/internal/signal"
	"github.com/hanayukiz/aifunny/internal/trend"
	"github.com/hanayukiz/aifunny/internal/util"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	flag.Parse()

	log := util.NewLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	log = util.NewLogger(cfg.App.LogLevel)

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	f := feed.New(cfg.Feed.Provider, log,
		feed.WithURL(cfg.Feed.URL),
		feed.WithInterval(time.Duration(cfg.Feed.IntervalMs)*time.Millisecond),
		feed.WithDrift(cfg.Feed.SelfDrift, cfg.Feed.EnvDrift),
	)
	samples := make(chan sig.Sample, 1024)

	go func() {
		if err := f.Run(ctx, samples); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("feed stopped")
			cancel()
		}
	}()

	cmp := policy.New(trend.Build(cfg.Trend.Mode), policy.Bands{TauPos: cfg.Policy.TauPos, TauNeg: cfg.Policy.TauNeg},
		policy.WithWindow(cfg.Trend.Window))
	g := guard.New(cfg.Policy.MinConfirmations)
	reporter := report.NewReporter(log)
	ledger := journal.NewLedger(cfg.Journal.Capacity)

	var recorder *journal.JSONLRecorder
	if cfg.Journal.Path != "" {
		recorder, err = journal.NewJSONLRecorder(cfg.Journal.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("open journal")
		}
		defer recorder.Close()
	}

	self := sig.NewHistory(sig.SourceSelf)
	env := sig.NewHistory(sig.SourceEnv)

	log.Info().Str("trend", cfg.Trend.Mode).Msg("observer started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("outcomes", len(ledger.Snapshot())).Msg("shutting down")
			return
		case s := <-samples:
			switch s.Source {
			case sig.SourceSelf:
				self.Append(s.Value)
				// Evaluate once per env reading so each decision sees a
				// fresh pair.
				continue
			case sig.SourceEnv:
				env.Append(s.Value)
			default:
				continue
			}
			if self.Len() < 2 || env.Len() < 2 {
				continue
			}

			out, err := cmp.Evaluate(self, env)
			if err != nil {
				log.Warn().Err(err).Msg("evaluate")
				continue
			}
			ledger.Record(out)
			if recorder != nil {
				recorder.Record(out)
			}
			if _, switched := g.Confirm(out.Action); switched {
				reporter.Announce(out)
			} else {
				log.Debug().Str("action", string(out.Action)).Str("reason", out.Reason).Msg("evaluated")
			}
		}
	}
}
