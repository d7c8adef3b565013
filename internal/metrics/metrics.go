package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SamplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "samples_total", Help: "Count of signal samples ingested"},
		[]string{"source"},
	)
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "decisions_total", Help: "Decisions announced by the policy"},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(SamplesTotal, DecisionsTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
