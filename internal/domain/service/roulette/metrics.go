package roulette

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK                = "ok"
	resultNotFound          = "not_found"
	resultInsufficientFunds = "insufficient_funds"
	resultConflict          = "conflict"
	resultError             = "error"
)

//nolint:gochecknoglobals
var (
	spinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heronexus",
		Name:      "spins_total",
		Help:      "Spins by outcome.",
	}, []string{"result"})

	spinConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "heronexus",
		Name:      "spin_conflicts_total",
		Help:      "Versioned user writes rejected because another write committed first.",
	})

	spinDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "heronexus",
		Name:      "spin_duration_seconds",
		Help:      "Spin settlement latency including retries.",
		Buckets:   prometheus.DefBuckets,
	})
)
