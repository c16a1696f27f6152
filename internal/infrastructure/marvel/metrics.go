package marvel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	keyRotationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heronexus",
		Subsystem: "marvel",
		Name:      "key_rotations_total",
		Help:      "API key rotations by reason.",
	}, []string{"reason"})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heronexus",
		Subsystem: "marvel",
		Name:      "requests_total",
		Help:      "Marvel API responses by status code.",
	}, []string{"status"})
)
