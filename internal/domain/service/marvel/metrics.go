package marvel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	layerLocal  = "local"
	layerShared = "shared"

	resultHit  = "hit"
	resultMiss = "miss"
)

//nolint:gochecknoglobals
var cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "heronexus",
	Subsystem: "marvel",
	Name:      "cache_lookups_total",
	Help:      "Character cache lookups by layer and result.",
}, []string{"layer", "result"})
