package roulette

import (
	"errors"
	"math/rand/v2"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
)

var ErrNoItems = errors.New("roulette has no items")

// Sampler returns a uniform sample in [0,1).
type Sampler func() float64

// DefaultSampler is safe for concurrent use.
var DefaultSampler Sampler = rand.Float64 //nolint:gochecknoglobals,gosec

// Draw walks items in stored order and returns the first one whose cumulative
// chance exceeds sample. When the chances sum to slightly less than one and
// the walk runs out, the last item wins.
func Draw(items []entity.RouletteItem, sample float64) (entity.RouletteItem, error) {
	if len(items) == 0 {
		return entity.RouletteItem{}, ErrNoItems
	}

	var cumulative float64

	for _, item := range items {
		cumulative += item.Chance
		if cumulative > sample {
			return item, nil
		}
	}

	return items[len(items)-1], nil
}
