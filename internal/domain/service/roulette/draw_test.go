package roulette_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/roulette"
)

func TestDraw(t *testing.T) {
	items := []entity.RouletteItem{
		{HeroID: 1, Chance: 0.5},
		{HeroID: 2, Chance: 0.3},
		{HeroID: 3, Chance: 0.2},
	}

	tests := []struct {
		name   string
		items  []entity.RouletteItem
		sample float64
		want   int64
	}{
		{name: "zero picks first", items: items, sample: 0, want: 1},
		{name: "boundary is exclusive", items: items, sample: 0.5, want: 2},
		{name: "inside second band", items: items, sample: 0.79, want: 2},
		{name: "inside last band", items: items, sample: 0.9, want: 3},
		{
			name:   "short sum falls back to last",
			items:  []entity.RouletteItem{{HeroID: 7, Chance: 0.4995}, {HeroID: 8, Chance: 0.4995}},
			sample: 0.999999,
			want:   8,
		},
		{
			name:   "zero chance item is skipped",
			items:  []entity.RouletteItem{{HeroID: 4, Chance: 0}, {HeroID: 5, Chance: 1}},
			sample: 0,
			want:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := roulette.Draw(tt.items, tt.sample)
			rq.NoError(err)
			rq.EqualValues(tt.want, got.HeroID)
		})
	}
}

func TestDrawNoItems(t *testing.T) {
	rq := require.New(t)

	_, err := roulette.Draw(nil, 0.3)
	rq.ErrorIs(err, roulette.ErrNoItems)
}

func TestDrawDistribution(t *testing.T) {
	rq := require.New(t)

	const draws = 100_000

	items := []entity.RouletteItem{
		{HeroID: 1, Chance: 0.6},
		{HeroID: 2, Chance: 0.3},
		{HeroID: 3, Chance: 0.1},
	}

	rng := rand.New(rand.NewPCG(42, 1009368)) //nolint:gosec
	counts := make(map[int64]int)

	for range draws {
		item, err := roulette.Draw(items, rng.Float64())
		rq.NoError(err)

		counts[int64(item.HeroID)]++
	}

	for _, item := range items {
		freq := float64(counts[int64(item.HeroID)]) / draws
		rq.InDelta(item.Chance, freq, 0.01, "hero %d", item.HeroID)
	}
}
