package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

// RouletteItem is one weighted reward. Chance is a probability in [0,1].
type RouletteItem struct {
	HeroID value.CharacterID
	Chance float64
}

type Roulette struct {
	ID        value.RouletteID
	Name      string
	Price     decimal.Decimal
	Items     []RouletteItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item returns the first item rewarding heroID.
func (r Roulette) Item(heroID value.CharacterID) (RouletteItem, bool) {
	for _, item := range r.Items {
		if item.HeroID == heroID {
			return item, true
		}
	}

	return RouletteItem{}, false
}

// RouletteDraft is the admin-editable part of a roulette.
type RouletteDraft struct {
	Name  string
	Price decimal.Decimal
	Items []RouletteItem
}

type RouletteFilter struct {
	NameContains string
	Limit        int
	Offset       int
}
