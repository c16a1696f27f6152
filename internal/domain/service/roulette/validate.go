package roulette

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
)

const (
	ChanceTolerance = 0.001
	maxNameLength   = 120
)

var MinPrice = decimal.RequireFromString("0.99") //nolint:gochecknoglobals

// ValidateDraft checks the roulette invariants enforced on create and update.
func ValidateDraft(draft entity.RouletteDraft) error {
	name := strings.TrimSpace(draft.Name)

	switch {
	case name == "":
		return invalid("name is required")
	case len(name) > maxNameLength:
		return invalid(fmt.Sprintf("name must be at most %d characters", maxNameLength))
	case draft.Price.LessThan(MinPrice):
		return invalid("price must be at least " + MinPrice.StringFixed(2))
	case !draft.Price.Equal(draft.Price.Round(2)):
		return invalid("price must have at most two decimal places")
	case len(draft.Items) == 0:
		return invalid("at least one item is required")
	}

	var sum float64

	for i, item := range draft.Items {
		if item.HeroID <= 0 {
			return invalid(fmt.Sprintf("items[%d]: heroId must be positive", i))
		}

		if item.Chance < 0 || item.Chance > 1 || math.IsNaN(item.Chance) {
			return invalid(fmt.Sprintf("items[%d]: chance must be within [0,1]", i))
		}

		sum += item.Chance
	}

	if math.Abs(sum-1) > ChanceTolerance {
		return invalid(fmt.Sprintf("chances must sum to 1 (±%g), got %g", ChanceTolerance, sum))
	}

	return nil
}

func invalid(reason string) error {
	return domain.NewError(errcodes.InvalidRoulette, reason)
}
