package roulette

import (
	"time"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

// ApplyWin increments the entry for wonID or appends a new one obtained at
// now. The ledger is updated in place and the resulting entry is returned.
func ApplyWin(ledger *[]entity.OwnedCharacter, wonID value.CharacterID, now time.Time) entity.OwnedCharacter {
	for i := range *ledger {
		if (*ledger)[i].CharacterID == wonID {
			(*ledger)[i].Quantity++

			return (*ledger)[i]
		}
	}

	entry := entity.OwnedCharacter{
		CharacterID: wonID,
		Quantity:    1,
		ObtainedAt:  now,
	}

	*ledger = append(*ledger, entry)

	return entry
}

func Lookup(ledger []entity.OwnedCharacter, id value.CharacterID) (entity.OwnedCharacter, bool) {
	for _, entry := range ledger {
		if entry.CharacterID == id {
			return entry, true
		}
	}

	return entity.OwnedCharacter{}, false
}
