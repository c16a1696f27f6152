package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

// OwnedCharacter is a ledger entry. A user holds at most one entry per character.
type OwnedCharacter struct {
	CharacterID value.CharacterID
	Quantity    int
	ObtainedAt  time.Time
}

// User is the balance and ownership ledger of an account. Version grows by
// one with every committed write and guards concurrent updates.
type User struct {
	ID                  value.UserID
	Coins               decimal.Decimal
	PurchasedCharacters []OwnedCharacter
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (u User) CanAfford(price decimal.Decimal) bool {
	return u.Coins.GreaterThanOrEqual(price)
}
