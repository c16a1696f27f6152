package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

// SpinReceipt is built from the committed user state and never stored.
type SpinReceipt struct {
	RouletteID   value.RouletteID
	UserID       value.UserID
	NewBalance   decimal.Decimal
	WonCharacter OwnedCharacter
	Chance       float64
	Timestamp    time.Time
}
