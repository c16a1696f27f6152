package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// rouletteSchema maps a row of the roulettes table.
type rouletteSchema struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Items     []byte          `db:"items"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type rouletteItemJSON struct {
	HeroID int64   `json:"heroId"`
	Chance float64 `json:"chance"`
}

func encodeItems(items []entity.RouletteItem) (string, error) {
	out := make([]rouletteItemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, rouletteItemJSON{HeroID: int64(item.HeroID), Chance: item.Chance})
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	return string(raw), nil
}

func (s rouletteSchema) toDomain() (entity.Roulette, error) {
	var items []rouletteItemJSON
	if len(s.Items) > 0 {
		if err := json.Unmarshal(s.Items, &items); err != nil {
			return entity.Roulette{}, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	roulette := entity.Roulette{
		ID:        value.RouletteID(s.ID),
		Name:      s.Name,
		Price:     s.Price,
		Items:     make([]entity.RouletteItem, 0, len(items)),
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}

	for _, item := range items {
		roulette.Items = append(roulette.Items, entity.RouletteItem{
			HeroID: value.CharacterID(item.HeroID),
			Chance: item.Chance,
		})
	}

	return roulette, nil
}

// userSchema maps a row of the users table.
type userSchema struct {
	ID                  uuid.UUID       `db:"id"`
	Coins               decimal.Decimal `db:"coins"`
	PurchasedCharacters []byte          `db:"purchased_characters"`
	Version             int64           `db:"version"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

type ownedCharacterJSON struct {
	CharacterID int64     `json:"characterId"`
	Quantity    int       `json:"quantity"`
	ObtainedAt  time.Time `json:"obtainedAt"`
}

func encodeLedger(ledger []entity.OwnedCharacter) (string, error) {
	out := make([]ownedCharacterJSON, 0, len(ledger))
	for _, entry := range ledger {
		out = append(out, ownedCharacterJSON{
			CharacterID: int64(entry.CharacterID),
			Quantity:    entry.Quantity,
			ObtainedAt:  entry.ObtainedAt.UTC(),
		})
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	return string(raw), nil
}

func (s userSchema) toDomain() (entity.User, error) {
	var ledger []ownedCharacterJSON
	if len(s.PurchasedCharacters) > 0 {
		if err := json.Unmarshal(s.PurchasedCharacters, &ledger); err != nil {
			return entity.User{}, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	user := entity.User{
		ID:                  value.UserID(s.ID),
		Coins:               s.Coins,
		PurchasedCharacters: make([]entity.OwnedCharacter, 0, len(ledger)),
		Version:             s.Version,
		CreatedAt:           s.CreatedAt.UTC(),
		UpdatedAt:           s.UpdatedAt.UTC(),
	}

	for _, entry := range ledger {
		user.PurchasedCharacters = append(user.PurchasedCharacters, entity.OwnedCharacter{
			CharacterID: value.CharacterID(entry.CharacterID),
			Quantity:    entry.Quantity,
			ObtainedAt:  entry.ObtainedAt.UTC(),
		})
	}

	return user, nil
}
