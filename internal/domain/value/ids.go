package value

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

type RouletteID uuid.UUID

func NewRouletteID() RouletteID {
	return RouletteID(uuid.New())
}

func ParseRouletteID(s string) (RouletteID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RouletteID{}, fmt.Errorf("uuid.Parse: %w", err)
	}

	return RouletteID(id), nil
}

func (id RouletteID) String() string {
	return uuid.UUID(id).String()
}

func (id RouletteID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

type UserID uuid.UUID

func NewUserID() UserID {
	return UserID(uuid.New())
}

func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("uuid.Parse: %w", err)
	}

	return UserID(id), nil
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

func (id UserID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// CharacterID is a Marvel character id.
type CharacterID int64

func ParseCharacterID(s string) (CharacterID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseInt: %w", err)
	}

	if id <= 0 {
		return 0, fmt.Errorf("character id must be positive, got %d", id)
	}

	return CharacterID(id), nil
}

func (id CharacterID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
