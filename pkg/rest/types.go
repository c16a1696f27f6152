package rest

import "time"

type RouletteItem struct {
	HeroID int64   `json:"heroId" validate:"gt=0"`
	Chance float64 `json:"chance" validate:"gte=0,lte=1"`
}

type RouletteRequest struct {
	Name  string         `json:"name"  validate:"required,max=120"`
	Price float64        `json:"price" validate:"gte=0.99"`
	Items []RouletteItem `json:"items" validate:"required,min=1,dive"`
}

type Roulette struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Price     float64        `json:"price"`
	Items     []RouletteItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type RouletteResponse struct {
	Success  bool     `json:"success"`
	Roulette Roulette `json:"roulette"`
}

type RouletteListResponse struct {
	Success   bool       `json:"success"`
	Roulettes []Roulette `json:"roulettes"`
}

type WonCharacter struct {
	ID            int64     `json:"id"`
	Quantity      int       `json:"quantity"`
	FirstObtained time.Time `json:"firstObtained"`
}

type SpinResponse struct {
	Success      bool         `json:"success"`
	NewBalance   float64      `json:"newBalance"`
	WonCharacter WonCharacter `json:"wonCharacter"`
	Timestamp    time.Time    `json:"timestamp"`
}

type Character struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

type CharacterResponse struct {
	Success   bool      `json:"success"`
	Character Character `json:"character"`
}

type CharacterListResponse struct {
	Success    bool        `json:"success"`
	Total      int         `json:"total"`
	Characters []Character `json:"characters"`
}

type OwnedCharacter struct {
	ID            int64     `json:"id"`
	Quantity      int       `json:"quantity"`
	FirstObtained time.Time `json:"firstObtained"`
}

type UserResponse struct {
	Success             bool             `json:"success"`
	Coins               float64          `json:"coins"`
	PurchasedCharacters []OwnedCharacter `json:"purchasedCharacters"`
}

type CreditRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

type CoinsResponse struct {
	Success bool    `json:"success"`
	Coins   float64 `json:"coins"`
}

// Error is the body of every failed response.
type Error struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	SupportID string `json:"supportId"`
}
