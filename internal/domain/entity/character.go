package entity

import "github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"

type Character struct {
	ID           value.CharacterID
	Name         string
	Description  string
	ThumbnailURL string
}

type CharacterPage struct {
	Total      int
	Offset     int
	Limit      int
	Characters []Character
}

type CharacterQuery struct {
	NameStartsWith string
	Limit          int
	Offset         int
}
