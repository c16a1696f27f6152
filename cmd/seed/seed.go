package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

type seedFile struct {
	Roulettes []seedRoulette `yaml:"roulettes"`
	Users     []seedUser     `yaml:"users"`
}

type seedRoulette struct {
	Name  string     `yaml:"name"`
	Price string     `yaml:"price"`
	Items []seedItem `yaml:"items"`
}

type seedItem struct {
	HeroID int64   `yaml:"heroId"`
	Chance float64 `yaml:"chance"`
}

type seedUser struct {
	ID    string `yaml:"id"`
	Coins string `yaml:"coins"`
}

func readSeed(path string) (seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return seedFile{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	var seed seedFile

	if err = yaml.Unmarshal(raw, &seed); err != nil {
		return seedFile{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return seed, nil
}

func (s seedFile) drafts() ([]entity.RouletteDraft, error) {
	drafts := make([]entity.RouletteDraft, 0, len(s.Roulettes))

	for _, r := range s.Roulettes {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return nil, fmt.Errorf("roulette %q price: %w", r.Name, err)
		}

		items := make([]entity.RouletteItem, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, entity.RouletteItem{HeroID: value.CharacterID(item.HeroID), Chance: item.Chance})
		}

		drafts = append(drafts, entity.RouletteDraft{Name: r.Name, Price: price, Items: items})
	}

	return drafts, nil
}

func (u seedUser) parse() (value.UserID, decimal.Decimal, error) {
	id, err := value.ParseUserID(u.ID)
	if err != nil {
		return value.UserID{}, decimal.Decimal{}, fmt.Errorf("user %q: %w", u.ID, err)
	}

	coins, err := decimal.NewFromString(u.Coins)
	if err != nil {
		return value.UserID{}, decimal.Decimal{}, fmt.Errorf("user %q coins: %w", u.ID, err)
	}

	return id, coins, nil
}
