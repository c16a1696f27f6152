package server

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/rest"
)

func newRESTRoulette(roulette entity.Roulette) rest.Roulette {
	return rest.Roulette{
		ID:    roulette.ID.String(),
		Name:  roulette.Name,
		Price: roulette.Price.InexactFloat64(),
		Items: lo.Map(roulette.Items, func(item entity.RouletteItem, _ int) rest.RouletteItem {
			return rest.RouletteItem{HeroID: int64(item.HeroID), Chance: item.Chance}
		}),
		CreatedAt: roulette.CreatedAt,
		UpdatedAt: roulette.UpdatedAt,
	}
}

func newDomainRouletteDraft(request rest.RouletteRequest) entity.RouletteDraft {
	return entity.RouletteDraft{
		Name:  request.Name,
		Price: decimal.NewFromFloat(request.Price),
		Items: lo.Map(request.Items, func(item rest.RouletteItem, _ int) entity.RouletteItem {
			return entity.RouletteItem{HeroID: value.CharacterID(item.HeroID), Chance: item.Chance}
		}),
	}
}

func newRESTSpin(receipt entity.SpinReceipt) rest.SpinResponse {
	return rest.SpinResponse{
		Success:    true,
		NewBalance: receipt.NewBalance.InexactFloat64(),
		WonCharacter: rest.WonCharacter{
			ID:            int64(receipt.WonCharacter.CharacterID),
			Quantity:      receipt.WonCharacter.Quantity,
			FirstObtained: receipt.WonCharacter.ObtainedAt,
		},
		Timestamp: receipt.Timestamp,
	}
}

func newRESTCharacter(character entity.Character) rest.Character {
	return rest.Character{
		ID:          int64(character.ID),
		Name:        character.Name,
		Description: character.Description,
		Thumbnail:   character.ThumbnailURL,
	}
}

func newRESTUser(user entity.User) rest.UserResponse {
	return rest.UserResponse{
		Success: true,
		Coins:   user.Coins.InexactFloat64(),
		PurchasedCharacters: lo.Map(user.PurchasedCharacters, func(entry entity.OwnedCharacter, _ int) rest.OwnedCharacter {
			return rest.OwnedCharacter{
				ID:            int64(entry.CharacterID),
				Quantity:      entry.Quantity,
				FirstObtained: entry.ObtainedAt,
			}
		}),
	}
}
