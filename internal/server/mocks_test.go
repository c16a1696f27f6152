package server

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

type catalogServiceMock struct {
	CreateFunc func(ctx context.Context, draft entity.RouletteDraft) (entity.Roulette, error)
	UpdateFunc func(ctx context.Context, id value.RouletteID, draft entity.RouletteDraft) (entity.Roulette, error)
	DeleteFunc func(ctx context.Context, id value.RouletteID) error
	GetFunc    func(ctx context.Context, id value.RouletteID) (entity.Roulette, error)
	ListFunc   func(ctx context.Context, filter entity.RouletteFilter) ([]entity.Roulette, error)
}

func (m *catalogServiceMock) Create(ctx context.Context, draft entity.RouletteDraft) (entity.Roulette, error) {
	return m.CreateFunc(ctx, draft)
}

func (m *catalogServiceMock) Update(ctx context.Context, id value.RouletteID, draft entity.RouletteDraft) (entity.Roulette, error) {
	return m.UpdateFunc(ctx, id, draft)
}

func (m *catalogServiceMock) Delete(ctx context.Context, id value.RouletteID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *catalogServiceMock) Get(ctx context.Context, id value.RouletteID) (entity.Roulette, error) {
	return m.GetFunc(ctx, id)
}

func (m *catalogServiceMock) List(ctx context.Context, filter entity.RouletteFilter) ([]entity.Roulette, error) {
	return m.ListFunc(ctx, filter)
}

type spinServiceMock struct {
	SpinFunc func(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) (entity.SpinReceipt, error)
}

func (m *spinServiceMock) Spin(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) (entity.SpinReceipt, error) {
	return m.SpinFunc(ctx, rouletteID, userID)
}

type characterServiceMock struct {
	SearchFunc    func(ctx context.Context, query entity.CharacterQuery) (entity.CharacterPage, error)
	CharacterFunc func(ctx context.Context, id value.CharacterID) (entity.Character, error)
}

func (m *characterServiceMock) Search(ctx context.Context, query entity.CharacterQuery) (entity.CharacterPage, error) {
	return m.SearchFunc(ctx, query)
}

func (m *characterServiceMock) Character(ctx context.Context, id value.CharacterID) (entity.Character, error) {
	return m.CharacterFunc(ctx, id)
}

type accountServiceMock struct {
	GetFunc    func(ctx context.Context, id value.UserID) (entity.User, error)
	CreditFunc func(ctx context.Context, id value.UserID, amount decimal.Decimal) (entity.User, error)
}

func (m *accountServiceMock) Get(ctx context.Context, id value.UserID) (entity.User, error) {
	return m.GetFunc(ctx, id)
}

func (m *accountServiceMock) Credit(ctx context.Context, id value.UserID, amount decimal.Decimal) (entity.User, error) {
	return m.CreditFunc(ctx, id, amount)
}
