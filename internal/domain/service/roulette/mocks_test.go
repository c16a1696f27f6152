package roulette_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
)

type rouletteRepoMock struct {
	mock.Mock
}

func (m *rouletteRepoMock) Create(ctx context.Context, roulette entity.Roulette) error {
	args := m.Called(ctx, roulette)

	return args.Error(0)
}

func (m *rouletteRepoMock) CreateBatch(ctx context.Context, roulettes []entity.Roulette) error {
	args := m.Called(ctx, roulettes)

	return args.Error(0)
}

func (m *rouletteRepoMock) Update(ctx context.Context, roulette entity.Roulette) error {
	args := m.Called(ctx, roulette)

	return args.Error(0)
}

func (m *rouletteRepoMock) Delete(ctx context.Context, id value.RouletteID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *rouletteRepoMock) GetByID(ctx context.Context, id value.RouletteID) (entity.Roulette, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(entity.Roulette), args.Error(1) //nolint:forcetypeassert
}

func (m *rouletteRepoMock) List(ctx context.Context, filter entity.RouletteFilter) ([]entity.Roulette, error) {
	args := m.Called(ctx, filter)

	return args.Get(0).([]entity.Roulette), args.Error(1) //nolint:forcetypeassert
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) GetByID(ctx context.Context, id value.UserID) (entity.User, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(entity.User), args.Error(1) //nolint:forcetypeassert
}

func (m *userRepoMock) Save(ctx context.Context, user entity.User) (entity.User, error) {
	args := m.Called(ctx, user)

	if fn, ok := args.Get(0).(func(context.Context, entity.User) entity.User); ok {
		return fn(ctx, user), args.Error(1)
	}

	return args.Get(0).(entity.User), args.Error(1) //nolint:forcetypeassert
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishSpin(ctx context.Context, receipt entity.SpinReceipt) error {
	args := m.Called(ctx, receipt)

	return args.Error(0)
}
