package marvel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/marvel"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
)

type sourceMock struct {
	mock.Mock
}

func (m *sourceMock) Characters(ctx context.Context, query entity.CharacterQuery) (entity.CharacterPage, error) {
	args := m.Called(ctx, query)

	return args.Get(0).(entity.CharacterPage), args.Error(1) //nolint:forcetypeassert
}

func (m *sourceMock) Character(ctx context.Context, id value.CharacterID) (entity.Character, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(entity.Character), args.Error(1) //nolint:forcetypeassert
}

type memoryCache struct {
	values map[string][]byte
	err    error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if m.err != nil {
		return false, m.err
	}

	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}

	return true, jsoniter.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}

	raw, err := jsoniter.Marshal(v)
	if err != nil {
		return err
	}

	m.values[key] = raw

	return nil
}

var ironMan = entity.Character{ID: 1009368, Name: "Iron Man", ThumbnailURL: "http://i.annihil.us/iron.jpg"} //nolint:gochecknoglobals

func TestCharacterUsesLocalCache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	source := &sourceMock{}
	source.On("Character", mock.Anything, ironMan.ID).Return(ironMan, nil).Once()

	svc := marvel.NewService(source, newMemoryCache(), time.Minute)

	for range 3 {
		got, err := svc.Character(ctx, ironMan.ID)
		rq.NoError(err)
		rq.Equal(ironMan, got)
	}

	source.AssertExpectations(t)
}

func TestCharacterUsesSharedCache(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	shared := newMemoryCache()

	first := &sourceMock{}
	first.On("Character", mock.Anything, ironMan.ID).Return(ironMan, nil).Once()
	rq.NoError(marvel.NewService(first, shared, time.Minute).Warm(ctx, ironMan.ID))

	// A second instance shares only the Redis layer.
	second := &sourceMock{}

	got, err := marvel.NewService(second, shared, time.Minute).Character(ctx, ironMan.ID)
	rq.NoError(err)
	rq.Equal(ironMan, got)
	second.AssertNotCalled(t, "Character", mock.Anything, mock.Anything)
}

func TestCharacterSharedCacheFailureFallsThrough(t *testing.T) {
	rq := require.New(t)

	shared := newMemoryCache()
	shared.err = errors.New("redis down")

	source := &sourceMock{}
	source.On("Character", mock.Anything, ironMan.ID).Return(ironMan, nil).Once()

	got, err := marvel.NewService(source, shared, time.Minute).Character(context.Background(), ironMan.ID)
	rq.NoError(err)
	rq.Equal(ironMan, got)
}

func TestCharacterErrorsAreNotCached(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	notFound := domain.NewError(errcodes.CharacterNotFound, "Character not found")

	source := &sourceMock{}
	source.On("Character", mock.Anything, value.CharacterID(7)).Return(entity.Character{}, notFound).Twice()

	svc := marvel.NewService(source, nil, time.Minute)

	for range 2 {
		_, err := svc.Character(ctx, 7)
		rq.True(domain.HasCode(err, errcodes.CharacterNotFound))
	}

	source.AssertExpectations(t)

	_, err := svc.Character(ctx, 0)
	rq.True(domain.HasCode(err, errcodes.InvalidCharacterID))
}

func TestSearch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	page := entity.CharacterPage{Total: 1, Limit: marvel.DefaultLimit, Characters: []entity.Character{ironMan}}

	source := &sourceMock{}
	source.On("Characters", mock.Anything, entity.CharacterQuery{NameStartsWith: "Iron", Limit: marvel.DefaultLimit}).
		Return(page, nil).Once()

	svc := marvel.NewService(source, newMemoryCache(), time.Minute)

	got, err := svc.Search(ctx, entity.CharacterQuery{NameStartsWith: " Iron "})
	rq.NoError(err)
	rq.Equal(page, got)

	got, err = svc.Search(ctx, entity.CharacterQuery{NameStartsWith: "Iron"})
	rq.NoError(err)
	rq.Equal(page, got)

	source.AssertExpectations(t)

	_, err = svc.Search(ctx, entity.CharacterQuery{Limit: marvel.MaxLimit + 1})
	rq.True(domain.HasCode(err, errcodes.InvalidPaging))
}
