package marvel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type CharacterSource interface {
	Characters(ctx context.Context, query entity.CharacterQuery) (entity.CharacterPage, error)
	Character(ctx context.Context, id value.CharacterID) (entity.Character, error)
}

type SharedCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Service reads Marvel characters through an in-process cache and a shared
// cache before reaching the API.
type Service struct {
	source CharacterSource
	local  *cache.Cache
	shared SharedCache
	ttl    time.Duration
}

// NewService builds the service. shared may be nil.
func NewService(source CharacterSource, shared SharedCache, ttl time.Duration) *Service {
	return &Service{
		source: source,
		local:  cache.New(ttl, 2*ttl),
		shared: shared,
		ttl:    ttl,
	}
}

func (s *Service) Search(ctx context.Context, query entity.CharacterQuery) (entity.CharacterPage, error) {
	if query.Limit == 0 {
		query.Limit = DefaultLimit
	}

	if query.Limit < 0 || query.Limit > MaxLimit || query.Offset < 0 {
		return entity.CharacterPage{}, domain.NewError(errcodes.InvalidPaging,
			fmt.Sprintf("limit must be within [1,%d] and offset must not be negative", MaxLimit))
	}

	query.NameStartsWith = strings.TrimSpace(query.NameStartsWith)
	key := fmt.Sprintf("characters:%s:%d:%d", strings.ToLower(query.NameStartsWith), query.Limit, query.Offset)

	return cached(ctx, s, key, func() (entity.CharacterPage, error) {
		page, err := s.source.Characters(ctx, query)
		if err != nil {
			return entity.CharacterPage{}, fmt.Errorf("characterSource.Characters: %w", err)
		}

		return page, nil
	})
}

func (s *Service) Character(ctx context.Context, id value.CharacterID) (entity.Character, error) {
	if id <= 0 {
		return entity.Character{}, domain.NewError(errcodes.InvalidCharacterID, "character id must be positive")
	}

	return cached(ctx, s, "character:"+id.String(), func() (entity.Character, error) {
		character, err := s.source.Character(ctx, id)
		if err != nil {
			return entity.Character{}, fmt.Errorf("characterSource.Character: %w", err)
		}

		return character, nil
	})
}

// Warm loads a character into both cache layers.
func (s *Service) Warm(ctx context.Context, id value.CharacterID) error {
	_, err := s.Character(ctx, id)

	return err
}

// cached resolves key from the local cache, then the shared cache, then load.
// Shared cache failures degrade to a miss. Errors from load are not cached.
func cached[T any](ctx context.Context, s *Service, key string, load func() (T, error)) (T, error) {
	if v, ok := s.local.Get(key); ok {
		if hit, ok := v.(T); ok {
			cacheLookupsTotal.WithLabelValues(layerLocal, resultHit).Inc()

			return hit, nil
		}
	}

	cacheLookupsTotal.WithLabelValues(layerLocal, resultMiss).Inc()

	if s.shared != nil {
		var hit T

		ok, err := s.shared.Get(ctx, key, &hit)

		switch {
		case err != nil:
			logger(ctx).Warn("sharedCache.Get", logx.Error(err))
		case ok:
			cacheLookupsTotal.WithLabelValues(layerShared, resultHit).Inc()
			s.local.Set(key, hit, s.ttl)

			return hit, nil
		default:
			cacheLookupsTotal.WithLabelValues(layerShared, resultMiss).Inc()
		}
	}

	v, err := load()
	if err != nil {
		var zero T

		return zero, err
	}

	s.local.Set(key, v, s.ttl)

	if s.shared != nil {
		if err = s.shared.Set(ctx, key, v, s.ttl); err != nil {
			logger(ctx).Warn("sharedCache.Set", logx.Error(err))
		}
	}

	return v, nil
}
