package roulette

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type RouletteRepository interface {
	Create(ctx context.Context, roulette entity.Roulette) error
	CreateBatch(ctx context.Context, roulettes []entity.Roulette) error
	Update(ctx context.Context, roulette entity.Roulette) error
	Delete(ctx context.Context, id value.RouletteID) error
	GetByID(ctx context.Context, id value.RouletteID) (entity.Roulette, error)
	List(ctx context.Context, filter entity.RouletteFilter) ([]entity.Roulette, error)
}

// Catalog manages the roulette lifecycle for admins.
type Catalog struct {
	repo RouletteRepository
	now  func() time.Time
}

func NewCatalog(repo RouletteRepository) *Catalog {
	return &Catalog{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (c *Catalog) Create(ctx context.Context, draft entity.RouletteDraft) (entity.Roulette, error) {
	if err := ValidateDraft(draft); err != nil {
		return entity.Roulette{}, err
	}

	roulette := c.newRoulette(draft)

	if err := c.repo.Create(ctx, roulette); err != nil {
		return entity.Roulette{}, fmt.Errorf("rouletteRepository.Create: %w", err)
	}

	logger(ctx).Info("roulette created",
		logx.Stringer(logx.FieldRouletteID, roulette.ID),
		slog.Int("items", len(roulette.Items)),
	)

	return roulette, nil
}

// CreateBatch validates every draft before storing any of them. Either all
// roulettes are created or none.
func (c *Catalog) CreateBatch(ctx context.Context, drafts []entity.RouletteDraft) ([]entity.Roulette, error) {
	roulettes := make([]entity.Roulette, 0, len(drafts))

	for i, draft := range drafts {
		if err := ValidateDraft(draft); err != nil {
			return nil, fmt.Errorf("draft %d: %w", i, err)
		}

		roulettes = append(roulettes, c.newRoulette(draft))
	}

	if err := c.repo.CreateBatch(ctx, roulettes); err != nil {
		return nil, fmt.Errorf("rouletteRepository.CreateBatch: %w", err)
	}

	logger(ctx).Info("roulettes created", slog.Int("count", len(roulettes)))

	return roulettes, nil
}

func (c *Catalog) Update(ctx context.Context, id value.RouletteID, draft entity.RouletteDraft) (entity.Roulette, error) {
	if err := ValidateDraft(draft); err != nil {
		return entity.Roulette{}, err
	}

	roulette, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Roulette{}, fmt.Errorf("rouletteRepository.GetByID: %w", err)
	}

	roulette.Name = strings.TrimSpace(draft.Name)
	roulette.Price = draft.Price
	roulette.Items = draft.Items
	roulette.UpdatedAt = c.now()

	if err = c.repo.Update(ctx, roulette); err != nil {
		return entity.Roulette{}, fmt.Errorf("rouletteRepository.Update: %w", err)
	}

	logger(ctx).Info("roulette updated", logx.Stringer(logx.FieldRouletteID, roulette.ID))

	return roulette, nil
}

func (c *Catalog) Delete(ctx context.Context, id value.RouletteID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("rouletteRepository.Delete: %w", err)
	}

	logger(ctx).Info("roulette deleted", logx.Stringer(logx.FieldRouletteID, id))

	return nil
}

func (c *Catalog) Get(ctx context.Context, id value.RouletteID) (entity.Roulette, error) {
	roulette, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Roulette{}, fmt.Errorf("rouletteRepository.GetByID: %w", err)
	}

	return roulette, nil
}

func (c *Catalog) List(ctx context.Context, filter entity.RouletteFilter) ([]entity.Roulette, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}

	if filter.Limit < 0 || filter.Limit > MaxListLimit || filter.Offset < 0 {
		return nil, domain.NewError(errcodes.InvalidPaging,
			fmt.Sprintf("limit must be within [1,%d] and offset must not be negative", MaxListLimit))
	}

	filter.NameContains = strings.TrimSpace(filter.NameContains)

	roulettes, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("rouletteRepository.List: %w", err)
	}

	return roulettes, nil
}

func (c *Catalog) newRoulette(draft entity.RouletteDraft) entity.Roulette {
	now := c.now()

	return entity.Roulette{
		ID:        value.NewRouletteID(),
		Name:      strings.TrimSpace(draft.Name),
		Price:     draft.Price,
		Items:     draft.Items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
