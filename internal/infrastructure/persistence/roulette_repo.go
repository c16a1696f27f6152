package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
)

const rouletteTable = "roulettes"

//nolint:gochecknoglobals
var (
	psql            = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	rouletteColumns = []string{"id", "name", "price", "items", "created_at", "updated_at"}
)

type RouletteRepository struct {
	db *sqlx.DB
}

func NewRouletteRepository(db *sqlx.DB) *RouletteRepository {
	return &RouletteRepository{db: db}
}

func (r *RouletteRepository) Create(ctx context.Context, roulette entity.Roulette) error {
	return r.insert(ctx, r.db, roulette)
}

// CreateBatch stores all roulettes or none of them.
func (r *RouletteRepository) CreateBatch(ctx context.Context, roulettes []entity.Roulette) error {
	if len(roulettes) == 0 {
		return nil
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for i, roulette := range roulettes {
			if err := r.insert(ctx, tx, roulette); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, fmt.Sprintf("failed at index %d", i))
			}
		}

		return nil
	})
}

func (r *RouletteRepository) Update(ctx context.Context, roulette entity.Roulette) error {
	items, err := encodeItems(roulette.Items)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode items")
	}

	query, args, err := psql.Update(rouletteTable).
		Set("name", roulette.Name).
		Set("price", roulette.Price).
		Set("items", items).
		Set("updated_at", roulette.UpdatedAt).
		Where(sq.Eq{"id": roulette.ID.UUID()}).
		ToSql()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	return r.execAffecting(ctx, query, args...)
}

func (r *RouletteRepository) Delete(ctx context.Context, id value.RouletteID) error {
	query, args, err := psql.Delete(rouletteTable).Where(sq.Eq{"id": id.UUID()}).ToSql()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	return r.execAffecting(ctx, query, args...)
}

func (r *RouletteRepository) GetByID(ctx context.Context, id value.RouletteID) (entity.Roulette, error) {
	query, args, err := psql.Select(rouletteColumns...).
		From(rouletteTable).
		Where(sq.Eq{"id": id.UUID()}).
		ToSql()
	if err != nil {
		return entity.Roulette{}, domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	var schema rouletteSchema
	if err = r.db.GetContext(ctx, &schema, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Roulette{}, domain.NewError(errcodes.RouletteNotFound, "Roulette not found")
		}

		return entity.Roulette{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get roulette")
	}

	roulette, err := schema.toDomain()
	if err != nil {
		return entity.Roulette{}, domain.WrapError(err, errcodes.InternalServerError, "failed to decode roulette")
	}

	return roulette, nil
}

func (r *RouletteRepository) List(ctx context.Context, filter entity.RouletteFilter) ([]entity.Roulette, error) {
	builder := psql.Select(rouletteColumns...).
		From(rouletteTable).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).  //nolint:gosec
		Offset(uint64(filter.Offset)) //nolint:gosec

	if filter.NameContains != "" {
		builder = builder.Where(sq.ILike{"name": "%" + filter.NameContains + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	var schemas []rouletteSchema
	if err = r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list roulettes")
	}

	roulettes := make([]entity.Roulette, 0, len(schemas))
	for _, s := range schemas {
		roulette, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode roulette")
		}

		roulettes = append(roulettes, roulette)
	}

	return roulettes, nil
}

func (r *RouletteRepository) insert(ctx context.Context, db sqlx.ExecerContext, roulette entity.Roulette) error {
	items, err := encodeItems(roulette.Items)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode items")
	}

	query, args, err := psql.Insert(rouletteTable).
		Columns(rouletteColumns...).
		Values(roulette.ID.UUID(), roulette.Name, roulette.Price, items, roulette.CreatedAt, roulette.UpdatedAt).
		ToSql()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create roulette")
	}

	return nil
}

func (r *RouletteRepository) execAffecting(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to write roulette")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to get affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.RouletteNotFound, "Roulette not found")
	}

	return nil
}
