package persistence

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
)

const (
	userTable = "users"

	uniqueViolation = "23505"
)

//nolint:gochecknoglobals
var userColumns = []string{"id", "coins", "purchased_characters", "version", "created_at", "updated_at"}

// saveUserQuery commits a user only if nobody else has written it since it
// was read.
const saveUserQuery = `
	UPDATE users
	SET coins = $1, purchased_characters = $2, version = version + 1, updated_at = now()
	WHERE id = $3 AND version = $4
	RETURNING id, coins, purchased_characters, version, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user entity.User) error {
	ledger, err := encodeLedger(user.PurchasedCharacters)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode ledger")
	}

	version := user.Version
	if version == 0 {
		version = 1
	}

	query, args, err := psql.Insert(userTable).
		Columns(userColumns...).
		Values(user.ID.UUID(), user.Coins, ledger, version, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.WrapError(err, errcodes.UserAlreadyExists, "User already exists")
		}

		return domain.WrapError(err, errcodes.InternalServerError, "failed to create user")
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id value.UserID) (entity.User, error) {
	query, args, err := psql.Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"id": id.UUID()}).
		ToSql()
	if err != nil {
		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to build query")
	}

	var schema userSchema
	if err = r.db.GetContext(ctx, &schema, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, domain.NewError(errcodes.UserNotFound, "User not found")
		}

		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get user")
	}

	return decodeUser(schema)
}

// Save writes coins and the ledger with a compare-and-swap on version.
// A stale version returns errcodes.VersionConflict and writes nothing.
func (r *UserRepository) Save(ctx context.Context, user entity.User) (entity.User, error) {
	ledger, err := encodeLedger(user.PurchasedCharacters)
	if err != nil {
		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to encode ledger")
	}

	var schema userSchema

	err = r.db.GetContext(ctx, &schema, saveUserQuery, user.Coins, ledger, user.ID.UUID(), user.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, domain.NewError(errcodes.VersionConflict, "user was modified concurrently")
		}

		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to save user")
	}

	return decodeUser(schema)
}

func decodeUser(schema userSchema) (entity.User, error) {
	user, err := schema.toDomain()
	if err != nil {
		return entity.User{}, domain.WrapError(err, errcodes.InternalServerError, "failed to decode user")
	}

	return user, nil
}
