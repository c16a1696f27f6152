package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

const defaultMaxAttempts = 3

type UserRepository interface {
	Create(ctx context.Context, user entity.User) error
	GetByID(ctx context.Context, id value.UserID) (entity.User, error)
	Save(ctx context.Context, user entity.User) (entity.User, error)
}

type Service struct {
	users       UserRepository
	now         func() time.Time
	maxAttempts int
}

func NewService(users UserRepository, maxAttempts int) *Service {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &Service{
		users:       users,
		now:         func() time.Time { return time.Now().UTC() },
		maxAttempts: maxAttempts,
	}
}

func (s *Service) Get(ctx context.Context, id value.UserID) (entity.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("userRepository.GetByID: %w", err)
	}

	return user, nil
}

func (s *Service) Create(ctx context.Context, id value.UserID, coins decimal.Decimal) (entity.User, error) {
	if coins.IsNegative() {
		return entity.User{}, domain.NewError(errcodes.InvalidAmount, "coins must not be negative")
	}

	now := s.now()
	user := entity.User{
		ID:        id,
		Coins:     coins.Round(2),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return entity.User{}, fmt.Errorf("userRepository.Create: %w", err)
	}

	logger(ctx).Info("user created", logx.Stringer(logx.FieldUserID, id))

	return user, nil
}

// Credit adds amount to the balance using the same versioned write as a spin.
func (s *Service) Credit(ctx context.Context, id value.UserID, amount decimal.Decimal) (entity.User, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return entity.User{}, domain.NewError(errcodes.InvalidAmount, "amount must be positive with at most two decimal places")
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			return entity.User{}, fmt.Errorf("userRepository.GetByID: %w", err)
		}

		user.Coins = user.Coins.Add(amount)

		saved, err := s.users.Save(ctx, user)
		if err == nil {
			logger(ctx).Info("user credited",
				logx.Stringer(logx.FieldUserID, id),
				slog.String("amount", amount.StringFixed(2)),
			)

			return saved, nil
		}

		if !domain.HasCode(err, errcodes.VersionConflict) {
			return entity.User{}, fmt.Errorf("userRepository.Save: %w", err)
		}

		logger(ctx).Warn("credit lost a concurrent update", slog.Int(logx.FieldAttempt, attempt))
	}

	return entity.User{}, domain.NewError(errcodes.ConcurrentUpdate, "User was updated concurrently, please retry")
}
