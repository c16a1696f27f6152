package roulette

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/contextx"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

const DefaultMaxAttempts = 3

type RouletteReader interface {
	GetByID(ctx context.Context, id value.RouletteID) (entity.Roulette, error)
}

// UserRepository persists users with a versioned write. Save succeeds only
// when the stored version equals user.Version and returns the committed row.
// A stale version fails with errcodes.VersionConflict.
type UserRepository interface {
	GetByID(ctx context.Context, id value.UserID) (entity.User, error)
	Save(ctx context.Context, user entity.User) (entity.User, error)
}

// SpinPublisher receives committed spins for background processing.
type SpinPublisher interface {
	PublishSpin(ctx context.Context, receipt entity.SpinReceipt) error
}

type SpinService struct {
	roulettes   RouletteReader
	users       UserRepository
	publisher   SpinPublisher
	sample      Sampler
	now         func() time.Time
	maxAttempts int
}

type SpinOption func(*SpinService)

func WithSampler(sample Sampler) SpinOption {
	return func(s *SpinService) {
		s.sample = sample
	}
}

func WithClock(now func() time.Time) SpinOption {
	return func(s *SpinService) {
		s.now = now
	}
}

func WithMaxAttempts(n int) SpinOption {
	return func(s *SpinService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithPublisher(publisher SpinPublisher) SpinOption {
	return func(s *SpinService) {
		s.publisher = publisher
	}
}

func NewSpinService(roulettes RouletteReader, users UserRepository, opts ...SpinOption) *SpinService {
	s := &SpinService{
		roulettes:   roulettes,
		users:       users,
		sample:      DefaultSampler,
		now:         func() time.Time { return time.Now().UTC() },
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Spin debits the roulette price, draws a character and records it in the
// user's ledger with a single versioned write. A lost race restarts the whole
// read-decide-write sequence, at most maxAttempts times.
func (s *SpinService) Spin(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) (entity.SpinReceipt, error) {
	start := time.Now()

	ctx = contextWithSpinLogger(ctx, rouletteID, userID)

	receipt, err := s.spin(ctx, rouletteID, userID)

	spinDuration.Observe(time.Since(start).Seconds())
	spinsTotal.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		return entity.SpinReceipt{}, err
	}

	logger(ctx).Info("spin settled",
		slog.Int64(logx.FieldCharacterID, int64(receipt.WonCharacter.CharacterID)),
		slog.Int("quantity", receipt.WonCharacter.Quantity),
		slog.String("new-balance", receipt.NewBalance.StringFixed(2)),
	)

	if s.publisher != nil {
		if err = s.publisher.PublishSpin(ctx, receipt); err != nil {
			logger(ctx).Error("spinPublisher.PublishSpin", logx.Error(err))
		}
	}

	return receipt, nil
}

func (s *SpinService) spin(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) (entity.SpinReceipt, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		receipt, err := s.attempt(ctx, rouletteID, userID)
		if err == nil {
			return receipt, nil
		}

		if !domain.HasCode(err, errcodes.VersionConflict) {
			return entity.SpinReceipt{}, err
		}

		spinConflictsTotal.Inc()
		logger(ctx).Warn("spin lost a concurrent update", slog.Int(logx.FieldAttempt, attempt))
	}

	return entity.SpinReceipt{}, domain.NewError(errcodes.SpinConflict, "Concurrent spin detected, please retry")
}

func (s *SpinService) attempt(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) (entity.SpinReceipt, error) {
	roulette, user, err := s.load(ctx, rouletteID, userID)
	if err != nil {
		return entity.SpinReceipt{}, err
	}

	if len(roulette.Items) == 0 {
		return entity.SpinReceipt{}, domain.NewError(errcodes.RouletteEmpty, "Roulette has no items")
	}

	if !user.CanAfford(roulette.Price) {
		return entity.SpinReceipt{}, domain.NewError(errcodes.InsufficientFunds, "Insufficient funds for this spin")
	}

	now := s.now()

	user.Coins = user.Coins.Sub(roulette.Price)

	won, err := Draw(roulette.Items, s.sample())
	if err != nil {
		return entity.SpinReceipt{}, domain.WrapError(err, errcodes.RouletteEmpty, "Roulette has no items")
	}

	// ApplyWin mutates in place; the loaded slice must stay untouched.
	ledger := append([]entity.OwnedCharacter(nil), user.PurchasedCharacters...)
	ApplyWin(&ledger, won.HeroID, now)
	user.PurchasedCharacters = ledger

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		if domain.HasCode(err, errcodes.VersionConflict) {
			return entity.SpinReceipt{}, err
		}

		return entity.SpinReceipt{}, domain.WrapError(err, errcodes.PersistenceFailure, "failed to persist spin")
	}

	entry, ok := Lookup(saved.PurchasedCharacters, won.HeroID)
	if !ok {
		return entity.SpinReceipt{}, domain.NewError(errcodes.InternalInconsistency,
			fmt.Sprintf("character %d missing from committed ledger", won.HeroID))
	}

	return entity.SpinReceipt{
		RouletteID:   roulette.ID,
		UserID:       saved.ID,
		NewBalance:   saved.Coins,
		WonCharacter: entry,
		Chance:       won.Chance,
		Timestamp:    now,
	}, nil
}

// load reads the roulette and the user concurrently.
func (s *SpinService) load(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) (entity.Roulette, entity.User, error) {
	var (
		roulette entity.Roulette
		user     entity.User
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		roulette, err = s.roulettes.GetByID(gctx, rouletteID)
		if err != nil {
			return fmt.Errorf("rouletteRepository.GetByID: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		user, err = s.users.GetByID(gctx, userID)
		if err != nil {
			return fmt.Errorf("userRepository.GetByID: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		if domain.HasCode(err, errcodes.RouletteNotFound) || domain.HasCode(err, errcodes.UserNotFound) {
			return entity.Roulette{}, entity.User{}, domain.WrapError(err, errcodes.NotFound, "Roulette or user does not exist")
		}

		return entity.Roulette{}, entity.User{}, err
	}

	return roulette, user, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return resultOK
	case domain.HasCode(err, errcodes.NotFound):
		return resultNotFound
	case domain.HasCode(err, errcodes.InsufficientFunds):
		return resultInsufficientFunds
	case domain.HasCode(err, errcodes.SpinConflict):
		return resultConflict
	default:
		return resultError
	}
}

func contextWithSpinLogger(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) context.Context {
	return contextx.WithLogger(ctx, logger(ctx).With(
		logx.Stringer(logx.FieldRouletteID, rouletteID),
		logx.Stringer(logx.FieldUserID, userID),
	))
}
