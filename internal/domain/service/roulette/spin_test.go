package roulette_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/roulette"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/tests"
)

var spinTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

type spinFixture struct {
	roulettes *rouletteRepoMock
	users     *userRepoMock
	publisher *publisherMock
	roulette  entity.Roulette
	user      entity.User
}

func newSpinFixture(coins string) spinFixture {
	return spinFixture{
		roulettes: &rouletteRepoMock{},
		users:     &userRepoMock{},
		publisher: &publisherMock{},
		roulette: entity.Roulette{
			ID:    value.NewRouletteID(),
			Name:  "Avengers",
			Price: decimal.RequireFromString("1.99"),
			Items: []entity.RouletteItem{
				{HeroID: 1011334, Chance: 0.5},
				{HeroID: 1009368, Chance: 0.5},
			},
		},
		user: entity.User{
			ID:      value.NewUserID(),
			Coins:   decimal.RequireFromString(coins),
			Version: 4,
		},
	}
}

func (f spinFixture) service(sample float64, opts ...roulette.SpinOption) *roulette.SpinService {
	opts = append([]roulette.SpinOption{
		roulette.WithSampler(func() float64 { return sample }),
		roulette.WithClock(func() time.Time { return spinTime }),
		roulette.WithPublisher(f.publisher),
	}, opts...)

	return roulette.NewSpinService(f.roulettes, f.users, opts...)
}

// committed mimics the repository: the stored row gets the next version.
func committed(user entity.User) entity.User {
	user.Version++

	return user
}

func TestSpinSettles(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	f := newSpinFixture("10")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil).Once()
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil).Once()
	f.users.On("Save", mock.Anything, mock.MatchedBy(func(u entity.User) bool {
		return u.Version == 4 && u.Coins.Equal(decimal.RequireFromString("8.01"))
	})).Return(func(_ context.Context, u entity.User) entity.User { return committed(u) }, nil).Once()
	f.publisher.On("PublishSpin", mock.Anything, mock.Anything).Return(nil).Once()

	receipt, err := f.service(0.75).Spin(ctx, f.roulette.ID, f.user.ID)
	rq.NoError(err)

	rq.Equal("8.01", receipt.NewBalance.StringFixed(2))
	rq.Equal(f.roulette.ID, receipt.RouletteID)
	rq.Equal(f.user.ID, receipt.UserID)
	rq.Equal(entity.OwnedCharacter{CharacterID: 1009368, Quantity: 1, ObtainedAt: spinTime}, receipt.WonCharacter)
	rq.InDelta(0.5, receipt.Chance, 1e-9)
	rq.Equal(spinTime, receipt.Timestamp)

	f.users.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestSpinIncrementsOwnedCharacter(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("5")
	obtained := spinTime.Add(-time.Hour)
	f.user.PurchasedCharacters = []entity.OwnedCharacter{{CharacterID: 1011334, Quantity: 2, ObtainedAt: obtained}}

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u entity.User) entity.User { return committed(u) }, nil)
	f.publisher.On("PublishSpin", mock.Anything, mock.Anything).Return(nil)

	receipt, err := f.service(0.1).Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.NoError(err)
	rq.Equal(3, receipt.WonCharacter.Quantity)
	rq.Equal(obtained, receipt.WonCharacter.ObtainedAt)

	// The loaded ledger must not be touched by the settlement.
	rq.Equal(2, f.user.PurchasedCharacters[0].Quantity)
}

func TestSpinRejections(t *testing.T) {
	notFound := domain.NewError(errcodes.UserNotFound, "User not found")

	testCases := []struct {
		name     string
		coins    string
		items    []entity.RouletteItem
		userErr  error
		wantCode string
	}{
		{name: "insufficient funds", coins: "1.98", wantCode: string(errcodes.InsufficientFunds)},
		{name: "missing user", coins: "10", userErr: notFound, wantCode: string(errcodes.NotFound)},
		{name: "empty roulette", coins: "10", items: []entity.RouletteItem{}, wantCode: string(errcodes.RouletteEmpty)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			f := newSpinFixture(tt.coins)
			if tt.items != nil {
				f.roulette.Items = tt.items
			}

			f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
			f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, tt.userErr)

			_, err := f.service(0.3).Spin(context.Background(), f.roulette.ID, f.user.ID)
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.EqualValues(tt.wantCode, code)

			f.users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "PublishSpin", mock.Anything, mock.Anything)
		})
	}
}

func TestSpinExactBalance(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("1.99")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u entity.User) entity.User { return committed(u) }, nil)
	f.publisher.On("PublishSpin", mock.Anything, mock.Anything).Return(nil)

	receipt, err := f.service(0).Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.NoError(err)
	rq.True(receipt.NewBalance.IsZero())
}

func TestSpinRetriesOnVersionConflict(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("10")
	raced := f.user
	raced.Coins = decimal.RequireFromString("4")
	raced.Version = 5

	conflict := domain.NewError(errcodes.VersionConflict, "user was modified concurrently")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil).Once()
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(raced, nil).Once()
	f.users.On("Save", mock.Anything, mock.MatchedBy(func(u entity.User) bool { return u.Version == 4 })).
		Return(entity.User{}, conflict).Once()
	f.users.On("Save", mock.Anything, mock.MatchedBy(func(u entity.User) bool { return u.Version == 5 })).
		Return(func(_ context.Context, u entity.User) entity.User { return committed(u) }, nil).Once()
	f.publisher.On("PublishSpin", mock.Anything, mock.Anything).Return(nil).Once()

	receipt, err := f.service(0.2).Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.NoError(err)
	rq.Equal("2.01", receipt.NewBalance.StringFixed(2))

	f.users.AssertExpectations(t)
}

func TestSpinConflictExhausted(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("10")
	conflict := domain.NewError(errcodes.VersionConflict, "user was modified concurrently")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).Return(entity.User{}, conflict).Times(2)

	_, err := f.service(0.2, roulette.WithMaxAttempts(2)).Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.True(domain.HasCode(err, errcodes.SpinConflict))

	f.users.AssertNumberOfCalls(t, "Save", 2)
	f.publisher.AssertNotCalled(t, "PublishSpin", mock.Anything, mock.Anything)
}

func TestSpinPersistenceFailure(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("10")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).Return(entity.User{}, errors.New("connection reset")).Once()

	_, err := f.service(0.2).Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.True(domain.HasCode(err, errcodes.PersistenceFailure))
	f.users.AssertNumberOfCalls(t, "Save", 1)
}

func TestSpinInconsistentLedger(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("10")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u entity.User) entity.User {
			u = committed(u)
			u.PurchasedCharacters = nil

			return u
		}, nil)

	_, err := f.service(0.2).Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.True(domain.HasCode(err, errcodes.InternalInconsistency))
}

func TestSpinPublishFailureIsIgnored(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("10")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u entity.User) entity.User { return committed(u) }, nil)
	f.publisher.On("PublishSpin", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err := f.service(0.2).Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.NoError(err)
}

func TestSpinRedrawsOnRetry(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("10")
	conflict := domain.NewError(errcodes.VersionConflict, "user was modified concurrently")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).Return(entity.User{}, conflict).Once()
	f.users.On("Save", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u entity.User) entity.User { return committed(u) }, nil).Once()
	f.publisher.On("PublishSpin", mock.Anything, mock.Anything).Return(nil)

	svc := roulette.NewSpinService(f.roulettes, f.users,
		roulette.WithSampler(tests.Sequence(0.2, 0.7)),
		roulette.WithClock(func() time.Time { return spinTime }),
		roulette.WithPublisher(f.publisher),
	)

	receipt, err := svc.Spin(context.Background(), f.roulette.ID, f.user.ID)
	rq.NoError(err)
	rq.Equal(value.CharacterID(1009368), receipt.WonCharacter.CharacterID)
}

func TestSpinRandomSamplesAlwaysPayOut(t *testing.T) {
	rq := require.New(t)

	f := newSpinFixture("1000")

	f.roulettes.On("GetByID", mock.Anything, f.roulette.ID).Return(f.roulette, nil)
	f.users.On("GetByID", mock.Anything, f.user.ID).Return(f.user, nil)
	f.users.On("Save", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u entity.User) entity.User { return committed(u) }, nil)
	f.publisher.On("PublishSpin", mock.Anything, mock.Anything).Return(nil)

	svc := roulette.NewSpinService(f.roulettes, f.users,
		roulette.WithSampler(tests.NewRandomizer(7).Float64),
		roulette.WithPublisher(f.publisher),
	)

	for range 200 {
		receipt, err := svc.Spin(context.Background(), f.roulette.ID, f.user.ID)
		rq.NoError(err)

		_, ok := f.roulette.Item(receipt.WonCharacter.CharacterID)
		rq.True(ok)
		rq.Equal("998.01", receipt.NewBalance.StringFixed(2))
		rq.Equal(1, receipt.WonCharacter.Quantity)
	}
}
