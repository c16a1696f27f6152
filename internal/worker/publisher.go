package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Publisher turns committed spins into background tasks.
type Publisher struct {
	client     enqueuer
	rareChance float64
	notify     bool
}

// NewPublisher creates a publisher. Rare-win tasks are only enqueued when
// notify is set.
func NewPublisher(client enqueuer, rareChance float64, notify bool) *Publisher {
	return &Publisher{
		client:     client,
		rareChance: rareChance,
		notify:     notify,
	}
}

func (p *Publisher) PublishSpin(ctx context.Context, receipt entity.SpinReceipt) error {
	warm, err := NewCharacterWarmTask(CharacterWarmPayload{CharacterID: int64(receipt.WonCharacter.CharacterID)})
	if err != nil {
		return err
	}

	var errs []error

	if _, err = p.client.EnqueueContext(ctx, warm); err != nil {
		errs = append(errs, fmt.Errorf("enqueue %s: %w", TypeCharacterWarm, err))
	}

	if p.notify && receipt.Chance <= p.rareChance {
		rare, err := NewRareWinTask(RareWinPayload{
			UserID:      receipt.UserID.String(),
			RouletteID:  receipt.RouletteID.String(),
			CharacterID: int64(receipt.WonCharacter.CharacterID),
			Quantity:    receipt.WonCharacter.Quantity,
			Chance:      receipt.Chance,
			WonAt:       receipt.Timestamp,
		})
		if err != nil {
			return err
		}

		if _, err = p.client.EnqueueContext(ctx, rare); err != nil {
			errs = append(errs, fmt.Errorf("enqueue %s: %w", TypeSpinRareWin, err))
		}
	}

	return errors.Join(errs...)
}
