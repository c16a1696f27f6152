package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/internal/infrastructure/notifier"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/application/modules"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/contextx"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

type CharacterService interface {
	Character(ctx context.Context, id value.CharacterID) (entity.Character, error)
	Warm(ctx context.Context, id value.CharacterID) error
}

type Announcer interface {
	AnnounceRareWin(ctx context.Context, win notifier.RareWin) error
}

type Handlers struct {
	characters CharacterService
	announcer  Announcer
}

// NewHandlers wires task handlers. announcer may be nil when notifications
// are disabled.
func NewHandlers(characters CharacterService, announcer Announcer) *Handlers {
	return &Handlers{
		characters: characters,
		announcer:  announcer,
	}
}

func (h *Handlers) Handlers() []modules.AsynqHandler {
	handlers := []modules.AsynqHandler{
		{Pattern: TypeCharacterWarm, Handle: h.WarmCharacter},
	}

	if h.announcer != nil {
		handlers = append(handlers, modules.AsynqHandler{Pattern: TypeSpinRareWin, Handle: h.AnnounceRareWin})
	}

	return handlers
}

func (h *Handlers) WarmCharacter(ctx context.Context, task *asynq.Task) error {
	var payload CharacterWarmPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	ctx = taskContext(ctx, task, payload.CharacterID)

	err := h.characters.Warm(ctx, value.CharacterID(payload.CharacterID))
	if err != nil {
		if domain.HasCode(err, errcodes.CharacterNotFound) {
			logger(ctx).Warn("character to warm does not exist", logx.Error(err))

			return fmt.Errorf("characterService.Warm: %w: %w", err, asynq.SkipRetry)
		}

		return fmt.Errorf("characterService.Warm: %w", err)
	}

	logger(ctx).Debug("character cache warmed")

	return nil
}

func (h *Handlers) AnnounceRareWin(ctx context.Context, task *asynq.Task) error {
	var payload RareWinPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	ctx = taskContext(ctx, task, payload.CharacterID)

	win := notifier.RareWin{
		UserID:      payload.UserID,
		CharacterID: payload.CharacterID,
		Quantity:    payload.Quantity,
		Chance:      payload.Chance,
	}

	character, err := h.characters.Character(ctx, value.CharacterID(payload.CharacterID))
	if err != nil {
		logger(ctx).Warn("character name unavailable, announcing by id", logx.Error(err))
	} else {
		win.CharacterName = character.Name
	}

	if err = h.announcer.AnnounceRareWin(ctx, win); err != nil {
		return fmt.Errorf("announcer.AnnounceRareWin: %w", err)
	}

	return nil
}

func taskContext(ctx context.Context, task *asynq.Task, characterID int64) context.Context {
	attrs := []any{
		slog.String(logx.FieldTaskType, task.Type()),
		slog.Int64(logx.FieldCharacterID, characterID),
	}

	if id, ok := asynq.GetTaskID(ctx); ok {
		attrs = append(attrs, slog.String(logx.FieldTaskID, id))
	}

	return contextx.WithLogger(ctx, logger(ctx).With(attrs...))
}
