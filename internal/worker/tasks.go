package worker

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	TypeCharacterWarm = "character:warm"
	TypeSpinRareWin   = "spin:rare_win"

	QueueDefault       = "default"
	QueueNotifications = "notifications"
)

type CharacterWarmPayload struct {
	CharacterID int64 `json:"characterId"`
}

type RareWinPayload struct {
	UserID      string    `json:"userId"`
	RouletteID  string    `json:"rouletteId"`
	CharacterID int64     `json:"characterId"`
	Quantity    int       `json:"quantity"`
	Chance      float64   `json:"chance"`
	WonAt       time.Time `json:"wonAt"`
}

func NewCharacterWarmTask(payload CharacterWarmPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeCharacterWarm, raw,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	), nil
}

func NewRareWinTask(payload RareWinPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeSpinRareWin, raw,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	), nil
}

// Queues returns asynq queue priorities for the server.
func Queues() map[string]int {
	return map[string]int{
		QueueDefault:       3,
		QueueNotifications: 1,
	}
}
