package config

// Notifier is optional. An empty token disables rare-win announcements.
type Notifier struct {
	BotToken string `env:"NOTIFIER_BOT_TOKEN" json:"-"`
	ChatID   int64  `env:"NOTIFIER_CHAT_ID"`
}

func (n Notifier) Enabled() bool {
	return n.BotToken != "" && n.ChatID != 0
}
