package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strconv"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

// RareWin describes a low-probability spin result worth announcing.
type RareWin struct {
	UserID        string
	CharacterID   int64
	CharacterName string
	Quantity      int
	Chance        float64
}

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (b *TelegramBot) AnnounceRareWin(ctx context.Context, win RareWin) error {
	msg := tu.Message(tu.ID(b.chatID), FormatRareWin(win)).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	logger(ctx).Info("rare win announced", slog.Int64(logx.FieldCharacterID, win.CharacterID))

	return nil
}

// FormatRareWin renders the HTML announcement. User supplied text is escaped.
func FormatRareWin(win RareWin) string {
	name := win.CharacterName
	if name == "" {
		name = "#" + strconv.FormatInt(win.CharacterID, 10)
	}

	return fmt.Sprintf(
		"🎰 <b>Rare pull!</b>\n\n"+
			"🦸 <b>Character:</b> %s\n"+
			"🎲 <b>Chance:</b> %s%%\n"+
			"📦 <b>Copies owned:</b> %d\n"+
			"👤 <code>%s</code>",
		html.EscapeString(name),
		strconv.FormatFloat(win.Chance*100, 'f', -1, 64),
		win.Quantity,
		html.EscapeString(win.UserID),
	)
}
