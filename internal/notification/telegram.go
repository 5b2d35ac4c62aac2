package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

// NotifyTerminalsDeactivated tells an organizer which terminals the system
// checks switched off after the event ended.
func (n *TelegramNotifier) NotifyTerminalsDeactivated(
	ctx context.Context,
	user *domain.User,
	eventName string,
	terminals []domain.DeactivatedTerminal,
) {
	n.send(ctx, user.TelegramChatID, formatTerminalsDeactivated(eventName, terminals))
}

func formatTerminalsDeactivated(eventName string, terminals []domain.DeactivatedTerminal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Терминалы отключены*\n\nМероприятие %s завершилось, сканирование остановлено.\n",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, eventName),
	)
	for _, t := range terminals {
		fmt.Fprintf(&b, "\n- %s", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, t.TerminalName))
	}
	return b.String()
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
