package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/transport/bot/view"
	"tarkov_trader/pkg/contextx"
	"tarkov_trader/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot posts catalog digests to one chat.
type TelegramBot struct {
	bot    messageSender
	chatID int64
}

func NewTelegramBot(bot messageSender, chatID int64) *TelegramBot {
	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}
}

// Run sends every digest from the channel until it is closed or ctx is done.
// A failed send is logged and does not stop the loop.
func (b *TelegramBot) Run(ctx context.Context, digests <-chan entity.Digest) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case digest, ok := <-digests:
			if !ok {
				return nil
			}

			if err := b.SendDigest(ctx, digest); err != nil {
				logger(ctx).Error("failed to send digest", logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendDigest(ctx context.Context, digest entity.Digest) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		view.Digest(digest.Items, digest.LoadedAt),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	logger(ctx).Info("digest sent", slog.Int64("chat_id", b.chatID), slog.Int("items", len(digest.Items)))

	return nil
}
