package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"tarkov_trader/internal/transport/bot/view"
)

// AdminOnly lets through updates from the admin only. Other users get a
// refusal. A zero adminID disables the guarded commands entirely.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if IsAdmin(update, adminID) {
			return ctx.Next(update)
		}

		if update.Message != nil {
			_, err := ctx.Bot().SendMessage(ctx, tu.Message(
				tu.ID(update.Message.Chat.ID),
				view.AccessDenied,
			))

			return err
		}

		return nil
	}
}

func IsAdmin(update telego.Update, adminID int64) bool {
	if adminID == 0 {
		return false
	}

	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID == adminID
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID == adminID
	default:
		return false
	}
}
