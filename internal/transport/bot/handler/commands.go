package handler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/internal/transport/bot/view"
	"tarkov_trader/pkg/logx"
)

const (
	defaultPageSize  = 5
	searchPagePrefix = "search_page:"
	noopData         = "noop"
	// Telegram rejects callback data longer than 64 bytes.
	maxCallbackData = 64
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnSearch(ctx *th.Context, msg telego.Message) error {
	query := commandArgs(msg.Text)

	text, keyboard, err := h.searchPage(ctx, query, 1)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      tu.ID(msg.Chat.ID),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})

	return err
}

func (h *Handler) OnSearchCallback(ctx *th.Context, query telego.CallbackQuery) error {
	page, search := parseSearchPage(query.Data)

	text, keyboard, err := h.searchPage(ctx, search, page)
	if err != nil {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(view.Error(err)).WithShowAlert())

		return nil
	}

	if query.Message != nil {
		_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        text,
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: keyboard,
		})
		// Telegram refuses to edit a message into identical content.
		if err != nil {
			logger(ctx).Debug("bot.EditMessageText", logx.Error(err))
		}
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}

func (h *Handler) OnNoop(ctx *th.Context, query telego.CallbackQuery) error {
	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}

func (h *Handler) OnItem(ctx *th.Context, msg telego.Message) error {
	id := commandArgs(msg.Text)
	if id == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.ItemUsage)
	}

	item, err := h.svc.Item(ctx, id)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Item(item))
}

func (h *Handler) OnTrend(ctx *th.Context, msg telego.Message) error {
	id := commandArgs(msg.Text)
	if id == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.TrendUsage)
	}

	item, err := h.svc.Item(ctx, id)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	trend, err := h.svc.Trend(ctx, id)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Trend(item, trend))
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Status(h.svc.Status()))
}

func (h *Handler) OnReload(ctx *th.Context, msg telego.Message) error {
	if err := h.sendHTML(ctx, msg.Chat.ID, view.ReloadStarted); err != nil {
		return err
	}

	snapshot, err := h.svc.Reload(ctx)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	logger(ctx).Info("catalog reloaded via bot",
		slog.Int64("chat_id", msg.Chat.ID),
		slog.Int("items", snapshot.Len()),
	)

	return h.sendHTML(ctx, msg.Chat.ID, view.Status(h.svc.Status()))
}

func (h *Handler) searchPage(
	ctx *th.Context,
	query string,
	page int,
) (string, *telego.InlineKeyboardMarkup, error) {
	v, err := h.svc.View(ctx, query, catalog.SortOptions{})
	if err != nil {
		return "", nil, fmt.Errorf("svc.View: %w", err)
	}

	totalPages := max(1, (len(v.Items)+h.pageSize-1)/h.pageSize)
	page = min(max(page, 1), totalPages)

	start := (page - 1) * h.pageSize
	end := min(start+h.pageSize, len(v.Items))

	text := view.SearchPage(v, v.Items[start:end], page, totalPages)

	if totalPages == 1 || len(searchPageData(totalPages, query)) > maxCallbackData {
		return text, nil, nil
	}

	return text, createPaginationKeyboard(query, page, totalPages), nil
}

func createPaginationKeyboard(query string, page, totalPages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(searchPageData(page-1, query)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData(noopData))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(searchPageData(page+1, query)))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(buttons...),
	)
}

func searchPageData(page int, query string) string {
	return searchPagePrefix + strconv.Itoa(page) + ":" + query
}

// parseSearchPage reads "search_page:<page>:<query>". A malformed page
// number falls back to the first page.
func parseSearchPage(data string) (int, string) {
	rest := strings.TrimPrefix(data, searchPagePrefix)

	pageText, query, _ := strings.Cut(rest, ":")

	page, err := strconv.Atoi(pageText)
	if err != nil || page < 1 {
		page = 1
	}

	return page, query
}

// commandArgs returns everything after the command word.
func commandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}

func (h *Handler) replyError(ctx *th.Context, chatID int64, err error) error {
	logger(ctx).Error("bot command failed", slog.Int64("chat_id", chatID), logx.Error(err))

	return h.sendHTML(ctx, chatID, view.Error(err))
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})

	return err
}
