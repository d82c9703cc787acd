package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"tarkov_trader/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnStart, th.CommandEqual("help"))
	bh.HandleMessage(h.OnSearch, th.CommandEqual("search"))
	bh.HandleMessage(h.OnItem, th.CommandEqual("item"))
	bh.HandleMessage(h.OnTrend, th.CommandEqual("trend"))
	bh.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	adminGroup := bh.Group(th.CommandEqual("reload"))
	adminGroup.Use(middleware.AdminOnly(adminID))
	adminGroup.HandleMessage(h.OnReload)

	bh.HandleCallbackQuery(h.OnSearchCallback, th.CallbackDataPrefix(searchPagePrefix))
	bh.HandleCallbackQuery(h.OnNoop, th.CallbackDataEqual(noopData))
}
