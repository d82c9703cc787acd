package view

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/samber/lo"

	"tarkov_trader/internal/domain"
	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/internal/domain/service/pricing"
	"tarkov_trader/pkg/errcodes"
)

const StartMessage = `👋 <b>Tarkov Trader</b>

Compares flea market prices with the best trader buyback and shows the profit of flipping an item.

/search &lt;query&gt; - find items by name
/item &lt;id&gt; - item details
/trend &lt;id&gt; - illustrative price trend
/status - catalog status
/reload - reload market data (admin)`

// MaxMessageLength is the Telegram limit on message text. Lengths are
// measured in bytes, which never undercounts the limit's units.
const MaxMessageLength = 4096

const (
	ItemUsage       = "❌ Usage: /item <code>id</code>"
	TrendUsage      = "❌ Usage: /trend <code>id</code>"
	AccessDenied    = "⛔ This command is available to the administrator only"
	ReloadStarted   = "🔄 Reloading market data..."
	trendDisclaimer = "<i>Simulated, not real price history.</i>"
)

// SearchPage renders one page of search results.
func SearchPage(v catalog.View, items []entity.ResolvedItem, page, totalPages int) string {
	var sb strings.Builder

	if v.Preview {
		sb.WriteString("📦 <b>Catalog preview</b>")
	} else {
		fmt.Fprintf(&sb, "🔍 <b>%s</b>", html.EscapeString(v.Query))
	}

	fmt.Fprintf(&sb, "\nShowing %d of %d items", v.Matched, v.Total)

	if totalPages > 1 {
		fmt.Fprintf(&sb, " (page %d/%d)", page, totalPages)
	}

	sb.WriteString("\n\n")

	if len(items) == 0 {
		sb.WriteString("Nothing found")
		return sb.String()
	}

	for _, item := range items {
		sb.WriteString(ItemLine(item))
		sb.WriteString("\n")
	}

	return sb.String()
}

// ItemLine is the compact form of an item used in lists. ROI is shown only
// next to a profit.
func ItemLine(item entity.ResolvedItem) string {
	line := fmt.Sprintf(
		"<b>%s</b> <code>%s</code>\n  Flea: %s · %s: %s\n  Profit: %s",
		html.EscapeString(item.Name),
		html.EscapeString(item.ID),
		Price(item.BestMarketPrice, ""),
		vendorLabel(item),
		Price(item.BestVendorPrice, ""),
		Price(item.Profit, ""),
	)

	if item.Profit.IsPresent() {
		line += " · ROI: " + ROI(item.ROI)
	}

	return line + "\n"
}

func Item(item entity.ResolvedItem) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>", html.EscapeString(item.Name))

	if item.ShortName != "" && item.ShortName != item.Name {
		fmt.Fprintf(&sb, " (%s)", html.EscapeString(item.ShortName))
	}

	fmt.Fprintf(&sb, "\n<code>%s</code>\n\n", html.EscapeString(item.ID))
	fmt.Fprintf(&sb, "💰 Flea market: %s\n", Price(item.BestMarketPrice, ""))
	fmt.Fprintf(&sb, "📊 24h average: %s\n", Price(item.AggregatePrice, ""))
	fmt.Fprintf(&sb, "📉 Last low: %s\n", Price(item.LastKnownPrice, ""))
	fmt.Fprintf(&sb, "🏪 %s: %s\n\n", vendorLabel(item), Price(item.BestVendorPrice, ""))
	fmt.Fprintf(&sb, "📈 Profit: %s\n", Price(item.Profit, ""))

	if item.Profit.IsPresent() {
		fmt.Fprintf(&sb, "📐 ROI: %s\n", ROI(item.ROI))
	}

	vendors := pricing.VendorOffers(item.Item)
	if len(vendors) > 0 {
		sb.WriteString("\n<b>Traders</b>\n")

		for _, offer := range vendors {
			fmt.Fprintf(&sb, "• %s: %s\n",
				html.EscapeString(offer.Source),
				Price(offer.Price, offer.CurrencyOrDefault()),
			)
		}
	}

	return sb.String()
}

func Trend(item entity.ResolvedItem, trend entity.Trend) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📈 <b>%s</b>\n", html.EscapeString(item.Name))

	if len(trend.Samples) == 0 {
		sb.WriteString("No price to build a trend from\n")
		sb.WriteString(trendDisclaimer)

		return sb.String()
	}

	prices := lo.Map(trend.Samples, func(s entity.TrendSample, _ int) float64 {
		return s.Price
	})

	fmt.Fprintf(&sb, "<code>%s</code>\n\n", Sparkline(prices))
	fmt.Fprintf(&sb, "High: %s\n", groupThousands(int64(trend.Summary.High)))
	fmt.Fprintf(&sb, "Low: %s\n", groupThousands(int64(trend.Summary.Low)))
	fmt.Fprintf(&sb, "Average: %s\n", groupThousands(int64(trend.Summary.Average)))
	fmt.Fprintf(&sb, "Change: %s (%s)\n\n",
		groupThousands(int64(trend.Summary.Change)),
		Percent(trend.Summary.ChangePercent),
	)
	sb.WriteString(trendDisclaimer)

	return sb.String()
}

func Status(status catalog.Status) string {
	if !status.Loaded {
		text := "⏳ Market data is not loaded yet"
		if status.LastError != "" {
			text += "\nLast error: " + html.EscapeString(status.LastError)
		}

		return text
	}

	text := fmt.Sprintf("✅ %d items loaded at %s", status.Items, status.LoadedAt.UTC().Format(time.DateTime))
	if status.LastError != "" {
		text += fmt.Sprintf("\n⚠️ Last reload failed at %s: %s",
			status.LastFailAt.UTC().Format(time.DateTime),
			html.EscapeString(status.LastError),
		)
	}

	return text
}

// Digest lists the most profitable items of a fresh catalog load. Items that
// would push the message past MaxMessageLength are left out.
func Digest(items []entity.ResolvedItem, loadedAt time.Time) string {
	var body strings.Builder

	shown := 0

	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, ItemLine(item))
		if len(digestHeader(i+1, loadedAt))+body.Len()+len(line) > MaxMessageLength {
			break
		}

		body.WriteString(line)

		shown++
	}

	return digestHeader(shown, loadedAt) + body.String()
}

func digestHeader(n int, loadedAt time.Time) string {
	return fmt.Sprintf("🔥 <b>Top %d by ROI</b> (%s UTC)\n\n", n, loadedAt.UTC().Format(time.DateTime))
}

// Error turns a service error into a message for the chat.
func Error(err error) string {
	code, _ := domain.GetCode(err)

	switch code {
	case errcodes.CatalogNotLoaded:
		return "⏳ Market data is not loaded yet, try again shortly"
	case errcodes.ItemNotFound:
		return "❓ Item not found"
	case errcodes.ProviderUnavailable, errcodes.ProviderError:
		return "⚠️ Failed to load Tarkov market data"
	default:
		return "⚠️ Something went wrong"
	}
}

func vendorLabel(item entity.ResolvedItem) string {
	if item.BestVendor == "" {
		return "Best trader"
	}

	return html.EscapeString(item.BestVendor)
}
