package bot

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"coinex-screener-bot/internal/render"
	"coinex-screener-bot/internal/screener"
)

const helpText = "👋 Commands:\n" +
	"• /screen → P1(10), P2(5), P3(5) with: SYM | F | S | % | %4H\n" +
	"• /excel  → Excel file (.xlsx)\n" +
	"• /diag   → diagnostics\n" +
	"• /subscribe → periodic screen pushes (scheduled)\n" +
	"Tip: Send a ticker (e.g., PYTH) to get a one-row table for that coin.\n" +
	"Thresholds can be overridden: /screen spot=1500000 fut=8000000"

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(helpText)
}

func (b *Bot) handleScreen(c tele.Context) error {
	overrides := ParseThresholds(c.Args(), b.cfg.Thresholds)

	res := b.screener.Screen(context.Background(), screener.Options{Overrides: &overrides})
	return c.Send(b.renderScreen(res), tele.ModeMarkdown)
}

func (b *Bot) handleExcel(c tele.Context) error {
	res := b.screener.Screen(context.Background(), screener.Options{})

	buf, err := render.Excel(res.P1, res.P2, res.P3)
	if err != nil {
		b.logger.WithError(err).Error("Excel export failed")
		return c.Send(fmt.Sprintf("Error: %v", err))
	}

	doc := &tele.Document{
		File:     tele.FromReader(buf),
		FileName: "screener.xlsx",
		Caption:  "Excel export (priority,symbol,usd_24h)",
	}
	return c.Send(doc)
}

func (b *Bot) handleDiag(c tele.Context) error {
	th := b.cfg.Thresholds
	d := b.screener.Diagnostics()

	lastErr := d.LastError
	if lastErr == "" {
		lastErr = "_None_"
	}
	lastRun := "_never_"
	if d.LastRunID != "" {
		lastRun = fmt.Sprintf("%s at %s (%.1fs)",
			d.LastRunID, d.LastRunAt.Format("15:04:05"), d.LastDuration.Seconds())
	}

	msg := "*Diag*\n" +
		fmt.Sprintf("- thresholds: P1 F≥%s & S≥%s | P2 F≥%s | P3 S≥%s\n",
			render.USDShort(th.P1FutMin), render.USDShort(th.P1SpotMin),
			render.USDShort(th.P2FutMin), render.USDShort(th.P3SpotMin)) +
		fmt.Sprintf("- P1 rows: %d, P2 rows: %d, P3 rows: %d\n", th.TopP1, th.TopP2, th.TopP3) +
		fmt.Sprintf("- excludes (lists): %s\n", strings.Join(b.cfg.Excludes.Sorted(), ", ")) +
		fmt.Sprintf("- tickers fetched: spot=%d, fut=%d\n", d.RawSpot, d.RawFutures) +
		fmt.Sprintf("- bases kept: spot=%d, fut=%d\n", d.KeptSpot, d.KeptFutures) +
		fmt.Sprintf("- last run: %s\n", lastRun) +
		fmt.Sprintf("- last_error: %s", lastErr)

	return c.Send(msg, tele.ModeMarkdown)
}

func (b *Bot) handleSubscribe(c tele.Context) error {
	if !b.subs.Add(c.Chat().ID) {
		return c.Send("Already subscribed to scheduled screens.")
	}
	b.logger.WithField("chat_id", c.Chat().ID).Info("Chat subscribed")
	return c.Send("Subscribed. You'll receive the screen on the configured schedule.")
}

func (b *Bot) handleUnsubscribe(c tele.Context) error {
	if !b.subs.Remove(c.Chat().ID) {
		return c.Send("You were not subscribed.")
	}
	b.logger.WithField("chat_id", c.Chat().ID).Info("Chat unsubscribed")
	return c.Send("Unsubscribed from scheduled screens.")
}

// handleLookup serves free-text ticker queries like "PYTH" or "$pyth".
// Exclusions do not apply here.
func (b *Bot) handleLookup(c tele.Context) error {
	base, ok := NormalizeTicker(c.Text())
	if !ok {
		return c.Send("Please provide a coin ticker, e.g. `PYTH`.", tele.ModeMarkdown)
	}

	entry, found := b.screener.Lookup(context.Background(), base)
	if !found {
		return c.Send(fmt.Sprintf("Couldn't find data for `%s`.", base), tele.ModeMarkdown)
	}

	title := fmt.Sprintf("%s (24h / 4h)", base)
	return c.Send(render.SingleRow(entry, title), tele.ModeMarkdown)
}
