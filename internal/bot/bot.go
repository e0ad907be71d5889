package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"

	"coinex-screener-bot/internal/config"
	"coinex-screener-bot/internal/render"
	"coinex-screener-bot/internal/screener"
)

// Bot wires the screener to Telegram. telebot dispatches every update
// on its own goroutine, so the blocking exchange calls inside handlers
// never stall other chats.
type Bot struct {
	tb       *tele.Bot
	screener *screener.Screener
	cfg      *config.Config
	logger   *logrus.Logger
	subs     *Subscribers
}

func New(cfg *config.Config, scr *screener.Screener, logger *logrus.Logger) (*Bot, error) {
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	tb, err := tele.NewBot(tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	b := &Bot{
		tb:       tb,
		screener: scr,
		cfg:      cfg,
		logger:   logger,
		subs:     NewSubscribers(),
	}

	tb.Handle("/start", b.handleStart)
	tb.Handle("/screen", b.handleScreen)
	tb.Handle("/excel", b.handleExcel)
	tb.Handle("/diag", b.handleDiag)
	tb.Handle("/subscribe", b.handleSubscribe)
	tb.Handle("/unsubscribe", b.handleUnsubscribe)
	tb.Handle(tele.OnText, b.handleLookup)

	return b, nil
}

func (b *Bot) Start() {
	b.logger.Info("Starting telegram bot")
	b.tb.Start()
}

func (b *Bot) Stop() {
	b.logger.Info("Stopping telegram bot")
	b.tb.Stop()
}

// BroadcastScreen runs a screen and pushes the result to every
// subscribed chat. Used by the scheduler.
func (b *Bot) BroadcastScreen(ctx context.Context) {
	chats := b.subs.List()
	if len(chats) == 0 {
		return
	}

	res := b.screener.Screen(ctx, screener.Options{})
	text := b.renderScreen(res)

	sent := 0
	for _, chatID := range chats {
		if _, err := b.tb.Send(tele.ChatID(chatID), text, tele.ModeMarkdown); err != nil {
			b.logger.WithError(err).WithField("chat_id", chatID).Warn("Failed to push screen")
			continue
		}
		sent++
	}

	b.logger.WithFields(logrus.Fields{
		"run_id": res.RunID,
		"sent":   sent,
		"chats":  len(chats),
	}).Info("Scheduled screen pushed")
}

func (b *Bot) renderScreen(res *screener.Result) string {
	th := b.cfg.Thresholds
	return render.Table(res.P1, fmt.Sprintf("Priority 1 (F≥%s & S≥%s) — Top %d",
		render.USDShort(th.P1FutMin), render.USDShort(th.P1SpotMin), th.TopP1)) +
		render.Table(res.P2, fmt.Sprintf("Priority 2 (F≥%s) — Top %d",
			render.USDShort(th.P2FutMin), th.TopP2)) +
		render.Table(res.P3, fmt.Sprintf("Priority 3 (S≥%s) — Top %d",
			render.USDShort(th.P3SpotMin), th.TopP3)) +
		fmt.Sprintf("⏱️ %.1fs • CoinEx • tickers: spot=%d, fut=%d",
			res.Elapsed.Seconds(), res.RawSpot, res.RawFutures)
}
