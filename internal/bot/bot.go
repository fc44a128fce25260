// Package bot is the Telegram surface: send a URL, get a short link back.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"urlify/internal/service"
)

type TelegramBot struct {
	tgBot     *tele.Bot
	shortener *service.Shortener
	users     service.UserDirectory
	limiter   *service.Limiter
	baseURL   string
}

func NewTelegramBot(token string, shortener *service.Shortener, users service.UserDirectory, limiter *service.Limiter, baseURL string) (*TelegramBot, error) {
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	bot, err := tele.NewBot(pref)
	if err != nil {
		slog.Error("failed to initialize telegram bot", "error", err)
		return nil, err
	}

	return &TelegramBot{
		tgBot:     bot,
		shortener: shortener,
		users:     users,
		limiter:   limiter,
		baseURL:   baseURL,
	}, nil
}

func (b *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Telegram bot started", "bot_username", b.tgBot.Me.Username)

	b.tgBot.Handle("/start", b.handleStart)
	b.tgBot.Handle(tele.OnText, b.handleMessage)

	go func() {
		<-ctx.Done()
		slog.Info("Telegram bot shutting down")
		b.tgBot.Stop()
	}()

	b.tgBot.Start()
	return nil
}

func (b *TelegramBot) handleStart(c tele.Context) error {
	slog.Debug("command /start received", "user_id", c.Sender().ID)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := b.users.EnsureTelegramUser(ctx, c.Sender().ID); err != nil {
		slog.Error("failed to create user", "user_id", c.Sender().ID, "error", err)
		return c.Send("Something went wrong, please try again later.")
	}
	return c.Send("Hi! Send me a link and I will shorten it for you.")
}

func (b *TelegramBot) handleMessage(c tele.Context) error {
	senderID := c.Sender().ID

	if !b.limiter.TryConsume(fmt.Sprintf("tg:%d", senderID), 1) {
		return c.Send("Too many requests, please slow down.")
	}

	destination := c.Text()
	if err := service.ValidateDestination(destination); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			slog.Warn("rejected destination from bot", "user_id", senderID, "reason", vErr.Reason)
		}
		return c.Send("That link is not valid. It must start with http:// or https:// and point to a public host.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ownerID, err := b.users.EnsureTelegramUser(ctx, senderID)
	if err != nil {
		slog.Error("failed to resolve telegram user", "user_id", senderID, "error", err)
		return c.Send("Something went wrong, please try again later.")
	}

	link, err := b.shortener.Shorten(ctx, service.ShortenRequest{URL: destination}, ownerID)
	if err != nil {
		slog.Error("failed to create short link", "user_id", senderID, "error", err)
		return c.Send("Could not create a short link, please try again.")
	}

	return c.Send("Here is your short link:\n" + b.baseURL + "/" + link.Code)
}
