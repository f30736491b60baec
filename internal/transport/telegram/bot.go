package telegram

import (
	"context"
	"fmt"
	"sync"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/contactmind/internal/config"
	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/service/assistant"
	"github.com/sandevgo/contactmind/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant *assistant.Service
	router    core.CmdRouter
	sender    *sender
	ownerID   int64

	mu       sync.Mutex
	sessions map[int64]*assistant.Session
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	assist *assistant.Service,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: assist,
		router:    router,
		sender:    newSender(b),
		ownerID:   cfg.OwnerID,
		sessions:  make(map[int64]*assistant.Session),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) session(chatID int64) *assistant.Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sessions[chatID]
	if !ok {
		s = &assistant.Session{ID: fmt.Sprintf("telegram-%d", chatID)}
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	session := b.session(c.Chat().ID)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	if reply, handled := b.router.Execute(ctx, session.ID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), reply, false)
	}

	reply, err := b.assistant.HandleMessage(ctx, session, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("assistant failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}
	if reply == "" {
		return nil
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), reply, false)
}
