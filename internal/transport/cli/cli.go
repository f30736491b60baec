package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandevgo/contactmind/internal/config"
	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/service/assistant"
	"github.com/sandevgo/contactmind/pkg/log"
)

const defaultSessionID = "cli-local"

// Chat is the interactive stdin loop. One session, one pending-confirmation
// slot, same entry point as the Telegram transport.
type Chat struct {
	cfg       *config.AppConfig
	assistant *assistant.Service
	router    core.CmdRouter
	in        io.Reader
	out       io.Writer
	done      chan struct{}
}

func NewChat(assist *assistant.Service, router core.CmdRouter, cfg *config.AppConfig) (*Chat, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	return &Chat{
		cfg:       cfg,
		assistant: assist,
		router:    router,
		in:        os.Stdin,
		out:       os.Stdout,
		done:      make(chan struct{}),
	}, nil
}

func (c *Chat) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("CLI chat started. Type 'exit' to quit, /help for commands.")

	defer close(c.done)

	session := &assistant.Session{ID: defaultSessionID}
	scanner := bufio.NewScanner(c.in)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(c.out, ">>> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return nil // EOF
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if reply, handled := c.router.Execute(ctx, session.ID, line); handled {
			fmt.Fprintf(c.out, "%s\n", reply)
			continue
		}

		reply, err := c.assistant.HandleMessage(ctx, session, line)
		if err != nil {
			logger.Error().Err(err).Msg("assistant failed")
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		if reply != "" {
			fmt.Fprintf(c.out, "%s\n", reply)
		}
	}
}

func (c *Chat) Shutdown(ctx context.Context) error {
	select {
	case <-c.done:
	case <-ctx.Done():
	}
	return nil
}
