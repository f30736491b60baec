package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/service/roster"
)

type SyncCommand struct {
	roster    *roster.Service
	formatter *ResponseFormatter
}

func NewSyncCommand(roster *roster.Service) core.Command {
	return &SyncCommand{
		roster:    roster,
		formatter: NewResponseFormatter(),
	}
}

func (c *SyncCommand) Name() string {
	return "sync"
}

func (c *SyncCommand) Description() string {
	return "Push local changes to the server now"
}

func (c *SyncCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	replayed, err := c.roster.Replay(ctx)
	if err != nil {
		return "", fmt.Errorf("queue replay incomplete: %w", err)
	}

	stats, err := c.roster.Sync(ctx)
	if err != nil {
		return "", err
	}

	return c.formatter.Combine(
		c.formatter.Success("Sync complete"),
		c.formatter.Label("Replayed", fmt.Sprintf("%d", replayed)),
		c.formatter.Label("Created", fmt.Sprintf("%d", stats.Created)),
		c.formatter.Label("Updated", fmt.Sprintf("%d", stats.Updated)),
	), nil
}
