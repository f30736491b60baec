package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/service/roster"
)

type ContactsCommand struct {
	roster    *roster.Service
	formatter *ResponseFormatter
}

func NewContactsCommand(roster *roster.Service) core.Command {
	return &ContactsCommand{
		roster:    roster,
		formatter: NewResponseFormatter(),
	}
}

func (c *ContactsCommand) Name() string {
	return "contacts"
}

func (c *ContactsCommand) Description() string {
	return "List all saved contacts"
}

func (c *ContactsCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	all, err := c.roster.Load(ctx)
	if err != nil {
		return "", err
	}

	if len(all) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Contacts"),
			c.formatter.Label("Total", "0"),
			c.formatter.Tip("Just tell me about someone, e.g. 'John does photography, his number is 555-1234'"),
		), nil
	}

	items := make([]string, len(all))
	for i, contact := range all {
		items[i] = formatContactLine(contact)
	}

	return c.formatter.Combine(
		c.formatter.Info("Contacts"),
		c.formatter.Label("Total", fmt.Sprintf("%d", len(all))),
		"\n",
		c.formatter.List(items),
	), nil
}

func formatContactLine(c *core.Contact) string {
	line := fmt.Sprintf("**%s**", c.Name)
	if len(c.Skills) > 0 {
		line += " — " + strings.Join(c.Skills, ", ")
	}
	if c.Phone != "" {
		line += fmt.Sprintf(" `%s`", c.Phone)
	}
	return line
}
