package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/sandevgo/contactmind/internal/core"
)

type HelpCommand struct {
	commands  []core.Command
	formatter *ResponseFormatter
}

// NewHelpCommand lists every registered command plus itself.
func NewHelpCommand(commands []core.Command) core.Command {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	all := append([]core.Command{c}, c.commands...)
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })

	items := make([]string, len(all))
	for i, cmd := range all {
		items[i] = fmt.Sprintf("**/%s** — %s", cmd.Name(), cmd.Description())
	}

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
		c.formatter.Tip("Anything without a leading / goes to the assistant."),
	), nil
}
