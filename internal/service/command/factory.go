package command

import (
	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/export"
	"github.com/sandevgo/contactmind/internal/service/roster"
)

func NewCommands(
	roster *roster.Service,
	exporter *export.Service,
) []core.Command {
	commands := []core.Command{
		NewContactsCommand(roster),
		NewExportCommand(exporter),
		NewSyncCommand(roster),
	}
	return append(commands, NewHelpCommand(commands))
}
