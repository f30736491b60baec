package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/export"
)

type ExportCommand struct {
	exporter  *export.Service
	formatter *ResponseFormatter
}

func NewExportCommand(exporter *export.Service) core.Command {
	return &ExportCommand{
		exporter:  exporter,
		formatter: NewResponseFormatter(),
	}
}

func (c *ExportCommand) Name() string {
	return "export"
}

func (c *ExportCommand) Description() string {
	return "Export contacts as CSV or vCard"
}

func (c *ExportCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	format := export.FormatCSV
	if len(args) > 0 {
		format = args[0]
	}

	if format != export.FormatCSV && format != export.FormatVCard {
		return c.formatter.Combine(
			c.formatter.Usage("/export [csv|vcard]"),
		), nil
	}

	path, count, err := c.exporter.Export(ctx, format)
	if err != nil {
		return "", err
	}

	return c.formatter.Combine(
		c.formatter.Success(fmt.Sprintf("Exported %d contacts as %s", count, format)),
		c.formatter.Label("File", path),
	), nil
}
