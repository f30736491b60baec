package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/contactmind/internal/core"
)

// WriteCSV renders the roster as a spreadsheet-friendly CSV document:
// one row per contact, list fields joined with "; ".
func WriteCSV(w io.Writer, roster []*core.Contact) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Name", "Phone", "Email", "Skills", "Notes", "Created"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range roster {
		notes := make([]string, 0, len(c.Notes))
		for _, n := range c.Notes {
			if n.Text != "" {
				notes = append(notes, n.Text)
			}
		}

		created := ""
		if !c.CreatedAt.IsZero() {
			created = c.CreatedAt.Format("2006-01-02")
		}

		row := []string{
			c.Name,
			c.Phone,
			c.Email,
			strings.Join(c.Skills, "; "),
			strings.Join(notes, "; "),
			created,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", c.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
