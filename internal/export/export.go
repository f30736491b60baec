package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/pkg/log"
)

const (
	FormatCSV   = "csv"
	FormatVCard = "vcard"
)

type RosterLoader interface {
	Load(ctx context.Context) ([]*core.Contact, error)
}

// Service writes roster export files into the runtime export directory.
type Service struct {
	roster RosterLoader
	dir    string
}

func NewService(roster RosterLoader, dir string) *Service {
	return &Service{roster: roster, dir: dir}
}

// Export writes the full roster in the given format and returns the file path
// along with the number of exported contacts.
func (s *Service) Export(ctx context.Context, format string) (string, int, error) {
	roster, err := s.roster.Load(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(roster) == 0 {
		return "", 0, fmt.Errorf("no contacts to export")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	var path string
	switch format {
	case FormatCSV:
		path = filepath.Join(s.dir, "contacts.csv")
	case FormatVCard:
		path = filepath.Join(s.dir, "contacts.vcf")
	default:
		return "", 0, fmt.Errorf("unknown export format: %s", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		err = WriteCSV(f, roster)
	case FormatVCard:
		err = WriteVCard(f, roster)
	}
	if err != nil {
		return "", 0, err
	}

	log.FromCtx(ctx).Info().Str("format", format).Str("path", path).Int("contacts", len(roster)).Msg("roster exported")
	return path, len(roster), nil
}
