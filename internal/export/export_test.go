package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/contactmind/internal/core"
)

func sampleRoster() []*core.Contact {
	john := core.NewContact("john smith")
	john.Phone = "555-123-4567"
	john.Email = "john@example.com"
	john.AddSkill("photography")
	john.AddSkill("video editing")
	john.AddNote(`met at the "spring" fair`)

	maria := core.NewContact("maria")
	maria.AddSkill("graphic design")

	return []*core.Contact{john, maria}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRoster()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Name,Phone,Email,Skills,Notes,Created", lines[0])
	require.Contains(t, lines[1], "john smith")
	require.Contains(t, lines[1], "photography; video editing")
	// encoding/csv escapes embedded quotes by doubling them.
	require.Contains(t, lines[1], `""spring""`)
	require.Contains(t, lines[2], "maria")
}

func TestWriteVCard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVCard(&buf, sampleRoster()))

	out := buf.String()
	require.Contains(t, out, "BEGIN:VCARD")
	require.Contains(t, out, "VERSION:3.0")
	require.Contains(t, out, "FN:john smith")
	require.Contains(t, out, "N:smith;john;;;")
	require.Contains(t, out, "TEL:555-123-4567")
	require.Contains(t, out, "EMAIL:john@example.com")
	require.Contains(t, out, "NOTE:Skills: photography\\, video editing")
	require.Contains(t, out, "FN:maria")
	require.Equal(t, 2, strings.Count(out, "END:VCARD"))
}

type staticRoster struct {
	roster []*core.Contact
	err    error
}

func (s *staticRoster) Load(ctx context.Context) ([]*core.Contact, error) {
	return s.roster, s.err
}

func TestService_ExportCSV(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(&staticRoster{roster: sampleRoster()}, dir)

	path, count, err := svc.Export(context.Background(), FormatCSV)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, filepath.Join(dir, "contacts.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "john smith")
}

func TestService_ExportEmptyRosterFails(t *testing.T) {
	svc := NewService(&staticRoster{}, t.TempDir())

	_, _, err := svc.Export(context.Background(), FormatCSV)
	require.Error(t, err)
}

func TestService_ExportUnknownFormat(t *testing.T) {
	svc := NewService(&staticRoster{roster: sampleRoster()}, t.TempDir())

	_, _, err := svc.Export(context.Background(), "pdf")
	require.Error(t, err)
}

func TestService_ExportLoadError(t *testing.T) {
	svc := NewService(&staticRoster{err: errors.New("boom")}, t.TempDir())

	_, _, err := svc.Export(context.Background(), FormatVCard)
	require.Error(t, err)
}
