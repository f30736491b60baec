package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/contactmind/internal/core"
)

type stubCommand struct {
	name   string
	result string
	err    error
	args   []string
}

func (s *stubCommand) Name() string        { return s.name }
func (s *stubCommand) Description() string { return "stub" }

func (s *stubCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	s.args = args
	return s.result, s.err
}

func TestRouter_PassesThroughChatText(t *testing.T) {
	router := New(nil)

	_, handled := router.Execute(context.Background(), "s1", "John does photography")
	require.False(t, handled)
}

func TestRouter_DispatchesWithArgs(t *testing.T) {
	cmd := &stubCommand{name: "export", result: "done"}
	router := New([]core.Command{cmd})

	reply, handled := router.Execute(context.Background(), "s1", "/export vcard")
	require.True(t, handled)
	require.Equal(t, "done", reply)
	require.Equal(t, []string{"vcard"}, cmd.args)
}

func TestRouter_UnknownCommandStillHandled(t *testing.T) {
	router := New(nil)

	reply, handled := router.Execute(context.Background(), "s1", "/bogus")
	require.True(t, handled)
	require.Equal(t, "Unknown command: /bogus", reply)
}

func TestRouter_CommandErrorSurfaced(t *testing.T) {
	cmd := &stubCommand{name: "sync", err: errors.New("backend is unreachable")}
	router := New([]core.Command{cmd})

	reply, handled := router.Execute(context.Background(), "s1", "/sync")
	require.True(t, handled)
	require.Equal(t, "Error: backend is unreachable", reply)
}

func TestHelpCommand_ListsEverything(t *testing.T) {
	commands := []core.Command{
		&stubCommand{name: "contacts"},
		&stubCommand{name: "export"},
	}
	help := NewHelpCommand(commands)

	out, err := help.Execute(context.Background(), "s1", nil)
	require.NoError(t, err)
	require.Contains(t, out, "/contacts")
	require.Contains(t, out, "/export")
	require.Contains(t, out, "/help")
}
