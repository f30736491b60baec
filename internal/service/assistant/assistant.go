package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/parse"
	"github.com/sandevgo/contactmind/pkg/log"
)

type Parser interface {
	Parse(ctx context.Context, text string) (core.ParseResult, bool)
	DetectIntent(ctx context.Context, text string) core.Intent
}

type Roster interface {
	Load(ctx context.Context) ([]*core.Contact, error)
	Save(ctx context.Context, c *core.Contact) error
}

type TranscriptRepository interface {
	AddMessage(ctx context.Context, sessionID, role, content string) error
}

// Session is one conversation. While PendingConfirmation is set the next
// message is interpreted as a yes/no answer, nothing else.
type Session struct {
	ID      string
	Pending *core.PendingConfirmation
}

// Service is the chat brain: it classifies each message as a query or new
// contact information and drives the duplicate-confirmation dialogue.
type Service struct {
	backend    core.Backend
	parser     Parser
	roster     Roster
	transcript TranscriptRepository
}

func New(backend core.Backend, parser Parser, roster Roster, transcript TranscriptRepository) *Service {
	return &Service{
		backend:    backend,
		parser:     parser,
		roster:     roster,
		transcript: transcript,
	}
}

func (s *Service) HandleMessage(ctx context.Context, session *Session, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	s.record(ctx, session.ID, core.RoleUser, text)

	reply, err := s.route(ctx, session, text)
	if err != nil {
		return "", err
	}

	s.record(ctx, session.ID, core.RoleAssistant, reply)
	return reply, nil
}

func (s *Service) route(ctx context.Context, session *Session, text string) (string, error) {
	if session.Pending != nil {
		return s.handleConfirmation(ctx, session, text)
	}

	roster, err := s.roster.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load roster: %w", err)
	}

	// With nothing stored yet, every message is treated as new information.
	if len(roster) > 0 && s.parser.DetectIntent(ctx, text) == core.IntentQuery {
		return s.handleQuery(ctx, text, roster)
	}
	return s.handleAdd(ctx, session, text, roster)
}

func (s *Service) handleConfirmation(ctx context.Context, session *Session, text string) (string, error) {
	answer := strings.ToLower(text)

	switch {
	case strings.Contains(answer, "yes") || strings.Contains(answer, "same"):
		existing := session.Pending.Existing
		existing.Merge(session.Pending.NewInfo)
		session.Pending = nil

		if err := s.roster.Save(ctx, existing); err != nil {
			return "", fmt.Errorf("failed to save merged contact: %w", err)
		}
		return fmt.Sprintf("Updated %s's info!", existing.Name), nil

	case strings.Contains(answer, "no") || strings.Contains(answer, "different"):
		fresh := session.Pending.NewInfo
		session.Pending = nil

		if err := s.roster.Save(ctx, fresh); err != nil {
			return "", fmt.Errorf("failed to save contact: %w", err)
		}
		return fmt.Sprintf("Added new contact: %s", fresh.Name), nil

	default:
		// Slot stays set until we get a usable answer.
		return "Please answer 'yes' if same person, or 'no' if different.", nil
	}
}

func (s *Service) handleQuery(ctx context.Context, text string, roster []*core.Contact) (string, error) {
	if s.backend != nil && s.backend.Online(ctx) {
		answer, err := s.backend.SmartSearch(ctx, text, roster)
		if err == nil && answer != "" {
			return answer, nil
		}
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("smart search failed, using local search")
		}
	}

	results := parse.Search(text, roster)
	if len(results) == 0 {
		return "No matches found. Try a different search!", nil
	}

	plural := ""
	if len(results) > 1 {
		plural = "es"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d match%s:\n\n", len(results), plural)
	for _, c := range results {
		b.WriteString("• " + strings.ToUpper(c.Name))
		if len(c.Skills) > 0 {
			b.WriteString(" - " + strings.Join(c.Skills, ", "))
		}
		if c.Phone != "" {
			b.WriteString(" | " + c.Phone)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (s *Service) handleAdd(ctx context.Context, session *Session, text string, roster []*core.Contact) (string, error) {
	result, _ := s.parser.Parse(ctx, text)
	if len(result.Contacts) == 0 {
		return "I didn't catch any contact info. Try 'John does photography, his number is 555-1234'", nil
	}

	fresh := result.Contacts[0]

	similar := parse.FindSimilar(fresh.Name, roster)
	if len(similar) > 0 && similar[0].Similarity >= parse.ConfirmThreshold {
		match := similar[0]
		session.Pending = &core.PendingConfirmation{Existing: match.Contact, NewInfo: fresh}
		return matchPrompt(match) + "\n\nIs this the same person? (yes/no)", nil
	}

	if err := s.roster.Save(ctx, fresh); err != nil {
		return "", fmt.Errorf("failed to save contact: %w", err)
	}

	reply := fmt.Sprintf("Added %s", fresh.Name)
	if s.backend == nil || !s.backend.Online(ctx) {
		reply += " (will sync when online)"
	}
	return reply, nil
}

func matchPrompt(match core.SimilarityCandidate) string {
	switch match.Reason {
	case core.MatchExact:
		return "I already have this exact name."
	case core.MatchNickname:
		return fmt.Sprintf("This looks like a nickname of %q.", match.Contact.Name)
	case core.MatchTypo:
		return fmt.Sprintf("This is very similar to %q.", match.Contact.Name)
	default:
		first := strings.SplitN(match.Contact.Name, " ", 2)[0]
		return fmt.Sprintf("I have another %q with a different last name.", first)
	}
}

func (s *Service) record(ctx context.Context, sessionID, role, content string) {
	if s.transcript == nil || content == "" {
		return
	}
	if err := s.transcript.AddMessage(ctx, sessionID, role, content); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("role", role).Msg("failed to save transcript message")
	}
}
