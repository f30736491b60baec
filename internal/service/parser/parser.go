package parser

import (
	"context"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/internal/parse"
	"github.com/sandevgo/contactmind/pkg/log"
)

// Service runs the two-tier extraction pipeline: the remote AI parser when the
// backend is reachable, the local rule engine otherwise. A remote result that
// yields at least one contact is trusted verbatim and never post-processed.
type Service struct {
	backend core.Backend
}

func New(backend core.Backend) *Service {
	return &Service{backend: backend}
}

// Parse extracts structured contacts from free text. The returned flag is true
// when the remote tier produced the result.
func (s *Service) Parse(ctx context.Context, text string) (core.ParseResult, bool) {
	logger := log.FromCtx(ctx)

	if s.backend != nil && s.backend.Online(ctx) {
		result, err := s.backend.ParseText(ctx, text)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("remote parse failed, falling back to local rules")
		case result != nil && len(result.Contacts) > 0:
			logger.Debug().Int("contacts", len(result.Contacts)).Msg("remote parse accepted")
			return *result, true
		default:
			logger.Debug().Msg("remote parse found nothing, retrying with local rules")
		}
	}

	result := parse.Extract(text)
	logger.Debug().Int("contacts", len(result.Contacts)).Msg("local parse complete")
	return result, false
}

// DetectIntent classifies a message as a query or new information, asking the
// backend first and keying off local heuristics when it is unreachable.
func (s *Service) DetectIntent(ctx context.Context, text string) core.Intent {
	if s.backend != nil && s.backend.Online(ctx) {
		intent, err := s.backend.DetectIntent(ctx, text)
		if err == nil && intent != "" {
			return intent
		}
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("remote intent detection failed, using local heuristics")
		}
	}
	return parse.ClassifyIntent(text)
}
