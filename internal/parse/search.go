package parse

import (
	"strings"

	"github.com/sandevgo/contactmind/internal/core"
)

// minQueryWordLen filters filler words ("who", "is") out of multi-word
// queries before the all-words-in-one-skill check.
const minQueryWordLen = 2

// Search filters the roster against a free-text query. A contact matches on a
// name substring, a skill substring, every non-trivial query word appearing
// within a single skill ("mobile development" hits "mobile app development"),
// or a note substring. Order-preserving; no ranking.
func Search(query string, roster []*core.Contact) []*core.Contact {
	query = strings.ToLower(strings.TrimSpace(query))

	var queryWords []string
	for _, w := range strings.Fields(query) {
		if len(w) > minQueryWordLen {
			queryWords = append(queryWords, w)
		}
	}

	var results []*core.Contact
	for _, contact := range roster {
		if matchesQuery(contact, query, queryWords) {
			results = append(results, contact)
		}
	}
	return results
}

func matchesQuery(contact *core.Contact, query string, queryWords []string) bool {
	if strings.Contains(strings.ToLower(contact.Name), query) {
		return true
	}

	for _, skill := range contact.Skills {
		skillLower := strings.ToLower(skill)
		if strings.Contains(skillLower, query) {
			return true
		}
		if len(queryWords) > 0 && allWordsIn(skillLower, queryWords) {
			return true
		}
	}

	for _, note := range contact.Notes {
		if note.Text != "" && strings.Contains(strings.ToLower(note.Text), query) {
			return true
		}
	}
	return false
}

func allWordsIn(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}
