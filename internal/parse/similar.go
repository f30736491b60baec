package parse

import (
	"sort"
	"strings"

	"github.com/sandevgo/contactmind/internal/core"
)

const (
	similarityExact         = 1.0
	similarityNickname      = 0.9
	similarityTypo          = 0.8
	similaritySameFirstName = 0.7

	// typoMaxDistance is the edit distance at or below which two names are
	// considered a likely typo of each other. Empirically chosen; tunable.
	typoMaxDistance = 2

	// ConfirmThreshold is the similarity at or above which the caller must ask
	// the user before merging instead of silently inserting a new contact.
	ConfirmThreshold = 0.7
)

// FindSimilar scans the roster for entries the candidate name may refer to.
// Rules are mutually exclusive per entry and tested in priority order:
// exact match, prefix nickname ("sam" / "samson"), small edit distance, and
// shared first name on "first last" shaped names. Results are sorted by
// similarity descending.
func FindSimilar(candidateName string, roster []*core.Contact) []core.SimilarityCandidate {
	name := strings.ToLower(candidateName)

	var similar []core.SimilarityCandidate
	for _, contact := range roster {
		existing := strings.ToLower(contact.Name)

		switch {
		case existing == name:
			similar = append(similar, core.SimilarityCandidate{
				Contact: contact, Similarity: similarityExact, Reason: core.MatchExact,
			})
		case strings.HasPrefix(name, existing) || strings.HasPrefix(existing, name):
			similar = append(similar, core.SimilarityCandidate{
				Contact: contact, Similarity: similarityNickname, Reason: core.MatchNickname,
			})
		case Distance(name, existing) <= typoMaxDistance:
			similar = append(similar, core.SimilarityCandidate{
				Contact: contact, Similarity: similarityTypo, Reason: core.MatchTypo,
			})
		case sameFirstName(name, existing):
			similar = append(similar, core.SimilarityCandidate{
				Contact: contact, Similarity: similaritySameFirstName, Reason: core.MatchSameFirstName,
			})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})
	return similar
}

// sameFirstName reports whether both names look like "first last" and share
// an identical first token.
func sameFirstName(a, b string) bool {
	if !strings.Contains(a, " ") || !strings.Contains(b, " ") {
		return false
	}
	return strings.SplitN(a, " ", 2)[0] == strings.SplitN(b, " ", 2)[0]
}
