package parse

import (
	"strings"

	"github.com/sandevgo/contactmind/internal/core"
)

// queryKeywords marks a message as roster-query shaped. Keyword presence
// anywhere in the text is enough; this is the permissive fallback behind the
// remote intent detector.
var queryKeywords = []string{
	"who", "find", "search", "show", "list", "how much", "owe", "?",
}

// ClassifyIntent decides whether a message is a roster query or a new-contact
// statement. Local fallback tier only; the remote classifier is preferred
// when reachable.
func ClassifyIntent(text string) core.Intent {
	lower := strings.ToLower(text)
	for _, kw := range queryKeywords {
		if strings.Contains(lower, kw) {
			return core.IntentQuery
		}
	}
	return core.IntentAdd
}
