package parse

import "strings"

// Segment splits free text into clause-like units for independent extraction.
// Commas count as clause boundaries alongside sentence terminators, because
// contact-dense utterances pack multiple facts per sentence
// ("John does photography, his number is 555-1234"). A terminator only closes
// a clause when it ends a token (followed by whitespace or end of text), so
// the dots inside email addresses and decimal amounts stay intact. Lossy by
// design.
func Segment(text string) []string {
	clauses := make([]string, 0, 4)
	flush := func(s string) {
		s = strings.TrimRight(s, ".!?,")
		if s = strings.TrimSpace(s); s != "" {
			clauses = append(clauses, s)
		}
	}

	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			flush(text[start:i])
			start = i + 1
		case '.', '!', '?', ',':
			if i+1 == len(text) || text[i+1] == ' ' || text[i+1] == '\t' || text[i+1] == '\n' {
				flush(text[start:i])
				start = i + 1
			}
		}
	}
	flush(text[start:])
	return clauses
}
