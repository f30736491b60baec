package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/contactmind/internal/core"
)

const (
	// newContactContextLen is the admission gate: a clause introducing an
	// unknown name must carry a phone, an email, a skill phrase, or at least
	// this much text before it may create a contact. Keeps bare name mentions
	// from producing empty records. Empirically chosen; tunable.
	newContactContextLen = 20

	// noteMinLen is the minimum clause length for the general-note fallback.
	noteMinLen = 15

	// skillMinLen is the minimum length of an individual skill token.
	skillMinLen = 2
)

// subjectPatterns is the ordered table of name-detection rules. First match
// wins. Verbs match case-insensitively; captured names must be one or two
// capitalized tokens, except the trailing "owe" form which accepts lowercase.
var subjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:(?i:met|spoke with|talked to|connected with|saw))\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:(?i:does|is|works|owes|likes|wants))`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)'s?\s+(?:(?i:number|email|phone|birthday|meeting))`),
	regexp.MustCompile(`(?:(?i:owe|owes|owed))\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`(?:(?i:meeting|call|lunch|dinner))\s+(?i:with)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`(?i)(?:i\s+)?owe(?:s|d)?\s+([a-z]+(?:\s+[a-z]+)?)`),
}

// stopWords are tokens that can never be a subject name: pronouns, articles,
// time words and weekday names. Also used to reject pronoun captures produced
// by the subject patterns ("She does design work").
var stopWords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "the": {}, "a": {}, "an": {},
	"is": {}, "was": {}, "were": {}, "are": {},
	"he": {}, "she": {}, "it": {}, "they": {}, "him": {}, "her": {}, "them": {},
	"this": {}, "that": {},
	"yesterday": {}, "today": {}, "tomorrow": {}, "last": {}, "next": {},
	"week": {}, "month": {}, "year": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

var (
	// phoneRE accepts 10-digit forms with optional separators, a dashed
	// 7-digit local number ("555-1234"), and a bare 10-digit run.
	phoneRE = regexp.MustCompile(`(\d{3}[-.]?\d{3}[-.]?\d{4}|\d{10}|\d{3}[-.]\d{4})`)
	emailRE = regexp.MustCompile(`(?i)([a-z0-9._-]+@[a-z0-9.-]+\.[a-z]{2,})`)

	// skillVerbRE is the admission-gate probe for skill-indicating phrasing.
	skillVerbRE = regexp.MustCompile(`does\s+\w+|is\s+a\s+\w+|works\s+|specializes\s+in`)

	// infoExtractionRE marks clauses that look like pure structured-field
	// extraction; those do not additionally become general notes.
	infoExtractionRE = regexp.MustCompile(`number is|email is|does\s+\w+|is\s+a\s+\w+`)

	pronounStartRE = regexp.MustCompile(`(?i)^(?:he|she|they|him|her|them)\s+`)

	nonLetterRE = regexp.MustCompile(`[^a-zA-Z]`)
	digitRE     = regexp.MustCompile(`\d`)
	digitsRE    = regexp.MustCompile(`\d+`)
	spacesRE    = regexp.MustCompile(`\s+`)
)

// skillPatterns are tried independently; every match contributes skills.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:he|she|they)?\s*does\s+([\w\s]+?)(?:\s*,|\s+his|\s+her|\s+their|$)`),
	regexp.MustCompile(`is\s+(?:a|an)\s+([\w\s]+?)(?:\s*,|\s+and|$)`),
	regexp.MustCompile(`works?\s+(?:in|with|on|as)\s+([\w\s]+?)(?:\s*,|\s+and|$)`),
	regexp.MustCompile(`specializes?\s+in\s+([\w\s]+?)(?:\s*,|\s+and|$)`),
}

var (
	skillStripRE = regexp.MustCompile(`\s+(?:his|her|their|the|number|phone|email)\b`)
	skillSplitRE = regexp.MustCompile(`\s+and\s+|\s*,\s+`)
	allDigitsRE  = regexp.MustCompile(`^\d+$`)
)

// debtPatterns cover the four phrasings of money owed. The first matching
// pattern yields one debt record; direction is decided separately from the
// whole clause, so overlap between patterns is harmless.
var debtPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:i\s+)?owe(?:s|d)?\s+(?:him|her|them|[a-z]+(?:\s+[a-z]+)?)??\s*\$?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?:he|she|they)?\s*owe(?:s|d)?\s+me\s*\$?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`borrowed\s*\$?(\d+(?:\.\d+)?)\s+(?:from|to)`),
	regexp.MustCompile(`lent\s+(?:him|her|them|[a-z]+(?:\s+[a-z]+)?)??\s*\$?(\d+(?:\.\d+)?)`),
}

var theyOweMeRE = regexp.MustCompile(`owe(?:s|d)?\s+me|lent`)

var reminderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)meeting\s+(?:with\s+)?(?:on|by|next)?\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday|tomorrow|today)`),
	regexp.MustCompile(`(?i)(?:on|by)\s+([a-z]+\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?)`),
	regexp.MustCompile(`(?i)(?:call|email|contact|reach out to)\s+(?:him|her|them)?\s*(?:on|by|about)`),
}

// metadataPatterns populate the open metadata map, keyed by the trigger.
var metadataPatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{"likes", regexp.MustCompile(`likes?\s+([\w\s]+?)(?:\s+and|\s*,|$)`)},
	{"allergic_to", regexp.MustCompile(`allergic\s+to\s+([\w\s]+?)(?:\s+and|\s*,|$)`)},
	{"works_at", regexp.MustCompile(`(?:works?|worked)\s+at\s+([\w\s]+?)(?:\s+as|\s*,|$)`)},
	{"lives_in", regexp.MustCompile(`(?:lives?|lived)\s+(?:in|at)\s+([\w\s]+?)(?:\s*,|$)`)},
	{"birthday", regexp.MustCompile(`birthday\s+(?:is\s+)?(?:on\s+)?([a-z]+\s+\d{1,2})`)},
}

// Extract runs the local heuristic extraction pass over one message. Clauses
// are processed in order with two pieces of running state: the contact
// currently receiving facts, and the last mentioned name for pronoun
// back-references. It never fails; an empty result is a legitimate outcome.
func Extract(text string) core.ParseResult {
	result := core.ParseResult{}

	var currentPerson *core.Contact
	var lastMentionedName string

	for _, clause := range Segment(text) {
		lower := strings.ToLower(clause)

		name := detectSubject(clause, lastMentionedName)
		if name != "" {
			lastMentionedName = name
			currentPerson = findByName(result.Contacts, name)

			if currentPerson == nil {
				if !passesAdmissionGate(clause, lower) {
					continue
				}
				currentPerson = core.NewContact(name)
				result.Contacts = append(result.Contacts, currentPerson)
			}
		}

		if currentPerson == nil {
			continue
		}
		attachFields(currentPerson, clause, lower)
	}

	return result
}

// detectSubject applies the subject rules in priority order: pattern table,
// pronoun back-reference, proper-noun scan. The back-reference outranks the
// scan so that a pronoun-led clause ("He works at Globex") keeps attaching to
// the referenced person instead of promoting a capitalized object to a new
// subject. Returns "" when the clause has no subject of its own.
func detectSubject(clause, lastMentionedName string) string {
	for _, re := range subjectPatterns {
		m := re.FindStringSubmatch(clause)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		if _, stop := stopWords[name]; stop {
			continue
		}
		return name
	}

	if lastMentionedName != "" && pronounStartRE.MatchString(clause) {
		return lastMentionedName
	}

	return scanProperNoun(clause)
}

// scanProperNoun walks clause tokens left to right looking for the first word
// shaped like a proper noun: capitalized, rest lowercase, longer than two
// letters, not a stop word, no digits. A qualifying adjacent token is joined
// into a two-token name.
func scanProperNoun(clause string) string {
	words := strings.Split(clause, " ")
	for i, word := range words {
		first, ok := properNoun(word)
		if !ok {
			continue
		}
		if i+1 < len(words) {
			if second, ok := properNoun(words[i+1]); ok {
				return strings.ToLower(first + " " + second)
			}
		}
		return strings.ToLower(first)
	}
	return ""
}

func properNoun(word string) (string, bool) {
	if digitRE.MatchString(word) {
		return "", false
	}
	clean := nonLetterRE.ReplaceAllString(word, "")
	if len(clean) <= 2 {
		return "", false
	}
	if clean[0] < 'A' || clean[0] > 'Z' || clean[1:] != strings.ToLower(clean[1:]) {
		return "", false
	}
	if _, stop := stopWords[strings.ToLower(clean)]; stop {
		return "", false
	}
	return clean, true
}

// passesAdmissionGate decides whether a clause carries enough substance for a
// newly mentioned name to become a contact record. A debt mention counts as
// substance: "I owe Sarah $50" must create the record it attaches to.
func passesAdmissionGate(clause, lower string) bool {
	return phoneRE.MatchString(clause) ||
		emailRE.MatchString(clause) ||
		skillVerbRE.MatchString(lower) ||
		matchesDebt(lower) ||
		len(clause) > newContactContextLen
}

func matchesDebt(lower string) bool {
	for _, re := range debtPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// attachFields extracts every field family the clause matches. Families are
// not mutually exclusive: one clause may contribute a skill, a debt and a
// note at the same time.
func attachFields(c *core.Contact, clause, lower string) {
	if m := phoneRE.FindStringSubmatch(clause); m != nil {
		c.Phone = m[1]
	}
	if m := emailRE.FindStringSubmatch(clause); m != nil {
		c.Email = m[1]
	}

	attachSkills(c, lower)
	attachDebt(c, clause, lower)
	attachReminder(c, clause)
	attachMetadata(c, lower)

	if len(clause) > noteMinLen && !infoExtractionRE.MatchString(lower) {
		c.AddNote(clause)
	}
}

func attachSkills(c *core.Contact, lower string) {
	for _, re := range skillPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		// Trailing possessive or preposition fragments ride along with the
		// lazy capture ("photography his number..."); cut at the first one.
		if loc := skillStripRE.FindStringIndex(text); loc != nil {
			text = strings.TrimSpace(text[:loc[0]])
		}
		text = digitsRE.ReplaceAllString(text, "")
		text = strings.TrimSpace(spacesRE.ReplaceAllString(text, " "))
		if len(text) <= skillMinLen {
			continue
		}
		for _, skill := range skillSplitRE.Split(text, -1) {
			skill = strings.TrimSpace(skill)
			if len(skill) > skillMinLen && !allDigitsRE.MatchString(skill) {
				c.AddSkill(skill)
			}
		}
	}
}

func attachDebt(c *core.Contact, clause, lower string) {
	for _, re := range debtPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		direction := core.IOweThem
		if theyOweMeRE.MatchString(lower) {
			direction = core.TheyOweMe
		}
		c.Debts = append(c.Debts, core.Debt{
			Amount:    amount,
			Direction: direction,
			Note:      clause,
			Date:      time.Now().UTC(),
		})
		return
	}
}

func attachReminder(c *core.Contact, clause string) {
	for _, re := range reminderPatterns {
		m := re.FindStringSubmatch(clause)
		if m == nil {
			continue
		}
		date := "unspecified"
		if len(m) > 1 && m[1] != "" {
			date = strings.ToLower(m[1])
		}
		c.AddReminder(core.Reminder{
			Title:     clause,
			Date:      date,
			CreatedAt: time.Now().UTC(),
		})
		return
	}
}

func attachMetadata(c *core.Contact, lower string) {
	for _, p := range metadataPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if c.Metadata == nil {
			c.Metadata = map[string]string{}
		}
		c.Metadata[p.key] = strings.TrimSpace(m[1])
	}
}

func findByName(contacts []*core.Contact, name string) *core.Contact {
	for _, c := range contacts {
		if c.Name == name {
			return c
		}
	}
	return nil
}
