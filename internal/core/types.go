package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MindName          = "ContactMind"
	MindUserAgent     = "ContactMind/0.1"
	MindRepositoryURL = "https://github.com/sandevgo/contactmind"
	MindVersion       = "0.1.0"
)

// DebtDirection records who owes whom.
type DebtDirection string

const (
	IOweThem  DebtDirection = "i_owe_them"
	TheyOweMe DebtDirection = "they_owe_me"
)

// MatchReason explains why a roster entry was flagged as a possible duplicate.
type MatchReason string

const (
	MatchExact         MatchReason = "exact"
	MatchNickname      MatchReason = "nickname"
	MatchTypo          MatchReason = "typo"
	MatchSameFirstName MatchReason = "same_first_name"
)

// Intent is the coarse classification of an incoming chat message.
type Intent string

const (
	IntentQuery Intent = "query"
	IntentAdd   Intent = "add"
)

// Note is a dated free-text annotation on a contact. Legacy data sometimes
// carried notes as bare strings; the storage layer normalizes those on read.
type Note struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

type Debt struct {
	Amount    float64       `json:"amount"`
	Direction DebtDirection `json:"direction"`
	Note      string        `json:"note"`
	Date      time.Time     `json:"date"`
}

// Reminder is a dated follow-up attached to a contact. Date may be a loose
// token ("monday", "unspecified") when it came out of the extractor rather
// than a picker.
type Reminder struct {
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Contact is a person record accumulated from one or more free-text mentions.
// Name is the canonical lowercase key; uniqueness is advisory, not enforced.
type Contact struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone,omitempty"`
	Email     string            `json:"email,omitempty"`
	Skills    []string          `json:"skills"`
	Notes     []Note            `json:"notes"`
	Debts     []Debt            `json:"debts"`
	Reminders []Reminder        `json:"reminders"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ParseResult is the transient output of one extraction pass over one message.
// It is never persisted directly; contacts go through similarity resolution first.
type ParseResult struct {
	Contacts []*Contact `json:"contacts"`
}

// SimilarityCandidate is a scored guess that a newly mentioned name refers
// to an existing contact.
type SimilarityCandidate struct {
	Contact    *Contact
	Similarity float64
	Reason     MatchReason
}

// PendingConfirmation holds at most one outstanding merge-or-create decision.
// While set, the next user message is routed as a yes/no answer.
type PendingConfirmation struct {
	Existing *Contact
	NewInfo  *Contact
}

// NewContactID generates a client-side contact id. Server-assigned ids replace
// these after a successful sync.
func NewContactID() string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("local-%d-%s", time.Now().UnixMilli(), frag)
}

// NewContact returns an empty contact skeleton for the given (lowercased) name.
func NewContact(name string) *Contact {
	now := time.Now().UTC()
	return &Contact{
		ID:        NewContactID(),
		Name:      strings.ToLower(name),
		Skills:    []string{},
		Notes:     []Note{},
		Debts:     []Debt{},
		Reminders: []Reminder{},
		Metadata:  map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
