package parse

import (
	"testing"

	"github.com/sandevgo/contactmind/internal/core"
)

func roster(names ...string) []*core.Contact {
	out := make([]*core.Contact, 0, len(names))
	for _, n := range names {
		out = append(out, core.NewContact(n))
	}
	return out
}

func TestFindSimilar(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		roster     []*core.Contact
		wantCount  int
		wantReason core.MatchReason
		wantScore  float64
	}{
		{
			name:       "exact case-insensitive match",
			candidate:  "John Smith",
			roster:     roster("john smith"),
			wantCount:  1,
			wantReason: core.MatchExact,
			wantScore:  1.0,
		},
		{
			name:       "prefix beats typo for sam vs samson",
			candidate:  "sam",
			roster:     roster("samson"),
			wantCount:  1,
			wantReason: core.MatchNickname,
			wantScore:  0.9,
		},
		{
			name:       "small edit distance is a typo",
			candidate:  "sarha",
			roster:     roster("sarah"),
			wantCount:  1,
			wantReason: core.MatchTypo,
			wantScore:  0.8,
		},
		{
			name:       "shared first name on full names",
			candidate:  "mike jones",
			roster:     roster("mike wilson"),
			wantCount:  1,
			wantReason: core.MatchSameFirstName,
			wantScore:  0.7,
		},
		{
			name:      "unrelated name excluded",
			candidate: "veronica",
			roster:    roster("bob"),
			wantCount: 0,
		},
		{
			name:      "shared last name alone is excluded",
			candidate: "mike jones",
			roster:    roster("tom jones"),
			wantCount: 0,
		},
		{
			name:       "single word against full name is a prefix nickname",
			candidate:  "mike",
			roster:     roster("mike wilson"),
			wantCount:  1,
			wantReason: core.MatchNickname,
			wantScore:  0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSimilar(tt.candidate, tt.roster)
			if len(got) != tt.wantCount {
				t.Fatalf("got %d candidates, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if got[0].Reason != tt.wantReason {
				t.Errorf("reason = %s, want %s", got[0].Reason, tt.wantReason)
			}
			if got[0].Similarity != tt.wantScore {
				t.Errorf("similarity = %v, want %v", got[0].Similarity, tt.wantScore)
			}
		})
	}
}

func TestFindSimilar_SortedDescending(t *testing.T) {
	r := roster("samantha wilson", "sam smith", "sam smith jr")
	got := FindSimilar("sam smith", r)
	if len(got) < 2 {
		t.Fatalf("expected multiple candidates, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Similarity > got[i-1].Similarity {
			t.Errorf("candidates not sorted descending at %d: %v > %v", i, got[i].Similarity, got[i-1].Similarity)
		}
	}
	if got[0].Reason != core.MatchExact {
		t.Errorf("top candidate reason = %s, want exact", got[0].Reason)
	}
}
