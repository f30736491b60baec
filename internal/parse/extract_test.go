package parse

import (
	"strings"
	"testing"

	"github.com/sandevgo/contactmind/internal/core"
)

func TestExtract_MinimalContact(t *testing.T) {
	result := Extract("Met John at the coffee shop, he does photography, his number is 555-1234")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected exactly 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if c.Name != "john" {
		t.Errorf("name = %q, want %q", c.Name, "john")
	}
	if c.Phone != "555-1234" {
		t.Errorf("phone = %q, want %q", c.Phone, "555-1234")
	}
	if !c.HasSkill("photography") {
		t.Errorf("skills = %v, want to contain %q", c.Skills, "photography")
	}
}

func TestExtract_AdmissionGate(t *testing.T) {
	// A bare name with no phone, email, skill or surrounding context must
	// not create a record.
	result := Extract("Saw Bob")
	if len(result.Contacts) != 0 {
		t.Fatalf("expected 0 contacts for bare name mention, got %d", len(result.Contacts))
	}
}

func TestExtract_DebtDirections(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		person    string
		amount    float64
		direction core.DebtDirection
	}{
		{
			name:      "i owe them",
			text:      "I owe Sarah $50",
			person:    "sarah",
			amount:    50,
			direction: core.IOweThem,
		},
		{
			name:      "they owe me",
			text:      "Sarah owes me $30",
			person:    "sarah",
			amount:    30,
			direction: core.TheyOweMe,
		},
		{
			name:      "lent is they owe me",
			text:      "I lent Priya $25 for lunch",
			person:    "priya",
			amount:    25,
			direction: core.TheyOweMe,
		},
		{
			name:      "decimal amount kept whole",
			text:      "I owe Sarah $50.75 for dinner",
			person:    "sarah",
			amount:    50.75,
			direction: core.IOweThem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.text)
			if len(result.Contacts) != 1 {
				t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
			}
			c := result.Contacts[0]
			if c.Name != tt.person {
				t.Errorf("name = %q, want %q", c.Name, tt.person)
			}
			if len(c.Debts) != 1 {
				t.Fatalf("expected 1 debt, got %d", len(c.Debts))
			}
			if c.Debts[0].Amount != tt.amount {
				t.Errorf("amount = %v, want %v", c.Debts[0].Amount, tt.amount)
			}
			if c.Debts[0].Direction != tt.direction {
				t.Errorf("direction = %s, want %s", c.Debts[0].Direction, tt.direction)
			}
			if c.Debts[0].Note == "" {
				t.Error("debt note should carry the source clause")
			}
		})
	}
}

func TestExtract_PronounBackReference(t *testing.T) {
	result := Extract("Met Alice yesterday. She does design work.")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if c.Name != "alice" {
		t.Errorf("name = %q, want %q", c.Name, "alice")
	}
	if !c.HasSkill("design work") {
		t.Errorf("skills = %v, want to contain %q", c.Skills, "design work")
	}
}

func TestExtract_PronounClauseKeepsSubject(t *testing.T) {
	// A capitalized object in a pronoun-led clause must not become a second
	// contact; the facts belong to the back-referenced person.
	result := Extract("Met Kevin Tran at the conference venue downtown. He works at Globex as an engineer")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if c.Name != "kevin tran" {
		t.Errorf("name = %q, want %q", c.Name, "kevin tran")
	}
	if got := c.Metadata["works_at"]; got != "globex" {
		t.Errorf("metadata[works_at] = %q, want %q", got, "globex")
	}
}

func TestExtract_EmailAndOverwrite(t *testing.T) {
	result := Extract("Talked to Dana Miller today about the project. Her email is dana.m@example.com. Her number is 415-555-0142")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if c.Name != "dana miller" {
		t.Errorf("name = %q, want %q", c.Name, "dana miller")
	}
	if c.Email != "dana.m@example.com" {
		t.Errorf("email = %q", c.Email)
	}
	if c.Phone != "415-555-0142" {
		t.Errorf("phone = %q", c.Phone)
	}
}

func TestExtract_SkillCleanup(t *testing.T) {
	// The "works in" capture stops at the first "and"; multi-word skills
	// survive intact.
	result := Extract("Priya works in mobile app development and enjoys hiking")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if !c.HasSkill("mobile app development") {
		t.Errorf("skills = %v, want to contain %q", c.Skills, "mobile app development")
	}
}

func TestExtract_SkillStripsPossessiveTail(t *testing.T) {
	result := Extract("Jorge does landscaping his number is 555-867-5309")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if !c.HasSkill("landscaping") {
		t.Errorf("skills = %v, want to contain %q", c.Skills, "landscaping")
	}
	for _, s := range c.Skills {
		if strings.Contains(s, "number") {
			t.Errorf("possessive tail not stripped from skill %q", s)
		}
	}
	if c.Phone != "555-867-5309" {
		t.Errorf("phone = %q", c.Phone)
	}
}

func TestExtract_SkillsDeduplicated(t *testing.T) {
	result := Extract("Omar does woodworking. He does woodworking and carpentry.")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	count := 0
	for _, s := range c.Skills {
		if s == "woodworking" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("woodworking appears %d times, want 1 (skills: %v)", count, c.Skills)
	}
	if !c.HasSkill("carpentry") {
		t.Errorf("skills = %v, want to contain carpentry", c.Skills)
	}
}

func TestExtract_MetadataAndReminders(t *testing.T) {
	result := Extract("Met Kevin Tran at the conference venue downtown. He works at Globex as an engineer. He mentioned a meeting on Tuesday")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if got := c.Metadata["works_at"]; got != "globex" {
		t.Errorf("metadata[works_at] = %q, want %q", got, "globex")
	}
	if len(c.Reminders) == 0 {
		t.Fatal("expected a reminder from the meeting clause")
	}
	if c.Reminders[0].Date != "tuesday" {
		t.Errorf("reminder date = %q, want %q", c.Reminders[0].Date, "tuesday")
	}
}

func TestExtract_GeneralNote(t *testing.T) {
	result := Extract("Connected with Laura Bennett about the community garden project plans")

	if len(result.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(result.Contacts))
	}
	c := result.Contacts[0]
	if len(c.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(c.Notes))
	}
	if c.Notes[0].Text != "Connected with Laura Bennett about the community garden project plans" {
		t.Errorf("note = %q", c.Notes[0].Text)
	}
}

func TestExtract_NoMatchIsEmptyResult(t *testing.T) {
	result := Extract("the weather was terrible all weekend long")
	if len(result.Contacts) != 0 {
		t.Fatalf("expected empty result, got %d contacts", len(result.Contacts))
	}
}

func TestExtract_MultipleContactsOneMessage(t *testing.T) {
	result := Extract("Spoke with Nina about the gallery opening next month. Met Carlos at the studio, he does sculpture")

	if len(result.Contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(result.Contacts))
	}
	if result.Contacts[0].Name != "nina" {
		t.Errorf("first contact = %q, want nina", result.Contacts[0].Name)
	}
	if result.Contacts[1].Name != "carlos" {
		t.Errorf("second contact = %q, want carlos", result.Contacts[1].Name)
	}
	if !result.Contacts[1].HasSkill("sculpture") {
		t.Errorf("carlos skills = %v", result.Contacts[1].Skills)
	}
}
