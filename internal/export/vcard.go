package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/sandevgo/contactmind/internal/core"
)

// WriteVCard renders the roster as a vCard 3.0 stream: name, phone and email
// as standard properties, skills folded into a NOTE.
func WriteVCard(w io.Writer, roster []*core.Contact) error {
	enc := vcard.NewEncoder(w)

	for _, c := range roster {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldVersion, "3.0")
		card.SetValue(vcard.FieldFormattedName, c.Name)

		first, last := splitName(c.Name)
		card.AddName(&vcard.Name{GivenName: first, FamilyName: last})

		if c.Phone != "" {
			card.SetValue(vcard.FieldTelephone, c.Phone)
		}
		if c.Email != "" {
			card.SetValue(vcard.FieldEmail, c.Email)
		}
		if len(c.Skills) > 0 {
			card.SetValue(vcard.FieldNote, "Skills: "+strings.Join(c.Skills, ", "))
		}

		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("failed to encode vcard for %s: %w", c.Name, err)
		}
	}
	return nil
}

func splitName(name string) (first, last string) {
	parts := strings.SplitN(name, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
