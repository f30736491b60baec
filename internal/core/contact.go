package core

import (
	"sort"
	"strings"
	"time"
)

// Touch refreshes UpdatedAt. Every mutation path goes through this.
func (c *Contact) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// HasSkill reports whether the skill is already present (exact match,
// skills are stored case-normalized).
func (c *Contact) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// AddSkill appends a skill if it is not already present.
func (c *Contact) AddSkill(skill string) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" || c.HasSkill(skill) {
		return
	}
	c.Skills = append(c.Skills, skill)
}

// AddNote appends a free-text note with the current timestamp.
func (c *Contact) AddNote(text string) {
	c.Notes = append(c.Notes, Note{Text: text, Date: time.Now().UTC()})
}

// AddReminder appends a reminder and keeps the sequence sorted by date.
func (c *Contact) AddReminder(r Reminder) {
	c.Reminders = append(c.Reminders, r)
	SortReminders(c.Reminders)
}

// SortReminders orders reminders by date ascending. Dates that do not parse
// (weekday tokens, "unspecified") sort after concrete dates, preserving their
// relative order.
func SortReminders(reminders []Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		ti, iok := parseReminderDate(reminders[i].Date)
		tj, jok := parseReminderDate(reminders[j].Date)
		if iok && jok {
			return ti.Before(tj)
		}
		return iok && !jok
	})
}

func parseReminderDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "January 2, 2006", "January 2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Merge folds newInfo into an existing contact. Scalars fill empty slots only,
// never overwrite; skills union; notes, debts and reminders append.
// Mirrors the confirmation-time merge of the chat flow.
func (c *Contact) Merge(newInfo *Contact) {
	if c.Phone == "" && newInfo.Phone != "" {
		c.Phone = newInfo.Phone
	}
	if c.Email == "" && newInfo.Email != "" {
		c.Email = newInfo.Email
	}
	for _, s := range newInfo.Skills {
		c.AddSkill(s)
	}
	c.Notes = append(c.Notes, newInfo.Notes...)
	c.Debts = append(c.Debts, newInfo.Debts...)
	if len(newInfo.Reminders) > 0 {
		c.Reminders = append(c.Reminders, newInfo.Reminders...)
		SortReminders(c.Reminders)
	}
	for k, v := range newInfo.Metadata {
		if c.Metadata == nil {
			c.Metadata = map[string]string{}
		}
		if _, ok := c.Metadata[k]; !ok {
			c.Metadata[k] = v
		}
	}
	c.Touch()
}
