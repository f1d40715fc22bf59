package service

import (
	"strings"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/entity"
)

// CountdownParts is the remaining time to a target, clamped to zero once
// the target has passed.
type CountdownParts struct {
	Days    int
	Hours   int
	Minutes int
	IsPast  bool
}

// Countdown breaks the interval from "from" to "target" into whole days,
// hours and minutes. A 90 minute interval yields 0 days, 1 hour, 30
// minutes.
func Countdown(target, from time.Time) CountdownParts {
	diff := target.Sub(from)
	if diff <= 0 {
		return CountdownParts{IsPast: true}
	}

	parts := CountdownParts{}
	parts.Days = int(diff / (24 * time.Hour))
	diff -= time.Duration(parts.Days) * 24 * time.Hour
	parts.Hours = int(diff / time.Hour)
	diff -= time.Duration(parts.Hours) * time.Hour
	parts.Minutes = int(diff / time.Minute)
	return parts
}

// NearestGroup returns every event sharing the earliest date in the list.
// Events are expected sorted by date ascending, as the repository returns
// them.
func NearestGroup(events []*entity.Event) []*entity.Event {
	if len(events) == 0 {
		return nil
	}

	first := events[0].Date
	group := []*entity.Event{events[0]}
	for _, event := range events[1:] {
		if !event.Date.Equal(first) {
			break
		}
		group = append(group, event)
	}
	return group
}

// ComposeNames joins event names with a conjunction: "A", "A ou B",
// "A, B ou C".
func ComposeNames(names []string, conjunction string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " " + conjunction + " " + names[len(names)-1]
}

// truncateMessage caps a message at the channel's maximum length, counting
// runes so multi-byte text is never split mid-character.
func truncateMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= domain.MaxMessageLength {
		return text
	}
	return string(runes[:domain.MaxMessageLength])
}
