package entity

import "time"

// Event is a named calendar entry waiting to be announced to the group.
// Date is stored in UTC; clients supply it as wall-clock time in the bot's
// configured timezone and it is converted at the API boundary.
type Event struct {
	ID          int64
	Name        string
	Date        time.Time
	CreatedAt   time.Time
	Announced   bool
	AnnouncedAt *time.Time
	ClaimedBy   string
	ClaimedAt   *time.Time
}

// Claimed reports whether some worker currently owns the right to
// announce this event.
func (e *Event) Claimed() bool {
	return e.ClaimedBy != ""
}
