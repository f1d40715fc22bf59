package entity

import "time"

// Phrase is one entry of the rotating message pool. Phrases are drawn at
// random by the daily greeting and removed once posted.
type Phrase struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}
