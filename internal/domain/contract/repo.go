package contract

import (
	"context"
	"time"

	"github.com/mferrari/agendabot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Ping(ctx context.Context) error
	Event() EventRepo
	Phrase() PhraseRepo
}

// EventRepo defines the contract for the event repository. All instants are
// UTC. Claim-related methods are the only code allowed to touch the
// claimed_by/claimed_at/announced columns.
type EventRepo interface {
	Create(event *entity.Event) error

	// ListUpcoming returns unannounced, unclaimed events strictly after now,
	// ordered by date ascending. Used by the countdown/greeting flows only.
	ListUpcoming(now time.Time) ([]*entity.Event, error)

	// Delete removes an event unconditionally. Returns ErrEventNotFound when
	// no row matched.
	Delete(id int64) error

	// CountUpcoming counts unannounced events strictly after now.
	CountUpcoming(now time.Time) (int, error)

	// ClaimDue atomically claims at most one due event for workerID: an
	// unannounced event with date <= now that is either unclaimed or whose
	// claim is older than staleAfter. Returns nil when nothing qualifies.
	ClaimDue(workerID string, now time.Time, staleAfter time.Duration) (*entity.Event, error)

	// ClaimGroup adopts any still-unclaimed unannounced events sharing the
	// exact date into workerID's claim and returns every event of that date
	// currently claimed by workerID.
	ClaimGroup(date time.Time, workerID string, now time.Time) ([]*entity.Event, error)

	// MarkAnnounced sets announced/announced_at and clears the claim fields.
	MarkAnnounced(ids []int64, now time.Time) error

	// DeleteAll removes the given events. Combined with MarkAnnounced inside
	// one transaction it forms the finalize step.
	DeleteAll(ids []int64) error

	// ReleaseClaim clears the claim fields, but only on rows still claimed
	// by workerID.
	ReleaseClaim(ids []int64, workerID string) error
}

// PhraseRepo defines the contract for the rotating phrase pool
type PhraseRepo interface {
	Create(phrase *entity.Phrase) error
	List() ([]*entity.Phrase, error)
	Delete(id int64) error

	// TakeRandom draws one phrase at random and removes it from the pool.
	// Returns nil when the pool is empty.
	TakeRandom() (*entity.Phrase, error)
}
