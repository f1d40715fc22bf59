package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/domain/entity"
)

const eventColumns = "id, name, date, created_at, announced, announced_at, claimed_by, claimed_at"

type eventRepo struct {
	db dbConn
}

func newEventRepo(db dbConn) contract.EventRepo {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (name, date, created_at, announced)
		VALUES (?, ?, ?, 0)
	`

	// All instants are normalized to UTC before hitting the database so
	// that sqlite's text comparison of timestamps matches chronological
	// order.
	result, err := r.db.Exec(query, event.Name, event.Date.UTC(), event.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	event.ID = id
	return nil
}

func (r *eventRepo) ListUpcoming(now time.Time) ([]*entity.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE announced = 0 AND claimed_by IS NULL AND date > ?
		ORDER BY date ASC
	`, eventColumns)

	rows, err := r.db.Query(query, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *eventRepo) CountUpcoming(now time.Time) (int, error) {
	var count int
	row := r.db.QueryRow(`SELECT COUNT(*) FROM events WHERE announced = 0 AND date > ?`, now.UTC())
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count upcoming events: %w", err)
	}
	return count, nil
}

func (r *eventRepo) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// ClaimDue is the single atomic step of the announcement protocol: one
// conditional UPDATE selects and claims at most one due event. Concurrent
// callers cannot claim the same row because sqlite serializes writers and
// the claim predicate is re-checked by the statement itself.
func (r *eventRepo) ClaimDue(workerID string, now time.Time, staleAfter time.Duration) (*entity.Event, error) {
	cutoff := now.Add(-staleAfter).UTC()

	query := `
		UPDATE events
		SET claimed_by = ?, claimed_at = ?
		WHERE id = (
			SELECT id FROM events
			WHERE announced = 0
			  AND date <= ?
			  AND (claimed_by IS NULL OR claimed_at <= ?)
			ORDER BY date ASC
			LIMIT 1
		)
		AND announced = 0
		AND (claimed_by IS NULL OR claimed_at <= ?)
	`

	result, err := r.db.Exec(query, workerID, now.UTC(), now.UTC(), cutoff, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	// Read back the row we just claimed. workerID is unique per process
	// and ticks are serialized, so at most one row matches.
	event := &entity.Event{}
	row := r.db.QueryRow(fmt.Sprintf(`
		SELECT %s FROM events
		WHERE claimed_by = ? AND announced = 0
		ORDER BY date ASC
		LIMIT 1
	`, eventColumns), workerID)

	if err := scanEvent(row, event); err != nil {
		if err == sql.ErrNoRows {
			// Claimed row vanished between statements (user delete); not an
			// error, just nothing to announce.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load claimed event: %w", err)
	}

	return event, nil
}

// ClaimGroup adopts still-unclaimed events sharing the exact date into
// workerID's claim, then returns the whole group. The adoption is itself a
// conditional UPDATE, so a sibling concurrently claimed by another worker
// stays out of this group.
func (r *eventRepo) ClaimGroup(date time.Time, workerID string, now time.Time) ([]*entity.Event, error) {
	_, err := r.db.Exec(`
		UPDATE events
		SET claimed_by = ?, claimed_at = ?
		WHERE announced = 0 AND date = ? AND claimed_by IS NULL
	`, workerID, now.UTC(), date.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to claim event group: %w", err)
	}

	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT %s FROM events
		WHERE announced = 0 AND date = ? AND claimed_by = ?
		ORDER BY id ASC
	`, eventColumns), date.UTC(), workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event group: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *eventRepo) MarkAnnounced(ids []int64, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE events
		SET announced = 1, announced_at = ?, claimed_by = NULL, claimed_at = NULL
		WHERE id IN (%s)
	`, placeholders(len(ids)))

	args := append([]interface{}{now.UTC()}, idArgs(ids)...)
	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to mark events announced: %w", err)
	}

	return nil
}

func (r *eventRepo) DeleteAll(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM events WHERE id IN (%s)`, placeholders(len(ids)))
	if _, err := r.db.Exec(query, idArgs(ids)...); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}

	return nil
}

func (r *eventRepo) ReleaseClaim(ids []int64, workerID string) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE events
		SET claimed_by = NULL, claimed_at = NULL
		WHERE claimed_by = ? AND id IN (%s)
	`, placeholders(len(ids)))

	args := append([]interface{}{workerID}, idArgs(ids)...)
	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to release claim: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner, event *entity.Event) error {
	var announcedAt, claimedAt sql.NullTime
	var claimedBy sql.NullString

	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.CreatedAt,
		&event.Announced,
		&announcedAt,
		&claimedBy,
		&claimedAt,
	)
	if err != nil {
		return err
	}

	event.Date = event.Date.UTC()
	event.CreatedAt = event.CreatedAt.UTC()
	if announcedAt.Valid {
		t := announcedAt.Time.UTC()
		event.AnnouncedAt = &t
	}
	if claimedBy.Valid {
		event.ClaimedBy = claimedBy.String
	}
	if claimedAt.Valid {
		t := claimedAt.Time.UTC()
		event.ClaimedAt = &t
	}

	return nil
}

func scanEvents(rows *sql.Rows) ([]*entity.Event, error) {
	var events []*entity.Event
	for rows.Next() {
		event := &entity.Event{}
		if err := scanEvent(rows, event); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func idArgs(ids []int64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
