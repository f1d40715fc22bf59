package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/domain/entity"
)

type phraseRepo struct {
	db dbConn
}

func newPhraseRepo(db dbConn) contract.PhraseRepo {
	return &phraseRepo{db: db}
}

func (r *phraseRepo) Create(phrase *entity.Phrase) error {
	result, err := r.db.Exec(
		`INSERT INTO phrases (text, created_at) VALUES (?, ?)`,
		phrase.Text, phrase.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create phrase: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	phrase.ID = id
	return nil
}

func (r *phraseRepo) List() ([]*entity.Phrase, error) {
	rows, err := r.db.Query(`SELECT id, text, created_at FROM phrases ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list phrases: %w", err)
	}
	defer rows.Close()

	var phrases []*entity.Phrase
	for rows.Next() {
		phrase := &entity.Phrase{}
		var createdAt time.Time
		if err := rows.Scan(&phrase.ID, &phrase.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan phrase: %w", err)
		}
		phrase.CreatedAt = createdAt.UTC()
		phrases = append(phrases, phrase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate phrases: %w", err)
	}

	return phrases, nil
}

func (r *phraseRepo) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM phrases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete phrase: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrPhraseNotFound
	}

	return nil
}

// TakeRandom picks one phrase at random and removes it from the pool, so a
// phrase is never repeated until the pool is restocked. Returns nil when the
// pool is empty.
func (r *phraseRepo) TakeRandom() (*entity.Phrase, error) {
	phrase := &entity.Phrase{}
	var createdAt time.Time

	row := r.db.QueryRow(`SELECT id, text, created_at FROM phrases ORDER BY RANDOM() LIMIT 1`)
	if err := row.Scan(&phrase.ID, &phrase.Text, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pick phrase: %w", err)
	}
	phrase.CreatedAt = createdAt.UTC()

	if _, err := r.db.Exec(`DELETE FROM phrases WHERE id = ?`, phrase.ID); err != nil {
		return nil, fmt.Errorf("failed to remove picked phrase: %w", err)
	}

	return phrase, nil
}
