package database

import (
	"context"
	"fmt"

	"github.com/mferrari/agendabot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	eventRepo  contract.EventRepo
	phraseRepo contract.PhraseRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.eventRepo = newEventRepo(i.db.conn)
	i.phraseRepo = newPhraseRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db *DB, conn dbConn) *instance {
	return &instance{
		db:         db,
		eventRepo:  newEventRepo(conn),
		phraseRepo: newPhraseRepo(conn),
	}
}

// Event returns the event repository
func (i *instance) Event() contract.EventRepo {
	return i.eventRepo
}

// Phrase returns the phrase repository
func (i *instance) Phrase() contract.PhraseRepo {
	return i.phraseRepo
}

// Ping reports whether the backing store is reachable
func (i *instance) Ping(ctx context.Context) error {
	return i.db.Ping(ctx)
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(i.db, tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
