package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/domain/entity"
)

type eventService struct {
	dm        contract.DataManager
	clk       clock.Clock
	localTime *clock.LocalTime
}

func newEventService(dm contract.DataManager, clk clock.Clock, localTime *clock.LocalTime) *eventService {
	return &eventService{
		dm:        dm,
		clk:       clk,
		localTime: localTime,
	}
}

// CreateEvent validates and stores a new event. The date string is
// interpreted as wall-clock time in the bot's timezone unless it carries
// its own offset, and must land in the future.
func (s *eventService) CreateEvent(name, dateStr, timeStr string) (*entity.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	date, err := s.localTime.ParseLocal(dateStr, timeStr)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	if !date.After(now) {
		return nil, domain.ErrPastDate
	}

	event := &entity.Event{
		Name:      name,
		Date:      date,
		CreatedAt: now,
	}
	if err := s.dm.Event().Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// ListUpcoming returns the pending events ordered by date.
func (s *eventService) ListUpcoming() ([]*entity.Event, error) {
	events, err := s.dm.Event().ListUpcoming(s.clk.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event. Deleting an unknown id is not an error;
// the operation is idempotent from the caller's point of view.
func (s *eventService) DeleteEvent(id int64) error {
	err := s.dm.Event().Delete(id)
	if err != nil && err != domain.ErrEventNotFound {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// StoreStatus reports connectivity and the number of pending events.
func (s *eventService) StoreStatus(ctx context.Context) (connected bool, pending int) {
	if err := s.dm.Ping(ctx); err != nil {
		return false, 0
	}

	count, err := s.dm.Event().CountUpcoming(s.clk.Now())
	if err != nil {
		return false, 0
	}
	return true, count
}
