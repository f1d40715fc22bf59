package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventService_CreateEvent(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		eventName string
		dateStr   string
		timeStr   string
		setupMock func(m serviceTestMocks)
		wantErr   error
	}{
		{
			name:      "success",
			eventName: "Churrasco",
			dateStr:   "2026-12-25",
			timeStr:   "10:00",
			setupMock: func(m serviceTestMocks) {
				m.eventRepo.EXPECT().Create(gomock.Any()).
					DoAndReturn(func(event *entity.Event) error {
						assert.Equal(t, "Churrasco", event.Name)
						assert.True(t, event.Date.After(now))
						event.ID = 42
						return nil
					})
			},
		},
		{
			name:      "empty name",
			eventName: "   ",
			dateStr:   "2026-12-25",
			wantErr:   domain.ErrEmptyName,
		},
		{
			name:      "bad date",
			eventName: "Festa",
			dateStr:   "25/12/2026",
			wantErr:   domain.ErrUnparseableDate,
		},
		{
			name:      "past date",
			eventName: "Festa",
			dateStr:   "2020-01-01",
			wantErr:   domain.ErrPastDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			s := newEventService(m.dm, clock.NewFixed(now), testLocalTime(t))
			event, err := s.CreateEvent(tt.eventName, tt.dateStr, tt.timeStr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, event)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), event.ID)
		})
	}
}

func TestEventService_DeleteEvent_Idempotent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newEventService(m.dm, clock.NewFixed(now), testLocalTime(t))

	m.eventRepo.EXPECT().Delete(int64(5)).Return(domain.ErrEventNotFound)
	assert.NoError(t, s.DeleteEvent(5), "Deleting a missing event is not an error")

	m.eventRepo.EXPECT().Delete(int64(6)).Return(errors.New("db broken"))
	assert.Error(t, s.DeleteEvent(6))
}

func TestEventService_StoreStatus(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newEventService(m.dm, clock.NewFixed(now), testLocalTime(t))

	m.dm.EXPECT().Ping(gomock.Any()).Return(nil)
	m.eventRepo.EXPECT().CountUpcoming(now).Return(3, nil)

	connected, pending := s.StoreStatus(context.Background())
	assert.True(t, connected)
	assert.Equal(t, 3, pending)

	m.dm.EXPECT().Ping(gomock.Any()).Return(errors.New("down"))
	connected, pending = s.StoreStatus(context.Background())
	assert.False(t, connected)
	assert.Zero(t, pending)
}
