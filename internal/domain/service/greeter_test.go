package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeMedia struct {
	randomPath string
	dailyPath  string
	dailyErr   error
	discarded  []string
}

func (f *fakeMedia) Random() (string, error) { return f.randomPath, nil }

func (f *fakeMedia) DailyVideo(int) (string, error) {
	return f.dailyPath, f.dailyErr
}
func (f *fakeMedia) Discard(path string) error {
	f.discarded = append(f.discarded, path)
	return nil
}

func newTestGreeter(t *testing.T, m serviceTestMocks, now time.Time, media *fakeMedia) *greeter {
	t.Helper()

	g, err := newGreeter(m.dm, m.messenger, m.captions, clock.NewFixed(now), testLocalTime(t), media, testMetrics(), testChannelID, "07:30")
	require.NoError(t, err)
	g.retryDelay = 0
	return g
}

func TestNewGreeter_InvalidTime(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	_, err := newGreeter(m.dm, m.messenger, m.captions, clock.NewFixed(time.Now()), testLocalTime(t), &fakeMedia{}, testMetrics(), testChannelID, "7h30")
	assert.Error(t, err)
}

func TestGreeter_Run_CountdownMessage(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// 09:00 local on June 1st.
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	media := &fakeMedia{dailyErr: errors.New("no video")}
	g := newTestGreeter(t, m, now, media)

	// Event in 10 calendar days, São Paulo time.
	date := time.Date(2026, 6, 11, 13, 0, 0, 0, time.UTC)
	events := []*entity.Event{
		{ID: 1, Name: "Churrasco", Date: date},
		{ID: 2, Name: "Praia", Date: date},
	}

	m.messenger.EXPECT().Ready().Return(true)
	m.eventRepo.EXPECT().ListUpcoming(now).Return(events, nil)
	m.captions.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("")

	var sent string
	m.messenger.EXPECT().SendMessage(gomock.Any(), testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			sent = text
			return nil
		})
	m.phraseRepo.EXPECT().TakeRandom().Return(nil, nil)

	g.run()

	assert.Equal(t, "Faltam 10 dias para Churrasco ou Praia e eu ainda não consigo acreditar que hoje já é dia 01! 🎉", sent)
}

func TestGreeter_Run_NoEvents(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	media := &fakeMedia{dailyErr: errors.New("no video")}
	g := newTestGreeter(t, m, now, media)

	m.messenger.EXPECT().Ready().Return(true)
	m.eventRepo.EXPECT().ListUpcoming(now).Return(nil, nil)
	m.captions.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("")

	var sent string
	m.messenger.EXPECT().SendMessage(gomock.Any(), testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			sent = text
			return nil
		})
	m.phraseRepo.EXPECT().TakeRandom().Return(nil, nil)

	g.run()

	assert.Contains(t, sent, "Nenhum evento agendado")
}

func TestGreeter_Run_CaptionPrepended(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	media := &fakeMedia{dailyErr: errors.New("no video")}
	g := newTestGreeter(t, m, now, media)

	m.messenger.EXPECT().Ready().Return(true)
	m.eventRepo.EXPECT().ListUpcoming(now).Return(nil, nil)

	m.captions.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cc contract.CaptionContext) string {
			assert.Equal(t, contract.CaptionGreeting, cc.Kind)
			assert.Equal(t, "segunda-feira", cc.Weekday)
			return "Bom dia! ☀️"
		})

	var sent string
	m.messenger.EXPECT().SendMessage(gomock.Any(), testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			sent = text
			return nil
		})
	m.phraseRepo.EXPECT().TakeRandom().Return(nil, nil)

	g.run()

	assert.Contains(t, sent, "Bom dia! ☀️")
	assert.Contains(t, sent, "Nenhum evento agendado")
}

func TestGreeter_Run_SendsExtras(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	media := &fakeMedia{dailyPath: "/vid/bomdia.mp4", randomPath: "/media/foto.jpg"}
	g := newTestGreeter(t, m, now, media)

	m.messenger.EXPECT().Ready().Return(true)
	m.eventRepo.EXPECT().ListUpcoming(now).Return(nil, nil)
	m.captions.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("")
	m.messenger.EXPECT().SendMessage(gomock.Any(), testChannelID, gomock.Any()).Return(nil)

	m.messenger.EXPECT().SendFile(gomock.Any(), testChannelID, "/vid/bomdia.mp4", "").Return(nil)

	m.phraseRepo.EXPECT().TakeRandom().Return(&entity.Phrase{ID: 1, Text: "Carpe diem"}, nil)
	m.messenger.EXPECT().SendMessage(gomock.Any(), testChannelID, "Mensagem do dia:\nCarpe diem").Return(nil)

	m.messenger.EXPECT().SendFile(gomock.Any(), testChannelID, "/media/foto.jpg", "Foto do dia:").Return(nil)

	g.run()

	assert.Equal(t, []string{"/media/foto.jpg"}, media.discarded, "Sent media must leave the pool")
}

func TestGreeter_Run_MessengerNotReady(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	g := newTestGreeter(t, m, now, &fakeMedia{})

	m.messenger.EXPECT().Ready().Return(false)

	g.run()
}

func TestGreeter_NextRun(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	g := newTestGreeter(t, m, time.Now(), &fakeMedia{})

	tests := []struct {
		name string
		now  time.Time // UTC
		want time.Time // UTC
	}{
		{
			name: "before today's greeting",
			// 06:00 local
			now:  time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "after today's greeting rolls to tomorrow",
			// 08:00 local
			now:  time.Date(2026, 6, 1, 11, 0, 0, 0, time.UTC),
			want: time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "exactly at greeting time rolls to tomorrow",
			now:  time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC),
			want: time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.nextRun(tt.now)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}
