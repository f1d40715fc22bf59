package service

import (
	"testing"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/metrics"
	"github.com/mferrari/agendabot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceTestMocks struct {
	dm         *mocks.MockDataManager
	eventRepo  *mocks.MockEventRepo
	phraseRepo *mocks.MockPhraseRepo
	messenger  *mocks.MockMessenger
	captions   *mocks.MockCaptionGenerator
}

func newServiceTestMock(t *testing.T) (m serviceTestMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = serviceTestMocks{
		dm:         mocks.NewMockDataManager(ctrl),
		eventRepo:  mocks.NewMockEventRepo(ctrl),
		phraseRepo: mocks.NewMockPhraseRepo(ctrl),
		messenger:  mocks.NewMockMessenger(ctrl),
		captions:   mocks.NewMockCaptionGenerator(ctrl),
	}

	m.dm.EXPECT().Event().Return(m.eventRepo).AnyTimes()
	m.dm.EXPECT().Phrase().Return(m.phraseRepo).AnyTimes()

	return
}

func testLocalTime(t *testing.T) *clock.LocalTime {
	t.Helper()

	lt, err := clock.NewLocalTime("America/Sao_Paulo")
	require.NoError(t, err)
	return lt
}

func testMetrics() *metrics.Metrics {
	return metrics.New()
}
