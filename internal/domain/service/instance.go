package service

import (
	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/metrics"
)

type Instance struct {
	Event     *eventService
	Phrase    *phraseService
	Announcer *announcer
	Greeter   *greeter
}

type Deps struct {
	DM           contract.DataManager
	Messenger    contract.Messenger
	Captions     contract.CaptionGenerator
	Clock        clock.Clock
	LocalTime    *clock.LocalTime
	Media        mediaStore
	Metrics      *metrics.Metrics
	ChannelID    string
	GreetingTime string
}

func NewInstance(deps Deps) (*Instance, error) {
	greeter, err := newGreeter(
		deps.DM, deps.Messenger, deps.Captions, deps.Clock, deps.LocalTime,
		deps.Media, deps.Metrics, deps.ChannelID, deps.GreetingTime,
	)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Event:  newEventService(deps.DM, deps.Clock, deps.LocalTime),
		Phrase: newPhraseService(deps.DM, deps.Clock),
		Announcer: newAnnouncer(
			deps.DM, deps.Messenger, deps.Captions, deps.Clock, deps.LocalTime,
			deps.Metrics, deps.ChannelID,
		),
		Greeter: greeter,
	}, nil
}
