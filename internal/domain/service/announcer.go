package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/domain/entity"
	"github.com/mferrari/agendabot/internal/metrics"
)

const (
	announceTickInterval = time.Minute

	// claimStaleAfter is how long a claim shields an event from other
	// workers. A worker that dies mid-announcement loses its claim after
	// this window and a peer picks the event up.
	claimStaleAfter = 5 * time.Minute

	sendMaxAttempts = 3
	sendRetryDelay  = 5 * time.Second
)

// announcer watches the store for due events and posts them to the
// announcement channel. Claims make the whole cycle safe to run from
// several instances at once.
type announcer struct {
	dm        contract.DataManager
	messenger contract.Messenger
	captions  contract.CaptionGenerator
	clk       clock.Clock
	localTime *clock.LocalTime
	metrics   *metrics.Metrics
	channelID string
	workerID  string

	// overridable in tests
	tickInterval time.Duration
	retryDelay   time.Duration

	stopChan chan struct{}
	running  bool
}

func newAnnouncer(
	dm contract.DataManager,
	messenger contract.Messenger,
	captions contract.CaptionGenerator,
	clk clock.Clock,
	localTime *clock.LocalTime,
	m *metrics.Metrics,
	channelID string,
) *announcer {
	return &announcer{
		dm:           dm,
		messenger:    messenger,
		captions:     captions,
		clk:          clk,
		localTime:    localTime,
		metrics:      m,
		channelID:    channelID,
		workerID:     newWorkerID(),
		tickInterval: announceTickInterval,
		retryDelay:   sendRetryDelay,
		stopChan:     make(chan struct{}),
	}
}

func (a *announcer) Start() {
	if a.running {
		return
	}
	a.running = true
	log.Printf("Announcer starting (worker %s)...", a.workerID)
	go a.mainLoop()
}

func (a *announcer) Stop() {
	if !a.running {
		return
	}
	log.Println("Announcer stopping...")
	close(a.stopChan)
	a.running = false
}

func (a *announcer) mainLoop() {
	// First pass immediately so a restart does not sit on an already due
	// event for a full tick.
	a.runTick()

	ticker := time.NewTicker(a.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.runTick()
		case <-a.stopChan:
			return
		}
	}
}

// runTick executes one full announcement cycle: claim one due event, adopt
// its same-date siblings, compose and send the message, then finalize on
// success or release the claim on failure. Ticks run on a single goroutine,
// so cycles never overlap within one instance.
func (a *announcer) runTick() {
	if !a.messenger.Ready() {
		log.Println("Messenger not ready, skipping announcement tick")
		return
	}

	ctx := context.Background()
	now := a.clk.Now()

	event, err := a.dm.Event().ClaimDue(a.workerID, now, claimStaleAfter)
	if err != nil {
		log.Printf("Failed to claim due event: %v", err)
		return
	}
	if event == nil {
		return
	}
	a.metrics.ClaimsTotal.Inc()

	group, err := a.dm.Event().ClaimGroup(event.Date, a.workerID, now)
	if err != nil {
		log.Printf("Failed to claim event group: %v", err)
		a.release([]*entity.Event{event})
		return
	}
	if len(group) == 0 {
		// The claimed row was deleted between the claim and the group
		// select; nothing left to announce.
		a.release([]*entity.Event{event})
		return
	}

	message := a.composeAnnouncement(ctx, group, now)

	if err := a.sendWithRetry(ctx, message); err != nil {
		log.Printf("Failed to announce %d event(s): %v", len(group), err)
		a.release(group)
		a.metrics.AnnouncementsTotal.WithLabelValues("failed").Inc()
		return
	}

	if err := a.finalize(ctx, group, a.clk.Now()); err != nil {
		log.Printf("Failed to finalize announced events: %v", err)
		a.metrics.AnnouncementsTotal.WithLabelValues("failed").Inc()
		return
	}

	log.Printf("Announced %d event(s) dated %s", len(group), a.localTime.Format(event.Date, "2006-01-02 15:04"))
	a.metrics.AnnouncementsTotal.WithLabelValues("ok").Inc()
}

func (a *announcer) composeAnnouncement(ctx context.Context, group []*entity.Event, now time.Time) string {
	names := make([]string, len(group))
	for i, event := range group {
		names[i] = event.Name
	}
	joined := ComposeNames(names, "e")
	parts := Countdown(group[0].Date, now)

	message := fmt.Sprintf("🎉 Chegou a hora! Hoje é dia de %s!", joined)

	caption := a.captions.Generate(ctx, contract.CaptionContext{
		Kind:      contract.CaptionEvent,
		Names:     names,
		TimeLabel: a.localTime.Format(group[0].Date, "02/01/2006 15:04"),
		Days:      parts.Days,
		Hours:     parts.Hours,
		Minutes:   parts.Minutes,
	})
	if caption != "" {
		message = caption
	} else {
		a.metrics.CaptionFallbacksTotal.Inc()
	}

	return truncateMessage(message)
}

// finalize marks the group announced and removes it, in one transaction so
// the two steps cannot be observed half done.
func (a *announcer) finalize(ctx context.Context, group []*entity.Event, now time.Time) error {
	ids := eventIDs(group)
	return a.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Event().MarkAnnounced(ids, now); err != nil {
			return err
		}
		return dm.Event().DeleteAll(ids)
	})
}

func (a *announcer) release(group []*entity.Event) {
	if err := a.dm.Event().ReleaseClaim(eventIDs(group), a.workerID); err != nil {
		// The claim goes stale after claimStaleAfter anyway, so a failed
		// release only delays the retry.
		log.Printf("Failed to release claim: %v", err)
	}
}

func (a *announcer) sendWithRetry(ctx context.Context, message string) error {
	var err error
	for attempt := 1; attempt <= sendMaxAttempts; attempt++ {
		err = a.messenger.SendMessage(ctx, a.channelID, message)
		if err == nil {
			return nil
		}
		log.Printf("Send attempt %d/%d failed: %v", attempt, sendMaxAttempts, err)
		if attempt < sendMaxAttempts {
			time.Sleep(a.retryDelay)
		}
	}
	return err
}

func eventIDs(group []*entity.Event) []int64 {
	ids := make([]int64, len(group))
	for i, event := range group {
		ids[i] = event.ID
	}
	return ids
}
