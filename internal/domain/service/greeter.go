package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/metrics"
)

// mediaStore is the slice of the media package the greeter uses.
type mediaStore interface {
	Random() (string, error)
	Discard(path string) error
	DailyVideo(localHour int) (string, error)
}

// greeter posts the daily good-morning message: a countdown to the nearest
// pending event (or an invitation to schedule one), the period video and
// one randomly drawn phrase and media item. It only reads events and never
// touches claims.
type greeter struct {
	dm        contract.DataManager
	messenger contract.Messenger
	captions  contract.CaptionGenerator
	clk       clock.Clock
	localTime *clock.LocalTime
	media     mediaStore
	metrics   *metrics.Metrics
	channelID string

	greetingHour   int
	greetingMinute int
	retryDelay     time.Duration

	stopChan chan struct{}
	running  bool
}

func newGreeter(
	dm contract.DataManager,
	messenger contract.Messenger,
	captions contract.CaptionGenerator,
	clk clock.Clock,
	localTime *clock.LocalTime,
	media mediaStore,
	m *metrics.Metrics,
	channelID string,
	greetingTime string,
) (*greeter, error) {
	parsed, err := time.Parse("15:04", greetingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid greeting time %q: %w", greetingTime, err)
	}

	return &greeter{
		dm:             dm,
		messenger:      messenger,
		captions:       captions,
		clk:            clk,
		localTime:      localTime,
		media:          media,
		metrics:        m,
		channelID:      channelID,
		greetingHour:   parsed.Hour(),
		greetingMinute: parsed.Minute(),
		retryDelay:     sendRetryDelay,
		stopChan:       make(chan struct{}),
	}, nil
}

func (g *greeter) Start() {
	if g.running {
		return
	}
	g.running = true
	log.Printf("Greeter starting (daily at %02d:%02d)...", g.greetingHour, g.greetingMinute)
	go g.mainLoop()
}

func (g *greeter) Stop() {
	if !g.running {
		return
	}
	log.Println("Greeter stopping...")
	close(g.stopChan)
	g.running = false
}

func (g *greeter) mainLoop() {
	// One greeting right away so a freshly deployed bot says hello.
	g.run()

	for {
		now := g.clk.Now()
		next := g.nextRun(now)
		log.Printf("Next greeting at %s", g.localTime.Format(next, "2006-01-02 15:04"))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-timer.C:
			g.run()
		case <-g.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextRun returns the next occurrence of the greeting time in the bot's
// timezone, strictly after now.
func (g *greeter) nextRun(now time.Time) time.Time {
	loc := g.localTime.Location()
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), g.greetingHour, g.greetingMinute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.UTC()
}

func (g *greeter) run() {
	if !g.messenger.Ready() {
		log.Println("Messenger not ready, skipping greeting")
		return
	}

	ctx := context.Background()
	now := g.clk.Now()

	message := g.composeGreeting(ctx, now)
	if err := g.sendWithRetry(ctx, message); err != nil {
		log.Printf("Failed to send greeting: %v", err)
		return
	}
	g.metrics.GreetingsTotal.Inc()

	g.sendDailyVideo(ctx, now)
	g.sendRandomPhrase(ctx)
	g.sendRandomMedia(ctx)
}

func (g *greeter) composeGreeting(ctx context.Context, now time.Time) string {
	message := g.countdownMessage(now)

	caption := g.captions.Generate(ctx, contract.CaptionContext{
		Kind:    contract.CaptionGreeting,
		Weekday: g.localTime.WeekdayName(now),
	})
	if caption != "" {
		message = caption + "\n\n" + message
	}

	return truncateMessage(message)
}

func (g *greeter) countdownMessage(now time.Time) string {
	events, err := g.dm.Event().ListUpcoming(now)
	if err != nil {
		log.Printf("Failed to list events for greeting: %v", err)
		events = nil
	}

	group := NearestGroup(events)
	if len(group) == 0 {
		return "Bom dia, grupo! ☀️ Nenhum evento agendado por enquanto. Que tal marcar alguma coisa?"
	}

	names := make([]string, len(group))
	for i, event := range group {
		names[i] = event.Name
	}
	joined := ComposeNames(names, "ou")
	today := g.localTime.Format(now, "02")

	days := g.localTime.DaysUntil(group[0].Date, now)
	switch {
	case days <= 0:
		return fmt.Sprintf("É hoje! Hoje é dia de %s! 🎉", joined)
	case days == 1:
		return fmt.Sprintf("Falta 1 dia para %s e eu ainda não consigo acreditar que hoje já é dia %s! 🎉", joined, today)
	default:
		return fmt.Sprintf("Faltam %d dias para %s e eu ainda não consigo acreditar que hoje já é dia %s! 🎉", days, joined, today)
	}
}

func (g *greeter) sendDailyVideo(ctx context.Context, now time.Time) {
	localHour := now.In(g.localTime.Location()).Hour()
	path, err := g.media.DailyVideo(localHour)
	if err != nil {
		log.Printf("No daily video available: %v", err)
		return
	}

	if err := g.messenger.SendFile(ctx, g.channelID, path, ""); err != nil {
		log.Printf("Failed to send daily video: %v", err)
	}
}

func (g *greeter) sendRandomPhrase(ctx context.Context) {
	phrase, err := g.dm.Phrase().TakeRandom()
	if err != nil {
		log.Printf("Failed to draw phrase: %v", err)
		return
	}
	if phrase == nil {
		return
	}

	message := truncateMessage("Mensagem do dia:\n" + phrase.Text)
	if err := g.sendWithRetry(ctx, message); err != nil {
		log.Printf("Failed to send phrase of the day: %v", err)
	}
}

func (g *greeter) sendRandomMedia(ctx context.Context) {
	path, err := g.media.Random()
	if err != nil {
		log.Printf("Failed to pick media: %v", err)
		return
	}
	if path == "" {
		return
	}

	caption := "Foto do dia:"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".webm":
		caption = "Vídeo do dia:"
	}

	if err := g.messenger.SendFile(ctx, g.channelID, path, caption); err != nil {
		log.Printf("Failed to send media of the day: %v", err)
		return
	}

	// Sent files leave the pool, like phrases.
	if err := g.media.Discard(path); err != nil {
		log.Printf("Failed to discard sent media: %v", err)
	}
}

func (g *greeter) sendWithRetry(ctx context.Context, message string) error {
	var err error
	for attempt := 1; attempt <= sendMaxAttempts; attempt++ {
		err = g.messenger.SendMessage(ctx, g.channelID, message)
		if err == nil {
			return nil
		}
		log.Printf("Send attempt %d/%d failed: %v", attempt, sendMaxAttempts, err)
		if attempt < sendMaxAttempts {
			time.Sleep(g.retryDelay)
		}
	}
	return err
}
