package contract

import "context"

type CaptionKind string

const (
	CaptionGreeting CaptionKind = "greeting"
	CaptionEvent    CaptionKind = "event"
)

// CaptionContext carries the structured facts a caption is built from.
type CaptionContext struct {
	Kind      CaptionKind
	Names     []string
	TimeLabel string // formatted local date/time of the event, when relevant
	Weekday   string
	Days      int
	Hours     int
	Minutes   int
}

// CaptionGenerator produces a short human-readable caption for an
// announcement. Implementations never fail: any internal error, timeout or
// empty completion yields "", and the caller falls back to its
// deterministic text.
type CaptionGenerator interface {
	Generate(ctx context.Context, cc CaptionContext) string
}
