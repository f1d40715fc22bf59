package domain

import "time"

// MaxMessageLength is the channel's hard cap on a single message; anything
// longer is truncated before sending.
const MaxMessageLength = 4096

// DefaultTimezone is the wall clock the group lives in. Client-supplied
// dates are interpreted in this zone unless they carry their own offset.
const DefaultTimezone = "America/Sao_Paulo"

// WeekdayNamesPT maps Go weekdays to their Portuguese names, used in
// greetings and caption prompts.
var WeekdayNamesPT = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}
