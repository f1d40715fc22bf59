package clock

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
)

// LocalTime converts between the bot's fixed named timezone and absolute
// instants. All returned instants are UTC.
type LocalTime struct {
	loc *time.Location
}

func NewLocalTime(name string) (*LocalTime, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return &LocalTime{loc: loc}, nil
}

func (lt *LocalTime) Location() *time.Location {
	return lt.loc
}

// ParseLocal interprets a date string (and optional HH:MM time, default
// midnight) as wall-clock time in the fixed timezone. Strings carrying
// their own offset (RFC 3339) keep it. The result is UTC.
func (lt *LocalTime) ParseLocal(dateStr, timeStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" {
		return time.Time{}, domain.ErrUnparseableDate
	}

	if timeStr != "" {
		for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
			if t, err := time.ParseInLocation(layout, dateStr+" "+timeStr, lt.loc); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, domain.ErrUnparseableDate
	}

	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, dateStr, lt.loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.ErrUnparseableDate
}

// Breakdown returns the non-negative days/hours/minutes remaining between
// from and target, clamped to zero when target has passed.
func (lt *LocalTime) Breakdown(target, from time.Time) (days, hours, minutes int) {
	diff := target.Sub(from)
	if diff <= 0 {
		return 0, 0, 0
	}
	days = int(diff / (24 * time.Hour))
	diff -= time.Duration(days) * 24 * time.Hour
	hours = int(diff / time.Hour)
	diff -= time.Duration(hours) * time.Hour
	minutes = int(diff / time.Minute)
	return days, hours, minutes
}

// DaysUntil counts calendar days between from and target in the fixed
// timezone (midnight to midnight), matching how people count "faltam N
// dias". Negative when target's day has passed.
func (lt *LocalTime) DaysUntil(target, from time.Time) int {
	t := target.In(lt.loc)
	f := from.In(lt.loc)
	tDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, lt.loc)
	fDay := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, lt.loc)
	// Round instead of truncate so DST transitions (23h/25h days) do not
	// shift the count.
	return int(math.Round(tDay.Sub(fDay).Hours() / 24))
}

// Format renders an instant as wall-clock time in the fixed timezone.
func (lt *LocalTime) Format(t time.Time, layout string) string {
	return t.In(lt.loc).Format(layout)
}

// WeekdayName returns the Portuguese weekday name of an instant in the
// fixed timezone.
func (lt *LocalTime) WeekdayName(t time.Time) string {
	return domain.WeekdayNamesPT[t.In(lt.loc).Weekday()]
}
