package service

import (
	"strings"
	"testing"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCountdown(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   CountdownParts
	}{
		{
			name:   "ninety minutes",
			target: now.Add(90 * time.Minute),
			want:   CountdownParts{Days: 0, Hours: 1, Minutes: 30},
		},
		{
			name:   "two days and change",
			target: now.Add(48*time.Hour + 3*time.Hour + 15*time.Minute),
			want:   CountdownParts{Days: 2, Hours: 3, Minutes: 15},
		},
		{
			name:   "exactly now is past",
			target: now,
			want:   CountdownParts{IsPast: true},
		},
		{
			name:   "already passed clamps to zero",
			target: now.Add(-time.Hour),
			want:   CountdownParts{IsPast: true},
		},
		{
			name:   "sub-minute rounds down",
			target: now.Add(59 * time.Second),
			want:   CountdownParts{Days: 0, Hours: 0, Minutes: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Countdown(tt.target, now))
		})
	}
}

func TestNearestGroup(t *testing.T) {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	a := &entity.Event{ID: 1, Name: "A", Date: base}
	b := &entity.Event{ID: 2, Name: "B", Date: base}
	c := &entity.Event{ID: 3, Name: "C", Date: base.Add(time.Hour)}

	group := NearestGroup([]*entity.Event{a, b, c})
	assert.Equal(t, []*entity.Event{a, b}, group, "Only events at the earliest instant belong to the group")

	assert.Nil(t, NearestGroup(nil))
	assert.Equal(t, []*entity.Event{c}, NearestGroup([]*entity.Event{c}))
}

func TestComposeNames(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		conj  string
		want  string
	}{
		{name: "empty", names: nil, conj: "e", want: ""},
		{name: "single", names: []string{"A"}, conj: "e", want: "A"},
		{name: "pair", names: []string{"A", "B"}, conj: "ou", want: "A ou B"},
		{name: "three", names: []string{"A", "B", "C"}, conj: "e", want: "A, B e C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeNames(tt.names, tt.conj))
		})
	}
}

func TestTruncateMessage(t *testing.T) {
	short := "mensagem curta"
	assert.Equal(t, short, truncateMessage(short))

	// Multi-byte runes must be counted as single characters.
	long := strings.Repeat("ã", domain.MaxMessageLength+100)
	got := truncateMessage(long)
	assert.Equal(t, domain.MaxMessageLength, len([]rune(got)))
	assert.Equal(t, strings.Repeat("ã", domain.MaxMessageLength), got)
}
