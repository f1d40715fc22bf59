package caption

import (
	"context"
	"testing"

	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_DisabledWithoutKey(t *testing.T) {
	g := New("", "gpt-4o-mini")

	got := g.Generate(context.Background(), contract.CaptionContext{
		Kind:  contract.CaptionEvent,
		Names: []string{"Festa"},
	})
	assert.Empty(t, got, "Generator without a key must always fall back")
}

func TestUserPrompt(t *testing.T) {
	tests := []struct {
		name string
		cc   contract.CaptionContext
		want []string
	}{
		{
			name: "greeting mentions weekday",
			cc:   contract.CaptionContext{Kind: contract.CaptionGreeting, Weekday: "sexta-feira"},
			want: []string{"bom dia", "sexta-feira"},
		},
		{
			name: "future event counts days",
			cc:   contract.CaptionContext{Kind: contract.CaptionEvent, Names: []string{"Festa", "Praia"}, Days: 3},
			want: []string{"3 dias", "Festa e Praia"},
		},
		{
			name: "due event celebrates",
			cc:   contract.CaptionContext{Kind: contract.CaptionEvent, Names: []string{"Festa"}, Hours: 1, Minutes: 30},
			want: []string{"Festa", "1 horas e 30 minutos"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := userPrompt(tt.cc)
			for _, fragment := range tt.want {
				assert.Contains(t, got, fragment)
			}
		})
	}
}
