package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/contract"
	"github.com/mferrari/agendabot/internal/domain/entity"
)

type phraseService struct {
	dm  contract.DataManager
	clk clock.Clock
}

func newPhraseService(dm contract.DataManager, clk clock.Clock) *phraseService {
	return &phraseService{dm: dm, clk: clk}
}

// CreatePhrase validates and stores a phrase in the rotating pool.
func (s *phraseService) CreatePhrase(text string) (*entity.Phrase, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyPhrase
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return nil, domain.ErrPhraseTooLong
	}

	phrase := &entity.Phrase{
		Text:      text,
		CreatedAt: s.clk.Now(),
	}
	if err := s.dm.Phrase().Create(phrase); err != nil {
		return nil, fmt.Errorf("failed to create phrase: %w", err)
	}

	return phrase, nil
}

func (s *phraseService) ListPhrases() ([]*entity.Phrase, error) {
	phrases, err := s.dm.Phrase().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list phrases: %w", err)
	}
	return phrases, nil
}

func (s *phraseService) DeletePhrase(id int64) error {
	return s.dm.Phrase().Delete(id)
}
