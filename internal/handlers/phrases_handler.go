package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/service"
)

type phraseJSON struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type PhraseHandler struct {
	services *service.Instance
}

func NewPhraseHandler(services *service.Instance) *PhraseHandler {
	return &PhraseHandler{services: services}
}

func (h *PhraseHandler) List(w http.ResponseWriter, r *http.Request) {
	phrases, err := h.services.Phrase.ListPhrases()
	if err != nil {
		log.Printf("Failed to list phrases: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao listar frases")
		return
	}

	payload := make([]phraseJSON, 0, len(phrases))
	for _, phrase := range phrases {
		payload = append(payload, phraseJSON{
			ID:        phrase.ID,
			Text:      phrase.Text,
			CreatedAt: phrase.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, payload)
}

type createPhraseRequest struct {
	Text string `json:"text"`
}

func (h *PhraseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPhraseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	phrase, err := h.services.Phrase.CreatePhrase(req.Text)
	switch err {
	case nil:
	case domain.ErrEmptyPhrase:
		respondError(w, http.StatusBadRequest, "frase é obrigatória")
		return
	case domain.ErrPhraseTooLong:
		respondError(w, http.StatusBadRequest, "frase excede o tamanho máximo")
		return
	default:
		log.Printf("Failed to create phrase: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao criar frase")
		return
	}

	respondJSON(w, http.StatusCreated, phraseJSON{
		ID:        phrase.ID,
		Text:      phrase.Text,
		CreatedAt: phrase.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *PhraseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return
	}

	switch err := h.services.Phrase.DeletePhrase(id); err {
	case nil:
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	case domain.ErrPhraseNotFound:
		respondError(w, http.StatusNotFound, "frase não encontrada")
	default:
		log.Printf("Failed to delete phrase %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "erro ao remover frase")
	}
}
