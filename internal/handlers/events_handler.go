package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/entity"
	"github.com/mferrari/agendabot/internal/domain/service"
)

type eventJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func toEventJSON(event *entity.Event) eventJSON {
	return eventJSON{
		ID:   event.ID,
		Name: event.Name,
		Date: event.Date.UTC().Format(time.RFC3339),
	}
}

type EventHandler struct {
	services *service.Instance
}

func NewEventHandler(services *service.Instance) *EventHandler {
	return &EventHandler{services: services}
}

// List returns the pending events ordered by date. When the store is
// unreachable it answers 503 so callers can tell "empty" from "down".
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.Event.ListUpcoming()
	if err != nil {
		log.Printf("Failed to list events: %v", err)
		respondError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	payload := make([]eventJSON, 0, len(events))
	for _, event := range events {
		payload = append(payload, toEventJSON(event))
	}
	respondJSON(w, http.StatusOK, payload)
}

type createEventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.services.Event.CreateEvent(req.Name, req.Date, req.Time)
	switch err {
	case nil:
	case domain.ErrEmptyName:
		respondError(w, http.StatusBadRequest, "nome do evento é obrigatório")
		return
	case domain.ErrUnparseableDate:
		respondError(w, http.StatusBadRequest, "data inválida")
		return
	case domain.ErrPastDate:
		respondError(w, http.StatusBadRequest, "a data do evento deve estar no futuro")
		return
	default:
		log.Printf("Failed to create event: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao criar evento")
		return
	}

	respondJSON(w, http.StatusCreated, toEventJSON(event))
}

// Delete removes an event; unknown ids still answer success so retries are
// harmless.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id inválido")
		return
	}

	if err := h.services.Event.DeleteEvent(id); err != nil {
		log.Printf("Failed to delete event %d: %v", id, err)
		respondError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *EventHandler) DBStatus(w http.ResponseWriter, r *http.Request) {
	connected, pending := h.services.Event.StoreStatus(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"connected": connected,
		"events":    pending,
	})
}

func (h *EventHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
