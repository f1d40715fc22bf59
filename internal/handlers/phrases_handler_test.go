package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhraseMux(t *testing.T) *http.ServeMux {
	t.Helper()

	handler := handlers.NewPhraseHandler(newTestServices(t))
	mux := http.NewServeMux()
	mux.HandleFunc("GET /frases", handler.List)
	mux.HandleFunc("POST /frases", handler.Create)
	mux.HandleFunc("DELETE /frases/{id}", handler.Delete)
	return mux
}

func TestPhraseHandler_CreateAndList(t *testing.T) {
	mux := newPhraseMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/frases", `{"text":"Bom dia, grupo!"}`)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	rec = doJSON(t, mux, http.MethodGet, "/frases", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []struct {
		ID   int64  `json:"id"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Bom dia, grupo!", listed[0].Text)
}

func TestPhraseHandler_CreateValidation(t *testing.T) {
	mux := newPhraseMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/frases", `{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tooLong := fmt.Sprintf(`{"text":%q}`, strings.Repeat("a", domain.MaxMessageLength+1))
	rec = doJSON(t, mux, http.MethodPost, "/frases", tooLong)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPhraseHandler_Delete(t *testing.T) {
	mux := newPhraseMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/frases", `{"text":"Carpe diem"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/frases/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/frases/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
