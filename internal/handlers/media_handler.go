package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/media"
)

// maxUploadSize caps media uploads at 100MB.
const maxUploadSize = 100 << 20

type MediaHandler struct {
	store *media.Store
}

func NewMediaHandler(store *media.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "arquivo inválido ou grande demais")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "campo 'file' é obrigatório")
		return
	}
	defer file.Close()

	name, err := h.store.Save(header.Filename, file)
	if err != nil {
		if err == domain.ErrInvalidMediaType {
			respondError(w, http.StatusBadRequest, "tipo de arquivo não suportado")
			return
		}
		log.Printf("Failed to save media: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao salvar arquivo")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"filename": name,
		"url":      "/media/" + name,
	})
}

func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.List()
	if err != nil {
		log.Printf("Failed to list media: %v", err)
		respondError(w, http.StatusInternalServerError, "erro ao listar arquivos")
		return
	}

	type item struct {
		Filename string `json:"filename"`
		URL      string `json:"url"`
	}
	payload := make([]item, 0, len(names))
	for _, name := range names {
		payload = append(payload, item{Filename: name, URL: "/media/" + name})
	}
	respondJSON(w, http.StatusOK, payload)
}

func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	path, err := h.store.FilePath(r.PathValue("filename"))
	if err != nil {
		respondError(w, http.StatusNotFound, "arquivo não encontrado")
		return
	}
	http.ServeFile(w, r, path)
}

func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	switch err := h.store.Remove(name); err {
	case nil:
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	case domain.ErrMediaNotFound:
		respondError(w, http.StatusNotFound, "arquivo não encontrado")
	default:
		log.Printf("Failed to delete media %s: %v", name, err)
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("erro ao remover %s", name))
	}
}
