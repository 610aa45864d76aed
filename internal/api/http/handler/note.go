package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/notekeeper/server/internal/api/http/response"
	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
)

// NoteService defines ownership-scoped note operations.
type NoteService interface {
	List(ctx context.Context, ownerID int64, pageNo, pageSize int) ([]model.Note, int64, error)
	Get(ctx context.Context, ownerID, noteID int64) (model.Note, error)
	Create(ctx context.Context, ownerID int64, params model.NoteCreate) (model.Note, error)
	Update(ctx context.Context, ownerID, noteID int64, params model.NoteUpdate) (model.Note, error)
	Delete(ctx context.Context, ownerID, noteID int64) error
}

// Note handles HTTP endpoints for notes.
type Note struct {
	service        NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(service NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

const (
	defaultPageNo   = 1
	defaultPageSize = 10
)

type createNoteRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Tag         *string `json:"tag"`
	Subject     *string `json:"note_subject"`
}

type updateNoteRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Tag         *string `json:"tag"`
	Subject     *string `json:"note_subject"`
}

type noteView struct {
	NoteID      int64     `json:"note_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         *string   `json:"tag"`
	Subject     *string   `json:"note_subject"`
	Timestamp   time.Time `json:"timestamp"`
	AuthorID    int64     `json:"author_id"`
}

func toNoteView(n model.Note) noteView {
	return noteView{
		NoteID:      n.ID,
		Title:       n.Title,
		Description: n.Description,
		Tag:         n.Tag,
		Subject:     n.Subject,
		Timestamp:   n.Timestamp,
		AuthorID:    n.AuthorID,
	}
}

// List returns one page of the caller's notes plus their total count.
func (h *Note) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	pageNo, err := queryInt(r, "page_no", defaultPageNo)
	if err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}
	pageSize, err := queryInt(r, "page_size", defaultPageSize)
	if err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	notes, total, err := h.service.List(r.Context(), ownerID, pageNo, pageSize)
	if err != nil {
		h.logger.Error("Note handler: failed to list notes",
			"owner_id", ownerID,
			"error", err.Error())
		handleError(w, err, detailNoteNotFound)
		return
	}

	views := make([]noteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, toNoteView(note))
	}

	response.JSON(w, http.StatusOK, response.ListEnvelope{
		Status:     true,
		Detail:     "Notes retrieved successfully.",
		TotalCount: total,
		Data:       views,
	})
}

// Get returns a single note owned by the caller.
func (h *Note) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	noteID, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	note, err := h.service.Get(r.Context(), ownerID, noteID)
	if err != nil {
		handleError(w, err, detailNoteNotFound)
		return
	}

	response.OK(w, http.StatusOK, "Note retrieved successfully.", toNoteView(note))
}

// Create stores a new note owned by the caller.
func (h *Note) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}
	if req.Title == "" || req.Description == "" {
		response.Error(w, http.StatusBadRequest, "Title and description are required.")
		return
	}

	note, err := h.service.Create(r.Context(), ownerID, model.NoteCreate{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
		Subject:     req.Subject,
	})
	if err != nil {
		h.logger.Error("Note handler: failed to create note",
			"owner_id", ownerID,
			"error", err.Error())
		handleError(w, err, detailNoteNotFound)
		return
	}

	response.OK(w, http.StatusCreated, "Note created successfully.", toNoteView(note))
}

// Update applies a partial update to a note owned by the caller.
func (h *Note) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	noteID, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	note, err := h.service.Update(r.Context(), ownerID, noteID, model.NoteUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
		Subject:     req.Subject,
	})
	if err != nil {
		handleError(w, err, detailNoteNotFound)
		return
	}

	response.OK(w, http.StatusOK, "Note updated successfully.", toNoteView(note))
}

// Delete removes a note owned by the caller.
func (h *Note) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	noteID, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, noteID); err != nil {
		handleError(w, err, detailNoteNotFound)
		return
	}

	response.OK(w, http.StatusOK, "Note deleted successfully.", nil)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
