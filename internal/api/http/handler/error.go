package handler

import (
	"errors"
	"net/http"

	"github.com/notekeeper/server/internal/api/http/response"
	"github.com/notekeeper/server/internal/model"
)

// User-facing messages. Internal error text never reaches clients.
const (
	detailEmailTaken         = "Email already registered."
	detailInvalidCredentials = "Incorrect email or password."
	detailUnauthenticated    = "Not authenticated."
	detailNoteNotFound       = "Note not found or you don't have permission to access it."
	detailUserNotFound       = "User not found."
	detailInvalidRequest     = "Invalid request."
	detailInternalError      = "An internal server error occurred."
)

func handleError(w http.ResponseWriter, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		response.Error(w, http.StatusConflict, detailEmailTaken)
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, detailInvalidCredentials)
	case errors.Is(err, model.ErrUnauthenticated):
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, model.ErrInvalidArgument):
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
	default:
		response.Error(w, http.StatusInternalServerError, detailInternalError)
	}
}
