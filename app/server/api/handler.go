// Package api provides admin JSON endpoints for stored theme preferences.
package api

import (
	"context"
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/store"
)

//go:generate moq -out mocks/prefadmin.go -pkg mocks -skip-ensure -fmt goimports . PrefAdmin

// PrefAdmin defines the store operations exposed to admins.
type PrefAdmin interface {
	List(ctx context.Context) ([]store.Preference, error)
	Delete(ctx context.Context, client string) error
}

// Handler handles admin API requests for /api/prefs.
type Handler struct {
	store PrefAdmin
}

// New creates a new API handler.
func New(st PrefAdmin) *Handler {
	return &Handler{store: st}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /prefs", h.handleList)
	r.HandleFunc("DELETE /prefs/{client}", h.handleDelete)
}

// handleList returns all stored preferences.
// GET /api/prefs
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.store.List(r.Context())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list preferences")
		return
	}
	if prefs == nil {
		prefs = []store.Preference{}
	}
	log.Printf("[DEBUG] list preferences: %d found", len(prefs))
	rest.RenderJSON(w, prefs)
}

// handleDelete clears the stored preference of a client, after which the client
// follows the OS color scheme again.
// DELETE /api/prefs/{client}
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	client := store.NormalizeClient(r.PathValue("client"))
	if client == "" {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, errors.New("empty client"), "client id required")
		return
	}

	err := h.store.Delete(r.Context(), client)
	if errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "preference not found")
		return
	}
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to delete preference")
		return
	}
	log.Printf("[INFO] cleared theme preference of %s", client)
	w.WriteHeader(http.StatusNoContent)
}
