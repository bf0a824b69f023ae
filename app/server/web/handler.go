// Package web provides HTTP handlers for themed pages and the theme controls.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-pkgz/routegroup"
	"github.com/google/uuid"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/page"
	"github.com/umputun/themer/app/theme"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore

const (
	themeCookie  = "theme"
	clientCookie = "themer-client"
	cookieMaxAge = 365 * 24 * 60 * 60 // 1 year
)

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// PrefStore keeps preferences per client id, used with db storage.
type PrefStore interface {
	Get(ctx context.Context, client string) (string, error)
	Set(ctx context.Context, client, theme string) error
}

// Pages opens page documents by name.
type Pages interface {
	Open(name string) (*page.Document, error)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL        string
	Storage        enum.Storage
	SystemListener bool // serve OS color-scheme changes
	SecureCookies  bool
}

// Handler handles page and theme requests.
type Handler struct {
	pages          Pages
	store          PrefStore
	baseURL        string
	storage        enum.Storage
	systemListener bool
	secureCookies  bool
}

// New creates a new web handler. st is required for db storage and ignored for cookies.
func New(pages Pages, st PrefStore, cfg Config) (*Handler, error) {
	if cfg.Storage == enum.StorageDB && st == nil {
		return nil, errors.New("db storage requires a preference store")
	}
	return &Handler{
		pages:          pages,
		store:          st,
		baseURL:        cfg.BaseURL,
		storage:        cfg.Storage,
		systemListener: cfg.SystemListener,
		secureCookies:  cfg.SecureCookies,
	}, nil
}

// Register registers web routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	if h.systemListener {
		r.HandleFunc("POST /web/scheme", h.handleSchemeChange)
	}
	r.HandleFunc("GET /{name...}", h.handlePage)
}

// switcher wires a theme switcher over the request's preference and the given document,
// and binds it to a fresh event bus.
func (h *Handler) switcher(w http.ResponseWriter, r *http.Request, doc theme.Document) (*theme.Switcher, *theme.MediaBus) {
	sw := theme.New(h.preferences(w, r), doc)
	bus := theme.NewMediaBus()
	sw.Bind(bus)
	return sw, bus
}

// preferences returns the preference capability for the request's client.
func (h *Handler) preferences(w http.ResponseWriter, r *http.Request) theme.Preferences {
	if h.storage == enum.StorageDB {
		return &dbPrefs{ctx: r.Context(), store: h.store, client: h.clientID(w, r)}
	}
	return &cookiePrefs{r: r, w: w, path: h.cookiePath(), secure: h.secureCookies}
}

// clientID returns the client id from cookie, issuing a new one if missing or malformed.
func (h *Handler) clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientCookie); err == nil {
		if id, perr := uuid.Parse(c.Value); perr == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookie,
		Value:    id,
		Path:     h.cookiePath(),
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
