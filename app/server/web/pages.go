package web

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/themer/app/page"
	"github.com/umputun/themer/app/theme"
)

// schemeRequest is the body of an OS color-scheme change.
type schemeRequest struct {
	Dark *bool `json:"dark"`
}

// handlePage serves a page with the theme reflected and the toggle control in place.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	doc, err := h.pages.Open(r.PathValue("name"))
	if errors.Is(err, page.ErrNotFound) {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to open page %q: %v", r.PathValue("name"), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	_, bus := h.switcher(w, r, doc)
	if err := bus.Ready(); err != nil {
		// preference storage failed, keep the theme read before the failure or fall back to default
		log.Printf("[WARN] theme not loaded for %s: %v", r.URL.Path, err)
		if _, reflected := doc.RootAttr(theme.Attr); !reflected {
			doc.SetRootAttr(theme.Attr, theme.Default.String())
		}
		if cerr := theme.New(nil, doc).EnsureControl(); cerr != nil {
			log.Printf("[WARN] failed to inject theme control: %v", cerr)
		}
	}
	doc.EnsureScript(h.url("/static/theme.js"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := doc.Render(w); err != nil {
		log.Printf("[ERROR] failed to render page: %v", err)
	}
}

// handleThemeToggle flips the theme and returns the new value.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	doc := theme.NewClientDoc()
	_, bus := h.switcher(w, r, doc)
	if err := bus.Activate(); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to toggle theme")
		return
	}
	applied, _ := doc.RootAttr(theme.Attr)
	log.Printf("[DEBUG] theme toggled to %s", applied)
	rest.RenderJSON(w, rest.JSON{"theme": applied})
}

// handleSchemeChange follows an OS color-scheme change unless the client has an explicit preference.
func (h *Handler) handleSchemeChange(w http.ResponseWriter, r *http.Request) {
	var req schemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Dark == nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, errors.New("missing dark"), "missing dark field")
		return
	}

	doc := theme.NewClientDoc()
	sw, bus := h.switcher(w, r, doc)
	if err := bus.SchemeChange(*req.Dark); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to apply color scheme")
		return
	}

	applied, changed := doc.RootAttr(theme.Attr)
	if !changed {
		current, err := sw.Read()
		if err != nil {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read theme")
			return
		}
		applied = current.String()
	}
	rest.RenderJSON(w, rest.JSON{"theme": applied, "changed": changed})
}
