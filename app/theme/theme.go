// Package theme implements the light/dark switcher: it reads and persists the preference,
// reflects it onto a document, injects the toggle control and follows the OS color scheme
// while no explicit preference is stored.
package theme

import (
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
)

//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/document.go -pkg mocks -skip-ensure -fmt goimports . Document

// Attr is the root element attribute carrying the active theme.
const Attr = "data-theme"

// Default is the theme used when nothing is stored.
var Default = enum.ThemeLight

// Preferences is a persistence capability holding a single string value.
type Preferences interface {
	// Load returns the stored value and true, or false if nothing was ever stored.
	Load() (string, bool, error)
	Save(value string) error
}

// Document is a presentation capability: one root attribute and one injected control.
type Document interface {
	SetRootAttr(name, value string)
	HasControl(class string) bool
	AppendControl(c Control) error
}

// Switcher owns the preference and the target document for one page.
type Switcher struct {
	prefs   Preferences
	doc     Document
	control Control
}

// New makes a Switcher over the given capabilities with the default toggle control.
func New(prefs Preferences, doc Document) *Switcher {
	return &Switcher{prefs: prefs, doc: doc, control: DefaultControl()}
}

// Read returns the stored theme, or Default if nothing valid is stored.
func (s *Switcher) Read() (enum.Theme, error) {
	val, ok, err := s.prefs.Load()
	if err != nil {
		return Default, fmt.Errorf("load preference: %w", err)
	}
	t, _ := parse(val, ok)
	return t, nil
}

// parse maps a loaded value to a theme. valid is false for unset or unknown values,
// which map to Default.
func parse(val string, ok bool) (t enum.Theme, valid bool) {
	if !ok {
		return Default, false
	}
	t, err := enum.ParseTheme(val)
	if err != nil {
		log.Printf("[DEBUG] unknown stored theme %q, using %s", val, Default)
		return Default, false
	}
	return t, true
}

// Apply reflects the theme onto the document root and persists it.
func (s *Switcher) Apply(t enum.Theme) error {
	s.doc.SetRootAttr(Attr, t.String())
	if err := s.prefs.Save(t.String()); err != nil {
		return fmt.Errorf("save preference %s: %w", t, err)
	}
	return nil
}

// Toggle applies the inverse of the current value. Unset toggles from Default,
// an unknown stored value flips to light.
func (s *Switcher) Toggle() (enum.Theme, error) {
	val, ok, err := s.prefs.Load()
	if err != nil {
		return Default, fmt.Errorf("load preference: %w", err)
	}

	next := enum.ThemeLight
	if t, valid := parse(val, ok); valid || !ok {
		next = t.Toggle()
	}
	if err := s.Apply(next); err != nil {
		return next, err
	}
	log.Printf("[DEBUG] theme toggled %s -> %s", val, next)
	return next, nil
}

// EnsureControl appends the toggle control unless the document already has one.
func (s *Switcher) EnsureControl() error {
	if s.doc.HasControl(s.control.Class) {
		return nil
	}
	if err := s.doc.AppendControl(s.control); err != nil {
		return fmt.Errorf("append control: %w", err)
	}
	return nil
}

// SchemeChanged follows an OS color-scheme change. It applies the matching theme only
// when no preference was ever stored and reports whether anything was applied.
func (s *Switcher) SchemeChanged(dark bool) (enum.Theme, bool, error) {
	val, ok, err := s.prefs.Load()
	if err != nil {
		return Default, false, fmt.Errorf("load preference: %w", err)
	}
	if ok {
		log.Printf("[DEBUG] ignore scheme change dark=%v, explicit preference %q", dark, val)
		t, _ := parse(val, ok)
		return t, false, nil
	}

	t := enum.FromDark(dark)
	if err := s.Apply(t); err != nil {
		return t, false, err
	}
	return t, true, nil
}

// Load runs the page-ready sequence: reflect the current theme and inject the control.
// A stored value is re-applied; a defaulted one is only reflected so that later OS
// scheme changes can still take effect.
func (s *Switcher) Load() (enum.Theme, error) {
	val, stored, err := s.prefs.Load()
	if err != nil {
		return Default, fmt.Errorf("load preference: %w", err)
	}
	t, _ := parse(val, stored)

	if stored {
		if err := s.Apply(t); err != nil {
			return t, err
		}
	} else {
		s.doc.SetRootAttr(Attr, t.String())
	}

	if err := s.EnsureControl(); err != nil {
		return t, err
	}
	return t, nil
}

// Bind registers the switcher handlers on the event source. The scheme listener is
// registered only when the source supports media queries.
func (s *Switcher) Bind(src EventSource) {
	src.OnReady(func() error {
		_, err := s.Load()
		return err
	})
	src.OnActivate(func() error {
		_, err := s.Toggle()
		return err
	})
	if ms, ok := src.(MediaSource); ok {
		ms.OnSchemeChange(func(dark bool) error {
			_, _, err := s.SchemeChanged(dark)
			return err
		})
	}
}
