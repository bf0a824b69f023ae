package theme

import (
	"fmt"
	"sync"
)

// EventSource delivers page-ready and control activation events.
type EventSource interface {
	OnReady(fn func() error)
	OnActivate(fn func() error)
}

// MediaSource is implemented by event sources able to observe prefers-color-scheme.
type MediaSource interface {
	OnSchemeChange(fn func(dark bool) error)
}

// Bus is a synchronous EventSource. Each fired event runs all its handlers to
// completion, in registration order, before another event can start.
type Bus struct {
	mu       sync.Mutex
	ready    []func() error
	activate []func() error
}

// NewBus makes a bus without media query support.
func NewBus() *Bus { return &Bus{} }

// OnReady registers a page-ready handler.
func (b *Bus) OnReady(fn func() error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = append(b.ready, fn)
}

// OnActivate registers a control activation handler.
func (b *Bus) OnActivate(fn func() error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activate = append(b.activate, fn)
}

// Ready fires the page-ready event.
func (b *Bus) Ready() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return run("ready", b.ready)
}

// Activate fires the control activation event.
func (b *Bus) Activate() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return run("activate", b.activate)
}

// MediaBus is a Bus which also delivers OS color-scheme changes.
type MediaBus struct {
	Bus
	scheme []func(dark bool) error
}

// NewMediaBus makes a bus with media query support.
func NewMediaBus() *MediaBus { return &MediaBus{} }

// OnSchemeChange registers a color-scheme change handler.
func (b *MediaBus) OnSchemeChange(fn func(dark bool) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scheme = append(b.scheme, fn)
}

// SchemeChange fires the color-scheme change event.
func (b *MediaBus) SchemeChange(dark bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, fn := range b.scheme {
		if err := fn(dark); err != nil {
			return fmt.Errorf("scheme change handler: %w", err)
		}
	}
	return nil
}

func run(event string, handlers []func() error) error {
	for _, fn := range handlers {
		if err := fn(); err != nil {
			return fmt.Errorf("%s handler: %w", event, err)
		}
	}
	return nil
}
