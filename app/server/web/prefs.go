package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/umputun/themer/app/store"
)

// cookiePrefs keeps the preference in the browser as a long-living cookie.
// A value saved during the request is visible to later loads of the same request.
type cookiePrefs struct {
	r      *http.Request
	w      http.ResponseWriter
	path   string
	secure bool
	saved  *string
}

func (c *cookiePrefs) Load() (string, bool, error) {
	if c.saved != nil {
		return *c.saved, true, nil
	}
	cookie, err := c.r.Cookie(themeCookie)
	if err != nil || cookie.Value == "" {
		return "", false, nil
	}
	return cookie.Value, true, nil
}

func (c *cookiePrefs) Save(value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     themeCookie,
		Value:    value,
		Path:     c.path,
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.saved = &value
	return nil
}

// dbPrefs keeps the preference in the store under the client id.
type dbPrefs struct {
	ctx    context.Context
	store  PrefStore
	client string
}

func (d *dbPrefs) Load() (string, bool, error) {
	val, err := d.store.Get(d.ctx, d.client)
	if errors.Is(err, store.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference: %w", err)
	}
	return val, true, nil
}

func (d *dbPrefs) Save(value string) error {
	if err := d.store.Set(d.ctx, d.client, value); err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}
