// Package store provides persistent storage for theme preferences.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when no preference is stored for a client.
var ErrNotFound = errors.New("preference not found")

// Preference is a stored theme choice of a single client.
type Preference struct {
	Client    string    `db:"client" json:"client"`
	Theme     string    `db:"theme" json:"theme"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Interface defines the preference store operations.
type Interface interface {
	Get(ctx context.Context, client string) (string, error)
	Set(ctx context.Context, client, theme string) error
	Delete(ctx context.Context, client string) error
	List(ctx context.Context) ([]Preference, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
	Close() error
}

// DBType is the database engine behind the store.
type DBType int

// supported database types
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// RWLocker is the subset of sync.RWMutex used by the store.
type RWLocker interface {
	RLock()
	RUnlock()
	Lock()
	Unlock()
}

// noopLocker is used for postgres, which handles concurrency itself.
type noopLocker struct{}

func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}

var _ RWLocker = (*sync.RWMutex)(nil)

// NormalizeClient trims and lower-cases a client id.
func NormalizeClient(client string) string {
	return strings.ToLower(strings.TrimSpace(client))
}
