// Package enum defines the enumerated types used across the service.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type storage -lower
type storage int

const (
	storageCookie storage = iota
	storageDB             // enum:alias=database
)
