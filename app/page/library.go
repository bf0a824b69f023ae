package page

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-pkgz/lcw/v2"
	log "github.com/go-pkgz/lgr"
)

// ErrNotFound is returned when a page does not exist or its name is not allowed.
var ErrNotFound = errors.New("page not found")

//go:embed assets
var assetsFS embed.FS

// Library serves pages from a directory, or the embedded default pages if no directory is set.
// Raw page content is cached and invalidated by Watch.
type Library struct {
	dir   string
	fsys  fs.FS
	cache lcw.LoadingCache[[]byte]
}

// NewLibrary makes a page library. Empty dir means embedded pages.
func NewLibrary(dir string, cacheSize int) (*Library, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(assetsFS, "assets")
		if err != nil {
			return nil, fmt.Errorf("failed to get embedded pages: %w", err)
		}
		fsys = sub
	} else {
		st, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to stat pages dir: %w", err)
		}
		if !st.IsDir() {
			return nil, fmt.Errorf("pages location %s is not a directory", dir)
		}
		fsys = os.DirFS(dir)
	}

	if cacheSize <= 0 {
		cacheSize = 100
	}
	cache, err := lcw.NewLruCache(lcw.NewOpts[[]byte]().MaxKeys(cacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}
	return &Library{dir: dir, fsys: fsys, cache: cache}, nil
}

// Open returns a freshly parsed document for the page name.
// "" and names ending with "/" resolve to index.html, names without extension get ".html".
func (l *Library) Open(name string) (*Document, error) {
	file, err := resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := l.cache.Get(file, func() ([]byte, error) {
		b, readErr := fs.ReadFile(l.fsys, file)
		if errors.Is(readErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", file, ErrNotFound)
		}
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", file, readErr)
		}
		return b, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Invalidate drops a cached page by its file name.
func (l *Library) Invalidate(file string) {
	l.cache.Invalidate(func(key string) bool { return key == file })
}

// Watch invalidates cached pages on changes in the pages directory until ctx is canceled.
// It is a no-op for embedded pages.
func (l *Library) Watch(ctx context.Context) error {
	if l.dir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	err = filepath.WalkDir(l.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", l.dir, err)
	}
	log.Printf("[INFO] watching pages in %s", l.dir)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				log.Printf("[INFO] pages watcher stopped")
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				l.onEvent(watcher, ev)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] pages watcher error: %v", werr)
			}
		}
	}()
	return nil
}

func (l *Library) onEvent(watcher *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op.Has(fsnotify.Create) {
		if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
			if err := watcher.Add(ev.Name); err != nil {
				log.Printf("[WARN] failed to watch %s: %v", ev.Name, err)
			}
			return
		}
	}
	rel, err := filepath.Rel(l.dir, ev.Name)
	if err != nil {
		return
	}
	file := filepath.ToSlash(rel)
	log.Printf("[DEBUG] page %s changed (%s), invalidating", file, ev.Op)
	l.Invalidate(file)
}

// Close releases the cache.
func (l *Library) Close() error {
	if err := l.cache.Close(); err != nil {
		return fmt.Errorf("close page cache: %w", err)
	}
	return nil
}

// resolve maps a request name to a file inside the library.
func resolve(name string) (string, error) {
	if name == "" || strings.HasSuffix(name, "/") {
		name += "index.html"
	}
	file := strings.TrimPrefix(path.Clean("/"+name), "/")
	if !fs.ValidPath(file) || strings.HasPrefix(file, ".") {
		return "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	switch path.Ext(file) {
	case "":
		file += ".html"
	case ".html", ".htm":
	default:
		return "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return file, nil
}
