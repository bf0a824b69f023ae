// Package server provides the HTTP server for themed pages, theme controls and the admin API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/server/api"
	"github.com/umputun/themer/app/server/web"
	"github.com/umputun/themer/app/store"
)

// Store defines the preference store operations used by the server.
// Defined here (consumer side) to allow different store implementations.
type Store interface {
	Get(ctx context.Context, client string) (string, error)
	Set(ctx context.Context, client, theme string) error
	Delete(ctx context.Context, client string) error
	List(ctx context.Context) ([]store.Preference, error)
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /themer)

	Storage        enum.Storage
	SystemListener bool // accept OS color-scheme changes
	SecureCookies  bool

	AdminUser         string
	AdminPasswordHash string // bcrypt hash, empty disables the admin API

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	baseURL    string
	withAdmin  bool
	webHandler *web.Handler
	apiHandler *api.Handler
	staticFS   fs.FS // embedded static files
}

// New creates a new Server instance. st is required for db storage and may be nil for cookies.
func New(pages web.Pages, st Store, cfg Config) (*Server, error) {
	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	var prefStore web.PrefStore
	if st != nil {
		prefStore = st
	}
	webHandler, err := web.New(pages, prefStore, web.Config{
		BaseURL:        cfg.BaseURL,
		Storage:        cfg.Storage,
		SystemListener: cfg.SystemListener,
		SecureCookies:  cfg.SecureCookies,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		baseURL:    cfg.BaseURL,
		webHandler: webHandler,
		staticFS:   staticContent,
	}

	if cfg.AdminPasswordHash != "" {
		if st == nil {
			return nil, errors.New("admin API requires db storage")
		}
		if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		s.withAdmin = true
		s.apiHandler = api.New(st)
	}
	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("themer", "umputun", s.cfg.Version),
		rest.Ping,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))

	if s.withAdmin {
		router.Mount("/api").Route(func(apiRouter *routegroup.Bundle) {
			apiRouter.Use(rest.BasicAuth(s.checkAdmin))
			s.apiHandler.Register(apiRouter)
		})
	}

	router.Group().Route(func(webRouter *routegroup.Bundle) {
		s.webHandler.Register(webRouter)
	})

	return router
}

// checkAdmin validates admin basic auth credentials against the bcrypt hash.
func (s *Server) checkAdmin(user, passwd string) bool {
	adminUser := s.cfg.AdminUser
	if adminUser == "" {
		adminUser = "admin"
	}
	// always run bcrypt comparison so a wrong user takes as long as a wrong password
	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(passwd))
	ok := err == nil && user == adminUser
	if !ok {
		log.Printf("[WARN] failed admin login for %q", user)
	}
	return ok
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000
}

// shutdownTimeout returns the configured shutdown timeout, or default 5s if not set.
func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}
