package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/page"
	"github.com/umputun/themer/app/server"
	"github.com/umputun/themer/app/store"
)

var opts struct {
	Storage string `long:"storage" env:"THEMER_STORAGE" default:"cookie" description:"preference storage (cookie or db)"`
	DB      string `short:"d" long:"db" env:"THEMER_DB" default:"themer.db" description:"database URL (sqlite file or postgres://...), used with db storage"`
	Pages   string `long:"pages" env:"THEMER_PAGES" description:"directory with html pages, embedded pages if empty"`

	Server struct {
		Address       string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout   time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		BaseURL       string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /themer)"`
		SecureCookies bool          `long:"secure-cookies" env:"SECURE_COOKIES" description:"set Secure flag on cookies"`
	} `group:"server" namespace:"server" env-namespace:"THEMER_SERVER"`

	NoSystemListener bool `long:"no-system-listener" env:"THEMER_NO_SYSTEM_LISTENER" description:"ignore OS color-scheme changes"`

	Admin struct {
		PasswordHash string `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash for admin password (enables admin API)"`
	} `group:"admin" namespace:"admin" env-namespace:"THEMER_ADMIN"`

	Prune struct {
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"1h" description:"stale preferences check interval, 0 disables"`
		MaxAge   time.Duration `long:"max-age" env:"MAX_AGE" default:"8760h" description:"drop preferences not updated for this long"`
	} `group:"prune" namespace:"prune" env-namespace:"THEMER_PRUNE"`

	Cache struct {
		Size int `long:"size" env:"SIZE" default:"1000" description:"max cached preferences and pages"`
	} `group:"cache" namespace:"cache" env-namespace:"THEMER_CACHE"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("themer %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := runServer(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context) error {
	storage, err := enum.ParseStorage(opts.Storage)
	if err != nil {
		return fmt.Errorf("invalid storage: %w", err)
	}
	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return err
	}
	log.Printf("[INFO] starting themer server on %s, storage %s", opts.Server.Address, storage)

	pages, err := page.NewLibrary(opts.Pages, opts.Cache.Size)
	if err != nil {
		return fmt.Errorf("failed to initialize pages: %w", err)
	}
	defer pages.Close()
	if err := pages.Watch(ctx); err != nil {
		return fmt.Errorf("failed to watch pages: %w", err)
	}

	var prefStore server.Store // stays nil for cookie storage
	if storage == enum.StorageDB {
		dbStore, err := store.New(opts.DB)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
		cached, err := store.NewCached(dbStore, opts.Cache.Size)
		if err != nil {
			_ = dbStore.Close()
			return fmt.Errorf("failed to initialize store cache: %w", err)
		}
		defer cached.Close()
		prefStore = cached

		pruner := server.NewPruner(cached, server.PrunerConfig{Interval: opts.Prune.Interval, MaxAge: opts.Prune.MaxAge})
		go pruner.Run(ctx)
	}

	if opts.Admin.PasswordHash != "" && storage != enum.StorageDB {
		log.Printf("[WARN] admin API requires db storage, ignored")
		opts.Admin.PasswordHash = ""
	}

	srv, err := server.New(pages, prefStore, server.Config{
		Address:           opts.Server.Address,
		ReadTimeout:       opts.Server.ReadTimeout,
		Version:           revision,
		BaseURL:           baseURL,
		Storage:           storage,
		SystemListener:    !opts.NoSystemListener,
		SecureCookies:     opts.Server.SecureCookies,
		AdminPasswordHash: opts.Admin.PasswordHash,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// validateBaseURL normalizes base URL: requires leading slash, strips trailing slash.
func validateBaseURL(u string) (string, error) {
	if u == "" {
		return "", nil
	}
	if !strings.HasPrefix(u, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", u)
	}
	return strings.TrimRight(u, "/"), nil
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
