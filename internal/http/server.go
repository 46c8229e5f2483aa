// Package http serves the dashboard page and the JSON API over the
// filter/aggregation core.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"showroom/internal/cache"
	"showroom/internal/middleware/ratelimit"
	"showroom/internal/middleware/security"
	"showroom/internal/middleware/trace"
	"showroom/internal/store"
	appweb "showroom/web"
)

type Server struct {
	http.Server

	store     *store.Store
	templates *template.Template

	// LRU+TTL cache of computed dashboard snapshots, keyed by the
	// canonical filter selection.
	snapshots *cache.TTLCache

	limiter      *ratelimit.Limiter
	shutdownOnce sync.Once
}

// Options tunes the server; zero values fall back to defaults.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// NewServer configures routes, middleware and templates, returning a
// ready-to-run server.
func NewServer(addr string, st *store.Store, opts Options) *Server {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 128
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	snapshots, err := cache.New(opts.CacheSize, opts.CacheTTL)
	if err != nil {
		// Only reachable with a non-positive size, which is guarded above.
		panic(err)
	}

	mux := http.NewServeMux()
	s := &Server{
		store:     st,
		snapshots: snapshots,
		limiter:   ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/meta", s.handleMeta)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(clientIP)
	handler := headers.Middleware(tracer.Middleware(s.limiter.Middleware(clientIP)(mux)))

	s.Server = http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}
	return s
}

// Shutdown stops the HTTP server and background cleanup.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
