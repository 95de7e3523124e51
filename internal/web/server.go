package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/logging"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server renders one host. The host is shared read-only between requests;
// each request builds its own controller.
type Server struct {
	host   *listing.Host
	cfg    listing.Config
	logger zerolog.Logger
}

// NewServer creates a server for host. The logger is taken from ctx.
func NewServer(ctx context.Context, host *listing.Host, cfg listing.Config) *Server {
	return &Server{
		host:   host,
		cfg:    cfg,
		logger: logging.ComponentLogger(*logging.FromContext(ctx), "web"),
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.pageHandler)
	r.Get("/api/view", s.viewHandler)
	r.Get("/healthz", healthzHandler)

	return r
}

// requestLogger attaches a request-scoped logger and trace id to the request
// context and logs each completed request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		traceID := middleware.GetReqID(r.Context())
		if traceID == "" {
			traceID = logging.GetOrGenerateTraceID(r.Context())
		}
		ctx := logging.ContextWithTraceID(r.Context(), traceID)
		ctx = s.logger.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Debug().Ctx(ctx).
			Str("operation", "http_request").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

// Replay builds a controller over the shared host and applies q.
func (s *Server) Replay(ctx context.Context, q Query) listing.View {
	ctrl := listing.New(ctx, s.host, s.cfg)
	view := ctrl.View()
	for _, in := range q.Intents() {
		view = ctrl.Dispatch(in)
	}
	return view
}

func (s *Server) viewFromRequest(r *http.Request) (listing.View, Query) {
	ctx := r.Context()
	q, warnings := ParseQuery(r.URL.Query(), s.host)
	for _, w := range warnings {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Str("component", "web").
			Str("operation", "parse_query").
			Str("query", r.URL.RawQuery).
			Str("reason", w).
			Msg("ignoring query parameter")
	}
	view := s.Replay(ctx, q)
	return view, FromView(view)
}

func (s *Server) viewHandler(w http.ResponseWriter, r *http.Request) {
	view, _ := s.viewFromRequest(r)
	writeJSON(r.Context(), w, http.StatusOK, view)
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	view, q := s.viewFromRequest(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, newPageData(view, q)); err != nil {
		logging.FromContext(r.Context()).Error().Ctx(r.Context()).
			Str("component", "web").
			Str("operation", "render_page").
			Err(err).
			Msg("failed to render page")
	}
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(ctx).Error().Ctx(ctx).
			Str("component", "web").
			Err(err).
			Msg("encode JSON response")
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// ready, when non-nil, receives the bound address once listening.
func (s *Server) Run(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Ctx(ctx).
			Str("operation", "serve").
			Str("addr", ln.Addr().String()).
			Str("host", s.host.ID).
			Msg("listctl server started")
		if ready != nil {
			ready(ln.Addr())
		}
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		s.logger.Info().Ctx(ctx).Str("operation", "serve").Msg("listctl server stopped")
		return nil
	})

	return g.Wait()
}
