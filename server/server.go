package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"career-roadmap/config"
	"career-roadmap/controllers/httpCors"
	"career-roadmap/controllers/roadmap"
	"career-roadmap/services"
)

type Deps struct {
	Config   *config.Config
	Catalog  *services.Catalog
	Sessions sessions.Store
	Log      zerolog.Logger
}

// NewRouter wires the roadmap routes and middleware.
func NewRouter(d Deps) (http.Handler, error) {
	if d.Config == nil {
		return nil, errors.New("server needs a config")
	}
	h, err := roadmap.NewHandler(roadmap.Options{
		Catalog:     d.Catalog,
		Sessions:    d.Sessions,
		SessionName: d.Config.Session.Name,
		MaxMonths:   d.Config.Roadmap.MaxMonths,
		Log:         d.Log,
	})
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(AccessLog(d.Log))
	r.Use(middleware.Recoverer)
	r.Use(httpCors.CorsSettings(d.Config.CORS, d.Log).Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","paths":%d}`+"\n", d.Catalog.Len())
	})

	limiter := NewLimiter(d.Config.Server.RateLimit, d.Config.Server.RateBurst)
	h.Register(r, func(reject http.Handler) func(http.Handler) http.Handler {
		return RateLimit(limiter, reject)
	})
	return r, nil
}

// Server is the HTTP front of the roadmap service.
type Server struct {
	cfg  config.ServerConfig
	http *http.Server
	log  zerolog.Logger
}

func New(cfg config.ServerConfig, handler http.Handler, log zerolog.Logger) *Server {
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log: log,
	}
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("server started")

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	s.log.Info().Msg("shutting down server")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
