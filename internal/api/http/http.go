package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	mw "github.com/Sebastian1234123/sistema-farmacia/internal/middleware"
	"github.com/Sebastian1234123/sistema-farmacia/internal/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// Config is the configuration for the http server
type Config struct {
	Port            string        `mapstructure:"port"`
	Address         string        `mapstructure:"address"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ExportRateLimit int           `mapstructure:"export_rate_limit"`
}

// Reports computes the documents served by the API.
type Reports interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
	Report(ctx context.Context, period string) (*entity.SalesReport, error)
}

// Pinger reports store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	reports Reports
	health  Pinger
	limiter *ratelimit.Limiter
	done    chan struct{}
}

// New creates a new server
func New(config *Config, reports Reports, health Pinger) *Server {
	if config.ExportRateLimit <= 0 {
		config.ExportRateLimit = 30
	}
	return &Server{
		c:       config,
		reports: reports,
		health:  health,
		limiter: ratelimit.NewLimiter(time.Minute, config.ExportRateLimit),
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.ClientIdentifier)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.getDashboard)
		r.Get("/reports", s.getReport)
		r.With(ratelimit.Middleware(s.limiter, mw.ClientIPKeyFunc)).
			Get("/reports/{section}/export", s.exportSection)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:         listenerAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.c.ReadTimeout,
		WriteTimeout: s.c.WriteTimeout,
	}

	go func() {
		slog.Default().InfoContext(ctx, "sistema-farmacia new listener",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down and releases the export limiter.
func (s *Server) Stop(ctx context.Context) error {
	s.limiter.Stop()
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}

	return false
}
