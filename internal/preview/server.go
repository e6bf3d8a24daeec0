package preview

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/inputkit/internal/config"
	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/defaults"
)

// Options configures the preview server.
type Options struct {
	// Config is the project configuration. nil means config.New().
	Config *config.Config

	// Addr overrides the configured host and port.
	Addr string

	Logger zerolog.Logger

	// Tracer defaults to the global OpenTelemetry tracer provider.
	Tracer trace.Tracer

	// Registry receives the server metrics and is served on /metrics.
	// nil means a fresh registry with Go and process collectors.
	Registry *prometheus.Registry

	// WatchInterval is the config polling interval.
	WatchInterval time.Duration
}

// state is the configuration currently served. It is replaced as a whole on
// reload.
type state struct {
	cfg      *config.Config
	registry *defaults.Registry
	theme    *defaults.MapTheme
}

func newState(cfg *config.Config) *state {
	reg := defaults.NewRegistry()
	return &state{cfg: cfg, registry: reg, theme: cfg.Apply(reg)}
}

// Server renders configured samples and single elements over HTTP and
// reloads the page when inputkit.yaml changes.
type Server struct {
	addr     string
	logger   zerolog.Logger
	tracer   trace.Tracer
	promReg  *prometheus.Registry
	metrics  *Metrics
	reload   *ReloadServer
	watcher  *Watcher
	state    atomic.Pointer[state]
	handler  http.Handler
	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a preview server.
func NewServer(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	addr := opts.Addr
	if addr == "" {
		addr = cfg.PreviewAddress()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = defaultTracer()
	}
	promReg := opts.Registry
	if promReg == nil {
		promReg = prometheus.NewRegistry()
		promReg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		addr:    addr,
		logger:  opts.Logger.With().Str("component", "preview").Logger(),
		tracer:  tracer,
		promReg: promReg,
		metrics: NewMetrics(metricsOptions(cfg.Preview.Metrics, promReg)...),
		reload:  NewReloadServer(),
	}
	s.state.Store(newState(cfg))

	if cfg.Preview.Watch && cfg.Path() != "" {
		s.watcher = NewWatcher(opts.WatchInterval, cfg.Path())
		s.watcher.OnChange(s.onConfigChange)
	}

	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/render", s.handleRender)
	r.Get("/kinds", s.handleKinds)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.promReg, promhttp.HandlerOpts{}))
	r.Method(http.MethodGet, ReloadPath, s.reload)
	return r
}

// Handler returns the HTTP handler serving the preview routes.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Config returns the configuration currently served.
func (s *Server) Config() *config.Config {
	return s.state.Load().cfg
}

// Addr returns the listening address once Run or Serve has started, and the
// configured address before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.New(errors.CodeListenFailed).
			WithDetail("cannot listen on " + s.addr).
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	if s.watcher != nil {
		go func() {
			if err := s.watcher.Start(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
				s.logger.Error().Err(errors.New(errors.CodeWatcherFailed).Wrap(err)).Msg("config watcher stopped")
			}
		}()
	}

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("preview server listening")

	select {
	case <-ctx.Done():
		s.reload.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info().Msg("preview server stopped")
		return nil
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New(errors.CodeListenFailed).Wrap(err)
	}
}

// Reload re-reads the configuration file. On failure the previous
// configuration stays active and pages show the error.
func (s *Server) Reload() error {
	path := s.Config().Path()
	if path == "" {
		return nil
	}
	cfg, err := config.LoadFile(path)
	s.metrics.Reload(err)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("config reload failed")
		s.reload.NotifyError(err)
		return err
	}
	s.state.Store(newState(cfg))
	s.logger.Info().Str("path", path).Int("clients", s.reload.ClientCount()).Msg("config reloaded")
	s.reload.NotifyReload()
	return nil
}

func (s *Server) onConfigChange(c Change) {
	if c.Removed {
		s.logger.Warn().Str("path", c.Path).Msg("config file removed, keeping last configuration")
		return
	}
	_ = s.Reload()
}

// requestLogger logs every request at debug level.
func requestLogger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			l.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
