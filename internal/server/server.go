package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/skillmatch/job-recommender/internal/catalog"
	"github.com/skillmatch/job-recommender/internal/recommend"
)

// Version is stamped into health responses; overridable at build time.
var Version = "2.0.0"

const (
	defaultTopN       = 10
	maxTopN           = 50
	minTopN           = 1
	defaultFetchLimit = 100
	maxFetchLimit     = 500
	minFetchLimit     = 10
)

// Server is the HTTP boundary in front of the recommendation engine.
type Server struct {
	engine  *recommend.Engine
	catalog *catalog.Client
	logger  *zap.Logger
	http    *http.Server
}

func New(addr string, engine *recommend.Engine, catalogClient *catalog.Client, logger *zap.Logger) *Server {
	s := &Server{
		engine:  engine,
		catalog: catalogClient,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/recommend", s.handleRecommend)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown is called or the
// listener fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("api listening", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
