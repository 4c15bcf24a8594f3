package catalog

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultUserAgent   = "skillmatch/job-recommender"
	defaultTimeout     = 30 * time.Second
	defaultConcurrency = 4
	defaultRate        = 5 // requests per second
)

// Client talks to the external job catalog API.
type Client struct {
	ctx        context.Context
	logger     *zap.Logger
	limiter    *rate.Limiter
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
	Token      string
	// Concurrency bounds the number of per-tag requests in flight.
	Concurrency int
}

// Options tune a catalog client beyond the API URL.
type Options struct {
	Token             string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Concurrency       int
}

func New(ctx context.Context, logger *zap.Logger, apiURL string, opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = defaultRate
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	return &Client{
		ctx:    ctx,
		logger: logger,
		APIURL: apiURL,
		Token:  opts.Token,
		HTTPClient: &http.Client{
			Timeout: opts.Timeout,
		},
		UserAgent:   opts.UserAgent,
		limiter:     rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		Concurrency: opts.Concurrency,
	}
}
