// Package httpclient is the outbound HTTP client rosterctl uses to reach the
// roster API.
//
// Every call passes through, in order:
//
//	Circuit Breaker → Rate Limiter → Tracing Headers → OTEL Span → Retry → HTTP
//
// One Client is built per rosterctl invocation. It stamps every request with
// the invocation's X-Correlation-ID and a fresh X-Request-ID, so the server
// logs of a bulk import can be grouped by correlation ID:
//
//	client := httpclient.New(&cfg.Client, "roster-api", logger,
//		httpclient.WithCorrelationID(uuid.NewString()))
//	req, _ := client.NewRequest(ctx, http.MethodGet, "/api/v1/employees", nil)
//	resp, err := client.Do(ctx, req)
//
// Only idempotent methods are retried on 5xx and network errors. A POST is
// retried only when the server explicitly refused it (429 or 503), so an
// employee is never created twice.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/config"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
)

const (
	tracerName = "github.com/jsamuelsen11/pixell-roster/internal/platform/httpclient"

	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	defaultUserAgent = "rosterctl"
)

// backoff is the retry schedule taken from config.RetryConfig.
type backoff struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	factor   float64
}

// Client wraps http.Client with the roster API call pipeline.
type Client struct {
	http          *http.Client
	baseURL       string
	service       string
	userAgent     string
	correlationID string

	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil disables rate limiting
	backoff backoff

	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithMetrics records client request metrics on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithCorrelationID sends id as X-Correlation-ID on every request.
func WithCorrelationID(id string) Option {
	return func(c *Client) { c.correlationID = id }
}

// WithUserAgent overrides the User-Agent set by NewRequest.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a Client from cfg. service names the API in spans, metrics and
// breaker logs. A nil logger discards output.
func New(cfg *config.ClientConfig, service string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		service:   service,
		userAgent: defaultUserAgent,
		backoff: backoff{
			attempts: cfg.Retry.MaxAttempts,
			initial:  cfg.Retry.InitialInterval,
			max:      cfg.Retry.MaxInterval,
			factor:   cfg.Retry.Multiplier,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        service,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("roster api circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.Burst)
	}
	return c
}

// Do sends req through the breaker, limiter, span and retry loop.
//
// A non-nil resp always has an open body the caller must close. resp and err
// are both non-nil when retries run out on a retryable status; resp is nil
// when the breaker rejects the call or the transport fails.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		c.stamp(req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		retryErr := c.doWithRetry(spanCtx, req, &resp)
		endSpan(span, resp, retryErr)

		return struct{}{}, retryErr
	})

	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// Name identifies the API this client talks to.
func (c *Client) Name() string {
	return c.service
}

// HealthCheck reports the circuit breaker state without touching the network.
// A half-open or open breaker means recent calls to the API have failed.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.service)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.service)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.service, state)
	}
}

// stamp sets the tracing headers. A caller-supplied X-Request-ID is kept.
func (c *Client) stamp(req *http.Request) {
	if req.Header.Get(headerRequestID) == "" {
		req.Header.Set(headerRequestID, uuid.NewString())
	}
	if c.correlationID != "" {
		req.Header.Set(headerCorrelationID, c.correlationID)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx,
		fmt.Sprintf("HTTP %s %s", req.Method, c.service),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.service),
			attribute.String("http.request_id", req.Header.Get(headerRequestID)),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record is called outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.service),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
