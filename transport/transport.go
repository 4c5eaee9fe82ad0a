// Package transport moves searchapi requests onto the wire. It owns node
// selection, dead node bookkeeping, retries and optional cluster sniffing,
// so the generated client surface stays free of HTTP concerns.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matthewbaird/searchclient/searchapi"
)

const (
	defaultMaxRetries     = 3
	defaultResurrectAfter = 60 * time.Second
)

var defaultRetryOnStatus = []int{502, 503, 504}

// Config carries the knobs for a Client. The zero value of every optional
// field selects a sensible default.
type Config struct {
	// URLs lists the cluster nodes to connect to. At least one is required.
	URLs []*url.URL

	// Username and Password enable HTTP basic auth on every request.
	Username string
	Password string

	// Header is merged into every outgoing request.
	Header http.Header

	// MaxRetries bounds retry attempts after the initial request. Defaults
	// to 3. DisableRetry wins over this.
	MaxRetries int

	// RetryOnStatus lists response codes that trigger a retry on another
	// node. Defaults to 502, 503 and 504.
	RetryOnStatus []int

	// DisableRetry turns retries off entirely.
	DisableRetry bool

	// ResurrectAfter is the base cooldown before a dead node is tried
	// again. The cooldown doubles with each consecutive failure. Defaults
	// to 60 seconds.
	ResurrectAfter time.Duration

	// SniffInterval enables periodic cluster topology discovery when
	// non-zero. Discovered nodes replace the configured pool.
	SniffInterval time.Duration

	// Transport overrides the underlying RoundTripper.
	Transport http.RoundTripper

	// Logger receives request and node lifecycle events. Defaults to a
	// disabled logger.
	Logger *slog.Logger
}

// Client performs searchapi requests against a node pool.
type Client struct {
	pool          *pool
	rt            http.RoundTripper
	log           *slog.Logger
	username      string
	password      string
	header        http.Header
	maxRetries    int
	retryOnStatus []int
	disableRetry  bool
	sniffInterval time.Duration
	sniffer       *sniffer
}

// New builds a Client from cfg.
func New(cfg Config) (*Client, error) {
	if len(cfg.URLs) == 0 {
		return nil, errors.New("transport: no node URLs configured")
	}
	for _, u := range cfg.URLs {
		if u == nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("transport: invalid node URL %v", u)
		}
	}

	resurrect := cfg.ResurrectAfter
	if resurrect <= 0 {
		resurrect = defaultResurrectAfter
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	retryOnStatus := cfg.RetryOnStatus
	if len(retryOnStatus) == 0 {
		retryOnStatus = defaultRetryOnStatus
	}
	rt := cfg.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		pool:          newPool(cfg.URLs, resurrect, log),
		rt:            rt,
		log:           log,
		username:      cfg.Username,
		password:      cfg.Password,
		header:        cfg.Header,
		maxRetries:    maxRetries,
		retryOnStatus: retryOnStatus,
		disableRetry:  cfg.DisableRetry,
		sniffInterval: cfg.SniffInterval,
	}
	if cfg.SniffInterval > 0 {
		c.sniffer = newSniffer(c, cfg.SniffInterval)
	}
	return c, nil
}

// Perform sends req to a live node and returns the fully read response.
// Connection failures mark the node dead and move on to the next one;
// retryable status codes retry on another node without the dead marking.
func (c *Client) Perform(ctx context.Context, req *searchapi.Request) (*searchapi.Response, error) {
	if req == nil {
		return nil, errors.New("transport: nil request")
	}
	if c.sniffer != nil {
		c.sniffer.maybeSniff(ctx)
	}

	// Buffer the body once so retries can replay it.
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("transport: read request body: %w", err)
		}
		body = b
	}

	attempts := 1
	if !c.disableRetry {
		attempts += c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		n, err := c.pool.next()
		if err != nil {
			return nil, err
		}

		hreq, err := c.buildRequest(ctx, n, req, body)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		hres, err := c.rt.RoundTrip(hreq)
		if err != nil {
			c.pool.markDead(n)
			lastErr = fmt.Errorf("transport: %s %s: %w", req.Method, n.url.Host, err)
			c.log.Warn("node failed", "node", n.url.Host, "err", err)
			if c.sniffer != nil {
				c.sniffer.maybeSniff(ctx)
			}
			continue
		}

		resBody, err := io.ReadAll(hres.Body)
		hres.Body.Close()
		if err != nil {
			c.pool.markDead(n)
			lastErr = fmt.Errorf("transport: read response body: %w", err)
			continue
		}
		c.pool.markLive(n)

		if c.shouldRetryStatus(hres.StatusCode) && attempt < attempts-1 {
			c.log.Warn("retrying on status", "node", n.url.Host, "status", hres.StatusCode)
			lastErr = fmt.Errorf("transport: %s %s: status %d", req.Method, n.url.Host, hres.StatusCode)
			continue
		}

		c.log.Debug("request",
			"method", req.Method,
			"path", req.Path,
			"node", n.url.Host,
			"status", hres.StatusCode,
			"took", time.Since(start))

		return &searchapi.Response{
			StatusCode: hres.StatusCode,
			Header:     hres.Header,
			Body:       resBody,
		}, nil
	}
	return nil, lastErr
}

func (c *Client) buildRequest(ctx context.Context, n *node, req *searchapi.Request, body []byte) (*http.Request, error) {
	// req.Path is already percent-escaped by the generated methods; splice
	// it in as a string so url.URL never re-escapes it.
	target := strings.TrimSuffix(n.url.String(), "/") + req.Path
	if len(req.Params) > 0 {
		target += "?" + req.Params.Encode()
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	hreq, err := http.NewRequestWithContext(ctx, req.Method, target, r)
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	if body != nil {
		hreq.ContentLength = int64(len(body))
	}

	for k, vs := range c.header {
		for _, v := range vs {
			hreq.Header.Add(k, v)
		}
	}
	for k, vs := range req.Header {
		hreq.Header.Del(k)
		for _, v := range vs {
			hreq.Header.Add(k, v)
		}
	}
	if req.ContentType != "" && body != nil {
		hreq.Header.Set("Content-Type", req.ContentType)
	}
	if hreq.Header.Get("Accept") == "" {
		hreq.Header.Set("Accept", "application/json")
	}
	if hreq.Header.Get("X-Opaque-Id") == "" {
		hreq.Header.Set("X-Opaque-Id", uuid.NewString())
	}
	if c.username != "" {
		hreq.SetBasicAuth(c.username, c.password)
	}
	return hreq, nil
}

func (c *Client) shouldRetryStatus(status int) bool {
	if c.disableRetry {
		return false
	}
	for _, s := range c.retryOnStatus {
		if s == status {
			return true
		}
	}
	return false
}
