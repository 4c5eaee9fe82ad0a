package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/searchclient/searchapi"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	_, err = New(Config{URLs: []*url.URL{{}}})
	require.Error(t, err)

	c, err := New(Config{URLs: []*url.URL{mustURL(t, "http://localhost:9200")}})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxRetries, c.maxRetries)
	assert.Equal(t, defaultRetryOnStatus, c.retryOnStatus)
}

func TestPerform_RoundRobin(t *testing.T) {
	var hitsA, hitsB atomic.Int64
	srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsA.Add(1)
	}))
	defer srvA.Close()
	srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsB.Add(1)
	}))
	defer srvB.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, srvA.URL), mustURL(t, srvB.URL)}})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		res, err := c.Perform(context.Background(), &searchapi.Request{Method: "GET", Path: "/"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	}
	assert.Equal(t, int64(2), hitsA.Load())
	assert.Equal(t, int64(2), hitsB.Load())
}

func TestPerform_FailsOverOnConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	dead := httptest.NewServer(http.HandlerFunc(nil))
	deadURL := dead.URL
	dead.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, deadURL), mustURL(t, srv.URL)}})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		res, err := c.Perform(context.Background(), &searchapi.Request{Method: "GET", Path: "/"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	}
}

func TestPerform_RetryOnStatus(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}))
	defer srv.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, srv.URL)}})
	require.NoError(t, err)

	res, err := c.Perform(context.Background(), &searchapi.Request{Method: "GET", Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, int64(3), hits.Load())
}

func TestPerform_RetryDisabledReturnsResponse(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, srv.URL)}, DisableRetry: true})
	require.NoError(t, err)

	res, err := c.Perform(context.Background(), &searchapi.Request{Method: "GET", Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Equal(t, int64(1), hits.Load())
}

func TestPerform_ReplaysBodyOnRetry(t *testing.T) {
	var hits atomic.Int64
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, srv.URL)}})
	require.NoError(t, err)

	res, err := c.Perform(context.Background(), &searchapi.Request{
		Method: "POST",
		Path:   "/_search",
		Body:   strings.NewReader(`{"query":{"match_all":{}}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1], "retried request must carry the same body")
	assert.NotEmpty(t, bodies[1])
}

func TestPerform_DoesNotReEscapePath(t *testing.T) {
	var gotPath, gotRaw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRaw = r.URL.EscapedPath()
	}))
	defer srv.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, srv.URL)}})
	require.NoError(t, err)

	// The generated methods escape path segments themselves; an ID with a
	// slash must reach the server singly encoded.
	_, err = c.Perform(context.Background(), &searchapi.Request{
		Method: "GET",
		Path:   "/logs/_doc/" + url.PathEscape("a/b"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/logs/_doc/a%2Fb", gotRaw)
	assert.Equal(t, "/logs/_doc/a/b", gotPath)

	_, err = c.Perform(context.Background(), &searchapi.Request{
		Method: "GET",
		Path:   "/logs/_doc/" + url.PathEscape("a b"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/logs/_doc/a%20b", gotRaw)
}

func TestPerform_HeadersAuthAndOpaqueID(t *testing.T) {
	var got http.Header
	var user, pass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		user, pass, _ = r.BasicAuth()
	}))
	defer srv.Close()

	c, err := New(Config{
		URLs:     []*url.URL{mustURL(t, srv.URL)},
		Username: "admin",
		Password: "secret",
		Header:   http.Header{"X-Cluster": []string{"test"}},
	})
	require.NoError(t, err)

	req := &searchapi.Request{
		Method:      "POST",
		Path:        "/_bulk",
		Body:        strings.NewReader("{}\n"),
		ContentType: "application/x-ndjson",
	}
	_, err = c.Perform(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "admin", user)
	assert.Equal(t, "secret", pass)
	assert.Equal(t, "test", got.Get("X-Cluster"))
	assert.Equal(t, "application/x-ndjson", got.Get("Content-Type"))
	assert.NotEmpty(t, got.Get("X-Opaque-Id"), "a request id is generated when none is set")

	// A caller-provided id wins over the generated one.
	req = &searchapi.Request{Method: "GET", Path: "/"}
	searchapi.WithOpaqueID("my-id")(req)
	_, err = c.Perform(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "my-id", got.Get("X-Opaque-Id"))
}

func TestPool_ResurrectBackoff(t *testing.T) {
	log := newTestLogger()
	p := newPool([]*url.URL{mustURL(t, "http://a:9200"), mustURL(t, "http://b:9200")}, time.Minute, log)

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	a := p.nodes[0]
	p.markDead(a)
	require.True(t, a.dead())
	assert.Equal(t, 1, a.failures)

	// Before the cooldown only b is handed out.
	for i := 0; i < 4; i++ {
		n, err := p.next()
		require.NoError(t, err)
		assert.Equal(t, "b:9200", n.url.Host)
	}

	// After the cooldown a comes back.
	now = now.Add(time.Minute)
	hosts := map[string]bool{}
	for i := 0; i < 4; i++ {
		n, err := p.next()
		require.NoError(t, err)
		hosts[n.url.Host] = true
	}
	assert.True(t, hosts["a:9200"])
	require.False(t, a.dead())

	// A second consecutive failure doubles the wait.
	p.markDead(a)
	assert.Equal(t, 2, a.failures)
	assert.Equal(t, now.Add(2*time.Minute), a.resurrectAt(time.Minute))

	p.markLive(a)
	assert.Zero(t, a.failures)
	assert.False(t, a.dead())
}

func TestPool_EagerResurrectWhenAllDead(t *testing.T) {
	log := newTestLogger()
	p := newPool([]*url.URL{mustURL(t, "http://a:9200"), mustURL(t, "http://b:9200")}, time.Minute, log)

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	p.markDead(p.nodes[0])
	now = now.Add(time.Second)
	p.markDead(p.nodes[1])

	n, err := p.next()
	require.NoError(t, err)
	assert.Equal(t, "a:9200", n.url.Host, "the node dead the longest comes back first")
	assert.False(t, n.dead())
}

func TestPool_ReplaceKeepsState(t *testing.T) {
	log := newTestLogger()
	p := newPool([]*url.URL{mustURL(t, "http://a:9200"), mustURL(t, "http://b:9200")}, time.Minute, log)
	p.markDead(p.nodes[0])

	p.replace([]*url.URL{mustURL(t, "http://a:9200"), mustURL(t, "http://c:9200")})

	require.Len(t, p.nodes, 2)
	assert.True(t, p.nodes[0].dead(), "surviving node keeps its health state")
	assert.Equal(t, "c:9200", p.nodes[1].url.Host)
	assert.False(t, p.nodes[1].dead())

	// An empty topology never wipes the pool.
	p.replace(nil)
	assert.Len(t, p.nodes, 2)
}
