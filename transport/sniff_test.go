package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodesHTTPBody = `{
  "nodes": {
    "n1": {"http": {"publish_address": "127.0.0.1:9201"}},
    "n2": {"http": {"publish_address": "127.0.0.1:9202"}},
    "n3": {"http": {}}
  }
}`

func TestSniff_ReplacesPool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/_nodes/http", r.URL.Path)
		io.WriteString(w, nodesHTTPBody)
	}))
	defer srv.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, srv.URL)}})
	require.NoError(t, err)

	s := newSniffer(c, time.Minute)
	require.NoError(t, s.sniff(context.Background()))

	got := c.pool.urls()
	require.Len(t, got, 2, "nodes without a publish address are skipped")
	assert.Equal(t, "127.0.0.1:9201", got[0].Host)
	assert.Equal(t, "127.0.0.1:9202", got[1].Host)
	assert.Equal(t, mustURL(t, srv.URL).Scheme, got[0].Scheme)
}

func TestSniff_ErrorLeavesPoolAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(Config{URLs: []*url.URL{mustURL(t, srv.URL)}})
	require.NoError(t, err)

	s := newSniffer(c, time.Minute)
	require.Error(t, s.sniff(context.Background()))
	assert.Len(t, c.pool.urls(), 1)
}

func TestMaybeSniff_Throttles(t *testing.T) {
	c, err := New(Config{URLs: []*url.URL{mustURL(t, "http://localhost:9200")}})
	require.NoError(t, err)

	s := newSniffer(c, time.Hour)
	s.last = time.Now()

	before := s.last
	s.maybeSniff(context.Background())
	assert.Equal(t, before, s.last, "a recent sniff suppresses the next round")
}

func TestSerializers(t *testing.T) {
	r, err := JSONReader(map[string]int{"size": 10})
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "{\"size\":10}\n", string(b))

	r, err = NDJSONReader(
		map[string]any{"index": map[string]string{"_id": "1"}},
		map[string]string{"title": "x"},
	)
	require.NoError(t, err)
	b, err = io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "{\"index\":{\"_id\":\"1\"}}\n{\"title\":\"x\"}\n", string(b))
}
