package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"
)

// sniffer refreshes the node pool from the cluster's own view of its
// topology.
type sniffer struct {
	c        *Client
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newSniffer(c *Client, interval time.Duration) *sniffer {
	return &sniffer{c: c, interval: interval}
}

// maybeSniff kicks off a discovery round when the interval has elapsed.
// Discovery runs in the background so callers never wait on it.
func (s *sniffer) maybeSniff(ctx context.Context) {
	s.mu.Lock()
	due := time.Since(s.last) >= s.interval
	if due {
		s.last = time.Now()
	}
	s.mu.Unlock()
	if !due {
		return
	}

	go func() {
		if err := s.sniff(context.WithoutCancel(ctx)); err != nil {
			s.c.log.Warn("sniff failed", "err", err)
		}
	}()
}

// nodesResponse mirrors the relevant slice of GET /_nodes/http.
type nodesResponse struct {
	Nodes map[string]struct {
		HTTP struct {
			PublishAddress string `json:"publish_address"`
		} `json:"http"`
	} `json:"nodes"`
}

func (s *sniffer) sniff(ctx context.Context) error {
	seeds := s.c.pool.urls()
	if len(seeds) == 0 {
		return fmt.Errorf("transport: sniff: empty pool")
	}
	seed := seeds[0]

	u := *seed
	u.Path = "/_nodes/http"
	u.RawQuery = ""
	hreq, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return fmt.Errorf("transport: sniff: %w", err)
	}
	if s.c.username != "" {
		hreq.SetBasicAuth(s.c.username, s.c.password)
	}

	hres, err := s.c.rt.RoundTrip(hreq)
	if err != nil {
		return fmt.Errorf("transport: sniff %s: %w", u.Host, err)
	}
	defer hres.Body.Close()
	if hres.StatusCode >= 300 {
		io.Copy(io.Discard, hres.Body)
		return fmt.Errorf("transport: sniff %s: status %d", u.Host, hres.StatusCode)
	}

	var nr nodesResponse
	if err := json.NewDecoder(hres.Body).Decode(&nr); err != nil {
		return fmt.Errorf("transport: sniff: decode: %w", err)
	}

	var discovered []*url.URL
	for _, n := range nr.Nodes {
		addr := n.HTTP.PublishAddress
		if addr == "" {
			continue
		}
		discovered = append(discovered, &url.URL{Scheme: seed.Scheme, Host: addr})
	}
	if len(discovered) == 0 {
		return fmt.Errorf("transport: sniff: no nodes advertised an http address")
	}
	sort.Slice(discovered, func(i, j int) bool { return discovered[i].Host < discovered[j].Host })

	s.c.pool.replace(discovered)
	s.c.log.Info("sniffed cluster", "nodes", len(discovered))
	return nil
}
