package transport

import (
	"log/slog"
	"net/url"
	"sync"
	"time"
)

// maxResurrectWait caps the exponential cooldown for repeatedly failing
// nodes.
const maxResurrectWait = 30 * time.Minute

type node struct {
	url *url.URL

	// Guarded by the owning pool's mutex.
	failures  int
	deadSince time.Time
}

func (n *node) dead() bool {
	return !n.deadSince.IsZero()
}

// resurrectAt returns when the node becomes eligible again. The wait
// doubles with every consecutive failure.
func (n *node) resurrectAt(base time.Duration) time.Time {
	wait := base
	for i := 1; i < n.failures; i++ {
		wait *= 2
		if wait >= maxResurrectWait {
			wait = maxResurrectWait
			break
		}
	}
	return n.deadSince.Add(wait)
}

// pool hands out live nodes round-robin and tracks dead ones until their
// cooldown expires.
type pool struct {
	mu        sync.Mutex
	nodes     []*node
	idx       int
	resurrect time.Duration
	log       *slog.Logger

	now func() time.Time
}

func newPool(urls []*url.URL, resurrect time.Duration, log *slog.Logger) *pool {
	p := &pool{resurrect: resurrect, log: log, now: time.Now}
	for _, u := range urls {
		p.nodes = append(p.nodes, &node{url: u})
	}
	return p
}

// next returns the next live node. Nodes whose cooldown has expired come
// back on the way. When every node is dead, the one dead the longest is
// resurrected eagerly rather than failing the request.
func (p *pool) next() (*node, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	var live []*node
	for _, n := range p.nodes {
		if n.dead() && !now.Before(n.resurrectAt(p.resurrect)) {
			p.log.Info("resurrecting node", "node", n.url.Host)
			n.deadSince = time.Time{}
		}
		if !n.dead() {
			live = append(live, n)
		}
	}

	if len(live) == 0 {
		oldest := p.nodes[0]
		for _, n := range p.nodes[1:] {
			if n.deadSince.Before(oldest.deadSince) {
				oldest = n
			}
		}
		p.log.Info("all nodes dead, resurrecting", "node", oldest.url.Host)
		oldest.deadSince = time.Time{}
		return oldest, nil
	}

	p.idx++
	return live[p.idx%len(live)], nil
}

func (p *pool) markDead(n *node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n.failures++
	n.deadSince = p.now()
	p.log.Warn("marking node dead", "node", n.url.Host, "failures", n.failures)
}

func (p *pool) markLive(n *node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n.failures = 0
	n.deadSince = time.Time{}
}

// replace swaps in a freshly discovered topology. Health state carries
// over for nodes that survive the swap.
func (p *pool) replace(urls []*url.URL) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := make(map[string]*node, len(p.nodes))
	for _, n := range p.nodes {
		prev[n.url.String()] = n
	}

	var next []*node
	for _, u := range urls {
		if old, ok := prev[u.String()]; ok {
			next = append(next, old)
			continue
		}
		next = append(next, &node{url: u})
	}
	if len(next) == 0 {
		return
	}
	p.nodes = next
}

// urls returns a snapshot of the pool members, live first.
func (p *pool) urls() []*url.URL {
	p.mu.Lock()
	defer p.mu.Unlock()

	var live, dead []*url.URL
	for _, n := range p.nodes {
		if n.dead() {
			dead = append(dead, n.url)
			continue
		}
		live = append(live, n.url)
	}
	return append(live, dead...)
}
