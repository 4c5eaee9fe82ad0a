// Package mockcluster is an in-memory stand-in for a search cluster. It
// speaks just enough of the REST surface for client and transport tests:
// document CRUD, match-all search, bulk, the cat and cluster endpoints,
// snapshots and node discovery.
package mockcluster

import (
	"encoding/json"
	"sort"
	"sync"
	"time"
)

// Version is the engine version the mock reports from the info endpoint.
const Version = "9.0.0-mock"

// Cluster holds the mutable state behind the HTTP surface.
type Cluster struct {
	name string

	mu        sync.Mutex
	indices   map[string]*index
	snapshots map[string]map[string]*snapshot
}

type index struct {
	docs     map[string]json.RawMessage
	settings json.RawMessage
	created  time.Time
}

type snapshot struct {
	Snapshot  string   `json:"snapshot"`
	Indices   []string `json:"indices"`
	State     string   `json:"state"`
	StartTime string   `json:"start_time"`
}

// New returns an empty cluster with the given name.
func New(name string) *Cluster {
	if name == "" {
		name = "mockcluster"
	}
	return &Cluster{
		name:      name,
		indices:   map[string]*index{},
		snapshots: map[string]map[string]*snapshot{},
	}
}

func (c *Cluster) createIndex(name string, settings json.RawMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.indices[name]; ok {
		return false
	}
	c.indices[name] = &index{
		docs:     map[string]json.RawMessage{},
		settings: settings,
		created:  time.Now(),
	}
	return true
}

func (c *Cluster) deleteIndices(names []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, name := range names {
		if _, ok := c.indices[name]; !ok {
			return false
		}
	}
	for _, name := range names {
		delete(c.indices, name)
	}
	return true
}

func (c *Cluster) hasIndices(names []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, name := range names {
		if _, ok := c.indices[name]; !ok {
			return false
		}
	}
	return true
}

func (c *Cluster) indexNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.indices))
	for name := range c.indices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Cluster) docCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.indices[name]
	if !ok {
		return 0
	}
	return len(idx.docs)
}

// putDoc stores doc under id, creating the index on first use the way a
// real cluster does. Reports whether the document already existed.
func (c *Cluster) putDoc(indexName, id string, doc json.RawMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.indices[indexName]
	if !ok {
		idx = &index{docs: map[string]json.RawMessage{}, created: time.Now()}
		c.indices[indexName] = idx
	}
	_, existed := idx.docs[id]
	idx.docs[id] = doc
	return existed
}

func (c *Cluster) getDoc(indexName, id string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.indices[indexName]
	if !ok {
		return nil, false
	}
	doc, ok := idx.docs[id]
	return doc, ok
}

func (c *Cluster) deleteDoc(indexName, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.indices[indexName]
	if !ok {
		return false
	}
	if _, ok := idx.docs[id]; !ok {
		return false
	}
	delete(idx.docs, id)
	return true
}

type hit struct {
	Index  string          `json:"_index"`
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

// search returns every document in the named indices, or in all indices
// when names is empty. Hits come back in a stable index/id order.
func (c *Cluster) search(names []string) []hit {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(names) == 0 {
		for name := range c.indices {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var hits []hit
	for _, name := range names {
		idx, ok := c.indices[name]
		if !ok {
			continue
		}
		ids := make([]string, 0, len(idx.docs))
		for id := range idx.docs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			hits = append(hits, hit{Index: name, ID: id, Score: 1.0, Source: idx.docs[id]})
		}
	}
	return hits
}

func (c *Cluster) putSnapshot(repo, name string, indices []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshots[repo] == nil {
		c.snapshots[repo] = map[string]*snapshot{}
	}
	c.snapshots[repo][name] = &snapshot{
		Snapshot:  name,
		Indices:   indices,
		State:     "SUCCESS",
		StartTime: time.Now().UTC().Format(time.RFC3339),
	}
}

func (c *Cluster) getSnapshots(repo string, names []string) ([]*snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byName, ok := c.snapshots[repo]
	if !ok {
		return nil, false
	}
	var out []*snapshot
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
