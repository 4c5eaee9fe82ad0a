package mockcluster

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler returns the HTTP surface of the cluster.
func (c *Cluster) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", c.handleInfo)
	r.Head("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/_search", c.handleSearch)
	r.Post("/_search", c.handleSearch)
	r.Post("/_bulk", c.handleBulk)

	r.Get("/_cat/aliases", c.handleCatAliases)
	r.Get("/_cat/aliases/{name}", c.handleCatAliases)
	r.Get("/_cat/indices", c.handleCatIndices)
	r.Get("/_cat/indices/{index}", c.handleCatIndices)

	r.Get("/_cluster/health", c.handleClusterHealth)
	r.Get("/_cluster/health/{index}", c.handleClusterHealth)
	r.Get("/_cluster/stats", c.handleClusterStats)
	r.Get("/_cluster/stats/nodes/{node_id}", c.handleClusterStats)

	r.Get("/_nodes/http", c.handleNodesHTTP)

	r.Put("/_snapshot/{repo}/{snapshot}", c.handleSnapshotCreate)
	r.Get("/_snapshot/{repo}/{snapshot}", c.handleSnapshotGet)

	r.Put("/{index}", c.handleIndexCreate)
	r.Delete("/{index}", c.handleIndexDelete)
	r.Head("/{index}", c.handleIndexExists)
	r.Get("/{index}/_search", c.handleSearch)
	r.Post("/{index}/_search", c.handleSearch)
	r.Post("/{index}/_bulk", c.handleBulk)

	r.Post("/{index}/_doc", c.handleDocCreate)
	r.Put("/{index}/_doc/{id}", c.handleDocPut)
	r.Get("/{index}/_doc/{id}", c.handleDocGet)
	r.Head("/{index}/_doc/{id}", c.handleDocExists)
	r.Delete("/{index}/_doc/{id}", c.handleDocDelete)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errType, reason string) {
	writeJSON(w, status, map[string]any{
		"status": status,
		"error":  map[string]string{"type": errType, "reason": reason},
	})
}

func indexList(r *http.Request) []string {
	raw := chi.URLParam(r, "index")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func (c *Cluster) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":         "mock-0",
		"cluster_name": c.name,
		"version":      map[string]string{"number": Version},
		"tagline":      "You Know, for Testing",
	})
}

func (c *Cluster) handleSearch(w http.ResponseWriter, r *http.Request) {
	names := indexList(r)
	for _, name := range names {
		if !c.hasIndices([]string{name}) {
			writeError(w, http.StatusNotFound, "index_not_found_exception", "no such index ["+name+"]")
			return
		}
	}
	hits := c.search(names)
	writeJSON(w, http.StatusOK, map[string]any{
		"took":      1,
		"timed_out": false,
		"hits": map[string]any{
			"total": map[string]any{"value": len(hits), "relation": "eq"},
			"hits":  hits,
		},
	})
}

// handleBulk understands index, create and delete actions. Actions with
// no _index fall back to the index in the request path.
func (c *Cluster) handleBulk(w http.ResponseWriter, r *http.Request) {
	defaultIndex := chi.URLParam(r, "index")

	type actionMeta struct {
		Index string `json:"_index"`
		ID    string `json:"_id"`
	}

	var items []map[string]any
	hadErrors := false

	sc := bufio.NewScanner(r.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var action map[string]actionMeta
		if err := json.Unmarshal([]byte(line), &action); err != nil {
			writeError(w, http.StatusBadRequest, "illegal_argument_exception", "malformed action line")
			return
		}

		var op string
		var meta actionMeta
		for k, v := range action {
			op, meta = k, v
		}
		if meta.Index == "" {
			meta.Index = defaultIndex
		}
		if meta.Index == "" {
			writeError(w, http.StatusBadRequest, "illegal_argument_exception", "action requires an index")
			return
		}

		switch op {
		case "index", "create":
			if !sc.Scan() {
				writeError(w, http.StatusBadRequest, "illegal_argument_exception", "missing document for "+op+" action")
				return
			}
			doc := json.RawMessage(sc.Text())
			if meta.ID == "" {
				meta.ID = uuid.NewString()
			}
			existed := c.putDoc(meta.Index, meta.ID, doc)
			status := http.StatusCreated
			result := "created"
			if existed {
				status = http.StatusOK
				result = "updated"
			}
			items = append(items, map[string]any{op: map[string]any{
				"_index": meta.Index, "_id": meta.ID, "status": status, "result": result,
			}})
		case "delete":
			if c.deleteDoc(meta.Index, meta.ID) {
				items = append(items, map[string]any{op: map[string]any{
					"_index": meta.Index, "_id": meta.ID, "status": http.StatusOK, "result": "deleted",
				}})
			} else {
				hadErrors = true
				items = append(items, map[string]any{op: map[string]any{
					"_index": meta.Index, "_id": meta.ID, "status": http.StatusNotFound, "result": "not_found",
				}})
			}
		default:
			writeError(w, http.StatusBadRequest, "illegal_argument_exception", "unsupported action ["+op+"]")
			return
		}
	}
	if err := sc.Err(); err != nil {
		writeError(w, http.StatusBadRequest, "illegal_argument_exception", "read body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"took":   1,
		"errors": hadErrors,
		"items":  items,
	})
}

func (c *Cluster) handleCatAliases(w http.ResponseWriter, r *http.Request) {
	// Aliases are not modeled; the endpoint exists so clients can probe it.
	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}

func (c *Cluster) handleCatIndices(w http.ResponseWriter, r *http.Request) {
	names := indexList(r)
	if len(names) == 0 {
		names = c.indexNames()
	} else if !c.hasIndices(names) {
		writeError(w, http.StatusNotFound, "index_not_found_exception", "no such index")
		return
	}

	if r.URL.Query().Get("format") == "json" {
		rows := make([]map[string]any, 0, len(names))
		for _, name := range names {
			rows = append(rows, map[string]any{
				"health":     "green",
				"status":     "open",
				"index":      name,
				"docs.count": fmt.Sprintf("%d", c.docCount(name)),
			})
		}
		writeJSON(w, http.StatusOK, rows)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, name := range names {
		fmt.Fprintf(w, "green open %s %d\n", name, c.docCount(name))
	}
}

func (c *Cluster) handleClusterHealth(w http.ResponseWriter, r *http.Request) {
	names := indexList(r)
	if len(names) > 0 && !c.hasIndices(names) {
		writeError(w, http.StatusNotFound, "index_not_found_exception", "no such index")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cluster_name":    c.name,
		"status":          "green",
		"timed_out":       false,
		"number_of_nodes": 1,
	})
}

func (c *Cluster) handleClusterStats(w http.ResponseWriter, r *http.Request) {
	docs := 0
	for _, name := range c.indexNames() {
		docs += c.docCount(name)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cluster_name": c.name,
		"status":       "green",
		"indices": map[string]any{
			"count": len(c.indexNames()),
			"docs":  map[string]int{"count": docs},
		},
		"nodes": map[string]any{"count": map[string]int{"total": 1}},
	})
}

func (c *Cluster) handleNodesHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"nodes": map[string]any{
			"mock-0": map[string]any{
				"http": map[string]string{"publish_address": r.Host},
			},
		},
	})
}

func (c *Cluster) handleIndexCreate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "index")
	var settings json.RawMessage
	json.NewDecoder(r.Body).Decode(&settings)
	if !c.createIndex(name, settings) {
		writeError(w, http.StatusBadRequest, "resource_already_exists_exception", "index ["+name+"] already exists")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "index": name})
}

func (c *Cluster) handleIndexDelete(w http.ResponseWriter, r *http.Request) {
	names := indexList(r)
	if !c.deleteIndices(names) {
		writeError(w, http.StatusNotFound, "index_not_found_exception", "no such index")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true})
}

func (c *Cluster) handleIndexExists(w http.ResponseWriter, r *http.Request) {
	if c.hasIndices(indexList(r)) {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (c *Cluster) handleDocCreate(w http.ResponseWriter, r *http.Request) {
	c.storeDoc(w, r, uuid.NewString(), http.MethodPost)
}

func (c *Cluster) handleDocPut(w http.ResponseWriter, r *http.Request) {
	c.storeDoc(w, r, chi.URLParam(r, "id"), http.MethodPut)
}

func (c *Cluster) storeDoc(w http.ResponseWriter, r *http.Request, id, method string) {
	name := chi.URLParam(r, "index")
	var doc json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "mapper_parsing_exception", "failed to parse document")
		return
	}
	existed := c.putDoc(name, id, doc)
	status := http.StatusCreated
	result := "created"
	if existed {
		status = http.StatusOK
		result = "updated"
	}
	writeJSON(w, status, map[string]any{
		"_index": name,
		"_id":    id,
		"result": result,
	})
}

func (c *Cluster) handleDocGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "index")
	id := chi.URLParam(r, "id")
	doc, ok := c.getDoc(name, id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"_index": name, "_id": id, "found": false,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"_index": name, "_id": id, "found": true, "_source": doc,
	})
}

func (c *Cluster) handleDocExists(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.getDoc(chi.URLParam(r, "index"), chi.URLParam(r, "id")); ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (c *Cluster) handleDocDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "index")
	id := chi.URLParam(r, "id")
	if !c.deleteDoc(name, id) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"_index": name, "_id": id, "result": "not_found",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"_index": name, "_id": id, "result": "deleted",
	})
}

func (c *Cluster) handleSnapshotCreate(w http.ResponseWriter, r *http.Request) {
	repo := chi.URLParam(r, "repo")
	name := chi.URLParam(r, "snapshot")

	var body struct {
		Indices string `json:"indices"`
	}
	json.NewDecoder(r.Body).Decode(&body)
	indices := c.indexNames()
	if body.Indices != "" {
		indices = strings.Split(body.Indices, ",")
	}

	c.putSnapshot(repo, name, indices)
	writeJSON(w, http.StatusOK, map[string]any{"accepted": true})
}

func (c *Cluster) handleSnapshotGet(w http.ResponseWriter, r *http.Request) {
	repo := chi.URLParam(r, "repo")
	names := strings.Split(chi.URLParam(r, "snapshot"), ",")

	snaps, ok := c.getSnapshots(repo, names)
	if !ok {
		writeError(w, http.StatusNotFound, "snapshot_missing_exception", "snapshot does not exist")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": snaps})
}
