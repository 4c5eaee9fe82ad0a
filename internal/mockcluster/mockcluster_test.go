package mockcluster_test

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/searchclient/internal/mockcluster"
	"github.com/matthewbaird/searchclient/searchapi"
	"github.com/matthewbaird/searchclient/transport"
)

// newClient spins up a mock cluster and a real client talking to it.
func newClient(t *testing.T) *searchapi.Client {
	t.Helper()
	srv := httptest.NewServer(mockcluster.New("test-cluster").Handler())
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	tp, err := transport.New(transport.Config{URLs: []*url.URL{u}})
	require.NoError(t, err)
	return searchapi.NewClient(tp)
}

func TestPingAndInfo(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	ok, err := client.Ping(ctx, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	res, err := client.Info(ctx, nil)
	require.NoError(t, err)
	require.False(t, res.IsError())

	var info struct {
		ClusterName string `json:"cluster_name"`
		Version     struct {
			Number string `json:"number"`
		} `json:"version"`
	}
	require.NoError(t, res.Decode(&info))
	assert.Equal(t, "test-cluster", info.ClusterName)
	assert.Equal(t, mockcluster.Version, info.Version.Number)
}

func TestDocumentLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	res, err := client.Index(ctx, &searchapi.IndexRequest{
		Index: "logs",
		ID:    "1",
		Body:  strings.NewReader(`{"message":"hello"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, 201, res.StatusCode)

	ok, err := client.Exists(ctx, &searchapi.ExistsRequest{Index: "logs", ID: "1"})
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = client.Get(ctx, &searchapi.GetRequest{Index: "logs", ID: "1"})
	require.NoError(t, err)
	var doc struct {
		Found  bool `json:"found"`
		Source struct {
			Message string `json:"message"`
		} `json:"_source"`
	}
	require.NoError(t, res.Decode(&doc))
	assert.True(t, doc.Found)
	assert.Equal(t, "hello", doc.Source.Message)

	res, err = client.Delete(ctx, &searchapi.DeleteRequest{Index: "logs", ID: "1"})
	require.NoError(t, err)
	assert.False(t, res.IsError())

	ok, err = client.Exists(ctx, &searchapi.ExistsRequest{Index: "logs", ID: "1"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearchReturnsAllDocs(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		_, err := client.Index(ctx, &searchapi.IndexRequest{
			Index: "logs",
			ID:    id,
			Body:  strings.NewReader(`{"n":` + id + `}`),
		})
		require.NoError(t, err)
	}

	res, err := client.Search(ctx, &searchapi.SearchRequest{Index: []string{"logs"}})
	require.NoError(t, err)

	var out struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	require.NoError(t, res.Decode(&out))
	assert.Equal(t, 3, out.Hits.Total.Value)
	require.Len(t, out.Hits.Hits, 3)
	assert.Equal(t, "1", out.Hits.Hits[0].ID)
}

func TestBulk(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	body, err := transport.NDJSONReader(
		map[string]any{"index": map[string]string{"_id": "a"}},
		map[string]string{"title": "first"},
		map[string]any{"index": map[string]string{"_id": "b"}},
		map[string]string{"title": "second"},
		map[string]any{"delete": map[string]string{"_id": "missing"}},
	)
	require.NoError(t, err)

	res, err := client.Bulk(ctx, &searchapi.BulkRequest{Index: "logs", Body: body})
	require.NoError(t, err)
	require.False(t, res.IsError())

	var out struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
		} `json:"items"`
	}
	require.NoError(t, res.Decode(&out))
	assert.True(t, out.Errors, "deleting a missing doc flags the batch")
	require.Len(t, out.Items, 3)
	assert.Equal(t, 201, out.Items[0]["index"].Status)
	assert.Equal(t, 404, out.Items[2]["delete"].Status)

	ok, err := client.Exists(ctx, &searchapi.ExistsRequest{Index: "logs", ID: "a"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIndicesNamespace(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	res, err := client.Indices.Create(ctx, &searchapi.IndicesCreateRequest{Index: "logs"})
	require.NoError(t, err)
	assert.False(t, res.IsError())

	res, err = client.Indices.Create(ctx, &searchapi.IndicesCreateRequest{Index: "logs"})
	require.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode, "creating an existing index fails")

	ok, err := client.Indices.Exists(ctx, &searchapi.IndicesExistsRequest{Index: []string{"logs"}})
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = client.Indices.Delete(ctx, &searchapi.IndicesDeleteRequest{Index: []string{"logs"}})
	require.NoError(t, err)
	assert.False(t, res.IsError())

	ok, err = client.Indices.Exists(ctx, &searchapi.IndicesExistsRequest{Index: []string{"logs"}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClusterAndCatNamespaces(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Index(ctx, &searchapi.IndexRequest{
		Index: "logs", ID: "1", Body: strings.NewReader(`{}`),
	})
	require.NoError(t, err)

	res, err := client.Cluster.Health(ctx, nil)
	require.NoError(t, err)
	var health struct {
		Status string `json:"status"`
	}
	require.NoError(t, res.Decode(&health))
	assert.Equal(t, "green", health.Status)

	res, err = client.Cluster.Stats(ctx, nil)
	require.NoError(t, err)
	var stats struct {
		Indices struct {
			Count int `json:"count"`
		} `json:"indices"`
	}
	require.NoError(t, res.Decode(&stats))
	assert.Equal(t, 1, stats.Indices.Count)

	res, err = client.Cat.Indices(ctx, &searchapi.CatIndicesRequest{Format: "json"})
	require.NoError(t, err)
	var rows []struct {
		Index string `json:"index"`
	}
	require.NoError(t, res.Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "logs", rows[0].Index)
}

func TestSnapshotNamespace(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Index(ctx, &searchapi.IndexRequest{
		Index: "logs", ID: "1", Body: strings.NewReader(`{}`),
	})
	require.NoError(t, err)

	res, err := client.Snapshot.Create(ctx, &searchapi.SnapshotCreateRequest{
		Repository: "backups",
		Snapshot:   "snap-1",
	})
	require.NoError(t, err)
	assert.False(t, res.IsError())

	res, err = client.Snapshot.Get(ctx, &searchapi.SnapshotGetRequest{
		Repository: "backups",
		Snapshot:   []string{"snap-1"},
	})
	require.NoError(t, err)
	var out struct {
		Snapshots []struct {
			Snapshot string   `json:"snapshot"`
			State    string   `json:"state"`
			Indices  []string `json:"indices"`
		} `json:"snapshots"`
	}
	require.NoError(t, res.Decode(&out))
	require.Len(t, out.Snapshots, 1)
	assert.Equal(t, "snap-1", out.Snapshots[0].Snapshot)
	assert.Equal(t, "SUCCESS", out.Snapshots[0].State)
	assert.Equal(t, []string{"logs"}, out.Snapshots[0].Indices)
}
