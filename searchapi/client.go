package searchapi

// Client exposes the root API endpoints directly and groups the rest under
// one field per namespace.
type Client struct {
	tp Transport

	Cat      *CatAPI
	Cluster  *ClusterAPI
	Indices  *IndicesAPI
	Snapshot *SnapshotAPI
}

// NewClient wraps a transport. The transport owns connection pooling, node
// selection, and retries; the client adds nothing on top.
func NewClient(tp Transport) *Client {
	return &Client{
		tp:       tp,
		Cat:      newCatAPI(tp),
		Cluster:  newClusterAPI(tp),
		Indices:  newIndicesAPI(tp),
		Snapshot: newSnapshotAPI(tp),
	}
}
