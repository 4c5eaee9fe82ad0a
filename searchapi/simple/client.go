package simple

// Client is the context-free twin of searchapi.Client.
type Client struct {
	tp Transport

	Cat      *CatAPI
	Cluster  *ClusterAPI
	Indices  *IndicesAPI
	Snapshot *SnapshotAPI
}

// NewClient wraps the given transport.
func NewClient(tp Transport) *Client {
	return &Client{
		tp:       tp,
		Cat:      newCatAPI(tp),
		Cluster:  newClusterAPI(tp),
		Indices:  newIndicesAPI(tp),
		Snapshot: newSnapshotAPI(tp),
	}
}
