package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/searchclient/internal/restspec"
)

func testSettings() Settings {
	var s Settings
	s.Output.Dir = "searchapi"
	s.Output.Package = "searchapi"
	return s
}

func docGetEndpoint() restspec.Endpoint {
	return restspec.Endpoint{
		Name:       "doc.get",
		Namespace:  "doc",
		MethodName: "Get",
		Documentation: restspec.Documentation{
			URL:         "https://example.dev/doc-get.html",
			Description: "Returns a document.",
		},
		Stability: "stable",
		Paths: []restspec.Path{{
			Path:    "/{index}/_doc/{id}",
			Methods: []string{"GET"},
			Parts: []restspec.Part{
				{Name: "index", Type: "string", Description: "Index name", Required: true},
				{Name: "id", Type: "string", Description: "Document ID", Required: true},
			},
		}},
		Params: []restspec.Param{
			{Name: "routing", Type: "string", Description: "Routing value"},
		},
	}
}

func catThingsEndpoint() restspec.Endpoint {
	return restspec.Endpoint{
		Name:       "cat.things",
		Namespace:  "cat",
		MethodName: "Things",
		Documentation: restspec.Documentation{
			URL:         "https://example.dev/cat-things.html",
			Description: "Lists things.",
		},
		Stability: "stable",
		Paths: []restspec.Path{
			{Path: "/_cat/things", Methods: []string{"GET"}},
			{
				Path:    "/_cat/things/{name}",
				Methods: []string{"GET"},
				Parts:   []restspec.Part{{Name: "name", Type: "list", Description: "Thing names"}},
			},
		},
		Params: []restspec.Param{
			{Name: "v", Type: "boolean", Description: "Verbose"},
		},
	}
}

func bulkishEndpoint() restspec.Endpoint {
	return restspec.Endpoint{
		Name:       "feed",
		MethodName: "Feed",
		Documentation: restspec.Documentation{
			URL:         "https://example.dev/feed.html",
			Description: "Streams action lines into the cluster.",
		},
		Stability: "stable",
		Paths: []restspec.Path{
			{Path: "/_feed", Methods: []string{"POST"}},
		},
		Body: &restspec.Body{Description: "Action lines", Required: true, NDJSON: true},
	}
}

func TestGenerate_RequiredGuardsMatchSpec(t *testing.T) {
	out, err := Generate([]restspec.Endpoint{docGetEndpoint(), bulkishEndpoint()}, testSettings(), nil)
	require.NoError(t, err)

	doc := string(out["api.doc.go"])
	// Both required parts are guarded, in path order, before any request is built.
	idxGuard := strings.Index(doc, `if req == nil || req.Index == "" {`)
	idGuard := strings.Index(doc, `if req.ID == "" {`)
	perform := strings.Index(doc, "c.tp.Perform(ctx, r)")
	require.True(t, idxGuard >= 0, "missing index guard:\n%s", doc)
	require.True(t, idGuard >= 0, "missing id guard:\n%s", doc)
	assert.Less(t, idxGuard, idGuard)
	assert.Less(t, idGuard, perform)
	assert.Contains(t, doc, `errMissing("Get", "index")`)
	assert.Contains(t, doc, `errMissing("Get", "id")`)
	// The optional routing param must not be guarded.
	assert.NotContains(t, doc, `errMissing("Get", "routing")`)

	feed := string(out["api.go"])
	assert.Contains(t, feed, `if req == nil || req.Body == nil {`)
	assert.Contains(t, feed, `errMissing("Feed", "body")`)
	assert.Contains(t, feed, `ContentType: "application/x-ndjson"`)
}

func TestGenerate_OptionalPartSelectsLongestPath(t *testing.T) {
	out, err := Generate([]restspec.Endpoint{catThingsEndpoint()}, testSettings(), nil)
	require.NoError(t, err)

	src := string(out["api.cat.go"])
	assert.Contains(t, src, "case len(req.Name) > 0:")
	assert.Contains(t, src, `path = "/_cat/things/" + strings.Join(req.Name, ",")`)
	assert.Contains(t, src, `path = "/_cat/things"`)
	// No guard: the part is optional.
	assert.NotContains(t, src, "errMissing")
}

func TestGenerate_Idempotent(t *testing.T) {
	eps := []restspec.Endpoint{docGetEndpoint(), catThingsEndpoint(), bulkishEndpoint()}
	first, err := Generate(eps, testSettings(), nil)
	require.NoError(t, err)

	second, err := Generate(eps, testSettings(), first)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for name, src := range first {
		assert.Equal(t, string(src), string(second[name]), "file %s changed on regeneration", name)
	}
}

func TestGenerate_PreservesPriorMethodOrder(t *testing.T) {
	alpha := catThingsEndpoint()
	alpha.Name, alpha.MethodName = "cat.alpha", "Alpha"
	omega := catThingsEndpoint()
	omega.Name, omega.MethodName = "cat.omega", "Omega"

	// Prior file declared Omega before Alpha.
	prior := map[string][]byte{
		"api.cat.go": []byte("func (c *CatAPI) Omega(\nfunc (c *CatAPI) Alpha(\n"),
	}
	out, err := Generate([]restspec.Endpoint{alpha, omega}, testSettings(), prior)
	require.NoError(t, err)

	src := string(out["api.cat.go"])
	assert.Less(t, strings.Index(src, ") Omega(ctx"), strings.Index(src, ") Alpha(ctx"))

	// A new endpoint appends after the surviving ones.
	nu := catThingsEndpoint()
	nu.Name, nu.MethodName = "cat.middle", "Middle"
	out, err = Generate([]restspec.Endpoint{alpha, nu, omega}, testSettings(), prior)
	require.NoError(t, err)
	src = string(out["api.cat.go"])
	assert.Less(t, strings.Index(src, ") Omega(ctx"), strings.Index(src, ") Alpha(ctx"))
	assert.Less(t, strings.Index(src, ") Alpha(ctx"), strings.Index(src, ") Middle(ctx"))
}

func TestGenerate_SkipList(t *testing.T) {
	s := testSettings()
	s.Skip = []string{"cat.things"}
	out, err := Generate([]restspec.Endpoint{docGetEndpoint(), catThingsEndpoint()}, s, nil)
	require.NoError(t, err)
	_, ok := out["api.cat.go"]
	assert.False(t, ok, "skipped namespace should not be emitted")
}

func TestGenerate_HeadEndpointReturnsBool(t *testing.T) {
	ep := docGetEndpoint()
	ep.Name, ep.MethodName = "doc.exists", "Exists"
	ep.Paths[0].Methods = []string{"HEAD"}

	out, err := Generate([]restspec.Endpoint{ep}, testSettings(), nil)
	require.NoError(t, err)
	src := string(out["api.doc.go"])
	assert.Contains(t, src, "opts ...RequestOption) (bool, error)")
	assert.Contains(t, src, "return res.StatusCode < 300, nil")
	assert.Contains(t, src, "return false, err")
}

func TestRender_GofmtClean(t *testing.T) {
	m := Module{Namespace: "cat", Endpoints: []restspec.Endpoint{catThingsEndpoint()}}
	src, err := Render(m, "searchapi")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by cmd/apigen"))
	assert.Contains(t, string(src), "package searchapi")
}

func TestPriorOrder(t *testing.T) {
	src := []byte(`package searchapi

func (c *CatAPI) Omega(ctx context.Context) {}

func (c *CatAPI) Alpha(ctx context.Context) {}
`)
	assert.Equal(t, []string{"Omega", "Alpha"}, priorOrder(src))
}
