package restspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

const docGetSpec = `{
  "doc.get": {
    "documentation": {"url": "https://example.dev/doc-get.html", "description": "Returns a document."},
    "stability": "stable",
    "url": {
      "paths": [
        {
          "path": "/{index}/_doc/{id}",
          "methods": ["GET"],
          "parts": {
            "index": {"type": "string", "description": "Index name", "required": true},
            "id": {"type": "string", "description": "Document ID", "required": true}
          }
        }
      ]
    },
    "params": {
      "routing": {"type": "string", "description": "Routing value"}
    }
  }
}`

const catThingsSpec = `{
  "cat.things": {
    "documentation": {"url": "https://example.dev/cat-things.html", "description": "Lists things."},
    "stability": "stable",
    "url": {
      "paths": [
        {"path": "/_cat/things", "methods": ["GET"]},
        {
          "path": "/_cat/things/{name}",
          "methods": ["GET"],
          "parts": {"name": {"type": "list", "description": "Thing names"}}
        }
      ]
    },
    "params": {
      "v": {"type": "boolean", "description": "Verbose", "default": false}
    }
  }
}`

const commonSpec = `{
  "documentation": "Shared parameters.",
  "params": {
    "pretty": {"type": "boolean", "description": "Pretty print", "default": false}
  }
}`

func TestLoad_Basic(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "_common.json", commonSpec)
	writeSpec(t, dir, "doc.get.json", docGetSpec)
	writeSpec(t, dir, "cat.things.json", catThingsSpec)

	endpoints, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, endpoints, 2)

	// Sorted by name.
	assert.Equal(t, "cat.things", endpoints[0].Name)
	assert.Equal(t, "doc.get", endpoints[1].Name)

	cat := endpoints[0]
	assert.Equal(t, "cat", cat.Namespace)
	assert.Equal(t, "Things", cat.MethodName)
	require.Len(t, cat.Paths, 2)
	assert.Empty(t, cat.RequiredParts())
	require.Len(t, cat.OptionalParts(), 1)
	assert.Equal(t, "name", cat.OptionalParts()[0].Name)

	get := endpoints[1]
	assert.Equal(t, "doc", get.Namespace)
	assert.Equal(t, "Get", get.MethodName)
	required := get.RequiredParts()
	require.Len(t, required, 2)
	assert.Equal(t, "index", required[0].Name)
	assert.Equal(t, "id", required[1].Name)
}

func TestLoad_FoldsCommonParams(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "_common.json", commonSpec)
	writeSpec(t, dir, "doc.get.json", docGetSpec)

	endpoints, err := Load(dir)
	require.NoError(t, err)

	var names []string
	var commonFlags []bool
	for _, p := range endpoints[0].Params {
		names = append(names, p.Name)
		commonFlags = append(commonFlags, p.Common)
	}
	assert.Equal(t, []string{"pretty", "routing"}, names)
	assert.Equal(t, []bool{true, false}, commonFlags)
}

func TestLoad_NoCommonFile(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "doc.get.json", docGetSpec)

	endpoints, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	require.Len(t, endpoints[0].Params, 1)
	assert.Equal(t, "routing", endpoints[0].Params[0].Name)
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// "stability" must be one of the known values.
	writeSpec(t, dir, "bad.json", `{
	  "bad": {
	    "documentation": {"url": "https://example.dev", "description": "Bad."},
	    "stability": "rock-solid",
	    "url": {"paths": [{"path": "/", "methods": ["GET"]}]},
	    "params": {}
	  }
	}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
	assert.Contains(t, err.Error(), "schema violation")
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "bad.json", `{
	  "bad": {
	    "documentation": {"url": "https://example.dev", "description": "Bad."},
	    "stability": "stable",
	    "url": {"paths": [{"path": "/", "methods": ["GET"]}]},
	    "params": {},
	    "extra_field": true
	  }
	}`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_DuplicateEndpoint(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "a.json", docGetSpec)
	writeSpec(t, dir, "b.json", docGetSpec)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestLoad_UndeclaredPart(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "bad.json", `{
	  "bad": {
	    "documentation": {"url": "https://example.dev", "description": "Bad."},
	    "stability": "stable",
	    "url": {"paths": [{"path": "/{index}/_thing", "methods": ["GET"]}]},
	    "params": {}
	  }
	}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared part")
}

func TestToPascal(t *testing.T) {
	cases := map[string]string{
		"aliases":          "Aliases",
		"get":              "Get",
		"wait_for_status":  "WaitForStatus",
		"node_id":          "NodeID",
		"url_decode":       "URLDecode",
		"http_compression": "HTTPCompression",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToPascal(in), "ToPascal(%q)", in)
	}
}
