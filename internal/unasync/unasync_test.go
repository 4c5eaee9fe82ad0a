package unasync

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asyncSrc = `// Code generated by cmd/apigen from apispec definitions. DO NOT EDIT.

package searchapi

import (
	"context"
	"net/url"
)

// Things lists things.
//
// See https://example.dev/cat-things.html for details.
func (c *CatAPI) Things(ctx context.Context, req *CatThingsRequest, opts ...RequestOption) (*Response, error) {
	if req == nil {
		req = &CatThingsRequest{}
	}

	path := "/_cat/things"

	params := url.Values{}

	r := &Request{Method: "GET", Path: path, Params: params}
	applyOptions(r, opts)
	return c.tp.Perform(ctx, r)
}
`

func TestFile_RewritesSignatureAndDispatch(t *testing.T) {
	out := string(File([]byte(asyncSrc)))

	assert.Contains(t, out, "package simple")
	assert.Contains(t, out, "func (c *CatAPI) Things(req *CatThingsRequest, opts ...RequestOption) (*Response, error) {")
	assert.Contains(t, out, "return c.tp.Perform(context.Background(), r)")
	assert.Contains(t, out, "// Code generated by cmd/syncgen from package searchapi. DO NOT EDIT.")
	assert.NotContains(t, out, "ctx context.Context")
}

func TestFile_StructurallyIdenticalModuloTokens(t *testing.T) {
	in := strings.Split(asyncSrc, "\n")
	out := strings.Split(string(File([]byte(asyncSrc))), "\n")
	require.Equal(t, len(in), len(out), "line count must be preserved")

	for i := range in {
		a, b := in[i], out[i]
		if a == b {
			continue
		}
		// A changed line must be explained by exactly the default rules.
		restored := b
		for _, r := range DefaultRules {
			if r.To != "" {
				restored = strings.ReplaceAll(restored, r.To, r.From)
			}
		}
		if restored != a {
			// The empty-To rule (dropped ctx parameter) can't be restored by
			// reverse replacement; re-apply forward instead.
			assert.Equal(t, b, applyLine(a, DefaultRules), "line %d differs beyond the rewrite rules", i+1)
		}
	}
}

// TestFile_MatchesDerivedSources round-trips every generated searchapi file
// through the rewrite and compares against the checked-in simple package, so
// a rule change that would make cmd/syncgen rewrite a clean tree fails here.
func TestFile_MatchesDerivedSources(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "..", "searchapi", "api*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no generated searchapi sources found")

	for _, path := range matches {
		src, err := os.ReadFile(path)
		require.NoError(t, err)
		want, err := os.ReadFile(filepath.Join(filepath.Dir(path), "simple", filepath.Base(path)))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(File(src)), "%s does not round-trip", filepath.Base(path))
	}
}

func TestApply_IdentifierBoundaries(t *testing.T) {
	rules := []Rule{{From: "ctx", To: "context.Background()"}}

	assert.Equal(t, "f(context.Background())", string(Apply([]byte("f(ctx)"), rules)))
	// No match inside longer identifiers.
	assert.Equal(t, "f(pctx)", string(Apply([]byte("f(pctx)"), rules)))
	assert.Equal(t, "f(ctxt)", string(Apply([]byte("f(ctxt)"), rules)))
}

func TestApply_CommentsAndBlankLinesSurvive(t *testing.T) {
	src := "// a comment about ctxt\n\n\t// another\n"
	assert.Equal(t, src, string(Apply([]byte(src), []Rule{{From: "ctx", To: "X"}})))
}

func TestApply_MultipleMatchesPerLine(t *testing.T) {
	rules := []Rule{{From: "a", To: "b"}}
	assert.Equal(t, "b b b", string(Apply([]byte("a a a"), rules)))
}
