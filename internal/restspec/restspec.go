// Package restspec reads a directory of JSON REST API endpoint definitions
// into an in-memory model the code generator renders from.
//
// Each file defines exactly one endpoint, keyed by its dotted name
// ("cat.aliases", "snapshot.create", or an un-dotted root name like "search").
// The special file _common.json declares query parameters accepted by every
// endpoint; they are folded into each Endpoint at load time.
package restspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Endpoint is one REST API endpoint as described by its spec file.
type Endpoint struct {
	Name          string // dotted spec name, e.g. "cat.aliases"
	Namespace     string // "" for root endpoints
	MethodName    string // Go method name, e.g. "Aliases"
	Documentation Documentation
	Stability     string
	Paths         []Path
	Params        []Param // sorted by name, common params included
	Body          *Body
}

// Documentation holds the doc link and summary used in generated comments.
type Documentation struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Path is one URL variant of an endpoint.
type Path struct {
	Path    string
	Methods []string
	Parts   []Part // in order of appearance in Path
}

// Part is a dynamic path segment such as {index}.
type Part struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Param is a query-string parameter.
type Param struct {
	Name        string
	Type        string
	Description string
	Options     []string
	Default     any
	Common      bool // declared in _common.json
}

// Body describes the request body, when the endpoint accepts one.
type Body struct {
	Description string
	Required    bool
	NDJSON      bool // "serialize": "bulk" in the spec
}

// RequiredParts returns the path parts every URL variant demands, in the
// order they appear in the longest variant. A part is required when the spec
// marks it required or when it occurs in every variant.
func (e *Endpoint) RequiredParts() []Part {
	if len(e.Paths) == 0 {
		return nil
	}
	counts := map[string]int{}
	marked := map[string]bool{}
	for _, p := range e.Paths {
		for _, part := range p.Parts {
			counts[part.Name]++
			if part.Required {
				marked[part.Name] = true
			}
		}
	}
	longest := e.Paths[0]
	for _, p := range e.Paths[1:] {
		if len(p.Parts) > len(longest.Parts) {
			longest = p
		}
	}
	var out []Part
	for _, part := range longest.Parts {
		if marked[part.Name] || counts[part.Name] == len(e.Paths) {
			part.Required = true
			out = append(out, part)
		}
	}
	return out
}

// OptionalParts returns path parts that appear in some but not all variants
// and carry no required marker.
func (e *Endpoint) OptionalParts() []Part {
	required := map[string]bool{}
	for _, p := range e.RequiredParts() {
		required[p.Name] = true
	}
	seen := map[string]bool{}
	var out []Part
	for _, p := range e.Paths {
		for _, part := range p.Parts {
			if required[part.Name] || seen[part.Name] {
				continue
			}
			seen[part.Name] = true
			out = append(out, part)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ─── JSON wire shapes ────────────────────────────────────────────────────────

type endpointFile map[string]endpointDef

type endpointDef struct {
	Documentation Documentation       `json:"documentation"`
	Stability     string              `json:"stability"`
	URL           urlDef              `json:"url"`
	Params        map[string]paramDef `json:"params"`
	Body          *bodyDef            `json:"body"`
}

type urlDef struct {
	Paths []pathDef `json:"paths"`
}

type pathDef struct {
	Path    string             `json:"path"`
	Methods []string           `json:"methods"`
	Parts   map[string]partDef `json:"parts"`
}

type partDef struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type paramDef struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
	Default     any      `json:"default"`
}

type bodyDef struct {
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Serialize   string `json:"serialize"`
}

type commonFile struct {
	Documentation string              `json:"documentation"`
	Params        map[string]paramDef `json:"params"`
}

// ─── Model construction ──────────────────────────────────────────────────────

func newEndpoint(name string, def endpointDef, common map[string]paramDef) (Endpoint, error) {
	if len(def.URL.Paths) == 0 {
		return Endpoint{}, fmt.Errorf("endpoint %s: no url paths", name)
	}
	e := Endpoint{
		Name:          name,
		Documentation: def.Documentation,
		Stability:     def.Stability,
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		e.Namespace = name[:i]
		e.MethodName = ToPascal(name[i+1:])
	} else {
		e.MethodName = ToPascal(name)
	}

	for _, pd := range def.URL.Paths {
		p := Path{Path: pd.Path, Methods: pd.Methods}
		for _, partName := range partOrder(pd.Path) {
			decl, ok := pd.Parts[partName]
			if !ok {
				return Endpoint{}, fmt.Errorf("endpoint %s: path %s references undeclared part {%s}", name, pd.Path, partName)
			}
			p.Parts = append(p.Parts, Part{
				Name:        partName,
				Type:        decl.Type,
				Description: decl.Description,
				Required:    decl.Required,
			})
		}
		for partName := range pd.Parts {
			if !strings.Contains(pd.Path, "{"+partName+"}") {
				return Endpoint{}, fmt.Errorf("endpoint %s: part %s not present in path %s", name, partName, pd.Path)
			}
		}
		e.Paths = append(e.Paths, p)
	}

	for pname, pd := range def.Params {
		e.Params = append(e.Params, Param{
			Name:        pname,
			Type:        pd.Type,
			Description: pd.Description,
			Options:     pd.Options,
			Default:     pd.Default,
		})
	}
	for pname, pd := range common {
		if _, dup := def.Params[pname]; dup {
			continue
		}
		e.Params = append(e.Params, Param{
			Name:        pname,
			Type:        pd.Type,
			Description: pd.Description,
			Options:     pd.Options,
			Default:     pd.Default,
			Common:      true,
		})
	}
	sort.Slice(e.Params, func(i, j int) bool { return e.Params[i].Name < e.Params[j].Name })

	if def.Body != nil {
		e.Body = &Body{
			Description: def.Body.Description,
			Required:    def.Body.Required,
			NDJSON:      def.Body.Serialize == "bulk",
		}
	}
	return e, nil
}

// partOrder extracts {part} names in order of appearance.
func partOrder(path string) []string {
	var names []string
	for {
		i := strings.IndexByte(path, '{')
		if i < 0 {
			return names
		}
		j := strings.IndexByte(path[i:], '}')
		if j < 0 {
			return names
		}
		names = append(names, path[i+1:i+j])
		path = path[i+j+1:]
	}
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
