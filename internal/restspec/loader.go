package restspec

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

// CommonFileName is the per-directory file holding shared query parameters.
const CommonFileName = "_common.json"

// Load reads every endpoint definition under dir and returns the endpoints
// sorted by name. Shared parameters from _common.json are folded into each
// endpoint. Every file is validated against the CUE schema before decoding.
func Load(dir string) ([]Endpoint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading spec dir: %w", err)
	}

	cuectx := cuecontext.New()
	epSchema := cuectx.CompileString(endpointSchema, cue.Filename("endpoint_schema.cue"))
	if epSchema.Err() != nil {
		return nil, fmt.Errorf("compiling endpoint schema: %w", epSchema.Err())
	}
	cmSchema := cuectx.CompileString(commonSchema, cue.Filename("common_schema.cue"))
	if cmSchema.Err() != nil {
		return nil, fmt.Errorf("compiling common schema: %w", cmSchema.Err())
	}

	common := map[string]paramDef{}
	commonPath := filepath.Join(dir, CommonFileName)
	if data, err := os.ReadFile(commonPath); err == nil {
		if err := validate(cuectx, cmSchema, CommonFileName, data); err != nil {
			return nil, err
		}
		var cf commonFile
		if err := decodeStrict(data, &cf); err != nil {
			return nil, fmt.Errorf("%s: %w", CommonFileName, err)
		}
		common = cf.Params
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	var endpoints []Endpoint
	seen := map[string]string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == CommonFileName || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if err := validate(cuectx, epSchema, name, data); err != nil {
			return nil, err
		}
		var file endpointFile
		if err := decodeStrict(data, &file); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(file) != 1 {
			return nil, fmt.Errorf("%s: expected exactly one endpoint definition, got %d", name, len(file))
		}
		for epName, def := range file {
			if prev, dup := seen[epName]; dup {
				return nil, fmt.Errorf("%s: endpoint %s already defined in %s", name, epName, prev)
			}
			seen[epName] = name
			ep, err := newEndpoint(epName, def, common)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			endpoints = append(endpoints, ep)
		}
	}

	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Name < endpoints[j].Name })
	return endpoints, nil
}

// validate unifies the file's JSON with the schema and reports the first
// violation with its CUE path.
func validate(cuectx *cue.Context, schema cue.Value, filename string, data []byte) error {
	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	val := cuectx.BuildExpr(expr)
	if val.Err() != nil {
		return fmt.Errorf("%s: %w", filename, val.Err())
	}
	if err := schema.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s: schema violation:\n%s", filename, cueerrors.Details(err, nil))
	}
	return nil
}
