// cmd/driftcheck verifies that the generated client matches the endpoint
// definitions on disk.
//
// It regenerates every output file in memory, byte-compares it against
// what is committed and reports files that drifted. The same comparison
// covers the derived searchapi/simple package. A non-zero exit means the
// tree needs a fresh run of cmd/apigen and cmd/syncgen.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/matthewbaird/searchclient/internal/gen"
	"github.com/matthewbaird/searchclient/internal/restspec"
	"github.com/matthewbaird/searchclient/internal/unasync"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("driftcheck: ")

	projectRoot := findProjectRoot()

	settings, err := gen.LoadSettings(filepath.Join(projectRoot, "codegen", "generator.yaml"))
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}
	endpoints, err := restspec.Load(filepath.Join(projectRoot, "apispec"))
	if err != nil {
		log.Fatalf("loading endpoint definitions: %v", err)
	}

	outDir := filepath.Join(projectRoot, settings.Output.Dir)
	existing := map[string][]byte{}
	matches, _ := filepath.Glob(filepath.Join(outDir, "api*.go"))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("reading %s: %v", path, err)
		}
		existing[filepath.Base(path)] = data
	}

	files, err := gen.Generate(endpoints, settings, existing)
	if err != nil {
		log.Fatalf("generating: %v", err)
	}

	var drifted []string

	fmt.Printf("Phase 1: Comparing %s against apispec definitions...\n", settings.Output.Dir)
	names := sortedKeys(files)
	for _, name := range names {
		rel := filepath.Join(settings.Output.Dir, name)
		if !bytes.Equal(existing[name], files[name]) {
			fmt.Printf("  DRIFT: %s\n", rel)
			drifted = append(drifted, rel)
		}
	}
	for name := range existing {
		if _, ok := files[name]; !ok {
			rel := filepath.Join(settings.Output.Dir, name)
			fmt.Printf("  STALE: %s has no endpoint definition\n", rel)
			drifted = append(drifted, rel)
		}
	}
	if len(drifted) == 0 {
		fmt.Println("  Generated client is in sync.")
	}

	fmt.Println("Phase 2: Comparing searchapi/simple against searchapi...")
	simpleDrift := false
	for _, name := range names {
		want := unasync.File(files[name])
		simplePath := filepath.Join(outDir, "simple", name)
		got, err := os.ReadFile(simplePath)
		if err != nil || !bytes.Equal(got, want) {
			fmt.Printf("  DRIFT: %s\n", filepath.Join(settings.Output.Dir, "simple", name))
			drifted = append(drifted, simplePath)
			simpleDrift = true
		}
	}
	if !simpleDrift {
		fmt.Println("  Derived package is in sync.")
	}

	if len(drifted) > 0 {
		log.Fatalf("%d file(s) drifted; run cmd/apigen and cmd/syncgen", len(drifted))
	}
	fmt.Println("\ndriftcheck: OK — generated code matches the definitions")
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Fatal("cannot find project root (no go.mod found)")
		}
		dir = parent
	}
}
