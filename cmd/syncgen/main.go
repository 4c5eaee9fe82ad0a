// cmd/syncgen derives the searchapi/simple package from the generated
// searchapi sources.
//
// It rewrites each generated api*.go file token by token: the package
// clause becomes "simple", the leading context argument disappears from
// every method and the transport dispatch switches to context.Background.
// Everything else, line for line, stays identical to the source package.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/matthewbaird/searchclient/internal/unasync"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("syncgen: ")

	projectRoot := findProjectRoot()
	srcDir := filepath.Join(projectRoot, "searchapi")
	outDir := filepath.Join(srcDir, "simple")

	matches, err := filepath.Glob(filepath.Join(srcDir, "api*.go"))
	if err != nil {
		log.Fatalf("listing sources: %v", err)
	}
	if len(matches) == 0 {
		log.Fatal("no generated api*.go files found; run cmd/apigen first")
	}
	sort.Strings(matches)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("creating %s: %v", outDir, err)
	}

	for _, path := range matches {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("reading %s: %v", path, err)
		}
		out := unasync.File(src)

		name := filepath.Base(path)
		outPath := filepath.Join(outDir, name)
		prev, _ := os.ReadFile(outPath)
		if bytes.Equal(prev, out) {
			continue
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			log.Fatalf("writing %s: %v", outPath, err)
		}
		fmt.Printf("Generated searchapi/simple/%s\n", name)
	}
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
			log.Fatal("could not find project root")
		}
		dir = parent
	}
}
