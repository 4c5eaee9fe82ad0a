// cmd/apigen generates the searchapi client from the JSON endpoint
// definitions in apispec/.
//
// It validates apispec/*.json against the endpoint schema, reads output
// settings from codegen/generator.yaml and writes one file per namespace
// into the output package. Method order inside existing files survives
// regeneration so diffs stay minimal.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/lmittmann/tint"

	"github.com/matthewbaird/searchclient/internal/gen"
	"github.com/matthewbaird/searchclient/internal/restspec"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("apigen: ")

	verbose := flag.Bool("v", false, "enable verbose logging")
	settingsPath := flag.String("settings", filepath.Join("codegen", "generator.yaml"), "generator settings, relative to the project root")
	specDir := flag.String("spec", "apispec", "endpoint definition directory, relative to the project root")
	flag.Parse()
	initLogging(*verbose)

	projectRoot := findProjectRoot()

	settings, err := gen.LoadSettings(filepath.Join(projectRoot, *settingsPath))
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}
	slog.Debug("loaded settings", "dir", settings.Output.Dir, "package", settings.Output.Package, "skip", settings.Skip)

	endpoints, err := restspec.Load(filepath.Join(projectRoot, *specDir))
	if err != nil {
		log.Fatalf("loading endpoint definitions: %v", err)
	}
	slog.Debug("loaded endpoints", "count", len(endpoints))

	outDir := filepath.Join(projectRoot, settings.Output.Dir)
	existing := readExisting(outDir)

	files, err := gen.Generate(endpoints, settings, existing)
	if err != nil {
		log.Fatalf("generating: %v", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rel := filepath.Join(settings.Output.Dir, name)
		if bytes.Equal(existing[name], files[name]) {
			slog.Debug("unchanged", "file", rel)
			continue
		}
		if err := os.WriteFile(filepath.Join(outDir, name), files[name], 0o644); err != nil {
			log.Fatalf("writing %s: %v", rel, err)
		}
		fmt.Printf("Generated %s\n", rel)
	}
}

// readExisting collects the current generated files so the generator can
// keep their method order.
func readExisting(dir string) map[string][]byte {
	existing := map[string][]byte{}
	matches, err := filepath.Glob(filepath.Join(dir, "api*.go"))
	if err != nil {
		return existing
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		existing[filepath.Base(path)] = data
	}
	return existing
}

// initLogging configures slog with tint for concise colored output.
func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})))
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
