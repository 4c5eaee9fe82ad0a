// cmd/mockcluster runs the in-memory mock search cluster as a standalone
// HTTP server. Useful for poking at the client from the command line
// without a real cluster.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/matthewbaird/searchclient/internal/mockcluster"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mockcluster: ")

	addr := flag.String("addr", ":9200", "listen address")
	name := flag.String("name", "mockcluster", "cluster name reported by the info endpoint")
	flag.Parse()

	cluster := mockcluster.New(*name)
	fmt.Printf("mock cluster %q listening on %s\n", *name, *addr)
	if err := http.ListenAndServe(*addr, cluster.Handler()); err != nil {
		log.Fatalf("serving: %v", err)
	}
}
