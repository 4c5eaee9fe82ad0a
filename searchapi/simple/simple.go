// Package simple exposes the search API without context plumbing. Every
// method mirrors its searchapi counterpart minus the context argument and
// dispatches with context.Background. The api*.go files in this package are
// produced by cmd/syncgen from the searchapi sources; only this file and
// client.go are written by hand.
package simple

import (
	"fmt"

	"github.com/matthewbaird/searchclient/searchapi"
)

// Aliases into the parent package so request structs and transports are
// interchangeable between the two client surfaces.
type (
	Transport     = searchapi.Transport
	Request       = searchapi.Request
	Response      = searchapi.Response
	RequestOption = searchapi.RequestOption
)

func applyOptions(r *Request, opts []RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

func errMissing(method, arg string) error {
	return fmt.Errorf("searchapi: %s: required argument %q is empty", method, arg)
}
