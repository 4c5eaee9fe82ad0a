// Package searchapi is the typed client surface for the cluster REST API.
//
// Endpoint methods are generated by cmd/apigen from the JSON definitions in
// apispec/; only the core types in this file and its siblings are maintained
// by hand. Methods validate required arguments locally, build the request,
// and delegate to the Transport — transport-level failures propagate to the
// caller unchanged.
package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Transport executes a prepared request against the cluster. The production
// implementation lives in package transport; tests substitute their own.
type Transport interface {
	Perform(ctx context.Context, req *Request) (*Response, error)
}

// Request is one prepared API call.
type Request struct {
	Method      string
	Path        string
	Params      url.Values
	Header      http.Header
	Body        io.Reader
	ContentType string
}

// Response is the raw API response. The body is fully read and the
// underlying connection released before Perform returns.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsError reports whether the response carries a non-2xx status.
func (r *Response) IsError() bool {
	return r.StatusCode > 299
}

// Decode unmarshals the JSON response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

func (r *Response) String() string {
	return fmt.Sprintf("[%d] %s", r.StatusCode, r.Body)
}

func errMissing(method, arg string) error {
	return fmt.Errorf("searchapi: %s: required argument %q is empty", method, arg)
}
