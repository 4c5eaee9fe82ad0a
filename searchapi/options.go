package searchapi

import "net/http"

// RequestOption customizes a single API call after the generated method has
// built the request.
type RequestOption func(*Request)

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = http.Header{}
		}
		r.Header.Set(key, value)
	}
}

// WithParam sets a raw query parameter, overriding any value the generated
// method produced for the same name.
func WithParam(name, value string) RequestOption {
	return func(r *Request) {
		r.Params.Set(name, value)
	}
}

// WithOpaqueID tags the call with an X-Opaque-Id header so it can be traced
// through the cluster's task management APIs.
func WithOpaqueID(id string) RequestOption {
	return WithHeader("X-Opaque-Id", id)
}

func applyOptions(r *Request, opts []RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}
