package http

import (
	"context"
	"fmt"
)

// Request represents an HTTP GET request with various configuration options.
type Request struct {
	requestClient      *Client
	requestCtx         context.Context
	requestPath        string
	requestSuccessResp any
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient: client,
		requestCtx:    context.Background(),
		requestPath:   "/",
	}
}

// WithContext sets the context that bounds the request.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.requestCtx = ctx
	return r
}

// WithPath sets the path for the request.
func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

// WithSuccessResp sets the target the 2xx body is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.requestSuccessResp = successResp
	return r
}

// Execute sends the request and returns the success response, status code, and error if any.
func (r *Request) Execute() (any, int, error) {
	if r.requestClient == nil {
		return nil, 0, fmt.Errorf("client is required")
	}
	if r.requestPath == "" {
		return nil, 0, fmt.Errorf("path is required")
	}
	if r.requestCtx == nil {
		r.requestCtx = context.Background()
	}

	return r.requestClient.Get(r.requestCtx, r.requestPath, nil, r.requestSuccessResp)
}
