//go:generate mockgen -destination=mocks/http.go . Client
package http

import (
	"context"
	"net/url"
)

// Client defines the JSON request operations used by the backend clients.
type Client interface {
	// GetJSON issues a GET and decodes the JSON response body into out.
	// A non-2xx response yields a *errors.RemoteServiceError.
	GetJSON(ctx context.Context, rawURL string, query url.Values, out any) error

	// PostForm issues a form-encoded POST and decodes the JSON response body into out.
	// A non-2xx response yields a *errors.RemoteServiceError.
	PostForm(ctx context.Context, rawURL string, query url.Values, form url.Values, out any) error
}
