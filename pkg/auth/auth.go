// Package auth applies pre-issued credentials to outgoing backend requests.
// Acquiring or refreshing credentials is left to the caller.
//
//go:generate mockgen -destination=./mocks/auth.go . Authenticator
package auth

import "net/http"

// Authenticator defines the interface for applying authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request) error
	Type() Type
}

// TokenAuth passes a portal token as the "token" query parameter.
type TokenAuth struct {
	Token string
}

// HeaderAuth represents authentication via custom HTTP headers.
type HeaderAuth struct {
	Headers map[string]string
}

// BearerAuth represents Bearer token authentication.
type BearerAuth struct {
	Token string
}

// Type represents the type of authentication.
type Type string

// Authentication types.
const (
	// TokenAuthType represents a token carried in the query string.
	TokenAuthType Type = "token"
	// HeaderAuthType represents custom header-based authentication.
	HeaderAuthType Type = "header"
	// BearerAuthType represents Bearer token authentication.
	BearerAuthType Type = "bearer"
)

// tokenParam is the query parameter portal endpoints read the token from.
const tokenParam = "token"

// Apply sets the token query parameter. An empty token leaves the request anonymous.
func (t TokenAuth) Apply(req *http.Request) error {
	if t.Token == "" {
		return nil
	}
	q := req.URL.Query()
	q.Set(tokenParam, t.Token)
	req.URL.RawQuery = q.Encode()
	return nil
}

// Type returns the authentication type (TokenAuthType).
func (t TokenAuth) Type() Type { return TokenAuthType }

// Apply adds custom headers to the HTTP request.
func (h HeaderAuth) Apply(req *http.Request) error {
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	return nil
}

// Type returns the authentication type (HeaderAuthType).
func (h HeaderAuth) Type() Type { return HeaderAuthType }

// Apply adds a Bearer token to the Authorization header of the HTTP request.
func (b BearerAuth) Apply(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

// Type returns the authentication type (BearerAuthType).
func (b BearerAuth) Type() Type { return BearerAuthType }
