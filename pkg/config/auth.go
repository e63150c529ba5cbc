package config

import "github.com/cperrin88/exportpoll/pkg/auth"

// AuthConfig holds optional credentials for the hub. Only one method is used;
// bearer wins over header.
type AuthConfig struct {
	HeaderAuth *HeaderAuth `yaml:"header,omitempty"`
	BearerAuth *BearerAuth `yaml:"bearer,omitempty"`
}

// HeaderAuth holds configuration for custom header-based authentication.
type HeaderAuth struct {
	Headers map[string]string `yaml:"headers"`
}

// BearerAuth holds configuration for Bearer token authentication.
type BearerAuth struct {
	Token string `yaml:"token"`
}

// ToAuthenticator converts the HeaderAuth configuration to an Authenticator.
func (h *HeaderAuth) ToAuthenticator() auth.Authenticator {
	return auth.HeaderAuth{Headers: h.Headers}
}

// ToAuthenticator converts the BearerAuth configuration to an Authenticator.
func (b *BearerAuth) ToAuthenticator() auth.Authenticator {
	return auth.BearerAuth{Token: b.Token}
}

// HubAuthenticator returns the authenticator for hub requests, or nil for anonymous access.
func (c *Config) HubAuthenticator() auth.Authenticator {
	a := c.Hub.Auth
	switch {
	case a == nil:
		return nil
	case a.BearerAuth != nil:
		return a.BearerAuth.ToAuthenticator()
	case a.HeaderAuth != nil:
		return a.HeaderAuth.ToAuthenticator()
	default:
		return nil
	}
}

// PortalAuthenticator returns the authenticator for portal requests.
func (c *Config) PortalAuthenticator() auth.Authenticator {
	return auth.TokenAuth{Token: c.Portal.Token}
}
