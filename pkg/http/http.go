package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cperrin88/exportpoll/pkg/auth"
	"github.com/cperrin88/exportpoll/pkg/errors"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "exportpoll/1.0"

// maxErrorBody caps how much of a failed response is kept as the error message.
const maxErrorBody = 512

// HTTPClient performs JSON requests against the hub and portal backends.
type HTTPClient struct {
	client    *http.Client
	userAgent string
	auth      auth.Authenticator
}

// NewHTTPClient creates a new HTTP client. authenticator may be nil.
func NewHTTPClient(timeout time.Duration, userAgent string, authenticator auth.Authenticator) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		auth:      authenticator,
	}
}

// GetJSON issues a GET request and decodes the JSON body into out.
func (hc *HTTPClient) GetJSON(ctx context.Context, rawURL string, query url.Values, out any) error {
	req, err := hc.newRequest(ctx, http.MethodGet, rawURL, query, http.NoBody)
	if err != nil {
		return err
	}
	return hc.do(req, out)
}

// PostForm issues a form-encoded POST request and decodes the JSON body into out.
func (hc *HTTPClient) PostForm(ctx context.Context, rawURL string, query url.Values, form url.Values, out any) error {
	var body io.Reader = http.NoBody
	if len(form) > 0 {
		body = strings.NewReader(form.Encode())
	}
	req, err := hc.newRequest(ctx, http.MethodPost, rawURL, query, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return hc.do(req, out)
}

func (hc *HTTPClient) newRequest(ctx context.Context, method, rawURL string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request URL %q", rawURL)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", hc.userAgent)
	req.Header.Set("Accept", "application/json")

	if hc.auth != nil {
		if err := hc.auth.Apply(req); err != nil {
			return nil, errors.Wrap(err, "failed to apply authentication")
		}
	}
	return req, nil
}

func (hc *HTTPClient) do(req *http.Request, out any) error {
	// The URL is reported without its query so tokens never end up in errors or logs.
	reportURL := redact(req.URL)

	resp, err := hc.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %s failed", reportURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		text := strings.TrimSpace(string(msg))
		if text == "" {
			text = http.StatusText(resp.StatusCode)
		}
		return errors.NewRemoteServiceError(resp.StatusCode, reportURL, text)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewMalformedResponseError(reportURL, err.Error())
	}
	return nil
}

func redact(u *url.URL) string {
	clean := *u
	clean.RawQuery = ""
	clean.User = nil
	return clean.String()
}
