package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/shesafe/internal/pkg/circuitbreaker"
	nrpkg "github.com/piresc/shesafe/internal/pkg/newrelic"
	"github.com/piresc/shesafe/internal/pkg/retry"
)

// Client posts to a single upstream with retry on 5xx and transport errors.
// 4xx responses are permanent and returned without retrying.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
}

// BasicAuth holds HTTP basic credentials
type BasicAuth struct {
	Username string
	Password string
}

// Response is a fully read upstream response
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPError represents a non-2xx upstream response
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration, retrier *retry.Retrier, breaker *circuitbreaker.CircuitBreaker) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		retrier:    retrier,
		breaker:    breaker,
	}
}

// PostForm sends an application/x-www-form-urlencoded POST to BaseURL+path
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, auth *BasicAuth) (*Response, error) {
	var result *Response

	attempt := func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, strings.NewReader(form.Encode()))
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")
		if auth != nil {
			req.SetBasicAuth(auth.Username, auth.Password)
		}

		resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
			return c.HTTPClient.Do(req)
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return err
		}

		if resp.StatusCode >= 400 {
			httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
			if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return retry.Permanent(httpErr)
			}
			return httpErr
		}

		result = &Response{StatusCode: resp.StatusCode, Body: body}
		return nil
	}

	guarded := attempt
	if c.breaker != nil {
		guarded = func(ctx context.Context) error {
			return c.breaker.Execute(ctx, attempt)
		}
	}

	var err error
	if c.retrier != nil {
		err = c.retrier.Execute(ctx, guarded)
	} else {
		err = guarded(ctx)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// IsClientError reports whether err is a 4xx upstream rejection
func IsClientError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode >= 400 && httpErr.StatusCode < 500
}
