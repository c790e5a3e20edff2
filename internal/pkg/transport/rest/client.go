// Package rest provides a small JSON-over-HTTP client for read-only REST APIs.
// Responses are returned as raw JSON so callers decide how to decode them.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrNotFound indicates that the remote server answered 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrUnexpectedStatus indicates that the remote server answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrInvalidJSON indicates that the response body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid json response")
)

// maxErrorBodyBytes bounds how much of an error response is echoed in the error message.
const maxErrorBodyBytes = 256

// Client defines the interface for a generic REST client.
type Client interface {
	// Get sends a GET request for path, relative to the client's base URL,
	// and returns the raw JSON body of a successful response.
	Get(ctx context.Context, path string) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	baseURL    string       // API root every path is resolved against
	httpClient *http.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Get implements Client.
func (c *client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: GET %s", ErrNotFound, path)
	case res.StatusCode < 200 || res.StatusCode > 299:
		return nil, fmt.Errorf("%w: GET %s: [%d] - %s", ErrUnexpectedStatus, path, res.StatusCode, truncate(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: GET %s", ErrInvalidJSON, path)
	}

	return body, nil
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		return s[:maxErrorBodyBytes] + "..."
	}

	return s
}

// NewClient constructs a Client that resolves every path against baseURL and
// sends requests with the given HTTP client.
func NewClient(httpClient *http.Client, baseURL string) *client {
	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}
