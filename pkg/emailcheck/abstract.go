package emailcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrUpstream wraps every failure to obtain a usable answer from the
// verification service.
var ErrUpstream = errors.New("emailcheck: verification service unavailable")

// AbstractClient queries the Abstract email validation API.
// It holds no mutable state and is safe for concurrent use.
type AbstractClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewAbstractClient builds a client for endpoint. A nil httpClient uses
// http.DefaultClient, so no timeout beyond the transport defaults applies.
func NewAbstractClient(endpoint, apiKey string, httpClient *http.Client) *AbstractClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AbstractClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   httpClient,
	}
}

// IsConfigured reports whether an API key is present
func (c *AbstractClient) IsConfigured() bool {
	return c.endpoint != "" && c.apiKey != ""
}

// Check performs exactly one lookup for addr and evaluates it.
// Any transport, status or decoding failure is returned wrapped in ErrUpstream.
func (c *AbstractClient) Check(ctx context.Context, addr string) (Verdict, error) {
	resp, err := c.lookup(ctx, addr)
	if err != nil {
		return Invalid(InvalidReason), err
	}
	return Evaluate(*resp), nil
}

func (c *AbstractClient) lookup(ctx context.Context, addr string) (*Response, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint: %v", ErrUpstream, err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("email", addr)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")

	res, err := c.client.Do(req)
	if err != nil {
		// *url.Error carries the full request URL, api_key included
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		bare := *u
		bare.RawQuery = ""
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUpstream, http.MethodGet, bare.Redacted(), err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, res.StatusCode)
	}

	var payload Response
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return &payload, nil
}
