package representatives

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DamDam98/robocall-your-rep/internal/profile"
)

var ErrUpstreamStatus = errors.New("representative lookup returned non-success status")

type Representative struct {
	Name     string `json:"name"`
	Party    string `json:"party"`
	State    string `json:"state"`
	District string `json:"district,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Office   string `json:"office,omitempty"`
	Link     string `json:"link,omitempty"`
}

type LookupResponse struct {
	Results []Representative `json:"results"`
}

// Client talks to the whoismyrepresentative.com style directory. Every call
// goes upstream; nothing is cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Lookup returns the directory's JSON body for zip untouched.
func (c *Client) Lookup(ctx context.Context, zip string) (json.RawMessage, error) {
	if !profile.ValidZip(zip) {
		return nil, fmt.Errorf("%w: %q", profile.ErrInvalidZip, zip)
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse representatives url: %w", err)
	}
	query := endpoint.Query()
	query.Set("zip", zip)
	query.Set("output", "json")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create representatives request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch representatives: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read representatives response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d: %s", ErrUpstreamStatus, resp.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("representatives response is not valid JSON")
	}

	return json.RawMessage(body), nil
}

// Representatives decodes the lookup for zip into typed records.
func (c *Client) Representatives(ctx context.Context, zip string) ([]Representative, error) {
	raw, err := c.Lookup(ctx, zip)
	if err != nil {
		return nil, err
	}

	var decoded LookupResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode representatives: %w", err)
	}
	return decoded.Results, nil
}
