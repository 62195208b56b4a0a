package randomuser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/five82/roster/internal/directory"
)

// Ensure Client implements directory.Fetcher at compile time.
var _ directory.Fetcher = (*Client)(nil)

// Client talks to the randomuser HTTP API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

// Options configure the batch a Client requests.
type Options struct {
	BaseURL     string
	Results     int
	Nationality string
	Seed        string
	Timeout     time.Duration
}

const (
	DefaultBaseURL     = "https://randomuser.me/api/"
	DefaultResults     = 12
	DefaultNationality = "us"
	defaultUserAgent   = "roster/0.1"
	defaultTimeout     = 10 * time.Second

	// includedFields limits the payload to what a record needs.
	includedFields = "picture,name,email,location,phone,cell,dob"
)

// NewClient builds a Client. Zero-valued options fall back to defaults.
func NewClient(opts Options) (*Client, error) {
	endpoint, err := buildEndpoint(opts)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the fully resolved request URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// FetchRecords retrieves the batch. Every failure is a *directory.NetworkError.
func (c *Client) FetchRecords(ctx context.Context) (directory.RecordSet, error) {
	if c == nil {
		return nil, &directory.NetworkError{Op: "fetch records", Err: errors.New("client is nil")}
	}
	var payload Response
	if err := c.do(ctx, &payload); err != nil {
		return nil, &directory.NetworkError{Op: "fetch records", Err: err}
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return nil, &directory.NetworkError{Op: "fetch records", Err: fmt.Errorf("api error: %s", msg)}
	}
	return payload.Records(), nil
}

func (c *Client) do(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", c.endpoint.Path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func buildEndpoint(opts Options) (*url.URL, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", opts.BaseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", opts.BaseURL)
	}

	results := opts.Results
	if results <= 0 {
		results = DefaultResults
	}
	nat := strings.TrimSpace(opts.Nationality)
	if nat == "" {
		nat = DefaultNationality
	}

	values := url.Values{}
	values.Set("results", strconv.Itoa(results))
	values.Set("nat", nat)
	values.Set("inc", includedFields)
	if seed := strings.TrimSpace(opts.Seed); seed != "" {
		values.Set("seed", seed)
	}
	u.RawQuery = values.Encode()
	u.Fragment = ""
	return u, nil
}
