package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	DefaultEndpoint  = "https://api.nasa.gov/planetary/apod"
	DefaultAPIKey    = "DEMO_KEY"
	defaultUserAgent = "apod98/1.0"
	defaultTimeout   = 10 * time.Second
	maxBodyBytes     = 1 << 20
)

// Options configure a Client. Zero values use the defaults above.
type Options struct {
	Endpoint   string
	APIKey     string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Client talks to the APOD HTTP API.
type Client struct {
	endpoint  *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	endpoint, err := parseEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint:  endpoint,
		apiKey:    apiKey,
		http:      httpClient,
		userAgent: userAgent,
	}, nil
}

// Endpoint returns the resolved endpoint URL without query parameters.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Fetch issues exactly one GET for date ("" for today) and classifies the
// outcome as a Record, a *ProviderError or a *TransportError.
func (c *Client) Fetch(ctx context.Context, date string) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("api_key", c.apiKey)
	values.Set("thumbs", "true")
	if date = strings.TrimSpace(date); date != "" {
		values.Set("date", date)
	}
	reqURL := *c.endpoint
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Record{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, &TransportError{Op: "execute request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Record{}, &TransportError{Op: "read response", Err: err}
	}
	return decodeResponse(resp.StatusCode, body)
}

func decodeResponse(status int, body []byte) (Record, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		if isNotFoundStatus(status) {
			return Record{}, &ProviderError{Kind: KindNotFound, Status: status, Code: status}
		}
		return Record{}, &ProviderError{Kind: KindMalformed, Status: status, Err: fmt.Errorf("decode response: %w", err)}
	}

	if hasValue(p.Code) {
		code := numericCode(p.Code)
		kind := KindMalformed
		if isNotFoundStatus(code) {
			kind = KindNotFound
		}
		return Record{}, &ProviderError{Kind: kind, Status: status, Code: code, Msg: strings.TrimSpace(p.Msg)}
	}

	if p.Error != nil {
		kind := KindMalformed
		code := numericCode(p.Error.Code)
		if isNotFoundStatus(status) || isNotFoundStatus(code) {
			kind = KindNotFound
		}
		return Record{}, &ProviderError{Kind: kind, Status: status, Code: code, Msg: strings.TrimSpace(p.Error.Message)}
	}

	if status >= 400 {
		kind := KindMalformed
		if isNotFoundStatus(status) {
			kind = KindNotFound
		}
		return Record{}, &ProviderError{Kind: kind, Status: status, Code: status}
	}

	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Date) == "" {
		return Record{}, &ProviderError{Kind: KindMalformed, Status: status, Err: errors.New("response missing title or date")}
	}
	return p.record(), nil
}

func hasValue(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func isNotFoundStatus(code int) bool {
	return code == http.StatusBadRequest || code == http.StatusNotFound
}

func parseEndpoint(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
