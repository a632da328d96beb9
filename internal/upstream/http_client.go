package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mikiyas/txboard/internal/signing"
)

const (
	findByUserEndpoint = "/api/en/transaction/find-by-user"
	searchEndpoint     = "/api/en/transaction/search"

	headerAPIKey    = "YAYA-API-KEY"
	headerTimestamp = "YAYA-API-TIMESTAMP"
	headerSignature = "YAYA-API-SIGN"
)

// HTTPClient talks to the real provider API, signing every request per the
// provider's HMAC contract.
type HTTPClient struct {
	baseURL string
	apiKey  string
	secret  []byte
	http    *http.Client
	now     func() time.Time
}

// NewHTTPClient constructs an HTTPClient from the provided options.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	if opts.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		secret:  []byte(opts.APISecret),
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}, nil
}

// FindByUser implements Client. The page number travels as a query parameter
// but stays out of the signed preimage; the provider signs paths only.
func (c *HTTPClient) FindByUser(ctx context.Context, page string) (*Reply, error) {
	target := c.baseURL + findByUserEndpoint + "?page=" + url.QueryEscape(page)
	return c.do(ctx, http.MethodGet, findByUserEndpoint, target, nil)
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search implements Client. The serialized body is signed byte-for-byte as
// sent.
func (c *HTTPClient) Search(ctx context.Context, query string) (*Reply, error) {
	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}
	target := c.baseURL + searchEndpoint
	return c.do(ctx, http.MethodPost, searchEndpoint, target, body)
}

// Ping implements Client. Any HTTP response counts as reachable; only a
// transport failure is an error.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint, target string, body []byte) (*Reply, error) {
	// Timestamp and signature are captured immediately before send.
	timestamp := signing.Timestamp(c.now())
	signature := signing.Sign(c.secret, timestamp, method, endpoint, string(body))

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerTimestamp, timestamp)
	req.Header.Set(headerSignature, signature)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream %s %s: %w", method, endpoint, err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return &Reply{StatusCode: res.StatusCode, Body: payload}, nil
}
