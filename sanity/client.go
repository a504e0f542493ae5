// Package sanity reads content from, and increments like counts on, a
// hosted Sanity dataset over its HTTP API.
package sanity

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

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

const maxResponseBytes = 10 << 20

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	// UseCDN reads through the API CDN. Ignored when Token is set.
	UseCDN bool
	// BaseURL replaces both API hosts, for tests and proxies.
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	queryURL  string
	mutateURL string
	http      *http.Client
	logger    zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" && cfg.BaseURL == "" {
		return nil, errs.NewEnvironmentVariableError("SANITY_PROJECT_ID")
	}
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	version := strings.TrimPrefix(cfg.APIVersion, "v")
	if version == "" {
		version = "2024-01-01"
	}

	apiHost := fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	readHost := apiHost
	if cfg.UseCDN && cfg.Token == "" {
		readHost = fmt.Sprintf("https://%s.apicdn.sanity.io", cfg.ProjectID)
	}
	if cfg.BaseURL != "" {
		apiHost = strings.TrimRight(cfg.BaseURL, "/")
		readHost = apiHost
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Token != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		authed := *httpClient
		authed.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"}),
			Base:   base,
		}
		httpClient = &authed
	}

	return &Client{
		queryURL:  fmt.Sprintf("%s/v%s/data/query/%s", readHost, version, url.PathEscape(cfg.Dataset)),
		mutateURL: fmt.Sprintf("%s/v%s/data/mutate/%s", apiHost, version, url.PathEscape(cfg.Dataset)),
		http:      httpClient,
		logger:    log.With().Str("component", "sanity").Logger(),
	}, nil
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

type apiError struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
		Items       []struct {
			Error struct {
				Description string `json:"description"`
				ID          string `json:"id"`
				Type        string `json:"type"`
			} `json:"error"`
		} `json:"items"`
	} `json:"error"`
}

func (e apiError) documentNotFound() bool {
	for _, item := range e.Error.Items {
		if item.Error.Type == "documentNotFoundError" {
			return true
		}
	}
	return false
}

// Query runs a GROQ query and decodes its result into out. It reports
// whether the result was non-null.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, out any) (bool, error) {
	values := url.Values{}
	values.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return false, fmt.Errorf("encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL+"?"+values.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	body, status, err := c.send(req)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, upstreamError("query", status, body)
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("decode query response: %w", err)
	}
	c.logger.Debug().Dur("elapsed", time.Since(start)).Int("serverMs", resp.Ms).Msg("query")

	if len(resp.Result) == 0 || string(resp.Result) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return false, fmt.Errorf("decode query result: %w", err)
	}
	return true, nil
}

// Patch targets either one document by ID or every document matched by Query.
type Patch struct {
	ID           string         `json:"id,omitempty"`
	Query        string         `json:"query,omitempty"`
	Params       map[string]any `json:"params,omitempty"`
	SetIfMissing map[string]any `json:"setIfMissing,omitempty"`
	Inc          map[string]int `json:"inc,omitempty"`
}

type Mutation struct {
	Patch *Patch `json:"patch,omitempty"`
}

type mutateRequest struct {
	Mutations []Mutation `json:"mutations"`
}

type MutationResult struct {
	ID        string          `json:"id"`
	Operation string          `json:"operation"`
	Document  json.RawMessage `json:"document"`
}

type mutateResponse struct {
	TransactionID string           `json:"transactionId"`
	Results       []MutationResult `json:"results"`
}

// Mutate commits mutations as one transaction and returns the affected
// documents. A patch on a missing document yields errs.ErrNotFound.
func (c *Client) Mutate(ctx context.Context, mutations ...Mutation) ([]MutationResult, error) {
	payload, err := json.Marshal(mutateRequest{Mutations: mutations})
	if err != nil {
		return nil, fmt.Errorf("encode mutations: %w", err)
	}

	endpoint := c.mutateURL + "?returnDocuments=true&visibility=sync"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, status, err := c.send(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		var apiErr apiError
		if status == http.StatusNotFound || (json.Unmarshal(body, &apiErr) == nil && apiErr.documentNotFound()) {
			return nil, errs.ErrNotFound
		}
		return nil, upstreamError("mutate", status, body)
	}

	var resp mutateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode mutate response: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, errs.ErrNotFound
	}
	c.logger.Debug().Str("transactionId", resp.TransactionID).Int("results", len(resp.Results)).Msg("mutate")
	return resp.Results, nil
}

func (c *Client) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("sanity %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read sanity response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func upstreamError(operation string, status int, body []byte) error {
	var apiErr apiError
	description := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Description != "" {
		description = apiErr.Error.Description
	}
	if len(description) > 200 {
		description = description[:200]
	}
	return errs.NewUpstreamError(operation, status, fmt.Errorf("%s", description))
}

func decodeDocument(result MutationResult, out any) error {
	if len(result.Document) == 0 || string(result.Document) == "null" {
		return errs.ErrNotFound
	}
	if err := json.Unmarshal(result.Document, out); err != nil {
		return fmt.Errorf("decode mutated document %s: %w", result.ID, err)
	}
	return nil
}
