package likes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client calls the like endpoints of a running API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type likeResponse struct {
	Success   bool   `json:"success"`
	LikeCount int    `json:"likeCount"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// StatusError is a non-success answer from the like endpoints.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("like request failed with status %d: %s", e.StatusCode, e.Message)
}

// Like sends one like and returns the server's new count.
func (c *Client) Like(ctx context.Context, blogID string) (int, error) {
	return c.do(ctx, http.MethodPatch, blogID)
}

// Count fetches the current like count.
func (c *Client) Count(ctx context.Context, blogID string) (int, error) {
	return c.do(ctx, http.MethodGet, blogID)
}

func (c *Client) do(ctx context.Context, method, blogID string) (int, error) {
	if strings.TrimSpace(blogID) == "" {
		return 0, ErrMissingID
	}

	endpoint := fmt.Sprintf("%s/api/blog/%s/like", c.baseURL, url.PathEscape(blogID))
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build like request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send like request: %w", err)
	}
	defer resp.Body.Close()

	var body likeResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return 0, ErrMissingID
	case resp.StatusCode == http.StatusNotFound:
		return 0, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return 0, &StatusError{StatusCode: resp.StatusCode, Message: body.Error}
	case decodeErr != nil:
		return 0, fmt.Errorf("decode like response: %w", decodeErr)
	case !body.Success:
		return 0, &StatusError{StatusCode: resp.StatusCode, Message: body.Error}
	}
	return body.LikeCount, nil
}
