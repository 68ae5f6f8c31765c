// Package brave adapts the Brave web search API to the ports.SearchClient
// port. Wire types live in dto.go, their projection onto port types in
// translate.go, and HTTP error mapping in errors.go.
package brave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time interface check.
var _ ports.SearchClient = (*Client)(nil)

const (
	// defaultResultCount is used when the caller does not ask for a
	// specific number of results.
	defaultResultCount = 10

	// maxResultCount is the largest count the Brave API accepts.
	maxResultCount = 20
)

// Client is the outbound adapter for the Brave web search API. It implements
// [ports.SearchClient] for the web_search tool.
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting, and health checking for every outbound
// call. Brave's free tier allows one request per second; the client's rate
// limiter should be configured to match.
type Client struct {
	client *httpclient.Client
	apiKey string
	logger *slog.Logger
}

// New creates a Client that authenticates with the given subscription token.
// The httpclient's BaseURL should point at the API root
// (e.g. "https://api.search.brave.com/res/v1").
func New(client *httpclient.Client, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{client: client, apiKey: apiKey, logger: logger}
}

// Search fetches up to count organic web results from GET /web/search.
// A non-positive count falls back to the API default of 10; counts above
// the API maximum of 20 are capped rather than rejected. Returns
// [domain.ErrValidation] when the API rejects the query parameters and
// [domain.ErrExternalService] on transport failures and other error
// statuses. Context cancellation passes through unwrapped.
func (c *Client) Search(ctx context.Context, query string, count int) ([]ports.SearchResult, error) {
	if count <= 0 {
		count = defaultResultCount
	}
	if count > maxResultCount {
		count = maxResultCount
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))

	reqURL := c.client.BaseURL() + "/web/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	var dto searchResponse
	if err := c.execute(req, &dto); err != nil {
		return nil, err
	}

	results := toSearchResults(dto)
	c.logger.DebugContext(ctx, "search completed",
		slog.Int("requested", count),
		slog.Int("returned", len(results)),
	)
	return results, nil
}

// execute sends the request, checks the status code, and decodes the
// response body. It ensures resp.Body is always closed.
func (c *Client) execute(req *http.Request, respBody any) error {
	resp, err := c.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status (e.g. 5xx). In that case,
		// translate the HTTP response into a domain error rather than
		// returning the raw retry error.
		if resp != nil {
			defer c.closeBody(req.Context(), resp)
			if resp.StatusCode != http.StatusOK {
				return translateHTTPError(resp)
			}
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.logger.ErrorContext(req.Context(), "search request failed",
			slog.String("url", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("brave search: %v: %w", err, domain.ErrExternalService)
	}
	defer c.closeBody(req.Context(), resp)

	if resp.StatusCode != http.StatusOK {
		translateErr := translateHTTPError(resp)
		c.logger.ErrorContext(req.Context(), "unexpected search status",
			slog.String("url", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding search response: %w", err)
	}
	return nil
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
