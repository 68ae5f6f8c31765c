package brave

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// translateHTTPError maps a Brave API error response to a domain error.
// It parses the response body for the API's error envelope, using the
// detail field for context.
//
// 400 and 422 mean the API rejected the request parameters and map to
// [domain.ErrValidation]. Everything else, including auth failures, rate
// limiting, and server errors, maps to [domain.ErrExternalService]: from
// the caller's point of view the search provider failed.
func translateHTTPError(resp *http.Response) error {
	detail := parseErrorDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("brave search: %s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("brave search: subscription token rejected: %s: %w", detail, domain.ErrExternalService)

	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("brave search: rate limited: %s: %w", detail, domain.ErrExternalService)

	default:
		return fmt.Errorf("brave search: status %d: %s: %w", resp.StatusCode, detail, domain.ErrExternalService)
	}
}

// parseErrorDetail attempts to read the error envelope from the response.
// Returns an empty string if the body is missing or not the expected shape.
func parseErrorDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Error.Detail != "" {
		return envelope.Error.Detail
	}
	return envelope.Error.Code
}
