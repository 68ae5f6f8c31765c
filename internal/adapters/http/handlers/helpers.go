package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
)

// sessionKeyParam extracts the session key path parameter, falling back to
// the default session when the route carries none.
func sessionKeyParam(r *http.Request) string {
	if key := chi.URLParam(r, "session_key"); key != "" {
		return key
	}
	return conversation.DefaultSessionKey
}

// parseID extracts an integer path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// parseTodoFilter builds a todo filter from the status and project query
// parameters. Returns a *domain.ValidationError for an unknown status.
func parseTodoFilter(r *http.Request) (todo.Filter, error) {
	filter := todo.Filter{
		Project: r.URL.Query().Get("project"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := todo.Status(raw)
		if !status.IsValid() {
			return todo.Filter{}, &domain.ValidationError{
				Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", raw)},
			}
		}
		filter.Status = status
	}

	return filter, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
