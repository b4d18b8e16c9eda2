package grafana

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// APIError is returned for any response outside the 2xx range.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Status, e.Message)
}

// IsAlreadyExists reports whether err is a 409 Conflict whose message says the
// resource already exists. Other conflicts, such as a dashboard version
// mismatch, are not.
func IsAlreadyExists(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode != http.StatusConflict {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "already exists")
}

func newAPIError(req *http.Request, res *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		Method:     req.Method,
		Path:       req.URL.Path,
		StatusCode: res.StatusCode,
		Status:     res.Status,
	}

	j, err := decodeResponse(body)
	if err == nil {
		if msg, err := j.Get("message").AsString(); err == nil {
			apiErr.Message = msg
			return apiErr
		}
	}
	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
