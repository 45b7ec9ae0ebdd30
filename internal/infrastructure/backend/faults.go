package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/smartlogi/frontend/internal/api/metrics"
	"github.com/smartlogi/frontend/internal/core/domain"
)

// errorBody is the envelope most backend errors arrive in.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// fault translates a non-2xx response into a *domain.Fault and fires the
// matching global reaction. The translated fault is returned, not swallowed,
// so the calling view can still show a local message.
func (c *Client) fault(method, path string, resp *http.Response) error {
	var body errorBody
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		_ = json.Unmarshal(data, &body)
	}

	metrics.BackendFaultsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	hooks := c.currentHooks()
	fault := &domain.Fault{Status: resp.StatusCode}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		fault.Message = "Session expired. Please sign in again."
		fault.Err = domain.ErrSessionExpired
		c.log.Warn().Str("method", method).Str("path", path).Msg("backend returned 401, forcing logout")
		if hooks.Unauthorized != nil {
			hooks.Unauthorized()
		}
	case http.StatusForbidden:
		fault.Message = "Access denied. You do not have the required permissions."
		fault.Err = domain.ErrForbidden
		c.log.Warn().Str("method", method).Str("path", path).Msg("backend returned 403")
		if hooks.Forbidden != nil {
			hooks.Forbidden()
		}
	case http.StatusNotFound:
		fault.Message = "Resource not found."
		fault.Err = domain.ErrNotFound
	case http.StatusInternalServerError:
		fault.Message = "Server error. Please try again later."
		fault.Err = fmt.Errorf("backend: %s", resp.Status)
	default:
		if msg := body.text(); msg != "" {
			fault.Message = msg
		} else {
			fault.Message = fmt.Sprintf("Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		fault.Err = fmt.Errorf("backend: %s", resp.Status)
	}

	// A 401 from the login endpoint is a rejected credential, not an expired
	// session.
	if resp.StatusCode == http.StatusUnauthorized && strings.Contains(path, loginPath) {
		fault.Message = "Invalid username or password."
		fault.Err = domain.ErrInvalidCredentials
	}

	return fault
}

// connectivityFault covers transport errors where no HTTP status exists.
func (c *Client) connectivityFault(method, path string, err error) error {
	metrics.BackendFaultsTotal.WithLabelValues("0").Inc()
	c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
	return &domain.Fault{
		Status:  0,
		Message: "Unable to reach the server. Check your connection.",
		Err:     fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err),
	}
}

func (c *Client) observe(method string, started time.Time) {
	metrics.BackendRequestDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}
