package ned

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// StatusError reports a non-200 response from the calculator, carrying the
// status code and reason phrase. It is the only hard failure mode besides
// transport errors; no retry is attempted.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad response from server: %d %s", e.Code, e.Reason)
}

func (c *Calculator) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-type", "application/x-www-form-urlencoded")

	return req, nil
}

// reasonPhrase strips the leading status code from a status line like
// "500 Internal Server Error".
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
