package nationstates

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ConnectionError is an unexpected status from the host.
type ConnectionError struct {
	StatusCode int
	Reason     string
}

func newConnectionError(resp *resty.Response) *ConnectionError {
	return &ConnectionError{
		StatusCode: resp.StatusCode(),
		Reason:     reasonPhrase(resp),
	}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unexpected response (%d, %s)", e.StatusCode, e.Reason)
}

// ParseError is a response body without the data it should carry.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("failed to parse %s", e.What)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func reasonPhrase(resp *resty.Response) string {
	code := resp.StatusCode()
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code)))
	if len(reason) == 0 {
		return http.StatusText(code)
	}
	return reason
}
