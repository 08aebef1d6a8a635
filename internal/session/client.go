package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/sweeze/endo/internal/common"
)

// APIPathMarker identifies the automated read-only API. Requests to any
// other URL are human-facing and must be confirmed before they are sent.
const APIPathMarker = "cgi-bin/api.cgi"

// DefaultPrompt is shown when a caller does not supply one.
const DefaultPrompt = "Press enter to continue"

// Author is the nation credited in the User-Agent header.
const Author = "sweeze"

// ConnectionError is returned when a request could not be completed.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Client is the browser-like session shared by every call of a run. Cookies
// set by the host are kept in the underlying jar.
type Client struct {
	rest    *resty.Client
	confirm Confirmer
}

type Options struct {
	// Nation the tool is being used by, reported in the User-Agent.
	Nation string

	// Per request timeout. Zero means requests never time out.
	Timeout time.Duration

	Confirmer Confirmer
}

func NewClient(opts Options) *Client {

	rest := resty.New().
		SetHeader("User-Agent", UserAgent(opts.Nation)).
		SetRedirectPolicy(resty.RedirectPolicyFunc(
			func(_ *http.Request, _ []*http.Request) error {
				// The caller reads 302s itself
				return http.ErrUseLastResponse
			}))

	if opts.Timeout > 0 {
		rest.SetTimeout(opts.Timeout)
	}

	confirm := opts.Confirmer
	if confirm == nil {
		confirm = NewPromptConfirmer()
	}

	return &Client{
		rest:    rest,
		confirm: confirm,
	}
}

// UserAgent builds the identifying header the host admins use to trace the
// script, its author and the nation running it.
func UserAgent(nation string) string {
	return fmt.Sprintf("Endo helper, devved by nation=%s in use by nation=%s", Author, nation)
}

// IsAPIRequest reports whether url points at the automated API.
func IsAPIRequest(url string) bool {
	return common.ContainsInsensitive(url, APIPathMarker)
}

// Send posts payload as a form to url. Non API requests wait on the
// confirmer first and are not sent if confirmation fails.
func (c *Client) Send(ctx context.Context, url string, payload map[string]string, prompt string) (*resty.Response, error) {

	if len(prompt) == 0 {
		prompt = DefaultPrompt
	}

	if !IsAPIRequest(url) {
		if err := c.confirm.Confirm(ctx, prompt); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"url": url,
	}).Debugln("Sending request")

	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormData(payload).
		Post(url)

	if err != nil {
		return nil, &ConnectionError{URL: url, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"url":    url,
		"status": resp.StatusCode(),
	}).Debugln("Received response")

	return resp, nil
}
