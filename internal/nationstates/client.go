package nationstates

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	apiPath     = "/cgi-bin/api.cgi"
	loginPath   = "/template-overall=none/page=settings/"
	endorsePath = "/cgi-bin/endorse.cgi"
)

// Sender posts a form, gating it on confirmation when it is not an API
// call. Implemented by session.Client.
type Sender interface {
	Send(ctx context.Context, url string, payload map[string]string, prompt string) (*resty.Response, error)
}

// Client talks to one NationStates host through a shared session.
type Client struct {
	sender  Sender
	baseURL string
}

func NewClient(sender Sender, baseURL string) *Client {
	return &Client{
		sender:  sender,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (c *Client) APIURL() string {
	return c.baseURL + apiPath
}

func (c *Client) LoginURL() string {
	return c.baseURL + loginPath
}

func (c *Client) EndorseURL() string {
	return c.baseURL + endorsePath
}
