package nationstates

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// Login signs in as nation and returns the local id the host requires on
// every form submission for the rest of the session.
func (c *Client) Login(ctx context.Context, nation string, password string) (string, error) {

	resp, err := c.sender.Send(ctx, c.LoginURL(), map[string]string{
		"logging_in": "1",
		"nation":     nation,
		"password":   password,
	}, "Press enter to log in")

	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", newConnectionError(resp)
	}

	localID, err := ExtractLocalID(resp.Body())
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"nation": nation,
	}).Infoln("Logged in")

	return localID, nil
}

// ExtractLocalID finds the value of the localid input on a page.
func ExtractLocalID(page []byte) (string, error) {

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", &ParseError{What: "login page", Err: err}
	}

	value, ok := doc.Find("input[name=localid]").First().Attr("value")
	if !ok {
		return "", &ParseError{
			What: "login page",
			Err:  errors.New("no localid input"),
		}
	}

	return value, nil
}
