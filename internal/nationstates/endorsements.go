package nationstates

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

type nationEndorsements struct {
	XMLName      xml.Name `xml:"NATION"`
	Endorsements *string  `xml:"ENDORSEMENTS"`
}

// ParseEndorsements extracts the ENDORSEMENTS field of an API response.
func ParseEndorsements(body []byte) (string, error) {

	var nation nationEndorsements
	if err := xml.Unmarshal(body, &nation); err != nil {
		return "", &ParseError{What: "endorsements response", Err: err}
	}

	if nation.Endorsements == nil {
		return "", &ParseError{
			What: "endorsements response",
			Err:  errors.New("no ENDORSEMENTS element"),
		}
	}

	return strings.TrimSpace(*nation.Endorsements), nil
}

// SplitEndorsements splits the comma separated field in order. An empty
// field gives a single empty id.
func SplitEndorsements(field string) []string {
	return strings.Split(field, ",")
}

// Endorsements returns the nations currently endorsing nation, in the order
// the API lists them.
func (c *Client) Endorsements(ctx context.Context, nation string) ([]string, error) {

	resp, err := c.sender.Send(ctx, c.APIURL(), map[string]string{
		"q":      "endorsements",
		"nation": nation,
	}, "")

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, newConnectionError(resp)
	}

	field, err := ParseEndorsements(resp.Body())
	if err != nil {
		return nil, err
	}

	return SplitEndorsements(field), nil
}

// CrossList builds the list of nations to endorse from the endorsers of
// point. When excluded is not one of them, point itself is appended.
func (c *Client) CrossList(ctx context.Context, point string, excluded string) ([]string, error) {

	nations, err := c.Endorsements(ctx, point)
	if err != nil {
		return nil, err
	}

	nations = AppendPoint(nations, point, excluded)

	logrus.WithFields(logrus.Fields{
		"point":   point,
		"nations": len(nations),
	}).Debugln("Resolved cross list")

	return nations, nil
}

// AppendPoint adds point to the end of nations unless excluded is already
// listed. The membership check is on excluded, the append is of point.
func AppendPoint(nations []string, point string, excluded string) []string {
	if slices.Contains(nations, excluded) {
		return nations
	}
	return append(nations, point)
}
