package nationstates

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Endorse endorses nation using the local id from Login. The host answers a
// successful endorsement with a redirect, so only a 302 counts as endorsed.
// A rejected endorsement is not an error.
func (c *Client) Endorse(ctx context.Context, nation string, localID string) (bool, error) {

	resp, err := c.sender.Send(ctx, c.EndorseURL(), map[string]string{
		"localid": localID,
		"nation":  nation,
		"action":  "endorse",
	}, fmt.Sprintf("Press enter to endorse %s", nation))

	if err != nil {
		return false, err
	}

	endorsed := resp.StatusCode() == http.StatusFound

	logrus.WithFields(logrus.Fields{
		"nation":   nation,
		"status":   resp.StatusCode(),
		"endorsed": endorsed,
	}).Debugln("Endorse response")

	return endorsed, nil
}
