package endorse

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweeze/endo/internal/nationstates"
	"github.com/sweeze/endo/internal/session"
)

type countingConfirmer struct {
	prompts []string
}

func (c *countingConfirmer) Confirm(_ context.Context, prompt string) error {
	c.prompts = append(c.prompts, prompt)
	return nil
}

func TestRun_AgainstHost(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/cgi-bin/api.cgi", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<NATION id="the_point"><ENDORSEMENTS>a,b</ENDORSEMENTS></NATION>`)
	})
	mux.HandleFunc("/template-overall=none/page=settings/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "autologin", Value: "yes", Path: "/"})
		fmt.Fprint(w, `<html><body><input type="hidden" name="localid" value="abc123"></body></html>`)
	})
	mux.HandleFunc("/cgi-bin/endorse.cgi", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "abc123", r.PostForm.Get("localid"))

		if _, err := r.Cookie("autologin"); err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		// b has endorsements switched off
		if r.PostForm.Get("nation") == "b" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Location", "/nation="+r.PostForm.Get("nation"))
		w.WriteHeader(http.StatusFound)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	confirmer := &countingConfirmer{}
	client := nationstates.NewClient(
		session.NewClient(session.Options{Nation: "testlandia", Confirmer: confirmer}),
		server.URL,
	)

	var out bytes.Buffer
	summary, err := NewRunner(client, NewWriterReporter(&out), settings).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "the_point"}, summary.Targets)
	assert.Equal(t, []string{"a", "the_point"}, summary.Endorsed)
	assert.Equal(t, []string{"b"}, summary.Failed)
	assert.Equal(t, "Endorsed a\nFailed to endorse b\nEndorsed the_point\n", out.String())

	// Login and each endorsement were gated, the API read was not
	assert.Equal(t, []string{
		"Press enter to log in",
		"Press enter to endorse a",
		"Press enter to endorse b",
		"Press enter to endorse the_point",
	}, confirmer.prompts)
}
