package cli

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range GetCommandOptions().Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["run"])
	assert.True(t, names["list"])
	assert.True(t, names["version"])
}

func TestListCommand(t *testing.T) {
	var gated bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi-bin/api.cgi" {
			gated = true
		}
		fmt.Fprint(w, `<NATION id="the_point"><ENDORSEMENTS>a,b</ENDORSEMENTS></NATION>`)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(`main_nation = "testlandia"
wa_nation = "testlandia_wa"
password = "hunter2"
point = "the_point"

[nationstates]
base_url = %q

[confirm]
mode = "line"
`, server.URL)), 0o600))

	rootCmd.SetArgs([]string{"list", "--config", path})
	require.NoError(t, rootCmd.Execute())

	assert.False(t, gated)
	assert.Equal(t, "the_point", cfg.Point)
}

func TestMissingConfigFails(t *testing.T) {
	rootCmd.SetArgs([]string{"list", "--config", filepath.Join(t.TempDir(), "config.toml")})
	assert.Error(t, rootCmd.Execute())
}
