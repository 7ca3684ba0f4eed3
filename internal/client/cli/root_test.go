package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/token/tokentest"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_Tree(t *testing.T) {
	root := NewRootCommand(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	for _, r := range routes() {
		if r.replOnly {
			continue
		}
		cmd, _, err := root.Find([]string{r.name})
		require.NoError(t, err, r.name)
		assert.Equal(t, r.name, cmd.Name())
		assert.Equal(t, r.short, cmd.Short)
	}

	for _, name := range []string{"config", "server", "db", "timeout", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "a", root.PersistentFlags().Lookup("server").Shorthand)
	assert.Equal(t, "c", root.PersistentFlags().Lookup("config").Shorthand)
}

type backendStub struct {
	mu    sync.Mutex
	auth  []string
	token string
}

func (b *backendStub) router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.auth = append(b.auth, req.Header.Get("Authorization"))
			b.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, req)
		})
	})
	api.HandleFunc("/token", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: b.token, TokenType: "bearer"})
	}).Methods(http.MethodPost)
	api.HandleFunc("/characters", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Character{})
	}).Methods(http.MethodGet)
	api.HandleFunc("/characters/{id}", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Character{ID: mux.Vars(req)["id"], Name: "Vex", Level: 3})
	}).Methods(http.MethodGet)
	return r
}

func (b *backendStub) lastAuth() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.auth[len(b.auth)-1]
}

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(strings.NewReader(input), &out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// A session started by one invocation is restored by the next, until logout.
func TestRootCommand_SessionSurvivesRestart(t *testing.T) {
	plainStdin(t)
	t.Setenv("DK_LOG_LEVEL", "error")

	be := &backendStub{token: tokentest.Mint(t, "alice", 7, time.Now().Add(time.Hour))}
	srv := httptest.NewServer(be.router())
	t.Cleanup(srv.Close)

	common := []string{"--server", srv.URL + "/api/v1", "--db", filepath.Join(t.TempDir(), "state", "dk.db")}
	with := func(cmd ...string) []string { return append(append([]string{}, common...), cmd...) }

	out, err := runRoot(t, "alice\nsecret\n", with("characters")...)
	require.NoError(t, err)
	assert.Contains(t, out, "You need to sign in first.")
	assert.Contains(t, out, "Welcome, alice!")
	assert.Empty(t, be.lastAuth(), "credential exchange goes out anonymous")

	out, err = runRoot(t, "", with("characters")...)
	require.NoError(t, err)
	assert.Contains(t, out, "No characters yet")
	assert.Equal(t, "Bearer "+be.token, be.lastAuth())

	out, err = runRoot(t, "", with("character", "c7")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Vex")
	assert.Contains(t, out, "Level: 3")

	out, err = runRoot(t, "", with("logout")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")

	out, err = runRoot(t, "", with("whoami")...)
	require.Error(t, err, "login prompt runs out of input")
	assert.Contains(t, out, "You need to sign in first.")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	_, err := runRoot(t, "", "--server", "not a url", "--db", filepath.Join(t.TempDir(), "dk.db"), "whoami")
	require.Error(t, err)
}
