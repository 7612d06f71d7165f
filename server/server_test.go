package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archmap/generator"
)

type stubLLM struct {
	reply string
}

func (s stubLLM) Complete(_ context.Context, _ generator.Prompt) (string, error) {
	return s.reply, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	agent, err := generator.NewAgent(stubLLM{
		reply: "<component_mapping>- App: ./</component_mapping>\nflowchart TD\nA-->B",
	})
	require.NoError(t, err)
	srv, err := New(agent)
	require.NoError(t, err)
	return srv
}

func TestDiagramCreateAndFetch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0o644))

	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	body := strings.NewReader(`{"path":` + jsonQuote(root) + `}`)
	resp, err := http.Post(ts.URL+"/api/diagrams", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created diagramResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.DiagramID)
	assert.Equal(t, "flowchart TD\nA-->B", created.Diagram.Markup)

	resp2, err := http.Get(ts.URL + "/api/diagrams/" + created.DiagramID)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var fetched diagramResp
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&fetched))
	assert.Equal(t, created.Diagram, fetched.Diagram)
}

func TestDiagramCreateRejectsMissingPath(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/diagrams", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDiagramCreateRejectsMissingFolder(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	body := strings.NewReader(`{"path":"/definitely/not/here"}`)
	resp, err := http.Post(ts.URL+"/api/diagrams", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDiagramFetchUnknownID(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/diagrams/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

// jsonQuote escapes a string for embedding in a JSON body.
func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
