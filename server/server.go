package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"archmap/generator"
	"archmap/scanner"
)

// Server exposes diagram generation for local folders over a small JSON
// API plus one inline page.
type Server struct {
	agent *generator.Agent
	store *diagramStore
}

type diagramStore struct {
	mu       sync.Mutex
	diagrams map[string]storedDiagram
}

type storedDiagram struct {
	Path      string            `json:"path"`
	Diagram   generator.Diagram `json:"diagram"`
	CreatedAt time.Time         `json:"created_at"`
}

func newStore() *diagramStore {
	return &diagramStore{diagrams: make(map[string]storedDiagram)}
}

func (s *diagramStore) set(id string, d storedDiagram) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagrams[id] = d
}

func (s *diagramStore) get(id string) (storedDiagram, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.diagrams[id]
	return d, ok
}

func New(agent *generator.Agent) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	return &Server{agent: agent, store: newStore()}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/diagrams", s.handleDiagramCreate)
	mux.HandleFunc("/api/diagrams/", s.handleDiagramByID)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// --- Handlers ---

type diagramCreateReq struct {
	Path string `json:"path"`
}

type diagramResp struct {
	DiagramID string            `json:"diagram_id"`
	Path      string            `json:"path"`
	Diagram   generator.Diagram `json:"diagram"`
}

func (s *Server) handleDiagramCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req diagramCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}

	tree, err := scanner.Tree(req.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in := generator.Input{Tree: tree, Readme: scanner.Readme(req.Path)}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	diagram, err := s.agent.Generate(ctx, in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	id := newDiagramID()
	s.store.set(id, storedDiagram{Path: req.Path, Diagram: diagram, CreatedAt: time.Now()})
	writeJSON(w, diagramResp{DiagramID: id, Path: req.Path, Diagram: diagram})
}

func (s *Server) handleDiagramByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/diagrams/")
	if id == "" {
		http.Error(w, "diagram id required", http.StatusBadRequest)
		return
	}
	d, ok := s.store.get(id)
	if !ok {
		http.Error(w, "diagram not found", http.StatusNotFound)
		return
	}
	writeJSON(w, diagramResp{DiagramID: id, Path: d.Path, Diagram: d.Diagram})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// --- Helpers ---

func newDiagramID() string {
	return strings.ReplaceAll(time.Now().Format("20060102T150405.000000000"), ".", "")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>archmap</title></head>
<body>
<h1>archmap</h1>
<form id="f"><input id="path" placeholder="/path/to/repo" size="60"><button>Generate</button></form>
<pre class="mermaid" id="out"></pre>
<script type="module">
import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
mermaid.initialize({ startOnLoad: false });
document.getElementById("f").addEventListener("submit", async (e) => {
  e.preventDefault();
  const resp = await fetch("/api/diagrams", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({ path: document.getElementById("path").value }),
  });
  if (!resp.ok) { document.getElementById("out").textContent = await resp.text(); return; }
  const data = await resp.json();
  const out = document.getElementById("out");
  out.textContent = data.diagram.Markup;
  out.removeAttribute("data-processed");
  await mermaid.run({ nodes: [out] });
});
</script>
</body>
</html>
`
