package httpapi

// #region imports
import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielpatrickdp/socratic-tutor/internal/auth"
	"github.com/danielpatrickdp/socratic-tutor/internal/orchestrator"
	"github.com/danielpatrickdp/socratic-tutor/internal/store"
)

// #endregion

// #region server-struct

// Server is the HTTP surface of the tutor backend.
type Server struct {
	orch      *orchestrator.Orchestrator
	auth      *auth.Service
	store     *store.Store
	staticDir string
	server    *http.Server
}

// NewServer wires the HTTP surface. staticDir may be empty to disable the
// landing page and static assets.
func NewServer(addr, staticDir string, orch *orchestrator.Orchestrator, authSvc *auth.Service, st *store.Store) *Server {
	s := &Server{
		orch:      orch,
		auth:      authSvc,
		store:     st,
		staticDir: staticDir,
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      withCORS(s.routes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // two model calls can take a while
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// #endregion server-struct

// #region routes

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/stats/", s.handleStats)
	if s.staticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	}
	mux.HandleFunc("/", s.handleRoot)
	return mux
}

// #endregion routes

// #region lifecycle

// Start blocks serving HTTP until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// #endregion lifecycle

// #region root

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.staticDir == "" {
		fmt.Fprintln(w, "socratic tutor backend")
		return
	}
	http.ServeFile(w, r, s.staticDir+"/landing.html")
}

// #endregion root
