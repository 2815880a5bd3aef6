package httpapi

// #region imports
import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/danielpatrickdp/socratic-tutor/internal/auth"
	"github.com/danielpatrickdp/socratic-tutor/internal/orchestrator"
)

// #endregion

// #region json-helpers

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// #endregion json-helpers

// #region auth-handlers

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	learnerID, err := s.auth.Register(req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, auth.ErrMissingFields):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		log.Printf("[HTTP] register failed: %v", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"user_id": learnerID})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	learnerID, err := s.auth.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case err != nil:
		log.Printf("[HTTP] login failed: %v", err)
		writeError(w, http.StatusInternalServerError, "login failed")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"user_id": learnerID})
	}
}

// #endregion auth-handlers

// #region chat-handler

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req orchestrator.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.orch.Run(r.Context(), req)
	if err != nil {
		var oerr *orchestrator.Error
		if errors.As(err, &oerr) && oerr.Kind == orchestrator.KindInput {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Configuration, generation, and persistence failures are all
		// service-side; the message is surfaced to the caller.
		log.Printf("[HTTP] chat pipeline failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// #endregion chat-handler

// #region stats-handler

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	learnerID := strings.TrimPrefix(r.URL.Path, "/stats/")
	if learnerID == "" || strings.Contains(learnerID, "/") {
		writeError(w, http.StatusBadRequest, "learner id required")
		return
	}

	stats, err := s.store.GetLearnerStats(learnerID)
	if err != nil {
		log.Printf("[HTTP] stats query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "stats query failed")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// #endregion stats-handler
