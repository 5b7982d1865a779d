package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/project"
)

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Precision int    `json:"precision"`
}

// ErrorResponse is returned when a response body cannot be produced
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is returned by GET /version
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (s *CalculatorServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Precision: s.session.Precision(),
	})
}

func (s *CalculatorServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Name:    project.Name,
		Version: project.Version,
	})
}

func (s *CalculatorServer) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, results.NewHistoryResult(s.session.History()))
}

func (s *CalculatorServer) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, results.NewClearHistoryResult(s.session.ClearHistory()))
}

// writeJSON marshals v before writing headers. Encoding failures become a 500 ErrorResponse.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode response: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Error: message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
