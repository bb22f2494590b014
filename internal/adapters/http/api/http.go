// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/compare"
	"github.com/okian/dyno/internal/domain/projection"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Project evaluates a request under the configured model.
	Project(ctx context.Context, req projection.Request) (projection.Result, error)

	// Compare runs both models side by side.
	Compare(ctx context.Context, req projection.Request) (compare.Report, error)

	// CatalogDefinitions exposes the loaded modification registry.
	CatalogDefinitions() []catalog.Definition

	// Model returns the configured default model name.
	Model() string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	projectionHandler *ProjectionHandler
	comparisonHandler *ComparisonHandler
	catalogHandler    *CatalogHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(deps),
		projectionHandler: NewProjectionHandler(deps),
		comparisonHandler: NewComparisonHandler(deps),
		catalogHandler:    NewCatalogHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/v1/projection", MetricsMiddleware(s.projectionHandler.HandlePostProjection, "projection"))
	mux.HandleFunc("/v1/compare", MetricsMiddleware(s.comparisonHandler.HandlePostCompare, "compare"))
	mux.HandleFunc("/v1/catalog", MetricsMiddleware(s.catalogHandler.HandleGetCatalog, "catalog"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
