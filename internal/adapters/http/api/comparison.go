package api

import (
	"encoding/json"
	"net/http"
)

// ComparisonHandler handles side-by-side model comparison requests. This
// surface exists for offline validation tooling, not the production path.
type ComparisonHandler struct {
	deps Dependencies
}

// NewComparisonHandler creates a new comparison handler.
func NewComparisonHandler(deps Dependencies) *ComparisonHandler {
	return &ComparisonHandler{deps: deps}
}

// HandlePostCompare handles POST /v1/compare requests.
func (h *ComparisonHandler) HandlePostCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_compare"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.Compare(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "comparison_failed", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
