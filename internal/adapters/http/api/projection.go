package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/dyno/internal/domain/projection"
	"github.com/okian/dyno/internal/domain/vehicle"
)

// ProjectionHandler handles projection requests.
type ProjectionHandler struct {
	deps Dependencies
}

// NewProjectionHandler creates a new projection handler.
func NewProjectionHandler(deps Dependencies) *ProjectionHandler {
	return &ProjectionHandler{deps: deps}
}

// projectionRequest mirrors the JSON schema for POST /v1/projection and
// POST /v1/compare.
type projectionRequest struct {
	Vehicle      vehicle.Baseline         `json:"vehicle"`
	Mods         []string                 `json:"mods"`
	WheelFitment *projection.WheelFitment `json:"wheel_fitment,omitempty"`
}

func (p projectionRequest) validate() error {
	switch {
	case p.Vehicle.HP < 0:
		return errors.New("vehicle hp must not be negative")
	case p.Vehicle.CurbWeight < 0:
		return errors.New("vehicle curb_weight must not be negative")
	case strings.TrimSpace(p.Vehicle.Engine) == "":
		return errors.New("missing vehicle engine descriptor")
	case len(p.Mods) == 0:
		return errors.New("missing mods")
	}
	return nil
}

func (p projectionRequest) toDomain() projection.Request {
	return projection.Request{
		Vehicle:      p.Vehicle,
		Mods:         p.Mods,
		WheelFitment: p.WheelFitment,
	}
}

// HandlePostProjection handles POST /v1/projection requests.
func (h *ProjectionHandler) HandlePostProjection(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_projection"
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

	res, err := h.deps.Project(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "projection_failed", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}
