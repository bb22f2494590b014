package api

import (
	"net/http"
)

// CatalogHandler exposes the loaded modification registry for UI pickers.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// catalogEntry is the read shape of one modification definition.
type catalogEntry struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Stage           int     `json:"stage,omitempty"`
	HPGain          float64 `json:"hp_gain"`
	TorqueGain      float64 `json:"torque_gain"`
	ZeroToSixtyGain float64 `json:"zero_to_sixty_gain,omitempty"`
	BrakingGain     float64 `json:"braking_gain,omitempty"`
	LateralGGain    float64 `json:"lateral_g_gain,omitempty"`
	WeightChange    float64 `json:"weight_change,omitempty"`
}

// HandleGetCatalog handles GET /v1/catalog requests.
func (h *CatalogHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	defs := h.deps.CatalogDefinitions()
	entries := make([]catalogEntry, 0, len(defs))
	for _, d := range defs {
		entries = append(entries, catalogEntry{
			Key:             d.Key,
			Name:            d.Name,
			Category:        d.Category.String(),
			Stage:           d.Stage,
			HPGain:          d.HPGain,
			TorqueGain:      d.TorqueGain,
			ZeroToSixtyGain: d.ZeroToSixtyGain,
			BrakingGain:     d.BrakingGain,
			LateralGGain:    d.LateralGGain,
			WeightChange:    d.WeightChange,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"model":         h.deps.Model(),
		"modifications": entries,
	})
}
