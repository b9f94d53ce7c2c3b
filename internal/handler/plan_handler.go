package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/renewvia/gridplan/internal/engine"
	"github.com/renewvia/gridplan/internal/model"
	"github.com/renewvia/gridplan/internal/service"
)

// PlanHandler handles network planning HTTP requests.
type PlanHandler struct {
	planSvc *service.PlanService
}

// NewPlanHandler creates a new handler wired to the plan service.
func NewPlanHandler(planSvc *service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// CreatePlan handles POST /api/v1/plan
//
// Request body:
//
//	{
//	  "points": [
//	    {"lat": 0.3476, "lng": 32.5825, "name": "Plant", "kind": "source"},
//	    {"lat": 0.3490, "lng": 32.5841, "name": "Customer 1"}
//	  ],
//	  "costs": {"poleCost": 150, "lowVoltageCostPerMeter": 2.5,
//	            "highVoltageCostPerMeter": 0}
//	}
//
// Response: PlanResponse with the node list, edge list, and cost
// breakdown. Malformed or insufficient input yields 400 with a
// descriptive error; no partial results are ever returned.
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req model.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON body",
		})
		return
	}

	resp, err := h.planSvc.Plan(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPoints),
			errors.Is(err, service.ErrInvalidPointKind),
			errors.Is(err, engine.ErrInsufficientPoints),
			errors.Is(err, engine.ErrInvalidSourceCount),
			errors.Is(err, engine.ErrInvalidCoordinate):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":   "invalid_input",
				"message": err.Error(),
			})
		default:
			log.Printf("[handler] plan error: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "internal_error",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
