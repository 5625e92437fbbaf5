// README: Fleet handlers for catalog listing and partner vehicle management.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentgo/internal/modules/fleet"
	"rentgo/internal/modules/pricing"
)

type FleetHandler struct {
	fleet *fleet.Service
}

func NewFleetHandler(svc *fleet.Service) *FleetHandler {
	return &FleetHandler{fleet: svc}
}

// List handles GET /api/vehicles with an optional ?category= filter.
func (h *FleetHandler) List(c *gin.Context) {
	var (
		vehicles []*fleet.Vehicle
		err      error
	)
	if cat := c.Query("category"); cat != "" {
		vehicles, err = h.fleet.ListByCategory(c.Request.Context(), fleet.Category(cat))
	} else {
		vehicles, err = h.fleet.List(c.Request.Context())
	}
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

// Get handles GET /api/vehicles/:id.
func (h *FleetHandler) Get(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		writeError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	v, err := h.fleet.Get(c.Request.Context(), id)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, v)
}

type addVehicleReq struct {
	Name     string         `json:"name"`
	Category fleet.Category `json:"category"`
	Details  fleet.Details  `json:"details"`
	Pricing  pricing.Model  `json:"pricing"`
}

// Add handles POST /api/partners/:id/vehicles.
func (h *FleetHandler) Add(c *gin.Context) {
	partnerID := pathID(c, "id")
	if partnerID == 0 {
		writeError(c, http.StatusBadRequest, "invalid partner id")
		return
	}
	var req addVehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.fleet.AddVehicle(c.Request.Context(), &fleet.Vehicle{
		PartnerID: partnerID,
		Name:      req.Name,
		Category:  req.Category,
		Details:   req.Details,
		Pricing:   req.Pricing,
	})
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"vehicle_id": id})
}

// ListForPartner handles GET /api/partners/:id/vehicles.
func (h *FleetHandler) ListForPartner(c *gin.Context) {
	partnerID := pathID(c, "id")
	if partnerID == 0 {
		writeError(c, http.StatusBadRequest, "invalid partner id")
		return
	}
	vehicles, err := h.fleet.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

type setStatusReq struct {
	Status fleet.Status `json:"status"`
}

// SetStatus handles PUT /api/vehicles/:id/status.
func (h *FleetHandler) SetStatus(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		writeError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.fleet.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": req.Status})
}
