// README: Advisory handlers (quota-guarded generation endpoints).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentgo/internal/advisor"
	"rentgo/internal/modules/aiusage"
)

type AdvisorHandler struct {
	advisor *advisor.Service
	quota   *aiusage.Service
}

func NewAdvisorHandler(adv *advisor.Service, quota *aiusage.Service) *AdvisorHandler {
	return &AdvisorHandler{advisor: adv, quota: quota}
}

// spendToken charges one advisory call against the renter's monthly
// allowance. A nil quota service disables metering (tests, local runs).
func (h *AdvisorHandler) spendToken(c *gin.Context, renterID int64) bool {
	if renterID <= 0 {
		writeError(c, http.StatusBadRequest, "missing renter_id")
		return false
	}
	if h.quota == nil {
		return true
	}
	if err := h.quota.UseToken(c.Request.Context(), renterID); err != nil {
		writeAdvisorError(c, err)
		return false
	}
	return true
}

type recommendReq struct {
	RenterID int64                   `json:"renter_id"`
	Prefs    advisor.TripPreferences `json:"preferences"`
}

// Recommend handles POST /api/advisor/recommend.
func (h *AdvisorHandler) Recommend(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !h.spendToken(c, req.RenterID) {
		return
	}
	rec, err := h.advisor.RecommendVehicle(c.Request.Context(), req.Prefs)
	if err != nil {
		writeAdvisorError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// Listing handles POST /api/advisor/listing.
func (h *AdvisorHandler) Listing(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !h.spendToken(c, req.RenterID) {
		return
	}
	listing, err := h.advisor.GenerateListing(c.Request.Context(), req.Prefs)
	if err != nil {
		writeAdvisorError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, listing)
}

type mechanicReq struct {
	RenterID   int64                       `json:"renter_id"`
	Location   string                      `json:"location"`
	Problem    string                      `json:"problem"`
	Candidates []advisor.MechanicCandidate `json:"candidates"`
}

// Mechanic handles POST /api/advisor/mechanic.
func (h *AdvisorHandler) Mechanic(c *gin.Context) {
	var req mechanicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !h.spendToken(c, req.RenterID) {
		return
	}
	match, err := h.advisor.MatchMechanic(c.Request.Context(), req.Location, req.Problem, req.Candidates)
	if err != nil {
		writeAdvisorError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, match)
}

type routeReq struct {
	RenterID int64  `json:"renter_id"`
	Pickup   string `json:"pickup"`
	Dropoff  string `json:"dropoff"`
}

// Route handles POST /api/advisor/route.
func (h *AdvisorHandler) Route(c *gin.Context) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !h.spendToken(c, req.RenterID) {
		return
	}
	plan, err := h.advisor.PlanRoute(c.Request.Context(), req.Pickup, req.Dropoff)
	if err != nil {
		writeAdvisorError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, plan)
}

type avatarReq struct {
	RenterID    int64  `json:"renter_id"`
	Description string `json:"description"`
}

// Avatar handles POST /api/advisor/avatar.
func (h *AdvisorHandler) Avatar(c *gin.Context) {
	var req avatarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !h.spendToken(c, req.RenterID) {
		return
	}
	uri, err := h.advisor.GenerateAvatar(c.Request.Context(), req.Description)
	if err != nil {
		writeAdvisorError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"avatar": uri})
}
