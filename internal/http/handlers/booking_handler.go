// README: Booking handlers for availability, quoting, admission, and cancel.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rentgo/internal/modules/booking"
	"rentgo/internal/modules/pricing"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type createReservationReq struct {
	VehicleID   int64          `json:"vehicle_id"`
	RenterID    int64          `json:"renter_id"`
	RenterName  string         `json:"renter_name"`
	RenterPhone string         `json:"renter_phone"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	AddOns      []string       `json:"addons"`
	Extras      booking.Extras `json:"extras"`
}

// Create handles POST /api/reservations.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	r, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}
	res, err := h.booking.Admit(c.Request.Context(), booking.AdmitCommand{
		VehicleID:   req.VehicleID,
		RenterID:    req.RenterID,
		RenterName:  req.RenterName,
		RenterPhone: req.RenterPhone,
		Range:       r,
		AddOns:      toAddOns(req.AddOns),
		Extras:      req.Extras,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, res)
}

// Get handles GET /api/reservations/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		writeError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}
	res, err := h.booking.Get(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Cancel handles POST /api/reservations/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		writeError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}
	if err := h.booking.Cancel(c.Request.Context(), id); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.ReservationCancelled})
}

// ListForVehicle handles GET /api/vehicles/:id/reservations.
func (h *BookingHandler) ListForVehicle(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		writeError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	list, err := h.booking.ListForVehicle(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"reservations": list})
}

// Availability handles GET /api/vehicles/:id/availability?start=&end=.
func (h *BookingHandler) Availability(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		writeError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	r, err := parseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}
	free, err := h.booking.CheckAvailability(c.Request.Context(), id, r)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicle_id": id, "available": free})
}

// Quote handles GET /api/vehicles/:id/quote?start=&end=&addons=a,b.
func (h *BookingHandler) Quote(c *gin.Context) {
	id := pathID(c, "id")
	if id == 0 {
		writeError(c, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	r, err := parseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}
	var addons []string
	if raw := c.Query("addons"); raw != "" {
		addons = strings.Split(raw, ",")
	}
	cost, err := h.booking.PreviewCost(c.Request.Context(), id, r, toAddOns(addons))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicle_id": id, "total_cost": cost})
}

func toAddOns(raw []string) []pricing.AddOn {
	if len(raw) == 0 {
		return nil
	}
	out := make([]pricing.AddOn, 0, len(raw))
	for _, a := range raw {
		out = append(out, pricing.AddOn(strings.TrimSpace(a)))
	}
	return out
}
