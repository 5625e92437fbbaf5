// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentgo/internal/advisor"
	"rentgo/internal/ai"
	"rentgo/internal/modules/aiusage"
	"rentgo/internal/modules/booking"
	"rentgo/internal/modules/fleet"
	"rentgo/internal/modules/pricing"
	"rentgo/internal/types"
)

// dateLayout is the wire format for reservation dates.
const dateLayout = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeFleetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, fleet.ErrBadVehicle):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, pricing.ErrInvalidDateRange),
		errors.Is(err, pricing.ErrInvalidAddon),
		errors.Is(err, pricing.ErrInvalidModel):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrVehicleNotFound), errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrSlotConflict), errors.Is(err, booking.ErrAlreadyClosed):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrPersistence):
		writeError(c, http.StatusServiceUnavailable, "storage unavailable")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeAdvisorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ai.ErrInvalidInput), errors.Is(err, advisor.ErrNoCandidates):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ai.ErrSchemaViolation), errors.Is(err, advisor.ErrInvalidSelection):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, aiusage.ErrInsufficientTokens):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ai.ErrGenerationTimeout):
		writeError(c, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, ai.ErrNoMediaReturned), errors.Is(err, ai.ErrGeneration):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// pathID parses the named int64 path parameter; 0 means invalid.
func pathID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// parseRange reads start/end date strings into a normalized range.
func parseRange(start, end string) (types.DateRange, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return types.DateRange{}, err
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return types.DateRange{}, err
	}
	return types.NewDateRange(s, e), nil
}
