// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentgo/internal/advisor"
	"rentgo/internal/http/handlers"
	"rentgo/internal/http/middleware"
	"rentgo/internal/logger"
	"rentgo/internal/modules/aiusage"
	"rentgo/internal/modules/booking"
	"rentgo/internal/modules/fleet"
)

type RouterDeps struct {
	Fleet   *fleet.Service
	Booking *booking.Service
	Advisor *advisor.Service
	Quota   *aiusage.Service
	Log     logger.ILogger
}

func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logging(log))

	fleetHandler := handlers.NewFleetHandler(deps.Fleet)
	r.GET("/api/vehicles", fleetHandler.List)
	r.GET("/api/vehicles/:id", fleetHandler.Get)
	r.PUT("/api/vehicles/:id/status", fleetHandler.SetStatus)
	r.POST("/api/partners/:id/vehicles", fleetHandler.Add)
	r.GET("/api/partners/:id/vehicles", fleetHandler.ListForPartner)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	r.POST("/api/reservations", bookingHandler.Create)
	r.GET("/api/reservations/:id", bookingHandler.Get)
	r.POST("/api/reservations/:id/cancel", bookingHandler.Cancel)
	r.GET("/api/vehicles/:id/reservations", bookingHandler.ListForVehicle)
	r.GET("/api/vehicles/:id/availability", bookingHandler.Availability)
	r.GET("/api/vehicles/:id/quote", bookingHandler.Quote)

	advisorHandler := handlers.NewAdvisorHandler(deps.Advisor, deps.Quota)
	r.POST("/api/advisor/recommend", advisorHandler.Recommend)
	r.POST("/api/advisor/listing", advisorHandler.Listing)
	r.POST("/api/advisor/mechanic", advisorHandler.Mechanic)
	r.POST("/api/advisor/route", advisorHandler.Route)
	r.POST("/api/advisor/avatar", advisorHandler.Avatar)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
