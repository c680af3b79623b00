package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetCapacity(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	MethodNotAllowed(c *ginext.Context)
}

// InitRouter mounts the API under /api/v1. Every request except /health
// passes auth first, including unknown routes and methods, which get 405.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.HandleMethodNotAllowed = true
	router.NoRoute(h.MethodNotAllowed)
	router.NoMethod(h.MethodNotAllowed)

	// Routes registered before Use(auth) stay public.
	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.Use(auth)

	api := router.Group("/api/v1")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:eventId", h.GetEvent)
		api.DELETE("/events/:eventId", h.DeleteEvent)
		api.GET("/events/:eventId/capacity", h.GetCapacity)

		// Bookings
		api.GET("/events/:eventId/bookings", h.ListBookings)
		api.POST("/events/:eventId/bookings", h.CreateBooking)
		api.GET("/events/:eventId/bookings/:bookingId", h.GetBooking)
		api.DELETE("/events/:eventId/bookings/:bookingId", h.DeleteBooking)
	}

	return router
}
