package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	AcceptBooking(c *ginext.Context)
	PickupBooking(c *ginext.Context)
	DeliverBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	BaggageTag(c *ginext.Context)
	RegisterDriver(c *ginext.Context)
	GetDriver(c *ginext.Context)
	ListDrivers(c *ginext.Context)
	DriverOnline(c *ginext.Context)
	DriverOffline(c *ginext.Context)
	DriverLocation(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/accept", h.AcceptBooking)
		api.POST("/bookings/:id/pickup", h.PickupBooking)
		api.POST("/bookings/:id/deliver", h.DeliverBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/tag", h.BaggageTag)

		// Drivers
		api.POST("/drivers", h.RegisterDriver)
		api.GET("/drivers", h.ListDrivers)
		api.GET("/drivers/:id", h.GetDriver)
		api.POST("/drivers/:id/online", h.DriverOnline)
		api.POST("/drivers/:id/offline", h.DriverOffline)
		api.POST("/drivers/:id/location", h.DriverLocation)

		// Users
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
