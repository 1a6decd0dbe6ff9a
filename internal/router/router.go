package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreatePayment(c *ginext.Context)
	GetPayment(c *ginext.Context)
	ListPayments(c *ginext.Context)
	UpdatePayment(c *ginext.Context)
	DeletePayment(c *ginext.Context)
	BulkDeletePayments(c *ginext.Context)
	SetPaymentStatus(c *ginext.Context)
	ReceivePayment(c *ginext.Context)
	PayVendor(c *ginext.Context)
	PaymentAnalytics(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	Calendar(c *ginext.Context)

	CreateGuest(c *ginext.Context)
	ListGuests(c *ginext.Context)
	UpdateGuest(c *ginext.Context)
	DeleteGuest(c *ginext.Context)
	SetGuestRSVP(c *ginext.Context)

	CreateBudgetItem(c *ginext.Context)
	ListBudgetItems(c *ginext.Context)
	UpdateBudgetItem(c *ginext.Context)
	DeleteBudgetItem(c *ginext.Context)
	SetBudgetItemSpent(c *ginext.Context)
	BudgetSummary(c *ginext.Context)

	CreateVendor(c *ginext.Context)
	GetVendor(c *ginext.Context)
	ListVendors(c *ginext.Context)
	UpdateVendor(c *ginext.Context)
	DeleteVendor(c *ginext.Context)
	RateVendor(c *ginext.Context)
	SetVendorAvailability(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Payments
		api.POST("/payments", h.CreatePayment)
		api.GET("/payments", h.ListPayments)
		api.GET("/payments/analytics", h.PaymentAnalytics)
		api.POST("/payments/bulk-delete", h.BulkDeletePayments)
		api.GET("/payments/:id", h.GetPayment)
		api.PUT("/payments/:id", h.UpdatePayment)
		api.DELETE("/payments/:id", h.DeletePayment)
		api.PATCH("/payments/:id/status", h.SetPaymentStatus)
		api.POST("/payments/:id/receive", h.ReceivePayment)
		api.POST("/payments/:id/pay", h.PayVendor)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.GET("/calendar", h.Calendar)

		// Guests
		api.POST("/guests", h.CreateGuest)
		api.GET("/guests", h.ListGuests)
		api.PUT("/guests/:id", h.UpdateGuest)
		api.DELETE("/guests/:id", h.DeleteGuest)
		api.PATCH("/guests/:id/rsvp", h.SetGuestRSVP)

		// Budget
		api.POST("/budget-items", h.CreateBudgetItem)
		api.GET("/budget-items", h.ListBudgetItems)
		api.GET("/budget-items/summary", h.BudgetSummary)
		api.PUT("/budget-items/:id", h.UpdateBudgetItem)
		api.DELETE("/budget-items/:id", h.DeleteBudgetItem)
		api.PATCH("/budget-items/:id/spent", h.SetBudgetItemSpent)

		// Vendors
		api.POST("/vendors", h.CreateVendor)
		api.GET("/vendors", h.ListVendors)
		api.GET("/vendors/:id", h.GetVendor)
		api.PUT("/vendors/:id", h.UpdateVendor)
		api.DELETE("/vendors/:id", h.DeleteVendor)
		api.POST("/vendors/:id/ratings", h.RateVendor)
		api.PATCH("/vendors/:id/availability", h.SetVendorAvailability)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
