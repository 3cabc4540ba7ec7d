package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/response"
)

// BookingHandler serves the public booking form and availability endpoints.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers the public booking routes. limit guards POSTs.
func (h *BookingHandler) RegisterRoutes(r gin.IRouter, limit gin.HandlerFunc) {
	r.POST("/api/book", limit, h.Book)
	r.GET("/availability", h.Availability)
	r.GET("/api/availability", h.Availability)
}

// Book handles POST /api/book
func (h *BookingHandler) Book(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	body := newCreatedBody(res)
	body.ConfirmationID = res.Booking.ID.String()
	c.JSON(http.StatusCreated, body)
}

// Availability handles GET /availability?date=YYYY-MM-DD
func (h *BookingHandler) Availability(c *gin.Context) {
	av, err := h.service.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, av)
}
