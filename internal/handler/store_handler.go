package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/middleware"
	"github.com/eatwithchiso/service-booking/internal/common/response"
)

const actionCreateBooking = "createBooking"

// storeEnvelope is the optional {action, booking} wrapper accepted by POST /bookings.
type storeEnvelope struct {
	Action  string                            `json:"action"`
	Booking *application.CreateBookingRequest `json:"booking"`
}

// StoreHandler serves the booking store endpoints used by the widget and staff tools.
type StoreHandler struct {
	service *application.BookingService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *application.BookingService) *StoreHandler {
	return &StoreHandler{service: service}
}

// RegisterRoutes registers the store routes under /bookings and /api/bookings.
// apiKey gates them when non-empty; limit guards POSTs.
func (h *StoreHandler) RegisterRoutes(r gin.IRouter, apiKey string, limit gin.HandlerFunc) {
	for _, prefix := range []string{"/bookings", "/api/bookings"} {
		store := r.Group(prefix)
		store.Use(middleware.APIKeyMiddleware(apiKey))
		{
			store.POST("", limit, h.CreateBooking)
			store.GET("", h.ListBookings)
			store.GET("/:id", h.GetBooking)
		}
	}
}

// CreateBooking handles POST /bookings. The body is either a booking or
// {"action":"createBooking","booking":{...}}.
func (h *StoreHandler) CreateBooking(c *gin.Context) {
	var env storeEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		bindError(c, err)
		return
	}

	var req application.CreateBookingRequest
	switch {
	case env.Action == "":
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			bindError(c, err)
			return
		}
	case env.Action == actionCreateBooking && env.Booking != nil:
		req = *env.Booking
	case env.Action == actionCreateBooking:
		response.BadRequest(c, "Missing booking data")
		return
	default:
		response.BadRequest(c, "Invalid action")
		return
	}

	res, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCreatedBody(res))
}

// ListBookings handles GET /bookings?date=YYYY-MM-DD
func (h *StoreHandler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bookings)
}

// GetBooking handles GET /bookings/:id
func (h *StoreHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	dto, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}
