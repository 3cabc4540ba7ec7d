package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/response"
)

// MenuHandler handles HTTP requests for the menu.
type MenuHandler struct {
	service *application.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *application.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// RegisterRoutes registers the menu route.
func (h *MenuHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/menu", h.GetMenu)
}

// GetMenu handles GET /api/menu?type=breakfast|lunch|dinner
func (h *MenuHandler) GetMenu(c *gin.Context) {
	m, err := h.service.GetMenu(c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, m)
}
