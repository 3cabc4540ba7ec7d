package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eatwithchiso/service-booking/internal/application"
)

const welcomeMessage = "Welcome to Eat with Chiso Booking Service"

// RegisterRootRoute registers GET / with a short service description.
// The menu entry lists the periods menus offers.
func RegisterRootRoute(r gin.IRouter, menus *application.MenuService) {
	periods := make([]string, 0, 3)
	for _, p := range menus.Periods() {
		periods = append(periods, string(p))
	}
	endpoints := []string{
		"/availability?date=YYYY-MM-DD",
		"/bookings?date=YYYY-MM-DD",
		"/api/book",
		"/api/menu?type=" + strings.Join(periods, "|"),
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   welcomeMessage,
			"endpoints": endpoints,
		})
	})
}
