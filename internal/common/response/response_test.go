package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", domain.NewValidationError("Date parameter is required"), http.StatusBadRequest, "Date parameter is required"},
		{"capacity", fmt.Errorf("wrapped: %w", domain.NewCapacityError("No more bookings available for this date")), http.StatusBadRequest, "No more bookings available for this date"},
		{"not found", domain.NewNotFoundError("Booking", "x"), http.StatusNotFound, "Booking x not found"},
		{"unauthorized", domain.NewUnauthorizedError("invalid API key"), http.StatusUnauthorized, "invalid API key"},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "connection refused"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body Body
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.msg, body.Error)
		})
	}
}

func TestSuccess_KeepsEmptySlice(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, []string{})

	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}
