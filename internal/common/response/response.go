package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
)

// Body is the JSON envelope shared by every endpoint.
type Body struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success writes a 200 envelope carrying data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// BadRequest writes a 400 envelope with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Error: message})
}

// Error maps err onto a status code and writes an error envelope.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)
	body := Body{Success: false, Error: err.Error()}

	var domErr *domain.DomainError
	if errors.As(err, &domErr) {
		body.Error = domErr.Message
		body.Fields = domErr.Fields
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

// StatusFor returns the HTTP status for err.
func StatusFor(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrValidation), domain.IsKind(err, domain.ErrCapacity):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
