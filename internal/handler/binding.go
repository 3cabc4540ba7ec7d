package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/domain"
	"github.com/eatwithchiso/service-booking/internal/common/response"
)

func init() {
	// report JSON field names instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	}
}

// bindError writes a 400 for a request body that failed to decode or validate.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		response.Error(c, domain.NewFieldValidationError(fields))
		return
	}
	response.BadRequest(c, "Invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// createdBody is the 201 body of both booking creation endpoints.
type createdBody struct {
	Success        bool                   `json:"success"`
	ConfirmationID string                 `json:"confirmationId,omitempty"`
	Data           application.BookingDTO `json:"data"`
	EmailSent      bool                   `json:"emailSent"`
	EmailError     string                 `json:"emailError,omitempty"`
}

func newCreatedBody(res *application.BookingResult) createdBody {
	return createdBody{
		Success:    true,
		Data:       res.Booking,
		EmailSent:  res.EmailSent,
		EmailError: res.EmailError,
	}
}
