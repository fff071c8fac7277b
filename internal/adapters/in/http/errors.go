package http

import (
	"errors"
	"net/http"

	"hubops/internal/core/ports"
	"hubops/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// statusFor maps typed errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrDuplicateMember),
		errors.Is(err, errs.ErrAlreadyClosed),
		errors.Is(err, errs.ErrSymmetryConflict),
		errors.Is(err, ports.ErrActiveBatchExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrAllocationExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrLookupFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "request failed validation",
			Fields:  fields,
		})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, Error{Code: httpErr.Code, Message: http.StatusText(httpErr.Code)})
	}

	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.log.WithFields(logrus.Fields{
			"method": ctx.Request().Method,
			"route":  ctx.Path(),
			"error":  err.Error(),
		}).Error("request failed")
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// badRequest answers malformed input that never reached a use case.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
