package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allermind/verdict/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// statusByCode maps domain error codes onto response statuses, so the
// classification and verdict handlers share one translation.
var statusByCode = map[string]int{
	apperrors.CodeValidation:          http.StatusBadRequest,
	apperrors.CodeNotFound:            http.StatusNotFound,
	apperrors.CodeUpstreamUnavailable: http.StatusBadGateway,
	apperrors.CodePredictionFailed:    http.StatusBadGateway,
}

// asHTTPError resolves any error into response metadata. Domain errors
// keep their code on the wire; anything unrecognized becomes a 500.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status, known := statusByCode[appErr.Code]
		if !known {
			status = http.StatusInternalServerError
		}
		return &HTTPError{Status: status, Code: appErr.Code, Message: appErr.Error(), Err: appErr}
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
