package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Kind classifies a domain failure so the HTTP boundary can map it to a
// status code without inspecting message strings.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindCapacity     Kind = "CAPACITY_INSUFFICIENT"
	KindUpstream     Kind = "UPSTREAM_UNAVAILABLE"
	KindPrecondition Kind = "PRECONDITION_VIOLATION"
	KindDuplicate    Kind = "DUPLICATE_ENTITY"
	KindConflict     Kind = "CONFLICT"
	KindInternal     Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func CapacityInsufficient(message string) *Error {
	return &Error{Kind: KindCapacity, Message: message}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

func Precondition(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

func statusOf(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindCapacity:
		return http.StatusUnprocessableEntity
	case KindUpstream:
		return http.StatusServiceUnavailable
	case KindPrecondition, KindDuplicate, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Envelope is the uniform error body every handler returns on failure.
type Envelope struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path,omitempty"`
}

// EchoErrorHandler maps domain errors to the envelope. Wired as the Echo
// HTTPErrorHandler so services can return errors unchanged.
func EchoErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	code := string(KindInternal)
	message := "internal error"

	var appErr *Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = statusOf(appErr.Kind)
		code = string(appErr.Kind)
		message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		code = http.StatusText(httpErr.Code)
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	envelope := Envelope{
		Code:      code,
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC(),
		Path:      c.Request().URL.Path,
	}

	if err := c.JSON(status, envelope); err != nil {
		c.Logger().Error(err)
	}
}
