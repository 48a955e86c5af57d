package paychangu

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("paychangu: invalid input")

	// ErrAPI is matched by every *APIError regardless of its Kind.
	ErrAPI = errors.New("paychangu: api request failed")

	ErrAuthentication      = errors.New("paychangu: authentication failed")
	ErrBadRequest          = errors.New("paychangu: bad request")
	ErrNotFound            = errors.New("paychangu: resource not found")
	ErrUnprocessableEntity = errors.New("paychangu: unprocessable entity")
)

// InvalidInputError reports a request rejected before any network activity:
// a missing required parameter, an unsupported currency or a blank secret key.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func missingParameter(key string) *InvalidInputError {
	return &InvalidInputError{Message: "Missing required parameter: " + key}
}

// Kind classifies an APIError.
type Kind int

const (
	KindAPI Kind = iota
	KindAuthentication
	KindBadRequest
	KindNotFound
	KindUnprocessableEntity
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindUnprocessableEntity:
		return "unprocessable_entity"
	default:
		return "api"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindBadRequest:
		return ErrBadRequest
	case KindNotFound:
		return ErrNotFound
	case KindUnprocessableEntity:
		return ErrUnprocessableEntity
	default:
		return ErrAPI
	}
}

func (k Kind) fallbackMessage() string {
	switch k {
	case KindAuthentication:
		return "Authentication failed"
	case KindBadRequest:
		return "Bad request"
	case KindNotFound:
		return "Resource not found"
	case KindUnprocessableEntity:
		return "Unprocessable entity"
	default:
		return "API request failed"
	}
}

func kindForStatus(code int) Kind {
	switch code {
	case 401:
		return KindAuthentication
	case 400:
		return KindBadRequest
	case 404:
		return KindNotFound
	case 422:
		return KindUnprocessableEntity
	default:
		return KindAPI
	}
}

// APIError is returned when the request could not be completed or the
// remote API answered with a non-2xx status.
//
// StatusCode is 0 for connection errors; Err then holds the transport error.
type APIError struct {
	Kind       Kind
	Message    string
	Body       string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.StatusCode != 0 {
		b.WriteString(" (status: ")
		b.WriteString(strconv.Itoa(e.StatusCode))
		b.WriteString(")")
	}
	if e.Body != "" {
		b.WriteString(" - response: ")
		b.WriteString(e.Body)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI || target == e.Kind.sentinel()
}
