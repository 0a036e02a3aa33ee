package remoteapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"
)

// Kind classifies a remote failure for callers.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindTransient      Kind = "transient"
	KindBusiness       Kind = "business"
)

const unavailableMessage = "Сервис временно недоступен, попробуйте позже"

// APIError is the normalized form of every failed remote call.
type APIError struct {
	StatusCode    int    `json:"statusCode"`
	RemoteMessage string `json:"message"`
	ErrorName     string `json:"error"`
	Timestamp     string `json:"timestamp"`
	Path          string `json:"path"`
	Kind          Kind   `json:"-"`

	cause error
}

var _ domainerrors.AppError = (*APIError)(nil)

func (e *APIError) Error() string {
	msg := fmt.Sprintf("remote api %d", e.StatusCode)
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.RemoteMessage != "" {
		msg += ": " + e.RemoteMessage
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match the domain catalogue entry for the same failure.
func (e *APIError) Is(target error) bool {
	switch target {
	case domainerrors.ErrAuthenticationRequired:
		return e.Kind == KindAuthentication
	case domainerrors.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domainerrors.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case domainerrors.ErrValidationFailed:
		return e.Kind == KindValidation
	}

	return false
}

// HTTPCode is the status rendered to the browser. 401 is reserved for a
// lost session, so a refused unsigned call is answered with 400.
func (e *APIError) HTTPCode() int {
	switch e.Kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindTransient:
		if e.StatusCode < http.StatusInternalServerError && e.StatusCode != http.StatusTooManyRequests {
			return http.StatusServiceUnavailable
		}
	}
	if e.StatusCode == http.StatusUnauthorized {
		return http.StatusBadRequest
	}

	return e.StatusCode
}

func (e *APIError) ErrorCode() string {
	switch e.Kind {
	case KindAuthentication:
		return domainerrors.ErrAuthenticationRequired.ErrorCode()
	case KindValidation:
		return domainerrors.ErrValidationFailed.ErrorCode()
	case KindTransient:
		return "REMOTE_UNAVAILABLE"
	}

	switch e.StatusCode {
	case http.StatusUnauthorized:
		return "INVALID_CREDENTIALS"
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.ErrorCode()
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode()
	case http.StatusConflict:
		return "CONFLICT"
	}

	return "REMOTE_ERROR"
}

func (e *APIError) Message() string {
	return e.userMessage()
}

func (e *APIError) Details() string {
	return ""
}

func (e *APIError) userMessage() string {
	if e.Kind == KindAuthentication {
		return domainerrors.ErrAuthenticationRequired.Message()
	}
	if e.RemoteMessage != "" {
		return e.RemoteMessage
	}
	if e.Kind == KindTransient {
		return unavailableMessage
	}

	return http.StatusText(e.StatusCode)
}

// IsAuthentication reports whether err means the session is gone.
func IsAuthentication(err error) bool {
	return kindOf(err) == KindAuthentication
}

// IsTransient reports whether retrying later may succeed.
func IsTransient(err error) bool {
	return kindOf(err) == KindTransient
}

// IsValidation reports whether the remote API rejected the input.
func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

// IsBusiness reports whether the remote API refused the operation.
func IsBusiness(err error) bool {
	return kindOf(err) == KindBusiness
}

func kindOf(err error) Kind {
	apiErr, ok := errors.AsType[*APIError](err)
	if !ok {
		return ""
	}

	return apiErr.Kind
}

// classify maps a remote status to a kind. A 401 read here comes from an
// unsigned call, such as a rejected code, so it is a business refusal; only
// Do decides that a session is gone.
func classify(status int) Kind {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusRequestTimeout || status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return KindTransient
	default:
		return KindBusiness
	}
}

// parseAPIError decodes a failure body. The message may be a string or a
// list of validation messages. A 2xx body with success:false takes its
// status from the body, or 400.
func parseAPIError(status int, body []byte, path string) *APIError {
	var raw struct {
		StatusCode int             `json:"statusCode"`
		Message    json.RawMessage `json:"message"`
		Error      string          `json:"error"`
		Timestamp  string          `json:"timestamp"`
		Path       string          `json:"path"`
	}
	decoded := json.Unmarshal(body, &raw) == nil

	if status < http.StatusBadRequest {
		status = http.StatusBadRequest
		if decoded && raw.StatusCode >= http.StatusBadRequest {
			status = raw.StatusCode
		}
	}

	apiErr := &APIError{StatusCode: status, Path: path, Kind: classify(status)}
	if decoded {
		apiErr.RemoteMessage = joinMessage(raw.Message)
		apiErr.ErrorName = raw.Error
		apiErr.Timestamp = raw.Timestamp
		if raw.Path != "" {
			apiErr.Path = raw.Path
		}
	}
	if apiErr.RemoteMessage == "" {
		apiErr.RemoteMessage = http.StatusText(status)
	}

	return apiErr
}

func joinMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}

	return ""
}

func transportError(path string, cause error) *APIError {
	return &APIError{
		StatusCode:    http.StatusServiceUnavailable,
		RemoteMessage: unavailableMessage,
		ErrorName:     http.StatusText(http.StatusServiceUnavailable),
		Path:          path,
		Kind:          KindTransient,
		cause:         cause,
	}
}

func authenticationError(path string, cause error) *APIError {
	return &APIError{
		StatusCode:    http.StatusUnauthorized,
		RemoteMessage: domainerrors.ErrAuthenticationRequired.Message(),
		ErrorName:     http.StatusText(http.StatusUnauthorized),
		Path:          path,
		Kind:          KindAuthentication,
		cause:         cause,
	}
}
