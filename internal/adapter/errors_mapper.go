package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/crypto"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/internal/validators"
	"github.com/MKhiriev/go-secret-notes/models"
	"github.com/go-resty/resty/v2"
)

// statusErrors turns daemon statuses back into the errors the local
// services return, so callers handle both adapters the same way.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        service.ErrNotAuthenticated,
	http.StatusForbidden:           crypto.ErrDecodeFailure,
	http.StatusNotFound:            store.ErrNoteNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusPreconditionFailed:  service.ErrPasswordNotSet,
	http.StatusUnprocessableEntity: validators.ErrWeakPassword,
}

// mapHTTPError returns nil for 2xx responses. overrides replaces the
// generic error of a status for endpoints where it means something
// specific, e.g. 409 on login. An ErrWrongPassword override yields a
// *service.WrongPasswordError carrying the Retry-After delay.
func mapHTTPError(resp *resty.Response, overrides map[int]error) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message, retryAfter := decodeErrorBody(resp)

	if status == http.StatusTooManyRequests {
		return &service.RateLimitedError{Remaining: retryAfter}
	}

	if err, ok := overrides[status]; ok {
		if err == service.ErrWrongPassword {
			return &service.WrongPasswordError{Delay: retryAfter}
		}
		return withMessage(err, message)
	}
	if err, ok := statusErrors[status]; ok {
		return withMessage(err, message)
	}
	if status >= http.StatusInternalServerError {
		return withMessage(ErrInternalServerError, message)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, status, message)
}

func withMessage(err error, message string) error {
	if message == "" || message == err.Error() {
		return err
	}
	return fmt.Errorf("%w: %s", err, message)
}

// decodeErrorBody reads a models.ErrorResponse, falling back to the raw body
// and the Retry-After header.
func decodeErrorBody(resp *resty.Response) (string, time.Duration) {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		body.Error = strings.TrimSpace(string(resp.Body()))
	}

	seconds := body.RetryAfter
	if seconds == 0 {
		seconds, _ = strconv.ParseInt(resp.Header().Get("Retry-After"), 10, 64)
	}

	message := body.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}
	return message, time.Duration(seconds) * time.Second
}
