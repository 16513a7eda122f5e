// Package apierr converts the heterogeneous failures of the remote
// job-board API (transport errors, non-2xx responses) into one uniform
// descriptor. The UI only ever sees the descriptor, never a raw error.
package apierr

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

const genericMessage = "An unexpected error occurred"

// Raw error bodies longer than this are not shown verbatim.
const maxRawBody = 100

// Descriptor is the uniform shape all user-visible failures reduce to.
// Status is zero when no HTTP status could be attributed.
type Descriptor struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// Error is a Descriptor usable as an error value. FromTransport and
// FromResponse are the only two ways a failure enters the portal, one per
// arm of the failure union.
type Error struct {
	Descriptor
}

func (e *Error) Error() string { return e.Message }

// FromTransport normalizes a failure where no response was received
// (timeout, DNS, connection refused).
func FromTransport(err error) *Error {
	return &Error{Normalize(err, nil)}
}

// FromResponse normalizes a received non-2xx response. The body may be
// consumed; callers must not reuse it.
func FromResponse(resp *http.Response) *Error {
	return &Error{Normalize(nil, resp)}
}

// Normalize maps a failure to its descriptor. It never panics: any
// internal failure (unreadable body, bad JSON) degrades to the generic
// message. One controlled log line is emitted; the raw error is not.
func Normalize(err error, resp *http.Response) Descriptor {
	d := Descriptor{Message: genericMessage}

	switch {
	case resp != nil:
		d.Status = resp.StatusCode
		switch resp.StatusCode {
		case http.StatusBadRequest:
			d.Message = "Bad request. Please check your input."
		case http.StatusUnauthorized:
			d.Message = "Unauthorized. Please log in again."
		case http.StatusForbidden:
			d.Message = "403 Forbidden. You don't have permission to access this resource."
		case http.StatusNotFound:
			d.Message = "Resource not found."
		case http.StatusInternalServerError:
			d.Message = "Server error. Please try again later."
		default:
			if m := messageFromBody(resp); m != "" {
				d.Message = m
			}
		}
	case err != nil:
		// Transport errors embed the request URL, whose host:port digits
		// could collide with the status tokens below. They never carry an
		// attributable HTTP status, so they stay on the generic message.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			break
		}
		msg := err.Error()
		lower := strings.ToLower(msg)
		switch {
		case strings.Contains(msg, "403") || strings.Contains(lower, "forbidden"):
			d.Message = "403 Forbidden. You don't have permission to access this resource."
			d.Status = http.StatusForbidden
		case strings.Contains(msg, "401") || strings.Contains(lower, "unauthorized"):
			d.Message = "Unauthorized. Please log in again."
			d.Status = http.StatusUnauthorized
		case strings.Contains(msg, "404") || strings.Contains(lower, "not found"):
			d.Message = "Resource not found."
			d.Status = http.StatusNotFound
		}
	}

	log.Printf("level=info msg=\"api error\" detail=%q", d.Message)
	return d
}

// messageFromBody tries to salvage a message from an unrecognized error
// status: a JSON object with a "message" field wins, a short plain-text
// body is used verbatim, anything else is discarded.
func messageFromBody(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}
	var parsed struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &parsed) == nil && parsed.Message != "" {
		return parsed.Message
	}
	if len(b) < maxRawBody {
		return string(b)
	}
	return ""
}
