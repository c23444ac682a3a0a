package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind categorizes backend failures for programmatic handling.
type Kind int

const (
	// KindUnknown is any failure that fits no other category.
	KindUnknown Kind = iota
	// KindValidation is a 4xx rejection, usually carrying field detail.
	KindValidation
	// KindAuth is a 401 or 403: the session is invalid or insufficient.
	KindAuth
	// KindNotFound is a 404.
	KindNotFound
	// KindServer is any 5xx.
	KindServer
)

// Detail is the parsed body of a non-2xx response. DRF-style backends
// return either {"detail": "message"} or a {field: [messages]} map.
type Detail struct {
	Message string
	Fields  map[string][]string
}

// Error is a non-2xx response from the backend.
type Error struct {
	Status int
	Detail Detail
}

// Error returns a one-line summary, preferring the server's own wording.
func (e *Error) Error() string {
	if e.Detail.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail.Message)
	}
	if len(e.Detail.Fields) > 0 {
		names := make([]string, 0, len(e.Detail.Fields))
		for name := range e.Detail.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Sprintf("HTTP %d: invalid %s", e.Status, strings.Join(names, ", "))
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Kind maps the status code onto the error taxonomy.
func (e *Error) Kind() Kind {
	switch {
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return KindAuth
	case e.Status == http.StatusNotFound:
		return KindNotFound
	case e.Status >= 400 && e.Status < 500:
		return KindValidation
	case e.Status >= 500:
		return KindServer
	}
	return KindUnknown
}

// NetworkError is a transport-level failure: the request produced no
// response at all.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsAuth reports whether err is a 401/403 response.
func IsAuth(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind() == KindAuth
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind() == KindNotFound
}

// FieldErrors extracts the field->messages map from a validation rejection,
// or nil if err carries none.
func FieldErrors(err error) map[string][]string {
	var apiErr *Error
	if errors.As(err, &apiErr) && len(apiErr.Detail.Fields) > 0 {
		return apiErr.Detail.Fields
	}
	return nil
}

// parseDetail interprets a non-2xx body. Bodies that are not JSON objects
// leave the detail empty rather than failing: the status code alone is
// still a usable error.
func parseDetail(body []byte) Detail {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Detail{Message: strings.TrimSpace(string(body))}
	}

	var d Detail
	for name, val := range raw {
		var msg string
		if err := json.Unmarshal(val, &msg); err == nil {
			if name == "detail" || name == "error" || name == "message" {
				d.Message = msg
				continue
			}
			if d.Fields == nil {
				d.Fields = make(map[string][]string)
			}
			d.Fields[name] = []string{msg}
			continue
		}
		var msgs []string
		if err := json.Unmarshal(val, &msgs); err == nil && len(msgs) > 0 {
			if d.Fields == nil {
				d.Fields = make(map[string][]string)
			}
			d.Fields[name] = msgs
		}
	}
	return d
}
