package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindNetwork means no response reached the client.
	KindNetwork Kind = iota
	// KindAuth covers 401 and 403: bad credentials, or a missing or expired token.
	KindAuth
	KindNotFound
	// KindValidation covers 400 and 422.
	KindValidation
	KindServer
	// KindDecode means a 2xx response whose body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned for every failed call. The client never recovers from
// one itself.
type Error struct {
	Kind       Kind
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s %s: %s error", e.Method, e.Path, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func kindForStatus(code int) Kind {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindServer
	}
}

// KindOf reports the kind of an *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

func isKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

func IsNetwork(err error) bool    { return isKind(err, KindNetwork) }
func IsAuth(err error) bool       { return isKind(err, KindAuth) }
func IsNotFound(err error) bool   { return isKind(err, KindNotFound) }
func IsValidation(err error) bool { return isKind(err, KindValidation) }
