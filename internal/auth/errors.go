package auth

import (
	"errors"
	"net/http"
)

// Kind classifies authentication errors by their transport-level meaning.
type Kind int

const (
	// KindUnauthorized marks credential or bind failures.
	KindUnauthorized Kind = iota
	// KindBadRequest marks ambiguous or malformed directory results.
	KindBadRequest
	// KindNotFound marks lookups with no matching entry.
	KindNotFound
	// KindInternal marks unexpected backend failures.
	KindInternal
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	case KindInternal:
		return "internal error"
	default:
		return "unknown"
	}
}

// HTTPStatus returns the HTTP status code the kind maps to.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed authentication failure. The message is what callers may
// surface; the cause stays internal and is only reachable through Unwrap for
// diagnostics.
type Error struct {
	// Kind is the transport-level classification.
	Kind Kind
	// Message is the caller-visible description.
	Message string

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for diagnostics.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the kind carried by err. Untyped errors count as internal.
func KindOf(err error) Kind {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr.Kind
	}

	return KindInternal
}

var (
	// ErrMissingCredentials is returned when no authorization header is present at all.
	ErrMissingCredentials = &Error{Kind: KindUnauthorized, Message: "missing credentials"}

	// ErrUnknownMethod is returned when the authorization method prefix is not recognized.
	ErrUnknownMethod = &Error{Kind: KindUnauthorized, Message: "unknown method"}

	// ErrInvalidFormat is returned when the authorization payload cannot be decoded
	// into a name and a secret.
	ErrInvalidFormat = &Error{Kind: KindUnauthorized, Message: "invalid format"}

	// ErrInvalidCredentials is returned when credentials are well formed but no
	// backend accepts them.
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "invalid authorization credentials"}

	// ErrEntriesNotFound is returned when a directory search comes back empty.
	ErrEntriesNotFound = &Error{Kind: KindNotFound, Message: "entries not found"}

	// ErrNotOneResult is returned when the candidate search does not yield exactly
	// one entry.
	ErrNotOneResult = &Error{Kind: KindBadRequest, Message: "could not identify one specific result"}

	// ErrNotOneUserResult is returned when the filtered user search does not yield
	// exactly one entry.
	ErrNotOneUserResult = &Error{Kind: KindBadRequest, Message: "could not identify one specific result as user"}

	// ErrNotOneAttribute is returned when the matched entry does not carry exactly
	// one value for the naming attribute.
	ErrNotOneAttribute = &Error{Kind: KindBadRequest, Message: "could not identify one specific attribute"}

	// ErrAttributeMismatch is returned when the canonical naming attribute differs
	// from the name that was requested.
	ErrAttributeMismatch = &Error{Kind: KindUnauthorized, Message: "LDAP user does not match required attribute"}
)

// unauthorizedLdapAccess wraps a connection or bind failure without leaking
// directory details to the caller.
func unauthorizedLdapAccess(cause error) *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized LDAP access", cause: cause}
}

func badRequestError(message string, cause error) *Error {
	return &Error{Kind: KindBadRequest, Message: message, cause: cause}
}

func internalError(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}
