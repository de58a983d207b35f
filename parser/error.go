package parser

import (
	"fmt"
	"net/http"
)

// ErrorCode discriminates the ways a request document can be rejected.
type ErrorCode int

const (
	// The request body could not be decoded, or the primary data has a shape
	// the endpoint cannot accept.
	ErrMalformedPayload ErrorCode = iota

	// The document has no primary data member.
	ErrMissingPrimaryData

	// A relationship endpoint received an identifier without a type or id
	// member.
	ErrMalformedResourceIdentifier

	// The declared resource type does not match the endpoint's resource type.
	ErrTypeConflict

	// An update request's resource object has no id member.
	ErrMissingIdentifier
)

// Error is a request-rejection error. These are always client errors, never
// process failures.
type Error struct {
	Code ErrorCode

	// Messages are formatted as sentences and name the offending member, e.g.
	// "The resource object's type (gadgets) does not match the endpoint's
	// resource type (widgets)."
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

// HTTPStatus returns the response status appropriate for the error.
func (err *Error) HTTPStatus() int {
	if err.Code == ErrTypeConflict {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func NewError(code ErrorCode, message string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
	}
}
