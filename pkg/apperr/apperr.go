// Package apperr carries typed error kinds from services up to the HTTP
// layer, where each kind maps to one status code.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidInput
	KindInvalidStatus
	KindForbidden
	KindUnauthorized
	KindConflict
	KindEmptyCart
	KindMixedRestaurant
	KindAlreadyAssigned
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NotFound(msg string) *Error        { return &Error{Kind: KindNotFound, Msg: msg} }
func InvalidInput(msg string) *Error    { return &Error{Kind: KindInvalidInput, Msg: msg} }
func InvalidStatus(msg string) *Error   { return &Error{Kind: KindInvalidStatus, Msg: msg} }
func Forbidden(msg string) *Error       { return &Error{Kind: KindForbidden, Msg: msg} }
func Unauthorized(msg string) *Error    { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Conflict(msg string) *Error        { return &Error{Kind: KindConflict, Msg: msg} }
func EmptyCart(msg string) *Error       { return &Error{Kind: KindEmptyCart, Msg: msg} }
func MixedRestaurant(msg string) *Error { return &Error{Kind: KindMixedRestaurant, Msg: msg} }
func AlreadyAssigned(msg string) *Error { return &Error{Kind: KindAlreadyAssigned, Msg: msg} }

// KindOf returns the kind wrapped in err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }
