package application

import (
	"errors"
	"fmt"
)

// Kind classifies an application error; the HTTP layer maps it to a status.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUnprocessable
	KindUpstream
	KindUnavailable
)

// Error is returned by services for every failure a caller should see.
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

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

var (
	ErrInvalidCredentials = NewError(KindUnauthenticated, "invalid credentials")
	ErrUnauthenticated    = NewError(KindUnauthenticated, "unauthorised")
	ErrForbidden          = NewError(KindForbidden, "Not authorized to perform requested action")
	ErrEmailTaken         = NewError(KindUnprocessable, "Email is used by another user")
)

func notFound(what string) *Error {
	return NewError(KindNotFound, what+" does not exist")
}
