package flokk

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

type InvalidArgumentError string

func (e InvalidArgumentError) Error() string {
	return string(e)
}

func (e InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// -----------------------------------------------------------------------------

var ErrPermissionDenied = errors.New("permission denied")

// ErrUnauthenticated denotes a login attempt that did not produce a user.
var ErrUnauthenticated = errors.New("unauthenticated")

// AuthorizationError is the error reported by Flokk on the callback
// redirect, e.g. when the user denies access.
type AuthorizationError struct {
	Code        string
	Description string
	URI         string
}

func (e *AuthorizationError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Code
}

func (e *AuthorizationError) Unwrap() error {
	if e.Code == "access_denied" {
		return ErrPermissionDenied
	}
	return ErrUnauthenticated
}

// -----------------------------------------------------------------------------

// ErrInternalOAuth matches any failure to talk to Flokk.
var ErrInternalOAuth = errors.New("internal oauth error")

// InternalOAuthError wraps a transport or HTTP failure from the OAuth2
// client. Its message is fixed; the cause is available through Unwrap.
type InternalOAuthError struct {
	Message string
	Err     error
}

func (e *InternalOAuthError) Error() string {
	return e.Message
}

func (e *InternalOAuthError) Unwrap() error {
	return e.Err
}

func (e *InternalOAuthError) Is(target error) bool {
	return target == ErrInternalOAuth
}

// -----------------------------------------------------------------------------

var ErrParse = errors.New("parse error")

// ParseError reports an account document that is not a JSON object.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse user profile: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
