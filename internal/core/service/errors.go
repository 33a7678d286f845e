package service

import "errors"

var (
	// ErrEmailTaken is returned by Add and Register when the email already
	// belongs to a registered student.
	ErrEmailTaken = errors.New("email already registered")

	ErrUnknownOperator    = errors.New("unknown mobile money operator")
	ErrFeatureUnavailable = errors.New("feature under development")
)
