// Package usecase implements the business logic for the assistant feature.
package usecase

import "errors"

var (
	// ErrNoSession is returned when a user calls chat before connect, or
	// after the session expired.
	ErrNoSession = errors.New("no assistant session; connect first")

	// ErrUnknownPrompt is returned when connect names a prompt that does
	// not exist.
	ErrUnknownPrompt = errors.New("unknown system prompt")
)
