// Package errors re-exports the stdlib helpers next to the pkg/errors
// wrappers so callers import a single package and still get stack traces.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Wrap prefixes err with message and records the caller's stack.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error { return pkgerrors.WithStack(err) }
