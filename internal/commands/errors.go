package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors. Callers match on these (or
// on the goerrors category) rather than on message text.
const (
	codeValidationFailed = "MARKNOTION_CMD_VALIDATION_FAILED"
	codeContextCanceled  = "MARKNOTION_CMD_CANCELED"
	codeContextTimeout   = "MARKNOTION_CMD_TIMEOUT"
	codeContextFailed    = "MARKNOTION_CMD_CONTEXT_FAILED"
	codeExecutionFailed  = "MARKNOTION_CMD_EXECUTION_FAILED"
)

// wrapValidationError categorises a message validation failure. Errors that
// already carry a goerrors wrapper pass through untouched so categories
// assigned closer to the source win.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(codeValidationFailed)
}

// wrapContextError categorises context failures observed around execution,
// distinguishing cancellation from deadline expiry.
func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}

	code, msg := codeContextFailed, "command context failed"
	switch {
	case errors.Is(err, context.Canceled):
		code, msg = codeContextCanceled, "command canceled"
	case errors.Is(err, context.DeadlineExceeded):
		code, msg = codeContextTimeout, "command deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

// wrapExecuteError categorises a failure returned by the wrapped command
// function. The original error stays reachable through errors.Is/As.
func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
