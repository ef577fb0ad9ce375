package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes for failures raised by the command layer itself. Errors the hub
// or a widget already categorised (HUB_WIDGET_NOT_FOUND, SPINNER_SIZE_INVALID,
// ...) reach the caller unchanged.
const (
	CodeMessageInvalid  = "SPINNER_COMMAND_INVALID"
	CodeCanceled        = "SPINNER_COMMAND_CANCELED"
	CodeDeadline        = "SPINNER_COMMAND_TIMEOUT"
	CodeContextFailed   = "SPINNER_COMMAND_CONTEXT"
	CodeExecutionFailed = "SPINNER_COMMAND_FAILED"
)

// categorised reports whether err already carries a go-errors category and
// must not be re-tagged.
func categorised(err error) bool {
	return err == nil || goerrors.IsWrapped(err)
}

func wrapValidationError(err error) error {
	if categorised(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "spinner command message rejected").
		WithTextCode(CodeMessageInvalid)
}

func wrapContextError(err error) error {
	if categorised(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "spinner command timed out").
			WithTextCode(CodeDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "spinner command cancelled").
			WithTextCode(CodeCanceled)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "spinner command context failed").
		WithTextCode(CodeContextFailed)
}

func wrapExecuteError(err error) error {
	if categorised(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "spinner command failed").
		WithTextCode(CodeExecutionFailed)
}
