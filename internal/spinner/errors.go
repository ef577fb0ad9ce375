package spinner

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrSizeInvalid is returned for zero, negative or non-finite sizes.
	ErrSizeInvalid = errors.New("spinner: size must be a positive number")
	// ErrValueUnsafe is returned when the sanitizer rejects a string value.
	ErrValueUnsafe = errors.New("spinner: value rejected by sanitizer")
	// ErrReservedKey is returned when SetExtra targets a parameter that has
	// its own setter.
	ErrReservedKey = errors.New("spinner: parameter has a dedicated setter")
	// ErrValueType is returned for host values of an unsupported type.
	ErrValueType = errors.New("spinner: unsupported parameter value type")
	// ErrUnknownVariant is returned by the registry for unregistered names.
	ErrUnknownVariant = errors.New("spinner: unknown variant")
	// ErrVariantRequired is returned when a widget is built without a variant.
	ErrVariantRequired = errors.New("spinner: variant is required")
)

const (
	textCodeSizeInvalid     = "SPINNER_SIZE_INVALID"
	textCodeValueUnsafe     = "SPINNER_VALUE_UNSAFE"
	textCodeReservedKey     = "SPINNER_RESERVED_KEY"
	textCodeValueType       = "SPINNER_VALUE_TYPE"
	textCodeUnknownVariant  = "SPINNER_VARIANT_UNKNOWN"
	textCodeVariantRequired = "SPINNER_VARIANT_REQUIRED"
)

func validationError(err error, code, message string) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, message).WithTextCode(code)
}
