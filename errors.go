// FILE: lixenwraith/flexop/errors.go
package flexop

import "errors"

// Usage-protocol violations. These indicate integration bugs in the host
// program rather than bad user input.
var (
	// ErrUsage is returned when an operation is called in the wrong lifecycle
	// state (preset or register after Init, Init twice, Get/Set before Init).
	ErrUsage = errors.New("usage error")
	// ErrWrongAccessor is returned when a Get/Set accessor does not match the
	// kind of the registered option.
	ErrWrongAccessor = errors.New("wrong accessor")
	// ErrDuplicateOption is returned when an option name is registered twice.
	ErrDuplicateOption = errors.New("duplicate option")
	// ErrInvalidName is returned for empty option names and nil storage.
	ErrInvalidName = errors.New("invalid option")
	// ErrInternal marks an inconsistency that valid registrations never reach.
	ErrInternal = errors.New("internal error")
)

// Malformed input.
var (
	ErrUnknownOption     = errors.New("unknown option")
	ErrMissingArgument   = errors.New("missing argument")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrInvalidKeyword    = errors.New("invalid keyword")
	ErrInvalidFlag       = errors.New("invalid flag value")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrHandlerRejected   = errors.New("handler rejected argument")
	ErrOptionFile        = errors.New("option file error")
	ErrValidation        = errors.New("validation failed")
)

// ErrHelp is returned by Init after help text has been rendered on request.
// It is not a failure; MustInit exits with status 0 on it.
var ErrHelp = errors.New("help requested")
