package engine

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the pipeline can produce. The UI maps
// each kind to its own localized message; the technical detail stays in logs.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindPrerequisiteMissing
	KindNotFound
	KindResourceBusy
	KindValidationFailure
	KindNameMismatch
	KindBandNotFound
	KindExtraction
	KindIOFailure
)

// String returns a stable identifier for logging.
func (k ErrorKind) String() string {
	switch k {
	case KindPrerequisiteMissing:
		return "prerequisite_missing"
	case KindNotFound:
		return "not_found"
	case KindResourceBusy:
		return "resource_busy"
	case KindValidationFailure:
		return "validation_failure"
	case KindNameMismatch:
		return "name_mismatch"
	case KindBandNotFound:
		return "band_not_found"
	case KindExtraction:
		return "extraction_error"
	case KindIOFailure:
		return "io_failure"
	default:
		return "unexpected"
	}
}

// OpError is the discriminated result carried by every failing core operation.
// SheetName/QueryName are set for KindNameMismatch so the user can correct the
// typo; Value is set for KindBandNotFound.
type OpError struct {
	Kind   ErrorKind
	Msg    string
	Detail error

	SheetName string
	QueryName string
	Value     float64
}

func (e *OpError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Detail)
	}
	return e.Msg
}

func (e *OpError) Unwrap() error {
	return e.Detail
}

// newError builds an OpError without extra payload.
func newError(kind ErrorKind, msg string, detail error) *OpError {
	return &OpError{Kind: kind, Msg: msg, Detail: detail}
}

// KindOf extracts the ErrorKind from err, defaulting to KindUnexpected.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindUnexpected
}

// AsOpError returns the wrapped OpError, or nil if err carries none.
func AsOpError(err error) *OpError {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe
	}
	return nil
}
