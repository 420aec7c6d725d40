package config

import "fmt"

// ErrorKind classifies validation failures.
type ErrorKind int

const (
	// MalformedDocument means the input is not parseable as a mapping at all.
	MalformedDocument ErrorKind = iota
	// MissingField means a required key is absent.
	MissingField
	// InvalidValue means a key is present but fails a type or format check.
	InvalidValue
)

// String returns the kind name as used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case MalformedDocument:
		return "malformed document"
	case MissingField:
		return "missing field"
	case InvalidValue:
		return "invalid value"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// FieldError is a validation failure located by the dotted document path of
// the offending field, e.g. "management.instance.flavor".
type FieldError struct {
	Kind   ErrorKind
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Reason)
}

func missingField(path string) *FieldError {
	return &FieldError{Kind: MissingField, Path: path, Reason: "required key is absent"}
}

func invalidValue(path, reason string) *FieldError {
	return &FieldError{Kind: InvalidValue, Path: path, Reason: reason}
}

func malformedDocument(reason string) *FieldError {
	return &FieldError{Kind: MalformedDocument, Reason: reason}
}
