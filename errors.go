package aseprite

import "fmt"

// MalformedInputError is the single error kind produced by Parse. It covers
// JSON syntax errors, type mismatches and missing required fields. Path
// identifies the offending field in document notation ("frames[2].frame.x",
// or "$" for the document itself); Expected and Actual describe the shapes
// involved where they are known.
type MalformedInputError struct {
	Path     string
	Expected string
	Actual   string
	Err      error
}

func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("malformed input at %s", e.Path)

	switch {
	case e.Expected != "" && e.Actual != "":
		msg += fmt.Sprintf(": expected %s, got %s", e.Expected, e.Actual)
	case e.Expected != "":
		msg += fmt.Sprintf(": expected %s", e.Expected)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
