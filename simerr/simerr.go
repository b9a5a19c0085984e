// Package simerr defines the error kinds the driver distinguishes between,
// per the fatal/non-fatal split of a simulation run.
package simerr

import "fmt"

// Kind identifies one of the error classes a simulation run can raise.
type Kind int

const (
	// UnknownColor means the DNA never defined a color that appeared at
	// the ant's current cell. Fatal for the current ant only.
	UnknownColor Kind = iota
	// MalformedDNALine means a DNA line had the wrong token count or a
	// dirs/states string of the wrong length. Fatal for the current ant only.
	MalformedDNALine
	// GridTooLarge means the raster bounding box exceeded the safety
	// threshold. Skips image generation for that ant only.
	GridTooLarge
	// FileNotFound means the input file could not be opened. Fatal,
	// process-wide.
	FileNotFound
	// DirectoryMissing means the requested image output directory does
	// not exist. Fatal, process-wide.
	DirectoryMissing
	// IOError covers any other read/write failure. Fatal, process-wide.
	IOError
)

func (k Kind) String() string {
	switch k {
	case UnknownColor:
		return "UnknownColor"
	case MalformedDNALine:
		return "MalformedDNALine"
	case GridTooLarge:
		return "GridTooLarge"
	case FileNotFound:
		return "FileNotFound"
	case DirectoryMissing:
		return "DirectoryMissing"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with a Kind so callers can switch on
// classification instead of matching strings.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == kind
}

// Per-ant errors abort only the current ant's block; process-wide errors
// abort the whole run.
func (k Kind) FatalToProcess() bool {
	switch k {
	case FileNotFound, DirectoryMissing, IOError:
		return true
	default:
		return false
	}
}
