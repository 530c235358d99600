// Package diagerr provides errors carrying both a short message fit for
// display to a CLI user and a more technical description useful for
// debugging, for use when reporting why a chunk was rejected.
package diagerr

import "fmt"

// rejectionError is an error caused by the recognizer rejecting a chunk.
// It carries a short human-readable message to show at a terminal as
// well as a more technical "error message" style message.
type rejectionError struct {
	msg     string
	display string
	wrap    error
}

func (e *rejectionError) Error() string {
	return e.msg
}

// DisplayMessage returns the short message that should be shown to a
// CLI user to describe the error.
func (e *rejectionError) DisplayMessage() string {
	return e.display
}

// Unwrap gives the error that the rejectionError wraps, if it wraps one.
func (e *rejectionError) Unwrap() error {
	return e.wrap
}

// New returns a new error that has both a message to show the user and
// a technical description of the error.
func New(display, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("rejected: %q", display)
	}
	return &rejectionError{
		msg:     technical,
		display: display,
	}
}

// Newf returns a new error that has a display message and an
// automatically generated Error() description. The arguments given are
// the format string and the arguments to the format string.
func Newf(displayFormat string, a ...interface{}) error {
	return New(fmt.Sprintf(displayFormat, a...), "")
}

// Wrap returns a new error that has both a display message and a
// technical description, and that wraps the given error.
func Wrap(e error, display, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("rejected: %q", display)
	}
	return &rejectionError{
		msg:     technical,
		display: display,
		wrap:    e,
	}
}

// Wrapf returns a new error that has a display message and an
// automatically generated Error() description, and that wraps the given
// error. The arguments given are the error to wrap, then the format
// followed by its arguments.
func Wrapf(e error, displayFormat string, a ...interface{}) error {
	return Wrap(e, fmt.Sprintf(displayFormat, a...), "")
}

// DisplayMessage gets the message to show a CLI user for the given
// error. If it is one of the types defined in this package, the short
// display message is returned; otherwise err.Error() is returned.
func DisplayMessage(err error) string {
	if rejErr, ok := err.(*rejectionError); ok {
		return rejErr.DisplayMessage()
	}
	return err.Error()
}
