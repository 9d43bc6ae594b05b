// Package sqlerr constructs the domain errors surfaced to the query
// engine: each carries a stable error code, a human-readable message,
// and the underlying root cause.
package sqlerr

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type withCode struct {
	code  Coder
	msg   string
	cause error
}

// WithCode creates a new coded error with no underlying cause.
func WithCode(coder Coder, format string, args ...any) error {
	return &withCode{
		code: coder,
		msg:  fmt.Sprintf(format, args...),
	}
}

// WrapC annotates err with a code and message.  It returns nil if err
// is nil.
func WrapC(err error, coder Coder, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &withCode{
		code:  coder,
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

func (w *withCode) Error() string {
	return fmt.Sprintf("[%d:%s] %s", w.code.Code(), w.code.SQLState(), w.msg)
}

func (w *withCode) Cause() error { return w.cause }

func (w *withCode) Unwrap() error { return w.cause }

func (w *withCode) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') && w.cause != nil {
			fmt.Fprintf(st, "%s: %+v", w.Error(), w.cause)
			return
		}
		fallthrough
	case 's':
		io.WriteString(st, w.Error())
	case 'q':
		fmt.Fprintf(st, "%q", w.Error())
	}
}

// CodeOf returns the Coder carried by err or any error it wraps, and
// whether one was found.
func CodeOf(err error) (Coder, bool) {
	for err != nil {
		if wc, ok := err.(*withCode); ok {
			return wc.code, true
		}
		err = errors.Unwrap(err)
	}
	return nil, false
}

// IsCode reports whether err carries coder's code.
func IsCode(err error, coder Coder) bool {
	c, ok := CodeOf(err)
	return ok && c.Code() == coder.Code()
}

// Cause returns the root cause of err, unwinding both Cause and Unwrap
// chains.
func Cause(err error) error {
	return errors.Cause(err)
}
