package rop

import (
	"errors"
	"fmt"
)

// ErrViolation matches every *Violation via errors.Is.
var ErrViolation = errors.New("contract violation")

// Violation is the panic value raised by Expect and Unwrap when they are
// called on a failing value.
type Violation struct {
	Msg     string
	Payload any
}

func (v *Violation) Error() string {
	if v.Msg != "" {
		return v.Msg
	}
	if err, ok := v.Payload.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", v.Payload)
}

func (v *Violation) Is(target error) bool {
	return target == ErrViolation
}

// Unwrap exposes the failure payload when it is an error.
func (v *Violation) Unwrap() error {
	if err, ok := v.Payload.(error); ok {
		return err
	}
	return nil
}

// Abort panics with a Violation. It never returns; the T result only lets
// callers use it in expression position.
func Abort[T any](msg string, payload any) T {
	panic(&Violation{Msg: msg, Payload: payload})
}

// Catch runs fn and converts a panic raised inside it into an error.
// Violations are returned as is; other panic values are wrapped.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case *Violation:
			err = v
		case error:
			err = fmt.Errorf("panic: %w", v)
		default:
			err = fmt.Errorf("panic: %v", v)
		}
	}()

	fn()
	return nil
}
