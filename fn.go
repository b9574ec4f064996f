package composefn

import (
	"fmt"
	"reflect"
)

// Fn is the dynamically typed callable unit composed by Compose and Pipe.
//
// An Fn accepts a single value and returns a single value. A non-nil
// error is how a stage reports failure; composition forwards it
// unchanged and runs no further stages.
//
// Typed functions enter the dynamic layer through Lift and LiftErr.
type Fn func(v any) (any, error)

// Identity returns its input unchanged. It is the seed of the fold
// performed by Compose and Pipe, and composing any Fn with Identity on
// either side leaves its behavior unchanged.
//
// Identity is assignable to Fn and can be used directly as a stage.
func Identity(v any) (any, error) {
	return v, nil
}

// After returns an Fn that applies inner first, then f to its result.
//
// This is binary left composition: f, written first, runs last. An
// error from inner is returned as-is and f is never called.
func (f Fn) After(inner Fn) Fn {
	return func(v any) (any, error) {
		r, err := inner(v)
		if err != nil {
			return nil, err
		}
		return f(r)
	}
}

// Then returns an Fn that applies f first, then next to its result.
//
// This is binary right composition, reading in pipeline order:
// f.Then(g).Then(h) runs f, then g, then h.
func (f Fn) Then(next Fn) Fn {
	return next.After(f)
}

// Lift adapts a typed function into an Fn.
//
// The returned Fn asserts its input to In before calling fn. An input
// of any other type fails the call with a *TypeMismatchError.
func Lift[In, Out any](fn func(In) Out) Fn {
	return func(v any) (any, error) {
		in, ok := v.(In)
		if !ok {
			return nil, &TypeMismatchError{
				Want: reflect.TypeFor[In]().String(),
				Got:  v,
			}
		}
		return fn(in), nil
	}
}

// LiftErr adapts a typed fallible function into an Fn.
//
// Input handling is identical to Lift. A non-nil error returned by fn
// is forwarded unchanged.
func LiftErr[In, Out any](fn func(In) (Out, error)) Fn {
	return func(v any) (any, error) {
		in, ok := v.(In)
		if !ok {
			return nil, &TypeMismatchError{
				Want: reflect.TypeFor[In]().String(),
				Got:  v,
			}
		}
		return fn(in)
	}
}

// TypeMismatchError reports a call-time input whose dynamic type does
// not match what a lifted stage accepts.
type TypeMismatchError struct {
	Want string
	Got  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("composefn: stage expects %s, got %T", e.Want, e.Got)
}
