package composefn

import (
	"fmt"

	"composefn/internal/foldx"
)

// Stages is an ordered sequence of dynamic stages, usable anywhere
// Compose and Pipe accept individual stages.
type Stages = []Fn

// Compose builds a single Fn from any number of stages, applied in
// mathematical order: the rightmost stage runs first and the leftmost
// last, so Compose(g, f) behaves like g(f(v)).
//
// Each stage may be an Fn, a bare func(any) (any, error), a []Fn, or a
// []any nesting any of these to arbitrary depth. All shapes are
// flattened into one ordered sequence before composing, so
// Compose(a, b, c), Compose([]Fn{a, b, c}) and Compose([]any{a, b}, c)
// are behaviorally identical.
//
// Compose() yields an identity-equivalent Fn, and Compose(f) behaves
// exactly like f. A nil or non-composable element fails construction
// with a *BadStageError naming its position; errors from the stages
// themselves surface only later, when the composed Fn is called.
func Compose(stages ...any) (Fn, error) {
	flat, err := flatten(stages)
	if err != nil {
		return nil, err
	}
	return foldx.FoldLeft(Fn(Identity), flat, Fn.After), nil
}

// Pipe builds a single Fn from any number of stages, applied in
// pipeline order: the leftmost stage runs first. Pipe(f, g) behaves
// like g(f(v)).
//
// Pipe accepts the same stage shapes as Compose and shares its edge
// cases; only the application order differs.
func Pipe(stages ...any) (Fn, error) {
	flat, err := flatten(stages)
	if err != nil {
		return nil, err
	}
	return foldx.FoldLeft(Fn(Identity), foldx.Reverse(flat), Fn.After), nil
}

// MustCompose is Compose but panics on a malformed stage sequence.
//
// Use it for compositions whose stages are known statically.
func MustCompose(stages ...any) Fn {
	fn, err := Compose(stages...)
	if err != nil {
		panic(err)
	}
	return fn
}

// MustPipe is Pipe but panics on a malformed stage sequence.
func MustPipe(stages ...any) Fn {
	fn, err := Pipe(stages...)
	if err != nil {
		panic(err)
	}
	return fn
}

// flatten normalizes the accepted stage shapes into one ordered []Fn,
// preserving the written order across nesting.
func flatten(stages []any) ([]Fn, error) {
	flat := make([]Fn, 0, len(stages))
	if err := walkStages(stages, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}

func walkStages(items []any, flat *[]Fn) error {
	for _, item := range items {
		switch s := item.(type) {
		case Fn:
			if s == nil {
				return &BadStageError{Position: len(*flat), Value: item}
			}
			*flat = append(*flat, s)
		case func(any) (any, error):
			if s == nil {
				return &BadStageError{Position: len(*flat), Value: item}
			}
			*flat = append(*flat, Fn(s))
		case []Fn:
			for _, fn := range s {
				if fn == nil {
					return &BadStageError{Position: len(*flat), Value: nil}
				}
				*flat = append(*flat, fn)
			}
		case []any:
			if err := walkStages(s, flat); err != nil {
				return err
			}
		default:
			return &BadStageError{Position: len(*flat), Value: item}
		}
	}
	return nil
}

// BadStageError reports an element supplied to Compose or Pipe that is
// not a composable stage. Position is the index the element would
// occupy in the flattened sequence.
type BadStageError struct {
	Position int
	Value    any
}

func (e *BadStageError) Error() string {
	return fmt.Sprintf("composefn: stage %d (%T) is not composable", e.Position, e.Value)
}
