package composefn

// ComposeLeft composes two typed functions in mathematical order:
// the returned function applies inner first, then outer to its result.
//
//	double := func(v int) int { return v * 2 }
//	toStr := strconv.Itoa
//
//	f := composefn.ComposeLeft(toStr, double)
//	f(21) // "42"
func ComposeLeft[A, B, C any](outer func(B) C, inner func(A) B) func(A) C {
	return func(a A) C {
		return outer(inner(a))
	}
}

// ComposeRight composes two typed functions in pipeline order: the
// returned function applies first, then second to its result.
//
// ComposeRight(f, g) is equivalent to ComposeLeft(g, f).
func ComposeRight[A, B, C any](first func(A) B, second func(B) C) func(A) C {
	return ComposeLeft(second, first)
}

// ComposeLeftErr is ComposeLeft for fallible functions.
//
// A non-nil error from inner is returned as-is and outer is never
// called.
func ComposeLeftErr[A, B, C any](outer func(B) (C, error), inner func(A) (B, error)) func(A) (C, error) {
	return func(a A) (C, error) {
		b, err := inner(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return outer(b)
	}
}

// ComposeRightErr is ComposeRight for fallible functions.
func ComposeRightErr[A, B, C any](first func(A) (B, error), second func(B) (C, error)) func(A) (C, error) {
	return ComposeLeftErr(second, first)
}

// Chain composes any number of same-type functions in pipeline order,
// leftmost first.
//
// Chain is the fully typed fast path for the common case where every
// stage maps T to T; heterogeneous pipelines go through Compose or
// Pipe instead. Chain() returns a function that yields its input
// unchanged.
func Chain[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}
