package foldx

func FoldLeft[T, A any](seed A, items []T, combine func(A, T) A) A {
	acc := seed
	for _, item := range items {
		acc = combine(acc, item)
	}
	return acc
}

func Reverse[T any](in []T) []T {
	out := make([]T, len(in))
	for i, item := range in {
		out[len(in)-1-i] = item
	}
	return out
}
