/*
Package composefn provides small combinators for building new functions
out of existing ones, without calling anything until the result is
invoked.

The package is built around two layers. The typed layer composes plain
Go functions with full compile-time checking: ComposeLeft and
ComposeRight chain two functions (in mathematical and pipeline order
respectively), their Err variants do the same for fallible functions,
and Chain folds any number of same-type stages. The dynamic layer
composes heterogeneous stages whose types change along the way, which
Go generics cannot express for an arbitrary number of stages. Its unit
is Fn, a callable taking one value and returning one value plus an
error; typed functions enter the layer through Lift and LiftErr, and
Compose and Pipe fold any number of stages into a single Fn.

Composition happens once, at definition time, and produces an ordinary
value: the composed function can be stored, passed around, and reused
like any other. Invoking it later runs the stages strictly in sequence,
forwarding each return value to the next stage. The composers add no
buffering, retries, or wrapping; an error from a stage is returned
unchanged and no later stage runs.

Example of composing a small reporting function:

	// A dataset of observation years, with duplicates.
	years := []int{2021, 2021, 2022, 2023}

	// Plain functions, written independently of any pipeline.
	unique := func(in []int) []int {
		seen := make(map[int]bool)
		out := make([]int, 0, len(in))
		for _, v := range in {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
		return out
	}
	length := func(in []int) int { return len(in) }

	// Compose applies right to left, like mathematical notation:
	// countDistinct(v) is length(unique(v)).
	countDistinct := composefn.MustCompose(
		composefn.Lift(length),
		composefn.Lift(unique),
	)

	n, err := countDistinct(years)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n) // 3

	// Pipe reads the other way around, leftmost stage first, and
	// stages can be grouped into sequences without changing behavior.
	describe := composefn.MustPipe(
		composefn.Stages{composefn.Lift(unique), composefn.Lift(length)},
		composefn.Lift(strconv.Itoa),
	)

	s, _ := describe(years)
	fmt.Println(s) // "3"

Fully typed pipelines that never change type can skip the dynamic layer
entirely:

	normalize := composefn.Chain(strings.ToLower, strings.TrimSpace)

For more details on each function, please refer to the package-level
documentation. Each composer is documented with its application order
and notes on error propagation.
*/
package composefn
