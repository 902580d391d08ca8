package sequence_test

import (
	"context"
	"fmt"

	"github.com/vnykmshr/goxf/pkg/streaming/sequence"
	"github.com/vnykmshr/goxf/pkg/transduce"
)

func ExampleNew() {
	ctx := context.Background()

	xf := transduce.Compose(
		transduce.Filter(func(n int) bool { return n%2 == 1 }),
		transduce.Map(func(n int) int { return n * n }),
	)

	seq := sequence.New(xf, sequence.FromSlice([]int{1, 2, 3, 4, 5}))
	result, _ := seq.ToSlice(ctx)

	fmt.Println(result)
	// Output: [1 9 25]
}

func ExampleGenerate() {
	ctx := context.Background()

	n := 0
	naturals := sequence.Generate(func() int {
		n++
		return n
	})

	// Take terminates the pipeline after three inputs, so the infinite
	// generator is only ever asked for three values.
	seq := sequence.New(transduce.Take[int](3), naturals)
	result, _ := seq.ToSlice(ctx)

	fmt.Println(result)
	// Output: [1 2 3]
}
