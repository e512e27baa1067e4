package board_test

import (
	"fmt"

	"github.com/plus3/scaletris/level"
)

func ExampleBoard_ClearRows() {
	b := level.MustBoard(
		"1..",
		"222",
		".3.",
		"444",
	)
	fmt.Println(b.ClearRows())
	fmt.Println(b)
	// Output:
	// 2
	// ...
	// ...
	// 1..
	// .3.
}

func ExampleBoard_Penalize() {
	b := level.MustBoard(
		"....",
		"....",
		"1.1.",
		"2...",
		"3333",
	)
	from, to, ok := b.Penalize()
	fmt.Println(from, to, ok)
	fmt.Println(b)
	// Output:
	// 3 1 true
	// ....
	// 2...
	// 1.1.
	// 2...
	// 3333
}
