package bistring_test

import (
	"fmt"

	"github.com/katalvlaran/bistring"
	"github.com/katalvlaran/bistring/bounds"
)

// ExampleBiString_PushBiStr builds up a bidirectional string out of
// literal chunks and transformed text, then reports both sides.
func ExampleBiString_PushBiStr() {
	b := bistring.Chunk("  ", "")
	b.PushStr("Hello")
	b.PushBiStr(bistring.Chunk("  ", " "))
	b.PushStr("world!")
	b.PushBiStr(bistring.Chunk("  ", ""))

	fmt.Printf("%q\n", b.Original())
	fmt.Printf("%q\n", b.Modified())
	// Output:
	// "  Hello  world!  "
	// "Hello world!"
}

// ExampleBiString_Slice shows mapping a range of the modified string back
// to its corresponding original substring, including surrounding
// whitespace a coarser chunk absorbed.
func ExampleBiString_Slice() {
	b := bistring.Chunk("  ", "")
	b.PushStr("Hello")
	b.PushBiStr(bistring.Chunk("  ", " "))
	b.PushStr("world!")
	b.PushBiStr(bistring.Chunk("  ", ""))

	view := b.Slice(bounds.Open(4, 7))
	fmt.Printf("modified=%q original=%q\n", view.Modified(), view.Original())
	// Output: modified="o w" original="o  w"
}
