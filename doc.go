// Package bistring gives you strings that remember where they came from.
//
// 🚀 What is bistring?
//
//	A BiString couples an "original" string to a "modified" one via an
//	Alignment, so that after tokenizing, case-folding, or otherwise
//	rewriting text, you can still map any range of the result back to the
//	exact bytes of the source that produced it.
//
// ✨ Why choose bistring?
//
//   - Precise        — range mapping never narrows the true image, even
//     across coarse, many-to-one transformations
//   - Composable     — chain transformations and still map straight back
//     to the very first input
//   - Pure Go        — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under two subpackages:
//
//	bounds/ — normalized half-open ranges with optional endpoints
//	align/  — the Alignment/Slice types: push, compose, invert, infer
//
// Quick example:
//
//	a := bistring.Chunk("  ", "")
//	a.PushStr("Hello")
//	b := bistring.Chunk("  ", " ")
//	a.PushBiStr(b)
//	a.PushStr("world!")
//	// a.Original() == "  Hello  world!", a.Modified() == "Hello world!"
//
//	go get github.com/katalvlaran/bistring
package bistring

import "github.com/katalvlaran/bistring/align"

// Alignment re-exports align.Alignment under the root package, so
// callers working with BiString rarely need to import align directly
// just to name the type their own Alignment() accessor returns.
type Alignment = align.Alignment

// Pair re-exports align.Pair under the root package.
type Pair = align.Pair
