// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package istate provides composable stateful computations with indexed
// state types in Go.
//
// The core type [Stateful] represents a computation that consumes an input
// state and produces a result value together with an output state. The input
// and output state types are independent type parameters, so a computation
// can change the type of the state it threads, and sequencing aligns those
// types at compile time.
//
// # Design Philosophy
//
// istate provides:
//   - A minimal single-method interface for stateful computations
//   - Function adaptation via [Func] so plain functions satisfy the interface
//   - Indexed sequencing where type-level state transitions compose end to end
//   - Single-use discipline enforced at runtime for combinator-built computations
//
// Combinators are package-level functions rather than methods because Go
// methods cannot introduce new type parameters. Each combinator accepts any
// [Stateful] and returns an unexported adapter; pipelines are built by
// nesting calls.
//
// # Core Operations
//
//   - [Stateful]: The computation interface, Run(input I) (A, O)
//   - [Func]: Function type adapting func(I) (A, O) to [Stateful]
//   - [Evaluate]: Run and keep only the result value
//   - [Execute]: Run and keep only the output state
//
// # Combinators
//
// Value and state transformation:
//
//   - [Map]: Transform the result value, leaving the state transition unchanged
//   - [MapState]: Transform the output state, leaving the result value unchanged
//   - [ContramapState]: Adapt the input state, so a computation accepts a different type
//
// Sequencing:
//
//   - [AndThen]: Run a computation, feed its value to a continuation, run the result
//   - [Then]: Sequence two computations, discarding the first value
//   - [Apply]: Run a function-yielding computation, then its argument computation
//
// # Constructors
//
//   - [New]: Yield the current state, pass it through unchanged
//   - [Gets]: Replace the state via a function, yield the replacement
//   - [Gots]: Yield a projection of the state, pass the state through unchanged
//   - [Pure]: Yield a fixed value, pass the state through unchanged
//   - [Modify]: Replace the state via a function, yield [Unit]
//   - [Put]: Replace the state with a fixed value, yield [Unit]
//
// # Single-Use Discipline
//
// Computations model a consumed resource: running one uses it up. Every
// combinator-built computation enforces this at runtime and panics on a
// second Run. Plain [Func] values are exempt, since a bare function carries
// no state to corrupt; wrap one with [Once] when single use matters.
//
//   - [Affine]: One-shot wrapper for arbitrary computations
//   - [Once]: Create an affine computation
//   - [Affine.Run]: Run (panics on reuse)
//   - [Affine.TryRun]: Non-panicking variant
//   - [Affine.Discard]: Drop without running
//
// To run a pipeline on several inputs, rebuild it per input, typically
// through a constructor function.
//
// # Example
//
//	type draft struct{ body string }
//	type sealed struct{ body string }
//
//	appendLine := func(line string) istate.Stateful[draft, draft, int] {
//		return istate.Func[draft, draft, int](func(d draft) (int, draft) {
//			d.body += line + "\n"
//			return len(d.body), d
//		})
//	}
//
//	comp := istate.AndThen(
//		appendLine("hello"),
//		func(n int) istate.Stateful[draft, sealed, int] {
//			return istate.Map(
//				istate.Gets(func(d draft) sealed { return sealed{body: d.body} }),
//				func(sealed) int { return n },
//			)
//		},
//	)
//
//	size, final := comp.Run(draft{})
//	// size == 6, final.body == "hello\n"
package istate
