// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

import (
	"sync/atomic"
)

// oneShot is the consume guard embedded in every combinator adapter.
// The atomic counter resolves racing Run calls to exactly one winner.
type oneShot struct {
	used atomic.Uintptr
}

// consume claims the single permitted run. Panics if already claimed.
func (g *oneShot) consume() {
	if g.used.Add(1) != 1 {
		panic("istate: stateful computation consumed twice")
	}
}

// tryConsume claims the single permitted run without panicking.
func (g *oneShot) tryConsume() bool {
	return g.used.Add(1) == 1
}

// discard marks the guard as used without running anything.
func (g *oneShot) discard() {
	g.used.Store(1)
}

// Affine wraps a stateful computation with one-shot enforcement.
// The computation can be run at most once; subsequent attempts will
// panic (Run) or return false (TryRun).
//
// Combinator-built computations enforce this discipline already; Affine
// extends it to arbitrary computations, in particular plain [Func] values,
// whose underlying functions would otherwise tolerate repeated use.
type Affine[I, O, A any] struct {
	oneShot
	inner Stateful[I, O, A]
}

// Once creates an affine computation from a regular stateful computation.
// The returned Affine can be run at most once.
func Once[I, O, A any](c Stateful[I, O, A]) *Affine[I, O, A] {
	return &Affine[I, O, A]{inner: c}
}

// Run invokes the underlying computation with the given input state.
// Panics if the computation has already been run or discarded.
func (a *Affine[I, O, A]) Run(input I) (A, O) {
	a.consume()
	return a.inner.Run(input)
}

// TryRun attempts to run the computation.
// Returns (value, output, true) on success, or zero values and false if
// the computation has already been consumed.
func (a *Affine[I, O, A]) TryRun(input I) (value A, output O, ok bool) {
	if !a.tryConsume() {
		return value, output, false
	}
	value, output = a.inner.Run(input)
	return value, output, true
}

// Discard marks the computation as consumed without running it.
// This is useful for explicitly dropping a computation that will not be used.
func (a *Affine[I, O, A]) Discard() {
	a.discard()
}
