// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

// Apply combines a computation yielding a function with a computation
// yielding its argument. Running the returned computation runs cf first,
// runs ca on cf's output state, and yields the function applied to the
// argument alongside ca's output state.
//
// The state indices compose I to M to O, with the function computation
// running before the argument computation.
func Apply[I, M, A, B, O any](cf Stateful[I, M, func(A) B], ca Stateful[M, O, A]) Stateful[I, O, B] {
	return &applied[I, M, A, B, O]{first: cf, second: ca}
}

type applied[I, M, A, B, O any] struct {
	oneShot
	first  Stateful[I, M, func(A) B]
	second Stateful[M, O, A]
}

// Run implements [Stateful].
func (a *applied[I, M, A, B, O]) Run(input I) (B, O) {
	a.consume()
	f, mid := a.first.Run(input)
	value, output := a.second.Run(mid)
	return f(value), output
}
