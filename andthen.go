// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

// AndThen sequences two stateful computations where the second depends on
// the first's result value. Running the returned computation runs c, feeds
// its value to k, and runs the computation k returns on c's output state.
//
// The output state type of c must match the input state type of the
// computation k returns; the indices compose I to O to P.
func AndThen[I, O, A, P, B any](c Stateful[I, O, A], k func(A) Stateful[O, P, B]) Stateful[I, P, B] {
	return &bound[I, O, A, P, B]{inner: c, kleisli: k}
}

type bound[I, O, A, P, B any] struct {
	oneShot
	inner   Stateful[I, O, A]
	kleisli func(A) Stateful[O, P, B]
}

// Run implements [Stateful].
func (b *bound[I, O, A, P, B]) Run(input I) (B, P) {
	b.consume()
	value, output := b.inner.Run(input)
	return b.kleisli(value).Run(output)
}

// Then sequences two stateful computations, discarding the first's result
// value. It is [AndThen] with a constant continuation: c2 runs on c1's
// output state regardless of the value c1 produced.
//
// Allocation note: Then avoids the continuation closure that
// AndThen(c1, func(A) Stateful[O, P, B] { return c2 }) would capture.
func Then[I, O, A, P, B any](c1 Stateful[I, O, A], c2 Stateful[O, P, B]) Stateful[I, P, B] {
	return &sequenced[I, O, A, P, B]{first: c1, second: c2}
}

type sequenced[I, O, A, P, B any] struct {
	oneShot
	first  Stateful[I, O, A]
	second Stateful[O, P, B]
}

// Run implements [Stateful].
func (s *sequenced[I, O, A, P, B]) Run(input I) (B, P) {
	s.consume()
	_, output := s.first.Run(input)
	return s.second.Run(output)
}
