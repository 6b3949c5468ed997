// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

// Map transforms the result value of a stateful computation by applying f
// to the value it yields. The state transition is unchanged: the returned
// computation threads state exactly as c does. f is invoked exactly once,
// after the inner computation completes, never before.
func Map[I, O, A, B any](c Stateful[I, O, A], f func(A) B) Stateful[I, O, B] {
	return &mapped[I, O, A, B]{inner: c, f: f}
}

type mapped[I, O, A, B any] struct {
	oneShot
	inner Stateful[I, O, A]
	f     func(A) B
}

// Run implements [Stateful].
func (m *mapped[I, O, A, B]) Run(input I) (B, O) {
	m.consume()
	value, output := m.inner.Run(input)
	return m.f(value), output
}

// MapState transforms the output state of a stateful computation by applying
// f to the state it leaves behind. The result value is unchanged.
//
// MapState moves along the state index: a computation from I to O becomes a
// computation from I to P.
func MapState[I, O, A, P any](c Stateful[I, O, A], f func(O) P) Stateful[I, P, A] {
	return &mappedState[I, O, A, P]{inner: c, f: f}
}

type mappedState[I, O, A, P any] struct {
	oneShot
	inner Stateful[I, O, A]
	f     func(O) P
}

// Run implements [Stateful].
func (m *mappedState[I, O, A, P]) Run(input I) (A, P) {
	m.consume()
	value, output := m.inner.Run(input)
	return value, m.f(output)
}
