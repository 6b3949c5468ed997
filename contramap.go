// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

// ContramapState adapts the input state of a stateful computation.
// Running the returned computation converts its input with f, then runs c
// on the converted state. The adaptation is contravariant: a computation
// expecting I becomes one accepting K.
//
// ContramapState lets a computation written against one state type slot
// into a pipeline that carries another.
func ContramapState[I, O, A, K any](c Stateful[I, O, A], f func(K) I) Stateful[K, O, A] {
	return &contramapped[I, O, A, K]{inner: c, f: f}
}

type contramapped[I, O, A, K any] struct {
	oneShot
	inner Stateful[I, O, A]
	f     func(K) I
}

// Run implements [Stateful].
func (c *contramapped[I, O, A, K]) Run(input K) (A, O) {
	c.consume()
	return c.inner.Run(c.f(input))
}
