// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

// Stateful is the capability contract for indexed stateful computations.
// Stateful[I, O, A] consumes an input state of type I and produces a value
// of type A together with an output state of type O. The input and output
// state types are independent, which is what makes the abstraction indexed:
// a chain of computations may migrate the state through several shapes.
//
// Run is the single required operation; every combinator in this package is
// derived from it. Use [Evaluate] or [Execute] when only one half of the
// pair is needed.
//
// The default contract is single-use: running a computation consumes it,
// and the adapters returned by the combinators enforce this by panicking on
// a second Run. A plain [Func] underneath may tolerate repeated use; wrap
// it in [Once] when the one-shot discipline must be enforced at that level
// too.
type Stateful[I, O, A any] interface {
	Run(input I) (A, O)
}

// Func adapts a plain function to the [Stateful] contract.
//
// Any function from an input state to a (value, output state) pair is a
// stateful computation; the conversion is the base case from which
// composed computations are built:
//
//	double := istate.Func[int, int, int](func(s int) (int, int) {
//		return s, s * 2
//	})
//
// A Func is pure plumbing with no one-shot guard of its own: whether it
// tolerates repeated Run calls is decided by the function it wraps.
type Func[I, O, A any] func(I) (A, O)

// Run implements [Stateful].
func (f Func[I, O, A]) Run(input I) (A, O) {
	return f(input)
}

// Evaluate runs the computation and returns only the value, discarding the
// output state. It consumes the computation exactly as Run does.
func Evaluate[I, O, A any](c Stateful[I, O, A], input I) A {
	value, _ := c.Run(input)
	return value
}

// Execute runs the computation and returns only the output state,
// discarding the value. It consumes the computation exactly as Run does.
func Execute[I, O, A any](c Stateful[I, O, A], input I) O {
	_, output := c.Run(input)
	return output
}
