// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

// New creates a computation that yields the current state as its value and
// passes the state through unchanged.
func New[S any]() Func[S, S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Gets creates a computation that replaces the state with f applied to it
// and yields the replaced state as its value. Value and output state are
// the same: both observe the transition.
func Gets[I, O any](f func(I) O) Func[I, O, O] {
	return func(s I) (O, O) {
		o := f(s)
		return o, o
	}
}

// Gots creates a computation that yields f applied to the current state as
// its value and passes the state through unchanged. The state is only read,
// never replaced.
func Gots[I, A any](f func(I) A) Func[I, I, A] {
	return func(s I) (A, I) {
		return f(s), s
	}
}

// Pure creates a computation that yields the given value and passes the
// state through unchanged.
func Pure[S, A any](value A) Func[S, S, A] {
	return func(s S) (A, S) {
		return value, s
	}
}

// Put creates a computation that replaces the state with the given one,
// discarding the input state. It yields [Unit].
func Put[I, S any](state S) Func[I, S, Unit] {
	return func(I) (Unit, S) {
		return Unit{}, state
	}
}

// Modify creates a computation that replaces the state with f applied to
// it. It yields [Unit]. Unlike [Gets], the transition is not observed as
// a value.
func Modify[I, O any](f func(I) O) Func[I, O, Unit] {
	return func(s I) (Unit, O) {
		return Unit{}, f(s)
	}
}
