// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/istate"
)

// Edge cases for coverage

func TestMapInvokesEachPartExactlyOnce(t *testing.T) {
	innerCount, fCount := 0, 0
	inner := istate.Func[int, int, int](func(s int) (int, int) {
		innerCount++
		return s, s
	})

	istate.Map(inner, func(v int) int {
		fCount++
		return v
	}).Run(0)

	if innerCount != 1 || fCount != 1 {
		t.Fatalf("got inner=%d f=%d, want 1 and 1", innerCount, fCount)
	}
}

func TestMapStateInvokesEachPartExactlyOnce(t *testing.T) {
	innerCount, fCount := 0, 0
	inner := istate.Func[int, int, int](func(s int) (int, int) {
		innerCount++
		return s, s
	})

	istate.MapState(inner, func(o int) int {
		fCount++
		return o
	}).Run(0)

	if innerCount != 1 || fCount != 1 {
		t.Fatalf("got inner=%d f=%d, want 1 and 1", innerCount, fCount)
	}
}

func TestAndThenInvokesEachPartExactlyOnce(t *testing.T) {
	firstCount, kCount, secondCount := 0, 0, 0
	first := istate.Func[int, int, int](func(s int) (int, int) {
		firstCount++
		return s, s
	})

	istate.AndThen(first, func(v int) istate.Stateful[int, int, int] {
		kCount++
		return istate.Func[int, int, int](func(s int) (int, int) {
			secondCount++
			return v, s
		})
	}).Run(0)

	if firstCount != 1 || kCount != 1 || secondCount != 1 {
		t.Fatalf("got first=%d k=%d second=%d, want 1, 1 and 1", firstCount, kCount, secondCount)
	}
}

func TestContramapStateInvokesEachPartExactlyOnce(t *testing.T) {
	fCount, innerCount := 0, 0
	inner := istate.Func[int, int, int](func(s int) (int, int) {
		innerCount++
		return s, s
	})

	istate.ContramapState(inner, func(k int) int {
		fCount++
		return k
	}).Run(0)

	if fCount != 1 || innerCount != 1 {
		t.Fatalf("got f=%d inner=%d, want 1 and 1", fCount, innerCount)
	}
}

func TestApplyInvokesEachPartExactlyOnce(t *testing.T) {
	firstCount, secondCount, combineCount := 0, 0, 0
	first := istate.Func[int, int, func(int) int](func(s int) (func(int) int, int) {
		firstCount++
		return func(x int) int {
			combineCount++
			return x
		}, s
	})
	second := istate.Func[int, int, int](func(s int) (int, int) {
		secondCount++
		return s, s
	})

	istate.Apply(first, second).Run(0)

	if firstCount != 1 || secondCount != 1 || combineCount != 1 {
		t.Fatalf("got first=%d second=%d combine=%d, want 1, 1 and 1", firstCount, secondCount, combineCount)
	}
}

func TestAndThenInvocationOrder(t *testing.T) {
	var events []string
	first := istate.Func[int, int, int](func(s int) (int, int) {
		events = append(events, "first")
		return s, s
	})

	istate.AndThen(first, func(v int) istate.Stateful[int, int, int] {
		events = append(events, "continuation")
		return istate.Func[int, int, int](func(s int) (int, int) {
			events = append(events, "second")
			return v, s
		})
	}).Run(0)

	want := []string{"first", "continuation", "second"}
	if !slices.Equal(events, want) {
		t.Fatalf("got order %v, want %v", events, want)
	}
}

func TestZeroSizedState(t *testing.T) {
	// Unit threads through like any other state type
	comp := istate.Then(
		istate.Put[istate.Unit](7),
		istate.Gets(func(s int) int { return s + 1 }),
	)

	value, output := comp.Run(istate.Unit{})
	if value != 8 {
		t.Fatalf("got %d, want 8", value)
	}
	if output != 8 {
		t.Fatalf("got state %d, want 8", output)
	}
}

func TestZeroValueStates(t *testing.T) {
	// Zero values of various state types
	value, output := istate.New[int]().Run(0)
	if value != 0 || output != 0 {
		t.Fatalf("got (%d,%d), want (0,0)", value, output)
	}

	strValue, strOutput := istate.New[string]().Run("")
	if strValue != "" || strOutput != "" {
		t.Fatalf("got (%q,%q), want empty strings", strValue, strOutput)
	}
}

func TestStateTypeJourney(t *testing.T) {
	// string -> int -> []string -> string across one chain
	comp := istate.AndThen(
		istate.Gets(func(s string) int { return len(s) }),
		func(n int) istate.Stateful[int, string, string] {
			return istate.AndThen(
				istate.Gets(func(m int) []string { return make([]string, m) }),
				func([]string) istate.Stateful[[]string, string, string] {
					return istate.Func[[]string, string, string](func(xs []string) (string, string) {
						return "done", string(rune('0' + len(xs)))
					})
				},
			)
		},
	)

	value, output := comp.Run("abc")
	if value != "done" {
		t.Fatalf("got %q, want %q", value, "done")
	}
	if output != "3" {
		t.Fatalf("got state %q, want %q", output, "3")
	}
}

func TestDeepPipeline(t *testing.T) {
	// All combinators composed in a single computation
	counted := istate.Map(
		istate.Gots(func(s int) int { return s + 1 }),
		func(v int) int { return v * 2 },
	)
	sequenced := istate.AndThen(counted, func(v int) istate.Stateful[int, int, int] {
		return istate.MapState(
			istate.Pure[int](v),
			func(o int) int { return o + v },
		)
	})
	adapted := istate.ContramapState(sequenced, func(k string) int { return len(k) })
	comp := istate.Apply(
		istate.Pure[string](func(x int) int { return -x }),
		adapted,
	)

	value, output := comp.Run("12345")

	// gots yields 6, map doubles to 12, map state adds 12 to the state 5, apply negates
	if value != -12 {
		t.Fatalf("got %d, want -12", value)
	}
	if output != 17 {
		t.Fatalf("got state %d, want 17", output)
	}
}

func TestFailurePropagatesUnwrapped(t *testing.T) {
	// A panic inside a caller-supplied function crosses the combinators untouched
	comp := istate.Map(
		istate.Gots(func(s int) int { panic("caller failure") }),
		func(v int) int { return v },
	)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected the caller panic to propagate")
		}
		if s, ok := r.(string); !ok || s != "caller failure" {
			t.Fatalf("unexpected panic payload: %v", r)
		}
	}()

	comp.Run(0)
}
