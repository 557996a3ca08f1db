// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Unit is the informationless type, for operations whose only purpose
// is their effect.
type Unit = struct{}

// State threads a single state value through a computation: running it
// consumes a state and produces the successor state plus a result.
// No state is shared across separate Run calls — each run is an
// independent thread.
type State[S, A any] func(s S) (S, A)

// Run executes the computation against an initial state.
func (m State[S, A]) Run(s S) (S, A) { return m(s) }

// Eval runs the computation and keeps only the result.
func (m State[S, A]) Eval(s S) A {
	_, a := m(s)
	return a
}

// Exec runs the computation and keeps only the final state.
func (m State[S, A]) Exec(s S) S {
	s2, _ := m(s)
	return s2
}

// PureState lifts a value, leaving the state untouched.
func PureState[S, A any](a A) State[S, A] {
	return func(s S) (S, A) { return s, a }
}

// MapState transforms only the result, passing the state through
// unchanged otherwise.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (S, B) {
		s2, a := m(s)
		return s2, f(a)
	}
}

// BindState runs the first step, then feeds its state and result into
// the step chosen by f.
func BindState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		s2, a := m(s)
		return f(a)(s2)
	}
}

// Get yields the current state as the result.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) { return s, s }
}

// Put replaces the state.
func Put[S any](s S) State[S, Unit] {
	return func(S) (S, Unit) { return s, Unit{} }
}

// Modify applies f to the state and yields the new state.
func Modify[S any](f func(S) S) State[S, S] {
	return func(s S) (S, S) {
		s2 := f(s)
		return s2, s2
	}
}

// StateMonad is the [Monad] instance for [State] at a fixed state type.
type StateMonad[S, A, B any] struct{}

// Pure implements [Applicative].
func (StateMonad[S, A, B]) Pure(a A) State[S, A] { return PureState[S](a) }

// Map implements [Functor].
func (StateMonad[S, A, B]) Map(m State[S, A], f func(A) B) State[S, B] {
	return MapState(m, f)
}

// Ap implements [Applicative]. The function step runs before the value
// step, matching the bind-derived combination order.
func (StateMonad[S, A, B]) Ap(m State[S, A], mf State[S, func(A) B]) State[S, B] {
	return BindState(mf, func(f func(A) B) State[S, B] { return MapState(m, f) })
}

// Bind implements [Monad].
func (StateMonad[S, A, B]) Bind(m State[S, A], f func(A) State[S, B]) State[S, B] {
	return BindState(m, f)
}
