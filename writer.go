// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Writer pairs a computation's value with a log accumulated alongside
// it. Sequencing combines the two sides' logs through a [Semigroup];
// operations that only need the empty log take a [Monoid].
type Writer[W, A any] struct {
	Written W
	Value   A
}

// WriterOf pairs a log with a value.
func WriterOf[W, A any](w W, a A) Writer[W, A] {
	return Writer[W, A]{Written: w, Value: a}
}

// Tell records a log entry with no interesting value.
func Tell[W any](w W) Writer[W, Unit] {
	return Writer[W, Unit]{Written: w}
}

// PureWriter lifts a value with the empty log.
func PureWriter[W, A any](m Monoid[W], a A) Writer[W, A] {
	return Writer[W, A]{Written: m.Zero(), Value: a}
}

// MapWriter transforms only the value side.
func MapWriter[W, A, B any](m Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{Written: m.Written, Value: f(m.Value)}
}

// BindWriter sequences two logging steps: the logs combine through the
// Semigroup, first step's log first; the second step's value wins.
func BindWriter[W, A, B any](s Semigroup[W], m Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	n := f(m.Value)
	return Writer[W, B]{Written: s.Append(m.Written, n.Written), Value: n.Value}
}

// Reset replaces the log with the Monoid's identity, keeping the value.
func (m Writer[W, A]) Reset(mo Monoid[W]) Writer[W, A] {
	return Writer[W, A]{Written: mo.Zero(), Value: m.Value}
}

// MapWritten transforms only the log side.
func (m Writer[W, A]) MapWritten(f func(W) W) Writer[W, A] {
	return Writer[W, A]{Written: f(m.Written), Value: m.Value}
}

// Prepend combines w before the accumulated log.
func (m Writer[W, A]) Prepend(s Semigroup[W], w W) Writer[W, A] {
	return Writer[W, A]{Written: s.Append(w, m.Written), Value: m.Value}
}

// Append combines w after the accumulated log.
func (m Writer[W, A]) Append(s Semigroup[W], w W) Writer[W, A] {
	return Writer[W, A]{Written: s.Append(m.Written, w), Value: m.Value}
}

// WriterMonad is the [Monad] instance for [Writer] at a fixed log type,
// given the log's Monoid.
type WriterMonad[W, A, B any] struct {
	Log Monoid[W]
}

// Pure implements [Applicative].
func (m WriterMonad[W, A, B]) Pure(a A) Writer[W, A] { return PureWriter(m.Log, a) }

// Map implements [Functor].
func (m WriterMonad[W, A, B]) Map(fa Writer[W, A], f func(A) B) Writer[W, B] {
	return MapWriter(fa, f)
}

// Ap implements [Applicative]. The function side's log combines before
// the value side's, matching the bind-derived combination order.
func (m WriterMonad[W, A, B]) Ap(fa Writer[W, A], ff Writer[W, func(A) B]) Writer[W, B] {
	return Writer[W, B]{
		Written: m.Log.Append(ff.Written, fa.Written),
		Value:   ff.Value(fa.Value),
	}
}

// Bind implements [Monad].
func (m WriterMonad[W, A, B]) Bind(fa Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	return BindWriter(m.Log, fa, f)
}
