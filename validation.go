// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Validation represents a result that is either Invalid (error) or
// Valid (success). Exactly one arm is populated.
//
// Its two composition modes deliberately diverge: [BindValidation]
// fails fast at the first Invalid, while [ApValidation] evaluates both
// sides so that two Invalid arms can merge their errors through a
// [Semigroup]. Failure never leaves the value — no operation here
// panics or returns a Go error.
type Validation[E, A any] struct {
	valid bool
	err   E
	value A
}

// Invalid creates an Invalid (error) value.
func Invalid[E, A any](e E) Validation[E, A] {
	return Validation[E, A]{valid: false, err: e}
}

// Valid creates a Valid (success) value.
func Valid[E, A any](a A) Validation[E, A] {
	return Validation[E, A]{valid: true, value: a}
}

// IsValid returns true if this is a Valid value.
func (v Validation[E, A]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if this is an Invalid value.
func (v Validation[E, A]) IsInvalid() bool {
	return !v.valid
}

// GetValid returns the Valid value and true, or zero and false.
func (v Validation[E, A]) GetValid() (A, bool) {
	if v.valid {
		return v.value, true
	}
	var zero A
	return zero, false
}

// GetInvalid returns the Invalid value and true, or zero and false.
func (v Validation[E, A]) GetInvalid() (E, bool) {
	if !v.valid {
		return v.err, true
	}
	var zero E
	return zero, false
}

// MatchValidation pattern matches, calling onInvalid or onValid.
func MatchValidation[E, A, T any](v Validation[E, A], onInvalid func(E) T, onValid func(A) T) T {
	if v.valid {
		return onValid(v.value)
	}
	return onInvalid(v.err)
}

// MapValidation applies a function to the Valid value.
func MapValidation[E, A, B any](v Validation[E, A], f func(A) B) Validation[E, B] {
	if v.valid {
		return Valid[E](f(v.value))
	}
	return Invalid[E, B](v.err)
}

// MapInvalid applies a function to the Invalid value.
func MapInvalid[E, F, A any](v Validation[E, A], f func(E) F) Validation[F, A] {
	if v.valid {
		return Valid[F](v.value)
	}
	return Invalid[F, A](f(v.err))
}

// BindValidation sequences two validations, failing fast: the first
// Invalid encountered wins and f is never invoked for it.
func BindValidation[E, A, B any](v Validation[E, A], f func(A) Validation[E, B]) Validation[E, B] {
	if v.valid {
		return f(v.value)
	}
	return Invalid[E, B](v.err)
}

// ApValidation combines two independent validations. Both sides are
// evaluated — there is no short-circuit — so that two Invalid arms can
// merge: the value side's error appends before the function side's. A
// lone Invalid propagates unchanged; two Valid arms apply the function.
func ApValidation[E, A, B any](s Semigroup[E], va Validation[E, A], vf Validation[E, func(A) B]) Validation[E, B] {
	switch {
	case va.valid && vf.valid:
		return Valid[E](vf.value(va.value))
	case !va.valid && !vf.valid:
		return Invalid[E, B](s.Append(va.err, vf.err))
	case !va.valid:
		return Invalid[E, B](va.err)
	default:
		return Invalid[E, B](vf.err)
	}
}

// ValidationMonad is the [Monad] instance for [Validation] at a fixed
// error type, given the error Semigroup. Ap is the accumulating
// combination, not the bind derivation: deriving it from Bind would
// silently turn error aggregation into fail-fast.
type ValidationMonad[E, A, B any] struct {
	Err Semigroup[E]
}

// Pure implements [Applicative].
func (ValidationMonad[E, A, B]) Pure(a A) Validation[E, A] { return Valid[E](a) }

// Map implements [Functor].
func (ValidationMonad[E, A, B]) Map(fa Validation[E, A], f func(A) B) Validation[E, B] {
	return MapValidation(fa, f)
}

// Ap implements [Applicative] with accumulating semantics.
func (m ValidationMonad[E, A, B]) Ap(fa Validation[E, A], ff Validation[E, func(A) B]) Validation[E, B] {
	return ApValidation(m.Err, fa, ff)
}

// Bind implements [Monad] with fail-fast semantics.
func (ValidationMonad[E, A, B]) Bind(fa Validation[E, A], f func(A) Validation[E, B]) Validation[E, B] {
	return BindValidation(fa, f)
}
