// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// OptionT layers an optional result inside an outer effect: FOA is the
// concrete type of the outer container holding an [Option] — for an
// outer [Identity] effect at element int, FOA is Identity[Option[int]].
// The outer effect's operations arrive as explicit arguments, so the
// transformer re-derives the combinators once instead of each caller
// re-deriving them per stack.
type OptionT[FOA any] struct {
	Value FOA
}

// OptionTOf wraps an effect value already holding an Option.
func OptionTOf[FOA any](v FOA) OptionT[FOA] {
	return OptionT[FOA]{Value: v}
}

// LiftOptionT injects an ordinary effect value into the transformer by
// mapping its result into the present case. This is the canonical way
// to use a plain effect inside an OptionT stack.
func LiftOptionT[FA, FOA, A any](fa FA, mapF func(FA, func(A) Option[A]) FOA) OptionT[FOA] {
	return OptionT[FOA]{Value: mapF(fa, Some[A])}
}

// PureOptionT lifts a bare value into the transformer.
func PureOptionT[FOA, A any](a A, pureF func(Option[A]) FOA) OptionT[FOA] {
	return OptionT[FOA]{Value: pureF(Some(a))}
}

// MapOptionT transforms a present inner value through the outer
// effect's map.
func MapOptionT[FOA, FOB, A, B any](m OptionT[FOA], f func(A) B, mapF func(FOA, func(Option[A]) Option[B]) FOB) OptionT[FOB] {
	return OptionT[FOB]{Value: mapF(m.Value, func(oa Option[A]) Option[B] {
		return MapOption(oa, f)
	})}
}

// BindOptionT sequences two transformer steps. The inner absent case
// short-circuits with the outer effect's pure of None — f is never
// invoked and no further outer effect runs beyond that lift.
func BindOptionT[FOA, FOB, A, B any](m OptionT[FOA], f func(A) OptionT[FOB], bindF func(FOA, func(Option[A]) FOB) FOB, pureF func(Option[B]) FOB) OptionT[FOB] {
	return OptionT[FOB]{Value: bindF(m.Value, func(oa Option[A]) FOB {
		a, ok := oa.Get()
		if !ok {
			return pureF(None[B]())
		}
		return f(a).Value
	})}
}
