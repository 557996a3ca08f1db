// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

import "slices"

// ListT layers a list-valued result inside an outer effect: FLA is the
// concrete type of the outer container holding a slice — for an outer
// [Identity] effect at element int, FLA is Identity[[]int]. Like
// [OptionT], the outer effect's operations arrive as explicit
// arguments.
type ListT[FLA any] struct {
	Value FLA
}

// ListTOf wraps an effect value already holding a slice.
func ListTOf[FLA any](v FLA) ListT[FLA] {
	return ListT[FLA]{Value: v}
}

// LiftListT injects an ordinary effect value into the transformer by
// mapping its result into a one-element list.
func LiftListT[FA, FLA, A any](fa FA, mapF func(FA, func(A) []A) FLA) ListT[FLA] {
	return ListT[FLA]{Value: mapF(fa, func(a A) []A { return []A{a} })}
}

// PureListT lifts a bare value into the transformer.
func PureListT[FLA, A any](a A, pureF func([]A) FLA) ListT[FLA] {
	return ListT[FLA]{Value: pureF([]A{a})}
}

// MapListT transforms every inner element through the outer effect's
// map.
func MapListT[FLA, FLB, A, B any](m ListT[FLA], f func(A) B, mapF func(FLA, func([]A) []B) FLB) ListT[FLB] {
	return ListT[FLB]{Value: mapF(m.Value, func(xs []A) []B {
		out := make([]B, len(xs))
		for i, x := range xs {
			out[i] = f(x)
		}
		return out
	})}
}

// BindListT sequences two transformer steps: f runs per inner element,
// in element order, and the per-element result lists concatenate. An
// empty inner list short-circuits with the outer effect's pure of the
// empty list — f is never invoked. Concatenation folds iteratively over
// the elements, so depth does not grow with inner list length.
func BindListT[FLA, FLB, A, B any](m ListT[FLA], f func(A) ListT[FLB], bindA func(FLA, func([]A) FLB) FLB, bindB func(FLB, func([]B) FLB) FLB, pureB func([]B) FLB) ListT[FLB] {
	return ListT[FLB]{Value: bindA(m.Value, func(xs []A) FLB {
		acc := pureB([]B{})
		for _, x := range xs {
			fx := f(x).Value
			acc = bindB(acc, func(sofar []B) FLB {
				return bindB(fx, func(ys []B) FLB {
					return pureB(slices.Concat(sofar, ys))
				})
			})
		}
		return acc
	})}
}

// ConcatListT combines two transformer values by concatenating their
// inner lists once both outer effects resolve, first operand's elements
// first.
func ConcatListT[FLA, A any](m, n ListT[FLA], bindA func(FLA, func([]A) FLA) FLA, mapA func(FLA, func([]A) []A) FLA) ListT[FLA] {
	return ListT[FLA]{Value: bindA(m.Value, func(xs []A) FLA {
		return mapA(n.Value, func(ys []A) []A { return slices.Concat(xs, ys) })
	})}
}
