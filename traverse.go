// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Traverse is the effectful-visiting contract for one container shape:
// visit each element in a fixed order, sequencing the per-element
// effects into one effect wrapping the rebuilt container.
//
// Witness types: FA/FB are the container at A/B, GB is the target effect
// holding one B, GFB is the target effect holding the rebuilt FB. The
// target effect's operations arrive as explicit arguments: pure lifts a
// completed container, apply2 is its [Apply2]-equivalent and fixes the
// order element effects are evaluated in.
type Traverse[FA, FB, A, B, GB, GFB any] interface {
	Functor[FA, FB, A, B]
	Foldable[FA, A, B]
	Traverse(fa FA, f func(A) GB, pure func(FB) GFB, apply2 func(GB, GFB, func(B, FB) FB) GFB) GFB
}

// TraverseSlice visits elements in slice order, sequencing the effects
// produced by f into one effect wrapping the rebuilt slice.
//
// The visitor runs front to back; the result is then assembled right to
// left, pairing each element effect with the already-assembled tail via
// apply2. As long as apply2 evaluates its first operand's effect first,
// effects occur in element order while the container is rebuilt without
// mutable accumulation.
func TraverseSlice[A, B, GB, GBS any](xs []A, f func(A) GB, pure func([]B) GBS, apply2 func(GB, GBS, func(B, []B) []B) GBS) GBS {
	gs := make([]GB, len(xs))
	for i, x := range xs {
		gs[i] = f(x)
	}
	acc := pure([]B{})
	for i := len(gs) - 1; i >= 0; i-- {
		acc = apply2(gs[i], acc, func(b B, bs []B) []B {
			out := make([]B, 0, len(bs)+1)
			out = append(out, b)
			return append(out, bs...)
		})
	}
	return acc
}

// SequenceSlice is [TraverseSlice] with the identity visitor: a slice of
// effects becomes one effect wrapping the slice of results, effects in
// element order.
func SequenceSlice[GA, A, GAS any](xs []GA, pure func([]A) GAS, apply2 func(GA, GAS, func(A, []A) []A) GAS) GAS {
	return TraverseSlice(xs, func(g GA) GA { return g }, pure, apply2)
}

// SliceTraverse is the [Traverse] witness for slices.
type SliceTraverse[A, B, GB, GBS any] struct {
	SliceFoldable[A, B]
}

// Map implements [Functor] for slices.
func (SliceTraverse[A, B, GB, GBS]) Map(xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Traverse implements [Traverse] for slices.
func (SliceTraverse[A, B, GB, GBS]) Traverse(xs []A, f func(A) GB, pure func([]B) GBS, apply2 func(GB, GBS, func(B, []B) []B) GBS) GBS {
	return TraverseSlice(xs, f, pure, apply2)
}
