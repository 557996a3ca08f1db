// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Foldable is the reduction contract for one container shape, witnessed
// at element type A and summary type B.
//
// FoldMap maps each element and combines the results through the Monoid;
// FoldRight folds from the last element toward the first.
type Foldable[FA, A, B any] interface {
	FoldMap(fa FA, f func(A) B, m Monoid[B]) B
	FoldRight(fa FA, seed B, f func(A, B) B) B
}

// Fold collapses a container into a single value of its element type via
// the Monoid. It is FoldMap with the identity function.
func Fold[FA, A any](fd Foldable[FA, A, A], fa FA, m Monoid[A]) A {
	return fd.FoldMap(fa, func(a A) A { return a }, m)
}

// FoldMapSlice maps each element and combines the results via the
// Monoid, in element order.
func FoldMapSlice[A, B any](xs []A, f func(A) B, m Monoid[B]) B {
	acc := m.Zero()
	for _, x := range xs {
		acc = m.Append(acc, f(x))
	}
	return acc
}

// FoldRightSlice folds from the last element toward the first.
// The slice is walked backwards in a loop rather than recursing per
// element, so depth does not grow with input size.
func FoldRightSlice[A, B any](xs []A, seed B, f func(A, B) B) B {
	acc := seed
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// FoldSlice combines all elements via the Monoid.
func FoldSlice[A any](xs []A, m Monoid[A]) A {
	return FoldMapSlice(xs, func(a A) A { return a }, m)
}

// SliceFoldable is the [Foldable] witness for slices.
type SliceFoldable[A, B any] struct{}

// FoldMap implements [Foldable].
func (SliceFoldable[A, B]) FoldMap(xs []A, f func(A) B, m Monoid[B]) B {
	return FoldMapSlice(xs, f, m)
}

// FoldRight implements [Foldable].
func (SliceFoldable[A, B]) FoldRight(xs []A, seed B, f func(A, B) B) B {
	return FoldRightSlice(xs, seed, f)
}
