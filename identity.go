// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Identity is the no-effect container: it holds exactly one value and
// its operations apply functions directly. It serves as the reference
// target effect for transformer stacks and free-tree interpretation.
type Identity[A any] struct {
	Value A
}

// IdentityOf wraps a value.
func IdentityOf[A any](a A) Identity[A] { return Identity[A]{Value: a} }

// IdentityMonad is the [Monad] instance for [Identity].
type IdentityMonad[A, B any] struct{}

// Pure implements [Applicative].
func (IdentityMonad[A, B]) Pure(a A) Identity[A] { return IdentityOf(a) }

// Map implements [Functor].
func (IdentityMonad[A, B]) Map(fa Identity[A], f func(A) B) Identity[B] {
	return IdentityOf(f(fa.Value))
}

// Ap implements [Applicative].
func (IdentityMonad[A, B]) Ap(fa Identity[A], ff Identity[func(A) B]) Identity[B] {
	return IdentityOf(ff.Value(fa.Value))
}

// Bind implements [Monad].
func (IdentityMonad[A, B]) Bind(fa Identity[A], f func(A) Identity[B]) Identity[B] {
	return f(fa.Value)
}
