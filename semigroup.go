// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Semigroup is an associative combining operation for values of type A.
//
// Law: Append(Append(a, b), c) == Append(a, Append(b, c)).
type Semigroup[A any] interface {
	Append(a, b A) A
}

// SemigroupFunc adapts a plain combining function to [Semigroup].
type SemigroupFunc[A any] func(a, b A) A

// Append implements [Semigroup].
func (f SemigroupFunc[A]) Append(a, b A) A { return f(a, b) }

// Monoid is a [Semigroup] with an identity element for Append.
//
// Law: Append(Zero(), a) == a == Append(a, Zero()).
type Monoid[A any] interface {
	Semigroup[A]
	Zero() A
}

// monoid is the concrete Monoid built by [MonoidOf].
type monoid[A any] struct {
	combine func(a, b A) A
	zero    A
}

func (m monoid[A]) Append(a, b A) A { return m.combine(a, b) }

func (m monoid[A]) Zero() A { return m.zero }

// MonoidOf builds a [Monoid] from an identity element and a combining
// function. The caller is responsible for the monoid laws holding.
func MonoidOf[A any](zero A, combine func(a, b A) A) Monoid[A] {
	return monoid[A]{combine: combine, zero: zero}
}
