// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Kleisli is an effectful arrow: a function from a plain input A to an
// effect value FB (the effect container instantiated at the arrow's
// output type). Arrows compose through the effect's own operations,
// which arrive as explicit arguments.
type Kleisli[A, FB any] func(a A) FB

// Run applies the arrow to an input.
func (k Kleisli[A, FB]) Run(a A) FB { return k(a) }

// AndThen composes two arrows left to right: the first arrow's result
// is sequenced into the second through the effect's bind.
func AndThen[A, B, FB, FC any](f Kleisli[A, FB], g Kleisli[B, FC], bind func(FB, func(B) FC) FC) Kleisli[A, FC] {
	return func(a A) FC {
		return bind(f(a), func(b B) FC { return g(b) })
	}
}

// Compose is [AndThen] with the operands mirrored: Compose(f, g) runs g
// first, then f.
func Compose[A, B, FB, FC any](f Kleisli[B, FC], g Kleisli[A, FB], bind func(FB, func(B) FC) FC) Kleisli[A, FC] {
	return AndThen(g, f, bind)
}

// MapKleisli post-processes the arrow's result through the effect's map.
func MapKleisli[A, B, C, FB, FC any](k Kleisli[A, FB], f func(B) C, mapF func(FB, func(B) C) FC) Kleisli[A, FC] {
	return func(a A) FC { return mapF(k(a), f) }
}

// MapEffect rewrites the arrow's effect wholesale, typically through a
// natural transformation between effect shapes.
func MapEffect[A, FB, GB any](k Kleisli[A, FB], nt func(FB) GB) Kleisli[A, GB] {
	return func(a A) GB { return nt(k(a)) }
}

// BindKleisli branches on the arrow's result while keeping the same
// input: the arrow chosen by f receives the original A again.
func BindKleisli[A, B, FB, FC any](k Kleisli[A, FB], f func(B) Kleisli[A, FC], bind func(FB, func(B) FC) FC) Kleisli[A, FC] {
	return func(a A) FC {
		return bind(k(a), func(b B) FC { return f(b)(a) })
	}
}

// Local pre-adapts the arrow's input, reusing the arrow under a
// different input shape.
func Local[AA, A, FB any](k Kleisli[A, FB], f func(AA) A) Kleisli[AA, FB] {
	return func(aa AA) FB { return k(f(aa)) }
}

// KleisliMonad is the [Monad] instance for arrows out of a fixed input
// type R, derived from the effect's own operations. It lets Kleisli
// arrows participate in code written against the generic contracts:
// Pure ignores its input, the remaining operations thread the shared
// input through both sides and delegate to the effect.
type KleisliMonad[R, A, B, FA, FB, FF any] struct {
	PureF func(A) FA
	MapF  func(FA, func(A) B) FB
	ApF   func(FA, FF) FB
	BindF func(FA, func(A) FB) FB
}

// Pure implements [Applicative].
func (m KleisliMonad[R, A, B, FA, FB, FF]) Pure(a A) Kleisli[R, FA] {
	return func(R) FA { return m.PureF(a) }
}

// Map implements [Functor].
func (m KleisliMonad[R, A, B, FA, FB, FF]) Map(k Kleisli[R, FA], f func(A) B) Kleisli[R, FB] {
	return func(r R) FB { return m.MapF(k(r), f) }
}

// Ap implements [Applicative].
func (m KleisliMonad[R, A, B, FA, FB, FF]) Ap(k Kleisli[R, FA], kf Kleisli[R, FF]) Kleisli[R, FB] {
	return func(r R) FB { return m.ApF(k(r), kf(r)) }
}

// Bind implements [Monad].
func (m KleisliMonad[R, A, B, FA, FB, FF]) Bind(k Kleisli[R, FA], f func(A) Kleisli[R, FB]) Kleisli[R, FB] {
	return func(r R) FB {
		return m.BindF(k(r), func(a A) FB { return f(a)(r) })
	}
}
