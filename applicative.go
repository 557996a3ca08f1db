// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Applicative extends [Functor] with lifting and independent combination
// of two effectful values. FF is the container holding functions from A
// to B.
//
// Pure lifts a bare value; Ap applies a contained function to a
// contained value, combining the two effects without one depending on
// the other's result.
//
// Law (homomorphism): Ap(Pure(a), pure(f)) == Pure(f(a)).
type Applicative[FA, FB, FF, A, B any] interface {
	Functor[FA, FB, A, B]
	Pure(a A) FA
	Ap(fa FA, ff FF) FB
}

// MapViaAp derives Functor.Map from Ap and Pure at the function type:
// map(fa, f) = ap(fa, pure(f)). Instances may supply Map directly for
// efficiency but must produce the same result.
func MapViaAp[FA, FB, FF, A, B any](ap func(FA, FF) FB, pureF func(func(A) B) FF, fa FA, f func(A) B) FB {
	return ap(fa, pureF(f))
}

// Apply2 combines two effectful values with a binary function,
// evaluating ga's effect before gb's. It is the ap-equivalent that
// traversal sequences element effects with, stated in terms of the
// target monad's bind and map.
func Apply2[GA, GB, GC, A, B, C any](bind func(GA, func(A) GC) GC, mapB func(GB, func(B) C) GC, ga GA, gb GB, f func(A, B) C) GC {
	return bind(ga, func(a A) GC {
		return mapB(gb, func(b B) C { return f(a, b) })
	})
}
