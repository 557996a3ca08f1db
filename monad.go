// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Monad operations for composable computations.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Ap are derivable; the derivations live here as package-level
// functions so instances can delegate to them or override with a direct
// implementation that produces the same result.

// Monad extends [Applicative] with value-dependent sequencing: the
// effect produced by f depends on the value the first argument yields,
// not merely on its shape.
//
// Laws:
//
//	Bind(Pure(a), f) == f(a)
//	Bind(fa, Pure) == fa
//	Bind(Bind(fa, f), g) == Bind(fa, func(a) { return Bind(f(a), g) })
type Monad[FA, FB, FF, A, B any] interface {
	Applicative[FA, FB, FF, A, B]
	Bind(fa FA, f func(A) FB) FB
}

// MapViaBind derives Functor.Map from Bind and Pure at the output type:
// map(fa, f) = bind(fa, func(a) { return pure(f(a)) }).
func MapViaBind[FA, FB, A, B any](bind func(FA, func(A) FB) FB, pureB func(B) FB, fa FA, f func(A) B) FB {
	return bind(fa, func(a A) FB { return pureB(f(a)) })
}

// ApViaBind derives Applicative.Ap from Bind and Map. The
// function-producing effect is evaluated first to obtain the function,
// which is then mapped over the value-producing effect. Instances whose
// applicative combination must differ from their monadic sequencing —
// accumulating [Validation] being the canonical case — must supply Ap
// directly instead of delegating here.
func ApViaBind[FA, FB, FF, A, B any](bindF func(FF, func(func(A) B) FB) FB, mapA func(FA, func(A) B) FB, fa FA, ff FF) FB {
	return bindF(ff, func(f func(A) B) FB { return mapA(fa, f) })
}

// ThenViaBind sequences two effects, discarding the first result.
func ThenViaBind[FA, FB, A any](bind func(FA, func(A) FB) FB, fa FA, fb FB) FB {
	return bind(fa, func(A) FB { return fb })
}
