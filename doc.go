// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package alg provides a minimal algebra of composable computation
// abstractions in Go: capability contracts and a small set of generic
// data types built on them.
//
// The contracts — [Semigroup], [Monoid], [Functor], [Applicative],
// [Monad], [Foldable], [Traverse], [NaturalTransformation] — describe
// shapes of composition. The data types — [Free], [Kleisli], [State],
// [Writer], [OptionT], [ListT], [Validation] — are generic computations
// that depend only on the contracts, never on concrete effect types.
// Calling code picks its own effect types, supplies the matching
// instances, and composes purely through the contracts.
//
// # Encoding Higher-Kinded Contracts
//
// Go has no type-constructor parameters, so a contract over a container
// shape F is witnessed at the concrete element types a call site needs:
// Functor[FA, FB, A, B] reads "the container instantiated at A is FA,
// at B is FB". One instance value serves one container shape; the call
// site states which instance it uses (explicit dictionary passing —
// there is no global registry). Operations that generic code needs from
// an effect arrive the same way, as ordinary function arguments.
//
// Default derivations are package-level functions over the primitive
// operations:
//
//   - [MapViaAp]: map from ap and pure
//   - [MapViaBind]: map from bind and pure
//   - [ApViaBind]: ap from bind and map — function effect first
//   - [ThenViaBind]: sequencing with discard
//   - [Apply2]: binary applicative combination from bind and map
//
// # Contracts
//
//   - [Semigroup], [Monoid]: associative combination, optional identity
//   - [Functor]: structure-preserving mapping
//   - [Applicative]: lifting and independent combination
//   - [Monad]: value-dependent sequencing
//   - [Foldable]: reduction to a summary value
//   - [Traverse]: effectful element-wise visiting
//   - [NaturalTransformation]: structure-only shape conversion
//
// Slice-shaped reduction and traversal are provided directly:
// [FoldMapSlice], [FoldRightSlice], [FoldSlice], [TraverseSlice],
// [SequenceSlice], with [SliceFoldable] and [SliceTraverse] as the
// corresponding witnesses.
//
// # Free Trees
//
// [Free] is a free monad: a pure syntax tree of suspended operations in
// an arbitrary instruction shape, interpreted later. Trees are
// defunctionalized — explicit frame chains instead of nested closures —
// following the same plan as defunctionalized continuation evaluation
// (Reynolds 1972): construction is O(1) per [BindFree] and evaluation
// is an iterative work loop.
//
//   - [Done], [LiftOp]: construct completed and suspended trees
//   - [BindFree], [MapFree], [ThenFree]: grow trees without forcing ops
//   - [Interpret]: iterative evaluation against a [Handler] — stack
//     depth independent of tree length
//   - [FoldMapFree]: interpretation into a target monad through a
//     [NaturalTransformation] and an [ErasedMonad] dictionary; costs
//     one native frame per operation under a strict target
//
// # Data Types
//
//   - [Kleisli]: composable effectful arrows — [AndThen], [Compose],
//     [MapKleisli], [MapEffect], [BindKleisli], [Local], and a derived
//     [KleisliMonad] over a fixed input type
//   - [State]: state threading — [Get], [Put], [Modify], [BindState]
//   - [Writer]: log accumulation via a Semigroup — [Tell],
//     [BindWriter], plus Reset/MapWritten/Prepend/Append
//   - [OptionT], [ListT]: monad transformers layering an optional or
//     list-valued inner result inside an arbitrary outer effect
//   - [Validation]: two-armed result whose applicative combination
//     accumulates errors ([ApValidation]) while its monadic sequencing
//     fails fast ([BindValidation])
//   - [Identity]: the no-effect container, reference target for
//     transformers and interpretation
//
// # Error Policy
//
// Nothing in this package throws: every failure path is a result
// variant ([Validation], [Option], an aborted [Interpret]). Fail-fast
// composition stops at the first failure; accumulating composition
// evaluates both sides specifically so failures can merge. Translating
// either into panics or Go errors would collapse the distinction.
//
// # Example
//
//	type Emit struct{ N int }
//
//	tree := alg.BindFree(alg.LiftOp[alg.Unit](Emit{N: 1}),
//		func(alg.Unit) alg.Free[Emit, int] {
//			return alg.MapFree(alg.LiftOp[alg.Unit](Emit{N: 2}),
//				func(alg.Unit) int { return 42 })
//		})
//
//	var seen []int
//	result, _ := alg.Interpret(tree, alg.HandlerFunc[Emit](
//		func(op Emit) (alg.Erased, bool) {
//			seen = append(seen, op.N)
//			return alg.Unit{}, true
//		}))
//	// result == 42, seen == [1 2]
package alg
