// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Erased is the value type flowing between frames. A single tree
// carries intermediate results of many different types, so frames pass
// them around untyped; each continuation asserts back to the concrete
// type it was built with before using the value.
type Erased = any

// freeFrame is the marker interface for tree frames.
// Dispatch uses type switches, not tags.
type freeFrame interface {
	frame()
}

// returnFrame signals tree completion. The evaluator yields the current
// value as the final result.
type returnFrame struct{}

func (returnFrame) frame() {}

// bindFrame continues the tree with a value-dependent function.
// F receives the current value and returns the next subtree's completed
// value and frame chain.
type bindFrame struct {
	f    func(Erased) (Erased, freeFrame)
	next freeFrame
}

func (*bindFrame) frame() {}

// mapFrame transforms the current value in place.
type mapFrame struct {
	f    func(Erased) Erased
	next freeFrame
}

func (*mapFrame) frame() {}

// opFrame suspends one operation of the instruction shape F.
// The interpreter's response becomes the current value.
type opFrame[F any] struct {
	op   F
	next freeFrame
}

func (*opFrame[F]) frame() {}

// chainedFrame represents a frame chain followed by more frames,
// composing chains without mutation.
type chainedFrame struct {
	first freeFrame
	rest  freeFrame
}

func (*chainedFrame) frame() {}

// chainFrames links two frame chains. returnFrame is the identity
// element for frame composition, so either operand being one returns
// the other without allocating a chainedFrame node.
func chainFrames(first, rest freeFrame) freeFrame {
	if _, ok := first.(returnFrame); ok {
		return rest
	}
	if _, ok := rest.(returnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: rest}
}

// Free is a pure syntax tree of suspended operations. F is the
// instruction shape — usually an interface the caller's operation types
// implement — and A is the type the finished tree completes with.
//
// Trees are defunctionalized: instead of nesting closures, a tree
// carries an explicit frame chain, so building one with [BindFree] is
// O(1) and never forces a suspended operation, and [Interpret] can
// evaluate arbitrarily long chains with an iterative work loop. A tree
// is built once, never mutated, and consumed by [Interpret] or
// [FoldMapFree].
//
// The zero value is not meaningful; construct trees with [Done],
// [LiftOp], [BindFree], [MapFree], or [ThenFree].
type Free[F, A any] struct {
	// value holds the completed value. Valid when frame is returnFrame.
	value A
	frame freeFrame
}

// Done lifts a completed value into a tree with no suspended operations.
func Done[F, A any](a A) Free[F, A] {
	return Free[F, A]{value: a, frame: returnFrame{}}
}

// LiftOp suspends a single operation as a tree completing with the
// operation's interpreter result. The interpreter must resume with a
// value assignable to A; the assertion happens at the next frame
// boundary when the tree runs.
func LiftOp[A, F any](op F) Free[F, A] {
	var zero A
	return Free[F, A]{value: zero, frame: &opFrame[F]{op: op, next: returnFrame{}}}
}

// BindFree chains f after the tree. A completed tree applies f
// directly; a suspended tree grows by a single bind frame — no
// suspended operation is forced during construction.
func BindFree[F, A, B any](m Free[F, A], f func(A) Free[F, B]) Free[F, B] {
	if _, ok := m.frame.(returnFrame); ok {
		return f(m.value)
	}
	bf := &bindFrame{
		f: func(v Erased) (Erased, freeFrame) {
			next := f(v.(A))
			return Erased(next.value), next.frame
		},
		next: returnFrame{},
	}
	var zero B
	return Free[F, B]{value: zero, frame: chainFrames(m.frame, bf)}
}

// MapFree transforms the tree's completed value. Equivalent to
// BindFree(m, func(a) { return Done(f(a)) }) without the intermediate
// tree allocation.
func MapFree[F, A, B any](m Free[F, A], f func(A) B) Free[F, B] {
	if _, ok := m.frame.(returnFrame); ok {
		return Done[F](f(m.value))
	}
	mf := &mapFrame{
		f:    func(v Erased) Erased { return Erased(f(v.(A))) },
		next: returnFrame{},
	}
	var zero B
	return Free[F, B]{value: zero, frame: chainFrames(m.frame, mf)}
}

// ThenFree sequences two trees, discarding the first tree's value.
func ThenFree[F, A, B any](m Free[F, A], n Free[F, B]) Free[F, B] {
	return BindFree(m, func(A) Free[F, B] { return n })
}

// Handler interprets suspended operations during [Interpret].
// Dispatch returns (resumeValue, true) to continue the tree with the
// operation's result, or (_, false) to abort interpretation.
type Handler[F any] interface {
	Dispatch(op F) (Erased, bool)
}

// HandlerFunc adapts a plain dispatch function to [Handler].
type HandlerFunc[F any] func(op F) (Erased, bool)

// Dispatch implements [Handler].
func (f HandlerFunc[F]) Dispatch(op F) (Erased, bool) { return f(op) }

// Interpret evaluates the tree, translating each suspended operation
// through h. Frames are processed iteratively: chained frames are
// reassociated in place, so the native stack does not grow with the
// number of bind nodes and chains with operation counts in the millions
// evaluate safely. Returns ok=false if the handler aborted.
func Interpret[F, A any](m Free[F, A], h Handler[F]) (A, bool) {
	current := Erased(m.value)
	frame := m.frame
	for {
		switch f := frame.(type) {
		case returnFrame:
			return current.(A), true
		case *chainedFrame:
			// Reassociate so the head of the chain is a leaf frame.
			first, rest := f.first, f.rest
			if nested, ok := first.(*chainedFrame); ok {
				frame = &chainedFrame{
					first: nested.first,
					rest:  chainFrames(nested.rest, rest),
				}
				continue
			}
			switch g := first.(type) {
			case returnFrame:
				frame = rest
			case *bindFrame:
				v, fr := g.f(current)
				current = v
				frame = chainFrames(chainFrames(fr, g.next), rest)
			case *mapFrame:
				current = g.f(current)
				frame = chainFrames(g.next, rest)
			case *opFrame[F]:
				v, ok := h.Dispatch(g.op)
				if !ok {
					var zero A
					return zero, false
				}
				current = v
				frame = chainFrames(g.next, rest)
			default:
				panic("alg: unknown frame type in chain")
			}
		case *bindFrame:
			v, fr := f.f(current)
			current = v
			frame = chainFrames(fr, f.next)
		case *mapFrame:
			current = f.f(current)
			frame = f.next
		case *opFrame[F]:
			v, ok := h.Dispatch(f.op)
			if !ok {
				var zero A
				return zero, false
			}
			current = v
			frame = f.next
		default:
			panic("alg: unknown frame type")
		}
	}
}

// ErasedMonad is the minimal monad dictionary [FoldMapFree] needs from
// its target shape, stated at a type-erased element: GE is the target
// container holding an Erased value.
type ErasedMonad[GE any] interface {
	Pure(v Erased) GE
	Bind(ge GE, f func(Erased) GE) GE
}

// erasedMonad is the concrete ErasedMonad built by [ErasedMonadOf].
type erasedMonad[GE any] struct {
	pure func(Erased) GE
	bind func(GE, func(Erased) GE) GE
}

func (m erasedMonad[GE]) Pure(v Erased) GE { return m.pure(v) }

func (m erasedMonad[GE]) Bind(ge GE, f func(Erased) GE) GE { return m.bind(ge, f) }

// ErasedMonadOf builds an [ErasedMonad] from pure and bind functions.
func ErasedMonadOf[GE any](pure func(Erased) GE, bind func(GE, func(Erased) GE) GE) ErasedMonad[GE] {
	return erasedMonad[GE]{pure: pure, bind: bind}
}

// FoldMapFree interprets the tree into a target effect shape: each
// suspended operation is translated through nt and sequenced with the
// target's bind; the completed value is lifted with the target's pure.
// GE is the target container at a type-erased element; recover the
// concrete element with the target's map after interpretation.
//
// Pure frames are consumed iteratively, but each suspended operation
// costs one native frame through bind's continuation when the target
// monad evaluates strictly, so depth tracks the operation count. Trees
// with operation counts beyond the stack budget should run under
// [Interpret], whose work loop is depth-independent.
func FoldMapFree[F, A, GE any](m Free[F, A], nt NaturalTransformation[F, GE], g ErasedMonad[GE]) GE {
	return foldFrames(Erased(m.value), m.frame, nt, g)
}

// foldFrames is the frame walk behind [FoldMapFree]. It mirrors
// [Interpret]'s reassociation loop; the sole recursion point is the
// continuation handed to the target monad's bind at each opFrame.
func foldFrames[F, GE any](current Erased, frame freeFrame, nt NaturalTransformation[F, GE], g ErasedMonad[GE]) GE {
	for {
		switch f := frame.(type) {
		case returnFrame:
			return g.Pure(current)
		case *chainedFrame:
			first, rest := f.first, f.rest
			if nested, ok := first.(*chainedFrame); ok {
				frame = &chainedFrame{
					first: nested.first,
					rest:  chainFrames(nested.rest, rest),
				}
				continue
			}
			switch h := first.(type) {
			case returnFrame:
				frame = rest
			case *bindFrame:
				v, fr := h.f(current)
				current = v
				frame = chainFrames(chainFrames(fr, h.next), rest)
			case *mapFrame:
				current = h.f(current)
				frame = chainFrames(h.next, rest)
			case *opFrame[F]:
				remaining := chainFrames(h.next, rest)
				return g.Bind(nt.Apply(h.op), func(v Erased) GE {
					return foldFrames(v, remaining, nt, g)
				})
			default:
				panic("alg: unknown frame type in chain")
			}
		case *bindFrame:
			v, fr := f.f(current)
			current = v
			frame = chainFrames(fr, f.next)
		case *mapFrame:
			current = f.f(current)
			frame = f.next
		case *opFrame[F]:
			remaining := f.next
			return g.Bind(nt.Apply(f.op), func(v Erased) GE {
				return foldFrames(v, remaining, nt, g)
			})
		default:
			panic("alg: unknown frame type")
		}
	}
}
