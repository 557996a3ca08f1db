// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Functor is the structure-preserving mapping contract for one container
// shape. Go has no type-constructor parameters, so an instance is
// witnessed at the element types a call site needs: FA and FB are the
// container instantiated at A and B (for a slice container, FA is []A
// and FB is []B).
//
// Map must preserve the container's shape — the number and arrangement
// of elements, and the presence or absence of failure — while
// transforming each contained value.
//
// Laws:
//
//	Map(fa, identity) == fa
//	Map(fa, compose(g, h)) == Map(Map(fa, g), h)
type Functor[FA, FB, A, B any] interface {
	Map(fa FA, f func(A) B) FB
}
