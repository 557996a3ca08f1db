// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// NaturalTransformation converts a container of one shape into a
// container of another shape without inspecting element values. FA and
// GA are the two containers instantiated at the same element type; the
// conversion depends only on structure, never on the specific element.
//
// Its primary use is as the interpreter argument to [FoldMapFree].
type NaturalTransformation[FA, GA any] interface {
	Apply(fa FA) GA
}

// NaturalTransformationFunc adapts a plain conversion function to
// [NaturalTransformation].
type NaturalTransformationFunc[FA, GA any] func(fa FA) GA

// Apply implements [NaturalTransformation].
func (f NaturalTransformationFunc[FA, GA]) Apply(fa FA) GA { return f(fa) }
