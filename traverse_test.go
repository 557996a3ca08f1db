// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg"
)

// validationApply2 builds the traverse apply2 for a Validation target
// with slice-of-string errors: element effect first, then the
// already-assembled tail, errors accumulating in that order.
func validationApply2(gb alg.Validation[[]string, int], gbs alg.Validation[[]string, []int], f func(int, []int) []int) alg.Validation[[]string, []int] {
	errs := alg.SemigroupFunc[[]string](func(a, b []string) []string {
		out := make([]string, 0, len(a)+len(b))
		return append(append(out, a...), b...)
	})
	ff := alg.MapValidation(gbs, func(bs []int) func(int) []int {
		return func(b int) []int { return f(b, bs) }
	})
	return alg.ApValidation(errs, gb, ff)
}

func TestTraverseSliceAllValid(t *testing.T) {
	got := alg.TraverseSlice([]int{1, 2, 3},
		func(x int) alg.Validation[[]string, int] { return alg.Valid[[]string](x * 10) },
		alg.Valid[[]string, []int],
		validationApply2,
	)
	v, ok := got.GetValid()
	require.True(t, ok)
	require.Equal(t, []int{10, 20, 30}, v)
}

func TestTraverseSliceAccumulatesErrorsInElementOrder(t *testing.T) {
	got := alg.TraverseSlice([]int{1, 2, 3, 4},
		func(x int) alg.Validation[[]string, int] {
			if x%2 == 0 {
				return alg.Invalid[[]string, int]([]string{"bad:" + strconv.Itoa(x)})
			}
			return alg.Valid[[]string](x)
		},
		alg.Valid[[]string, []int],
		validationApply2,
	)
	errs, ok := got.GetInvalid()
	require.True(t, ok)
	require.Equal(t, []string{"bad:2", "bad:4"}, errs)
}

// TestTraverseSliceEffectOrder observes effect order through a Writer
// target: logs must appear in element order.
func TestTraverseSliceEffectOrder(t *testing.T) {
	apply2 := func(gb alg.Writer[string, int], gbs alg.Writer[string, []int], f func(int, []int) []int) alg.Writer[string, []int] {
		return alg.Writer[string, []int]{
			Written: concatMonoid.Append(gb.Written, gbs.Written),
			Value:   f(gb.Value, gbs.Value),
		}
	}
	got := alg.TraverseSlice([]int{1, 2, 3},
		func(x int) alg.Writer[string, int] { return alg.WriterOf(strconv.Itoa(x), x) },
		func(bs []int) alg.Writer[string, []int] { return alg.WriterOf("", bs) },
		apply2,
	)
	require.Equal(t, "123", got.Written)
	require.Equal(t, []int{1, 2, 3}, got.Value)
}

// TestSequenceSliceIdentity: sequencing identity effects returns the
// container unchanged.
func TestSequenceSliceIdentity(t *testing.T) {
	xs := []alg.Identity[int]{alg.IdentityOf(1), alg.IdentityOf(2), alg.IdentityOf(3)}
	apply2 := func(ga alg.Identity[int], gas alg.Identity[[]int], f func(int, []int) []int) alg.Identity[[]int] {
		return alg.Apply2(alg.IdentityMonad[int, []int]{}.Bind, alg.IdentityMonad[[]int, []int]{}.Map, ga, gas, f)
	}
	got := alg.SequenceSlice(xs, alg.IdentityOf[[]int], apply2)
	require.Equal(t, []int{1, 2, 3}, got.Value)
}

func TestTraverseViaWitness(t *testing.T) {
	var tr alg.SliceTraverse[int, int, alg.Validation[[]string, int], alg.Validation[[]string, []int]]
	got := tr.Traverse([]int{5, 6},
		func(x int) alg.Validation[[]string, int] { return alg.Valid[[]string](x) },
		alg.Valid[[]string, []int],
		validationApply2,
	)
	v, ok := got.GetValid()
	require.True(t, ok)
	require.Equal(t, []int{5, 6}, v)
}

func TestTraverseSliceEmpty(t *testing.T) {
	got := alg.TraverseSlice([]int{},
		func(x int) alg.Validation[[]string, int] { return alg.Valid[[]string](x) },
		alg.Valid[[]string, []int],
		validationApply2,
	)
	v, ok := got.GetValid()
	require.True(t, ok)
	require.Empty(t, v)
}
