// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg"
)

// tick increments the state and yields the prior value.
func tick() alg.State[int, int] {
	return func(s int) (int, int) { return s + 1, s }
}

// TestStateTwoIncrements: starting at 0, two steps each incrementing
// the state and yielding the prior value end at state 2 with values
// (0, 1).
func TestStateTwoIncrements(t *testing.T) {
	m := alg.BindState(tick(), func(a int) alg.State[int, [2]int] {
		return alg.MapState(tick(), func(b int) [2]int { return [2]int{a, b} })
	})
	s, vals := m.Run(0)
	require.Equal(t, 2, s)
	require.Equal(t, [2]int{0, 1}, vals)
}

func TestPureStateLeavesStateUntouched(t *testing.T) {
	s, a := alg.PureState[int]("x").Run(7)
	require.Equal(t, 7, s)
	require.Equal(t, "x", a)
}

func TestMapStateOnlyTouchesValue(t *testing.T) {
	m := alg.MapState(tick(), func(a int) int { return a * 100 })
	s, a := m.Run(3)
	require.Equal(t, 4, s)
	require.Equal(t, 300, a)
}

func TestGetPutModify(t *testing.T) {
	m := alg.BindState(alg.Put[int](10), func(alg.Unit) alg.State[int, int] {
		return alg.BindState(alg.Modify(func(s int) int { return s * 2 }), func(int) alg.State[int, int] {
			return alg.Get[int]()
		})
	})
	s, a := m.Run(0)
	require.Equal(t, 20, s)
	require.Equal(t, 20, a)
}

func TestEvalExec(t *testing.T) {
	require.Equal(t, 0, tick().Eval(0))
	require.Equal(t, 1, tick().Exec(0))
}

// TestStateRunsAreIndependent: separate Run calls never share state.
func TestStateRunsAreIndependent(t *testing.T) {
	m := alg.BindState(tick(), func(int) alg.State[int, int] { return alg.Get[int]() })
	s1, _ := m.Run(0)
	s2, _ := m.Run(0)
	require.Equal(t, s1, s2)
}

// TestStateMonadApOrdering: Ap runs the function step before the value
// step.
func TestStateMonadApOrdering(t *testing.T) {
	var m alg.StateMonad[int, int, int]
	mf := alg.State[int, func(int) int](func(s int) (int, func(int) int) {
		return s + 1, func(a int) int { return a * 10 }
	})
	s, a := m.Ap(alg.Get[int](), mf).Run(0)
	require.Equal(t, 1, s)
	// Get observes the state after the function step ran.
	require.Equal(t, 10, a)
}

func TestStateMonadPure(t *testing.T) {
	var m alg.StateMonad[int, int, int]
	s, a := m.Pure(5).Run(9)
	require.Equal(t, 9, s)
	require.Equal(t, 5, a)
}
