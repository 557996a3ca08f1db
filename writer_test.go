// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg"
)

var concat = alg.SemigroupFunc[string](func(a, b string) string { return a + b })

// TestWriterChainConcatenatesLogs: three steps logging "a", "b", "c"
// produce the log "abc".
func TestWriterChainConcatenatesLogs(t *testing.T) {
	m := alg.BindWriter(concat, alg.WriterOf("a", 1), func(x int) alg.Writer[string, int] {
		return alg.BindWriter(concat, alg.WriterOf("b", x+1), func(y int) alg.Writer[string, int] {
			return alg.WriterOf("c", y+1)
		})
	})
	require.Equal(t, "abc", m.Written)
	require.Equal(t, 3, m.Value)
}

func TestTell(t *testing.T) {
	w := alg.Tell("note")
	require.Equal(t, "note", w.Written)
}

func TestPureWriterEmptyLog(t *testing.T) {
	w := alg.PureWriter(concatMonoid, 42)
	require.Equal(t, "", w.Written)
	require.Equal(t, 42, w.Value)
}

func TestMapWriterOnlyTouchesValue(t *testing.T) {
	w := alg.MapWriter(alg.WriterOf("log", 2), func(x int) int { return x * 2 })
	require.Equal(t, "log", w.Written)
	require.Equal(t, 4, w.Value)
}

func TestWriterReset(t *testing.T) {
	w := alg.WriterOf("noise", 1).Reset(concatMonoid)
	require.Equal(t, "", w.Written)
	require.Equal(t, 1, w.Value)
}

func TestWriterMapWritten(t *testing.T) {
	w := alg.WriterOf("ab", 1).MapWritten(func(s string) string { return s + s })
	require.Equal(t, "abab", w.Written)
}

func TestWriterPrependAppend(t *testing.T) {
	w := alg.WriterOf("mid", 1).Prepend(concat, "pre-").Append(concat, "-post")
	require.Equal(t, "pre-mid-post", w.Written)
	require.Equal(t, 1, w.Value)
}

// TestWriterMonadApOrdering: the function side's log combines before
// the value side's.
func TestWriterMonadApOrdering(t *testing.T) {
	m := alg.WriterMonad[string, int, int]{Log: concatMonoid}
	got := m.Ap(alg.WriterOf("value", 3), alg.WriterOf("fn:", func(x int) int { return x + 1 }))
	require.Equal(t, "fn:value", got.Written)
	require.Equal(t, 4, got.Value)
}

func TestWriterMonadBindMatchesBindWriter(t *testing.T) {
	m := alg.WriterMonad[string, int, int]{Log: concatMonoid}
	f := func(x int) alg.Writer[string, int] { return alg.WriterOf("step", x*2) }
	require.Equal(t, alg.BindWriter[string, int, int](concatMonoid, alg.WriterOf("a", 2), f), m.Bind(alg.WriterOf("a", 2), f))
}
