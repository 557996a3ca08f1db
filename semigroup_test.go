// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

var (
	sumMonoid    = alg.MonoidOf(0, func(a, b int) int { return a + b })
	concatMonoid = alg.MonoidOf("", func(a, b string) string { return a + b })
)

func TestSemigroupFuncAppend(t *testing.T) {
	concat := alg.SemigroupFunc[string](func(a, b string) string { return a + b })
	require.Equal(t, "ab", concat.Append("a", "b"))
}

// TestPropertySemigroupAssociativity: Append(Append(a,b),c) ≡ Append(a,Append(b,c))
func TestPropertySemigroupAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b, c := randString(rng), randString(rng), randString(rng)
		left := concatMonoid.Append(concatMonoid.Append(a, b), c)
		right := concatMonoid.Append(a, concatMonoid.Append(b, c))
		if left != right {
			t.Fatalf("associativity: %q != %q (a=%q b=%q c=%q)", left, right, a, b, c)
		}
	}
}

// TestPropertyMonoidIdentity: Append(zero,a) ≡ a ≡ Append(a,zero)
func TestPropertyMonoidIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		if got := sumMonoid.Append(sumMonoid.Zero(), a); got != a {
			t.Fatalf("left identity: %d != %d", got, a)
		}
		if got := sumMonoid.Append(a, sumMonoid.Zero()); got != a {
			t.Fatalf("right identity: %d != %d", got, a)
		}
	}
}
