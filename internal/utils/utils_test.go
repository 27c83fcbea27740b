//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFloorMod(t *testing.T) {
	t.Run("positive values behave like the remainder operator", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, int64(1), FloorMod(1, 4), "1 mod 4")
		assert.Equal(t, int64(0), FloorMod(8, 4), "8 mod 4")
		assert.Equal(t, int64(7), FloorMod(1023, 8), "1023 mod 8")
		assert.Equal(t, int64(3), FloorMod(1019, 8), "1019 mod 8")
	})

	t.Run("negative values stay within range", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, int64(3), FloorMod(-1, 4), "-1 mod 4")
		assert.Equal(t, int64(0), FloorMod(-8, 4), "-8 mod 4")
		assert.Equal(t, int64(2), FloorMod(-6, 8), "-6 mod 8")
	})
}

func TestFloorDiv(t *testing.T) {
	t.Run("division rounds towards negative infinity", func(t *testing.T) {
		// Prepare
		input := []int64{7, -7, 8, -8, 0, -1}
		expected := []int64{1, -2, 2, -2, 0, -1}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			q := FloorDiv(input[i], 4)
			assert.Equalf(t, expected[i], q, "floor division of %d by 4", input[i])
			assert.Equalf(t, input[i], q*4+FloorMod(input[i], 4), "div and mod recombine for %d", input[i])
		}
	})
}

func TestIsPowerOf2(t *testing.T) {
	t.Run("detects powers of 2", func(t *testing.T) {
		// Prepare
		powers := []int64{1, 2, 4, 8, 1024, 1 << 40}
		others := []int64{0, -2, 3, 6, 1000, 1<<40 + 1}

		// Execute and Check
		for _, p := range powers {
			assert.Truef(t, IsPowerOf2(p), "%d is a power of 2", p)
		}
		for _, o := range others {
			assert.Falsef(t, IsPowerOf2(o), "%d is not a power of 2", o)
		}
	})
}

func TestRoundUp2(t *testing.T) {
	t.Run("rounds up to nearest power of 2", func(t *testing.T) {
		// Prepare
		r2u := []int64{1, 1, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 262144, 16777216, 1073741824}
		input := []int64{0, 1, 3, 5, 9, 30, 50, 100, 129, 512, 1020, 1500, 3000, 7123, 9000, 200000, 16000000, 536870913}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			r := RoundUp2(input[i])
			assert.Equal(t, r2u[i], r, "rounds upp correct")
		}
	})
}
