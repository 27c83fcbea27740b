package hash

import "github.com/gostonefire/memhashmap/internal/utils"

// DoubleHashAlgorithm - The default slot selection algorithm. The home slot is id mod tableSize and the probing
// step is 2 * ((id div tableSize) mod (tableSize / 2)) + 1, which is always odd. An odd step on a power of 2
// table size visits every slot once before repeating, so the table size must stay a power of 2.
// Division and modulo are floored which keeps negative ids within range.
type DoubleHashAlgorithm struct {
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size,
// which leaves a power of 2 as is.
//   - tableSize is the number of slots the table will address
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given id it generates the home slot between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(id int64) int64 {
	return utils.FloorMod(id, D.tableSize)
}

// HashFunc2 - Given id it generates an odd probing step
func (D *DoubleHashAlgorithm) HashFunc2(id int64) int64 {
	half := D.tableSize / 2
	if half == 0 {
		return 1
	}

	return 2*utils.FloorMod(utils.FloorDiv(id, D.tableSize), half) + 1
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns (hf1Value + iteration*hf2Value) mod table size, which equals adding the step to the
// previous index once per iteration. Masking keeps the result correct even if the product wraps.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) & (D.tableSize - 1)
}
