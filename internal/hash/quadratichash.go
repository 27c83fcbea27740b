package hash

import "github.com/gostonefire/memhashmap/internal/utils"

// QuadraticProbingHashAlgorithm - The home slot is id mod tableSize and probing adds the triangular numbers
// (i*i + i) / 2, which on a power of 2 table size reaches every slot once.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm(tableSize int64) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given id it generates the home slot between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(id int64) int64 {
	return utils.FloorMod(id, Q.tableSize)
}

// HashFunc2 - Not used in quadratic probing collision resolution techniques, returns a dummy value
func (Q *QuadraticProbingHashAlgorithm) HashFunc2(id int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	probe := (hf1Value + ((iteration*iteration + iteration) / 2)) & (Q.tableSize - 1)

	return probe
}
