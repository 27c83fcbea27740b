package hash

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// MixedDoubleHashAlgorithm - Odd step double hashing over an xxhash digest of the id. The low bits of the digest
// select the home slot and the high bits the step, forced odd. Useful when ids come in runs sharing a stride with
// the table size, which the plain DoubleHashAlgorithm would pile onto the same home slots.
type MixedDoubleHashAlgorithm struct {
	tableSize int64
}

// NewMixedDoubleHashAlgorithm - Returns a pointer to a new MixedDoubleHashAlgorithm instance
func NewMixedDoubleHashAlgorithm(tableSize int64) *MixedDoubleHashAlgorithm {
	ha := &MixedDoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (M *MixedDoubleHashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given id it generates the home slot between 0 and table size - 1
func (M *MixedDoubleHashAlgorithm) HashFunc1(id int64) int64 {
	return int64(digest(id) & uint64(M.tableSize-1))
}

// HashFunc2 - Given id it generates an odd probing step between 1 and table size - 1
func (M *MixedDoubleHashAlgorithm) HashFunc2(id int64) int64 {
	return int64((digest(id)>>32)&uint64(M.tableSize-1)) | 1
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (M *MixedDoubleHashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}

// ProbeIteration - Returns (hf1Value + iteration*hf2Value) mod table size
func (M *MixedDoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) & (M.tableSize - 1)
}

// digest - xxhash over the little endian bytes of the id
func digest(id int64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))

	return xxhash.Sum64(buf[:])
}
