package hashfunc

// HashAlgorithm - Interface that permits a user of the HashTable to supply a custom slot selection algorithm suited
// for its particular distribution of ids.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new hash table and each time the table expands. The table size is always a
	// power of 2, and the implementation must keep it as is, a HashTable refuses an algorithm whose GetTableSize
	// returns anything else than what was given here.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given id it generates the home slot between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(id int64) int64

	// HashFunc2 - Given id it generates a probing step that will be used together with the value from HashFunc1 in
	// a call to ProbeIteration. Algorithms that do not need a step may return any value.
	HashFunc2(id int64) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in a given iteration, given values from HashFunc1 and HashFunc2.
	// Iteration 0 must return the home slot. For the HashTable to be able to tell a full table from a missing
	// record, the iterations 0 -> table size - 1 must visit every slot exactly once.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
