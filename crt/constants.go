package crt

// DoubleHashing - Odd step double hashing, home slot id mod capacity and step 2*((id div capacity) mod (capacity/2))+1
const DoubleHashing int = 1

// LinearProbing - Step of one slot from the home slot id mod capacity
const LinearProbing int = 2

// QuadraticProbing - Triangular number offsets from the home slot id mod capacity
const QuadraticProbing int = 3

// MixedDoubleHashing - Odd step double hashing on an xxhash digest of the id, for clustered id ranges
const MixedDoubleHashing int = 4

// Name - Returns a short name for the collision resolution technique, or an empty string if it is unknown
func Name(technique int) string {
	switch technique {
	case DoubleHashing:
		return "double"
	case LinearProbing:
		return "linear"
	case QuadraticProbing:
		return "quadratic"
	case MixedDoubleHashing:
		return "mixed"
	}

	return ""
}

// FromName - Returns the collision resolution technique given its short name, second value is false if unknown
func FromName(name string) (technique int, ok bool) {
	for _, t := range []int{DoubleHashing, LinearProbing, QuadraticProbing, MixedDoubleHashing} {
		if Name(t) == name {
			technique = t
			ok = true
			return
		}
	}

	return
}
