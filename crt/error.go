package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that a full probe cycle found neither an empty slot nor a matching one
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "hash table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// RecordDeleted - Custom error to inform that a record carrying a deleted flag was offered for insertion
type RecordDeleted struct {
	msg string
}

// Error - Used to notify that the record is marked as deleted
func (R RecordDeleted) Error() string {
	if R.msg == "" {
		return "record is marked as deleted"
	}
	return R.msg
}
