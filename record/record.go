// Package record holds the Record indexed by the hash table. Only the identifier and the deleted flag are of
// interest to the table, the remaining fields are carried for the benefit of callers.
package record

import "fmt"

// Record - A seminar record keyed by its id
//   - id is the unique key, set at construction and never changed
//   - deleted is the tombstone flag, set by the hash table when the record is deleted
type Record struct {
	id          int64
	deleted     bool
	title       string
	date        string
	length      int32
	x           int16
	y           int16
	cost        int32
	description string
	keywords    string
}

// NewRecord - Returns a pointer to a new Record with the deleted flag cleared.
// Records are compared by identity, two calls with the same arguments give two distinct records.
func NewRecord(
	id int64,
	title string,
	date string,
	length int32,
	x int16,
	y int16,
	cost int32,
	description string,
	keywords string,
) *Record {
	return &Record{
		id:          id,
		title:       title,
		date:        date,
		length:      length,
		x:           x,
		y:           y,
		cost:        cost,
		description: description,
		keywords:    keywords,
	}
}

// ID - Returns the record identifier
func (R *Record) ID() int64 {
	return R.id
}

// IsDeleted - Returns true if the record has been deleted from a hash table
func (R *Record) IsDeleted() bool {
	return R.deleted
}

// SetDeleted - Sets the deleted flag, setting it more than once has no further effect
func (R *Record) SetDeleted(deleted bool) {
	R.deleted = deleted
}

// Title - Returns the title
func (R *Record) Title() string {
	return R.title
}

// Date - Returns the date as given
func (R *Record) Date() string {
	return R.date
}

// Length - Returns the length
func (R *Record) Length() int32 {
	return R.length
}

// X - Returns the x coordinate
func (R *Record) X() int16 {
	return R.x
}

// Y - Returns the y coordinate
func (R *Record) Y() int16 {
	return R.y
}

// Cost - Returns the cost
func (R *Record) Cost() int32 {
	return R.cost
}

// Description - Returns the description
func (R *Record) Description() string {
	return R.description
}

// Keywords - Returns the keywords
func (R *Record) Keywords() string {
	return R.keywords
}

// CalculateSize - Returns the summed length of the variable length fields title, description and keywords
func (R *Record) CalculateSize() int {
	return len(R.title) + len(R.description) + len(R.keywords)
}

// String - Renders the record over four lines, without a trailing newline
func (R *Record) String() string {
	return fmt.Sprintf(
		"ID: %d, Title: %s\nDate: %s, Length: %d, X: %d, Y: %d, Cost: %d\nDescription: %s\nKeywords: %s",
		R.id, R.title, R.date, R.length, R.x, R.y, R.cost, R.description, R.keywords,
	)
}
