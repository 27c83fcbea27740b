package conf

// LoadFactorThreshold - Live records to capacity ratio at which an insert first doubles the table
const LoadFactorThreshold float64 = 0.5

// FreeBlockSentinel - Value of an unused entry in the free block list
const FreeBlockSentinel int64 = -1

// ExpandedMessage - Notice written to the output sink after each expansion, takes the new capacity
const ExpandedMessage string = "Hash table expanded to %d records\n"

// SearchFailedMessage - Diagnostic written to the output sink on a verbose search miss, takes the id
const SearchFailedMessage string = "Search FAILED -- There is no record with ID %d\n"

// TableHeader - First line of a hash table dump
const TableHeader string = "HashTable:\n"

// TableLiveLine - Dump line for a slot holding a live record, takes index and id
const TableLiveLine string = "%d: %d\n"

// TableTombstoneLine - Dump line for a tombstoned slot, takes index
const TableTombstoneLine string = "%d: TOMBSTONE\n"

// TableFooter - Last line of a hash table dump, takes the number of live lines, no trailing newline
const TableFooter string = "total records: %d"

// FreeBlockHeader - First line of a free block dump
const FreeBlockHeader string = "\nFreeBlock List:\n"

// FreeBlockLine - Dump line for a free block, takes the block value
const FreeBlockLine string = "%d \n"

// FreeBlockFooter - Last line of a free block dump
const FreeBlockFooter string = "There are no freeblocks in the memory pool\n"

// InsertedMessage - Driver status after a successful insert, takes the id
const InsertedMessage string = "Successfully inserted record with ID %d\n"

// SizeLine - Driver line following an inserted record, takes the record size
const SizeLine string = "Size: %d\n"

// InsertFailedMessage - Driver status when the id is already present, takes the id
const InsertFailedMessage string = "Insert FAILED - There is already a record with ID %d\n"

// FoundMessage - Driver status preceding a found record, takes the id
const FoundMessage string = "Found record with ID %d:\n"

// DeletedMessage - Driver status after a successful delete, takes the id
const DeletedMessage string = "Record with ID %d successfully deleted from the database\n"

// DeleteFailedMessage - Driver status when there is no live record to delete, takes the id
const DeleteFailedMessage string = "Delete FAILED -- There is no record with ID %d\n"

// UnrecognizedMessage - Driver status for a line that is not a command, takes the line
const UnrecognizedMessage string = "Unrecognized command: %s\n"
