package command

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/memhashmap/record"
	"io"
	"strconv"
	"strings"
)

// InsertCommand - Insert a record, the command line is followed by four lines of record fields
const InsertCommand int = 1

// DeleteCommand - Delete the record with the given id
const DeleteCommand int = 2

// SearchCommand - Search for the record with the given id
const SearchCommand int = 3

// PrintTableCommand - Dump the hash table
const PrintTableCommand int = 4

// PrintBlocksCommand - Dump the free block list
const PrintBlocksCommand int = 5

// Command - One parsed command
//   - Kind is one of the command constants
//   - Id is the record id for insert, delete and search
//   - Record is the record to insert, nil for other kinds
//   - Line is the command line as read
type Command struct {
	Kind   int
	Id     int64
	Record *record.Record
	Line   string
}

// ParseError - Custom error to inform that a line could not be parsed into a command
type ParseError struct {
	msg  string
	Line string
}

// Error - Used to notify that parsing failed
func (E ParseError) Error() string {
	if E.msg == "" {
		return "unrecognized command"
	}
	return E.msg
}

// Is - Makes any ParseError match any other through errors.Is regardless of message
func (E ParseError) Is(target error) bool {
	_, ok := target.(ParseError)
	return ok
}

// Parser - Reads commands one at a time from a line oriented stream. Blank lines are skipped and fields may be
// separated by any amount of whitespace.
type Parser struct {
	scanner    *bufio.Scanner
	lineNo     int
	pending    string
	hasPending bool
}

// NewParser - Returns a pointer to a new Parser reading from r
func NewParser(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// LineNo - Returns the number of lines read so far
func (P *Parser) LineNo() int {
	return P.lineNo
}

// Next - Returns the next command.
//
// It returns:
//   - cmd is the parsed command
//   - err is io.EOF when the stream is exhausted, of type ParseError if a line was not a valid command, or
//     a standard error if reading failed
func (P *Parser) Next() (cmd Command, err error) {
	line, err := P.nextLine()
	if err != nil {
		return
	}

	cmd.Line = line
	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case "insert":
		cmd.Kind = InsertCommand
		cmd.Id, err = parseId(line, fields)

		// The record lines belong to the insert even if its id is invalid
		rec, recErr := P.readRecord(cmd.Id)
		if err != nil {
			return
		}
		cmd.Record, err = rec, recErr
	case "delete":
		cmd.Kind = DeleteCommand
		cmd.Id, err = parseId(line, fields)
	case "search":
		cmd.Kind = SearchCommand
		cmd.Id, err = parseId(line, fields)
	case "print":
		if len(fields) != 2 {
			err = ParseError{msg: "print takes exactly one argument", Line: line}
			return
		}
		switch strings.ToLower(fields[1]) {
		case "hashtable", "table":
			cmd.Kind = PrintTableCommand
		case "blocks":
			cmd.Kind = PrintBlocksCommand
		default:
			err = ParseError{msg: fmt.Sprintf("unknown print target %s", fields[1]), Line: line}
		}
	default:
		err = ParseError{msg: fmt.Sprintf("unknown command %s", fields[0]), Line: line}
	}

	return
}

// nextLine - Returns the next non-blank line trimmed of surrounding whitespace
func (P *Parser) nextLine() (line string, err error) {
	if P.hasPending {
		line = P.pending
		P.hasPending = false
		P.lineNo++
		return
	}

	for P.scanner.Scan() {
		P.lineNo++
		line = strings.TrimSpace(P.scanner.Text())
		if line != "" {
			return
		}
	}

	if err = P.scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading commands: %w", err)
		return
	}

	err = io.EOF

	return
}

// unreadLine - Hands line back so the next call to nextLine returns it again
func (P *Parser) unreadLine(line string) {
	P.pending = line
	P.hasPending = true
	P.lineNo--
}

// readRecord - Reads the four lines following an insert command: title, the numeric line
// "<date> <length> <x> <y> <cost>", keywords and description.
// Reading stops at a malformed numeric line, and a line that is a command is left for the next call to Next.
func (P *Parser) readRecord(id int64) (rec *record.Record, err error) {
	var lines [4]string
	var n recordLine
	for i := range lines {
		lines[i], err = P.nextLine()
		if err == io.EOF {
			err = ParseError{msg: fmt.Sprintf("insert %d is missing record lines", id), Line: fmt.Sprintf("insert %d", id)}
			return
		}
		if err != nil {
			return
		}

		if isCommand(lines[i]) {
			P.unreadLine(lines[i])
			err = ParseError{msg: fmt.Sprintf("insert %d is missing record lines", id), Line: fmt.Sprintf("insert %d", id)}
			return
		}

		if i == 1 {
			if n, err = parseRecordLine(lines[1]); err != nil {
				return
			}
		}
	}

	rec = record.NewRecord(id, lines[0], n.date, n.length, n.x, n.y, n.cost, lines[3], lines[2])

	return
}

// recordLine - The fields of the numeric record line
type recordLine struct {
	date   string
	length int32
	x      int16
	y      int16
	cost   int32
}

// parseRecordLine - Parses "<date> <length> <x> <y> <cost>"
func parseRecordLine(line string) (n recordLine, err error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		err = ParseError{msg: fmt.Sprintf("expected date, length, x, y and cost, got %q", line), Line: line}
		return
	}

	length, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		err = ParseError{msg: fmt.Sprintf("invalid length: %s", err), Line: line}
		return
	}
	x, err := strconv.ParseInt(fields[2], 10, 16)
	if err != nil {
		err = ParseError{msg: fmt.Sprintf("invalid x: %s", err), Line: line}
		return
	}
	y, err := strconv.ParseInt(fields[3], 10, 16)
	if err != nil {
		err = ParseError{msg: fmt.Sprintf("invalid y: %s", err), Line: line}
		return
	}
	cost, err := strconv.ParseInt(fields[4], 10, 32)
	if err != nil {
		err = ParseError{msg: fmt.Sprintf("invalid cost: %s", err), Line: line}
		return
	}

	n = recordLine{date: fields[0], length: int32(length), x: int16(x), y: int16(y), cost: int32(cost)}

	return
}

// isCommand - Returns true if line is a well formed command line
func isCommand(line string) bool {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "insert", "delete", "search":
		_, err := strconv.ParseInt(fields[1], 10, 64)
		return err == nil
	case "print":
		switch strings.ToLower(fields[1]) {
		case "hashtable", "table", "blocks":
			return true
		}
	}

	return false
}

// parseId - Parses the id argument of a command line with exactly one argument
func parseId(line string, fields []string) (id int64, err error) {
	if len(fields) != 2 {
		err = ParseError{msg: fmt.Sprintf("%s takes exactly one id", fields[0]), Line: line}
		return
	}

	id, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		err = ParseError{msg: fmt.Sprintf("invalid id: %s", err), Line: line}
	}

	return
}
