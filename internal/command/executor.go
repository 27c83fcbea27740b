// Package command drives a hash table from a stream of text commands and renders the status of each command to
// the same output the hash table writes its notices and dumps to.
package command

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/conf"
	"go.uber.org/zap"
	"io"
)

// Executor - Applies commands to a hash table
type Executor struct {
	table  *memhashmap.HashTable
	output io.Writer
	logger *zap.Logger
}

// NewExecutor - Returns a pointer to a new Executor.
//   - table is the hash table to operate on
//   - output should be the same writer the table was created with so that statuses and notices interleave in order
//   - logger is an optional zap logger, nil disables logging
func NewExecutor(table *memhashmap.HashTable, output io.Writer, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Executor{table: table, output: output, logger: logger}
}

// Run - Parses and executes all commands from r. A line that is not a valid command is reported and skipped.
//
// It returns:
//   - err is a standard error if reading, writing or a table operation failed
func (E *Executor) Run(r io.Reader) (err error) {
	var cmd Command
	parser := NewParser(r)

	for {
		cmd, err = parser.Next()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if errors.Is(err, ParseError{}) {
			var pe ParseError
			errors.As(err, &pe)
			E.logger.Warn("skipping unrecognized command",
				zap.Int("line", parser.LineNo()),
				zap.String("text", pe.Line),
				zap.Error(err),
			)
			if err = E.printf(conf.UnrecognizedMessage, pe.Line); err != nil {
				return
			}
			continue
		}
		if err != nil {
			return
		}

		if err = E.Execute(cmd); err != nil {
			err = fmt.Errorf("error while executing %q at line %d: %w", cmd.Line, parser.LineNo(), err)
			return
		}
	}
}

// Execute - Applies a single command and writes its status
func (E *Executor) Execute(cmd Command) (err error) {
	E.logger.Debug("executing command", zap.String("command", cmd.Line))

	switch cmd.Kind {
	case InsertCommand:
		err = E.insert(cmd)
	case DeleteCommand:
		err = E.delete(cmd)
	case SearchCommand:
		err = E.search(cmd)
	case PrintTableCommand:
		if _, err = E.table.PrintHashTable(); err != nil {
			return
		}
		err = E.printf("\n")
	case PrintBlocksCommand:
		err = E.table.PrintMemoryBlocks()
	default:
		err = fmt.Errorf("unknown command kind %d", cmd.Kind)
	}

	return
}

// insert - Inserts the command's record and reports it with its size
func (E *Executor) insert(cmd Command) (err error) {
	inserted, err := E.table.Insert(cmd.Record)
	if err != nil {
		return
	}

	if !inserted {
		err = E.printf(conf.InsertFailedMessage, cmd.Id)
		return
	}

	if err = E.printf(conf.InsertedMessage, cmd.Id); err != nil {
		return
	}
	if err = E.printf("%s\n", cmd.Record); err != nil {
		return
	}
	err = E.printf(conf.SizeLine, cmd.Record.CalculateSize())

	return
}

// delete - Deletes the record with the command's id
func (E *Executor) delete(cmd Command) (err error) {
	deleted, err := E.table.Delete(cmd.Id)
	if err != nil {
		return
	}

	if deleted {
		err = E.printf(conf.DeletedMessage, cmd.Id)
	} else {
		err = E.printf(conf.DeleteFailedMessage, cmd.Id)
	}

	return
}

// search - Searches verbosely for the command's id, the table itself reports a miss
func (E *Executor) search(cmd Command) (err error) {
	rec, err := E.table.Search(cmd.Id, true)
	// A miss is already reported by the table, only a failure to write that report stops the run
	if errors.Is(err, crt.NoRecordFound{}) && !errors.Is(err, memhashmap.OutputError{}) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	if err = E.printf(conf.FoundMessage, cmd.Id); err != nil {
		return
	}
	err = E.printf("%s\n", rec)

	return
}

// printf - Writes a formatted status to the output
func (E *Executor) printf(format string, a ...any) (err error) {
	_, err = fmt.Fprintf(E.output, format, a...)
	if err != nil {
		err = fmt.Errorf("error while writing status: %w", err)
	}

	return
}
