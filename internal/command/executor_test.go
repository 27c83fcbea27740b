//go:build unit

package command

import (
	"errors"
	"github.com/gostonefire/memhashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"strings"
	"testing"
)

const sampleInsert string = "insert 1\nSample Title\n2023-09-12 120 10 20 500\nSample,Keywords\nSample Description\n"

const sampleRecord string = "ID: 1, Title: Sample Title\n" +
	"Date: 2023-09-12, Length: 120, X: 10, Y: 20, Cost: 500\n" +
	"Description: Sample Description\n" +
	"Keywords: Sample,Keywords\n"

// failingWriter - Writer that always fails
type failingWriter struct{}

func (f failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func newTestExecutor(t *testing.T, capacity int64) (executor *Executor, output *strings.Builder) {
	output = &strings.Builder{}
	table, err := memhashmap.NewHashTable(10, capacity, output)
	require.NoError(t, err, "creates hash table")
	executor = NewExecutor(table, output, nil)

	return
}

func TestExecutor_Run(t *testing.T) {
	t.Run("inserts and searches", func(t *testing.T) {
		// Prepare
		executor, output := newTestExecutor(t, 4)

		// Execute
		err := executor.Run(strings.NewReader(sampleInsert + "search 1\n"))

		// Check
		assert.NoError(t, err, "runs commands")
		expected := "Successfully inserted record with ID 1\n" + sampleRecord + "Size: 45\n" +
			"Found record with ID 1:\n" + sampleRecord
		assert.Equal(t, expected, output.String(), "statuses")
	})

	t.Run("inserts and deletes", func(t *testing.T) {
		// Prepare
		executor, output := newTestExecutor(t, 4)

		// Execute
		err := executor.Run(strings.NewReader(sampleInsert + "delete 1\ndelete 1\nsearch 1\n"))

		// Check
		assert.NoError(t, err, "runs commands")
		assert.Contains(t, output.String(), "Record with ID 1 successfully deleted from the database\n", "deleted")
		assert.Contains(t, output.String(), "Delete FAILED -- There is no record with ID 1\n", "second delete fails")
		assert.True(t, strings.HasSuffix(output.String(), "Search FAILED -- There is no record with ID 1\n"), "search fails")
	})

	t.Run("rejects duplicate insert", func(t *testing.T) {
		// Prepare
		executor, output := newTestExecutor(t, 4)

		// Execute
		err := executor.Run(strings.NewReader(sampleInsert + sampleInsert))

		// Check
		assert.NoError(t, err, "runs commands")
		assert.True(t, strings.HasSuffix(output.String(), "Insert FAILED - There is already a record with ID 1\n"),
			"duplicate reported")
	})

	t.Run("prints table and blocks", func(t *testing.T) {
		// Prepare
		executor, output := newTestExecutor(t, 4)
		require.NoError(t, executor.Run(strings.NewReader(sampleInsert+"delete 1\n")), "prepares table")
		output.Reset()

		// Execute
		err := executor.Run(strings.NewReader("print hashtable\nprint blocks\n"))

		// Check
		assert.NoError(t, err, "runs commands")
		expected := "HashTable:\n1: TOMBSTONE\ntotal records: 0\n" +
			"\nFreeBlock List:\nThere are no freeblocks in the memory pool\n"
		assert.Equal(t, expected, output.String(), "dumps")
	})

	t.Run("reports expansion before insert status", func(t *testing.T) {
		// Prepare
		executor, output := newTestExecutor(t, 2)
		input := sampleInsert + strings.Replace(sampleInsert, "insert 1", "insert 2", 1)

		// Execute
		err := executor.Run(strings.NewReader(input))

		// Check
		assert.NoError(t, err, "runs commands")
		assert.Contains(t, output.String(), "Size: 45\nHash table expanded to 4 records\nSuccessfully inserted record with ID 2\n",
			"notice between statuses")
	})

	t.Run("skips unrecognized commands", func(t *testing.T) {
		// Prepare
		core, logs := observer.New(zapcore.WarnLevel)
		output := &strings.Builder{}
		table, err := memhashmap.NewHashTable(10, 4, output)
		require.NoError(t, err, "creates hash table")
		executor := NewExecutor(table, output, zap.New(core))

		// Execute
		err = executor.Run(strings.NewReader("update 1\nsearch 3\n"))

		// Check
		assert.NoError(t, err, "runs commands")
		assert.Equal(t, "Unrecognized command: update 1\nSearch FAILED -- There is no record with ID 3\n",
			output.String(), "statuses")
		entries := logs.FilterMessage("skipping unrecognized command").All()
		require.Len(t, entries, 1, "warning logged")
		assert.Equal(t, int64(1), entries[0].ContextMap()["line"], "line number logged")
	})

	t.Run("runs commands following a malformed insert", func(t *testing.T) {
		// Prepare
		executor, output := newTestExecutor(t, 4)
		input := "insert 1\nSample Title\n2023-09-12 120 10 20 500 Sample,Keywords\nSample Description\n" +
			"search 1\nsearch 2\n"

		// Execute
		err := executor.Run(strings.NewReader(input))

		// Check
		assert.NoError(t, err, "runs commands")
		expected := "Unrecognized command: 2023-09-12 120 10 20 500 Sample,Keywords\n" +
			"Unrecognized command: Sample Description\n" +
			"Search FAILED -- There is no record with ID 1\n" +
			"Search FAILED -- There is no record with ID 2\n"
		assert.Equal(t, expected, output.String(), "every command after the insert reported")
	})

	t.Run("runs command that cuts an insert short", func(t *testing.T) {
		// Prepare
		executor, output := newTestExecutor(t, 4)

		// Execute
		err := executor.Run(strings.NewReader("insert 1\nSample Title\nsearch 1\n" + sampleInsert))

		// Check
		assert.NoError(t, err, "runs commands")
		expected := "Unrecognized command: insert 1\n" +
			"Search FAILED -- There is no record with ID 1\n" +
			"Successfully inserted record with ID 1\n" + sampleRecord + "Size: 45\n"
		assert.Equal(t, expected, output.String(), "search and following insert executed")
	})

	t.Run("stops when a miss can not be reported", func(t *testing.T) {
		// Prepare
		table, err := memhashmap.NewHashTable(10, 4, failingWriter{})
		require.NoError(t, err, "creates hash table")
		executor := NewExecutor(table, failingWriter{}, nil)

		// Execute
		err = executor.Run(strings.NewReader("search 3\n"))

		// Check
		assert.ErrorIs(t, err, memhashmap.OutputError{}, "output error returned")
		assert.ErrorContains(t, err, "sink closed", "sink error kept")
	})
}

func TestExecutor_Execute(t *testing.T) {
	t.Run("rejects unknown command kind", func(t *testing.T) {
		// Prepare
		executor, _ := newTestExecutor(t, 4)

		// Execute
		err := executor.Execute(Command{Kind: 99})

		// Check
		assert.Error(t, err, "unknown kind")
	})
}
