/*
Package sqlset provides a store of example sets backed by an SQL database.

Examples are kept on a single examples table with an autoincremented id
column, a name column, a label column and a text column for each attribute
of the schema. Reading the table returns the examples in id order, that is,
in the order they were written.

The SQL dialect specifics are provided by an Adapter, such as the ones in
the sqlite3adapter and pgadapter packages.
*/
package sqlset

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
Adapter is an interface providing the methods
needed to implement a Store with a database backend.

Rows handled by an adapter are slices of strings holding the values for the
given columns in the same order.
*/
type Adapter interface {
	// ColumnName takes an attribute name and returns the column name
	// for it or an error if the attribute name cannot be used as column.
	ColumnName(string) (string, error)

	CreateExampleTable(ctx context.Context, columns []string) error
	AddExamples(ctx context.Context, columns []string, rows [][]string) (int, error)
	IterateOnExamples(ctx context.Context, columns []string, lambda func(int, []string) (bool, error)) error
	CountExamples(ctx context.Context) (int, error)

	Close() error
}

/*
Store is a set of examples described by a schema kept on a database
through an Adapter.
*/
type Store struct {
	db      Adapter
	schema  *feature.Schema
	labels  []string
	columns []string
}

/*
Open takes an Adapter to a db backend, a schema and the class labels and
returns a Store backed by the given adapter or an error if an attribute
name cannot be used as a column. An empty labels slice accepts any label.
*/
func Open(dbAdapter Adapter, schema *feature.Schema, labels []string) (*Store, error) {
	columns := []string{NameColumn, LabelColumn}
	for _, name := range schema.Names() {
		c, err := dbAdapter.ColumnName(name)
		if err != nil {
			return nil, fmt.Errorf("opening sql set: %v", err)
		}
		columns = append(columns, c)
	}
	return &Store{db: dbAdapter, schema: schema, labels: labels, columns: columns}, nil
}

/*
CreateTable ensures the examples table exists on the database.
*/
func (s *Store) CreateTable(ctx context.Context) error {
	return s.db.CreateExampleTable(ctx, s.columns[2:])
}

/*
Write takes a context and a slice of examples and adds them to the store.
It returns the number of examples written and an error if not all of them
could be written. Examples are validated against the schema before anything
is written.
*/
func (s *Store) Write(ctx context.Context, examples []*dataset.Example) (int, error) {
	if len(examples) == 0 {
		return 0, nil
	}
	if _, err := dataset.New(s.schema, s.labels, examples); err != nil {
		return 0, fmt.Errorf("writing examples: %w", err)
	}
	rows := make([][]string, 0, len(examples))
	for _, e := range examples {
		rows = append(rows, append([]string{e.Name(), e.Label()}, e.Values()...))
	}
	return s.db.AddExamples(ctx, s.columns, rows)
}

/*
ReadByExample takes a context and a lambda function on an integer and an
example that returns a boolean value, and calls it with every example on
the store in order with its index, until it returns false or an error.
*/
func (s *Store) ReadByExample(ctx context.Context, lambda func(int, *dataset.Example) (bool, error)) error {
	return s.db.IterateOnExamples(ctx, s.columns, func(i int, row []string) (bool, error) {
		if len(row) != len(s.columns) {
			return false, fmt.Errorf("reading example %d: expected %d columns, got %d", i, len(s.columns), len(row))
		}
		e := dataset.NewExample(row[0], row[1], row[2:]...)
		return lambda(i, e)
	})
}

/*
Read takes a context and returns a dataset.Set with all the examples on the
store in the order they were written, or an error if they cannot be read or
do not conform to the schema.
*/
func (s *Store) Read(ctx context.Context) (*dataset.Set, error) {
	var examples []*dataset.Example
	err := s.ReadByExample(ctx, func(_ int, e *dataset.Example) (bool, error) {
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading sql set: %w", err)
	}
	return dataset.New(s.schema, s.labels, examples)
}

// Count returns the number of examples on the store.
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.db.CountExamples(ctx)
}

// Close releases the database behind the store.
func (s *Store) Close() error {
	return s.db.Close()
}
