/*
Package csv provides methods to read example sets from CSV streams and to
write them as CSV.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

const (
	nameColumn  = "name"
	labelColumn = "label"
)

/*
Writer is an interface for a set to which examples
can be written to.
*/
type Writer interface {
	// Write will attempt to write the given
	// examples and will return the actually written
	// number of examples and an error (if not all examples
	// could be written)
	Write(context.Context, []*dataset.Example) (int, error)
	// Count returns the total number of examples written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count  int
	schema *feature.Schema
	w      *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream, a schema and the class labels
and returns a dataset.Set with the examples parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of a name
column, a label column and a column for each attribute of the schema, in any
order. The rest of the rows should consist of the name and label of an
example and valid values for every attribute.
*/
func ReadSet(reader io.Reader, schema *feature.Schema, labels []string) (*dataset.Set, error) {
	examples := []*dataset.Example{}
	err := ReadSetByExample(reader, schema, func(_ int, e *dataset.Example) (bool, error) {
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(schema, labels, examples)
}

/*
ReadSetByExample takes an io.Reader for a CSV stream, a schema and a
lambda function on an integer and a *dataset.Example that returns a boolean
value. It parses the examples from the reader and for each it calls the
lambda function with the example and its index as parameters. If the lambda
function returns true, it will continue processing the next example,
otherwise it will stop. An error is returned if something goes wrong when
reading the stream or parsing an example.
*/
func ReadSetByExample(reader io.Reader, schema *feature.Schema, lambda func(int, *dataset.Example) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	columns, err := parseCSVHeader(header, schema)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		example, err := parseExampleFromCSVRow(row, columns, schema)
		if err != nil {
			return fmt.Errorf("parsing line %d: %w", l, err)
		}
		ok, err := lambda(l-2, example)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadSetFromFilePath takes a filepath string, a schema and the class labels,
opens the file to which the filepath points to and uses ReadSet to return a
dataset.Set or an error read from it. If the filepath is "" os.Stdin is used
instead. It will return an error if the given filepath cannot be opened for
reading.
*/
func ReadSetFromFilePath(filepath string, schema *feature.Schema, labels []string) (*dataset.Set, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading set: %v", err)
		}
		defer f.Close()
	}
	set, err := ReadSet(f, schema, labels)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return set, err
}

/*
NewWriter takes an io.Writer and a schema and returns a Writer that will
write any examples on the io.Writer, after a header with the name and label
columns followed by the attribute names in schema order.
*/
func NewWriter(writer io.Writer, schema *feature.Schema) (Writer, error) {
	w := csv.NewWriter(writer)
	record := append([]string{nameColumn, labelColumn}, schema.Names()...)
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{schema: schema, w: w}, nil
}

/*
WriteCSVSet takes a context, a writer and a dataset.Set and dumps to the
writer the set in CSV format. It returns an error if something went wrong
when writing to the writer.
*/
func WriteCSVSet(ctx context.Context, writer io.Writer, s *dataset.Set) error {
	cw, err := NewWriter(writer, s.Schema)
	if err != nil {
		return err
	}
	_, err = cw.Write(ctx, s.Examples)
	if err != nil {
		return err
	}
	return cw.Flush()
}

// columns holds the index of each column of a CSV body row.
type columns struct {
	name       int
	label      int
	attributes []int
}

func parseCSVHeader(header []string, schema *feature.Schema) (*columns, error) {
	c := &columns{name: -1, label: -1, attributes: make([]int, schema.Len())}
	for i := range c.attributes {
		c.attributes[i] = -1
	}
	for i, name := range header {
		switch name {
		case nameColumn:
			c.name = i
			continue
		case labelColumn:
			c.label = i
			continue
		}
		p, ok := schema.Position(name)
		if !ok {
			return nil, fmt.Errorf("parsing header: reference to unknown attribute %s", name)
		}
		if c.attributes[p] != -1 {
			return nil, fmt.Errorf("parsing header: repeated column for attribute %s", name)
		}
		c.attributes[p] = i
	}
	if c.label == -1 {
		return nil, fmt.Errorf("parsing header: no %s column", labelColumn)
	}
	for p, i := range c.attributes {
		if i == -1 {
			return nil, fmt.Errorf("parsing header: no column for attribute %s", schema.Names()[p])
		}
	}
	return c, nil
}

func parseExampleFromCSVRow(row []string, c *columns, schema *feature.Schema) (*dataset.Example, error) {
	values := make([]string, len(c.attributes))
	for p, i := range c.attributes {
		values[p] = row[i]
	}
	if err := schema.Validate(values); err != nil {
		return nil, err
	}
	var name string
	if c.name != -1 {
		name = row[c.name]
	}
	return dataset.NewExample(name, row[c.label], values...), nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(ctx context.Context, examples []*dataset.Example) (int, error) {
	n := 0
	var err error
	for ; n < len(examples); n++ {
		if err = ctx.Err(); err != nil {
			return n, err
		}
		err = cw.WriteExample(examples[n])
		if err != nil {
			return n, err
		}
	}
	return len(examples), nil
}

// WriteExample writes a single example as a CSV row.
func (cw *csvWriter) WriteExample(e *dataset.Example) error {
	if e.Len() != cw.schema.Len() {
		return fmt.Errorf("writing CSV row for example %s: expected %d values, got %d", e.Name(), cw.schema.Len(), e.Len())
	}
	record := append([]string{e.Name(), e.Label()}, e.Values()...)
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for example %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
