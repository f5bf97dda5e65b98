/*
Package textfile reads and writes example sets in a plain text format
declaring the class labels, the attributes and the examples in turn:

	// class labels
	Play NoPlay
	// number of attributes, then one line per attribute with its values
	2
	Weather Sunny Rainy
	Humidity High Low
	// number of examples, then one line per example
	3
	e1 Play Sunny Low
	e2 NoPlay Rainy High
	e3 Play Sunny High

Tokens are separated by whitespace. Blank lines and comment lines, those
starting with \\ or //, are ignored.
*/
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the fields of the next significant line, or io.EOF.
func (lr *lineReader) next() ([]string, error) {
	for lr.scanner.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.scanner.Text())
		if text == "" || strings.HasPrefix(text, `\\`) || strings.HasPrefix(text, "//") {
			continue
		}
		return strings.Fields(text), nil
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (lr *lineReader) mustNext(what string) ([]string, error) {
	fields, err := lr.next()
	if err == io.EOF {
		return nil, fmt.Errorf("unexpected end of file after line %d: expected %s", lr.line, what)
	}
	return fields, err
}

func (lr *lineReader) count(what string) (int, error) {
	fields, err := lr.mustNext(what)
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, fmt.Errorf("line %d: expected %s, got %q", lr.line, what, strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: expected %s, got %q", lr.line, what, fields[0])
	}
	return n, nil
}

/*
Read takes an io.Reader with an example set in text format and returns the
set or an error indicating the line where parsing failed.
*/
func Read(r io.Reader) (*dataset.Set, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}
	labels, err := lr.mustNext("class labels")
	if err != nil {
		return nil, err
	}
	n, err := lr.count("number of attributes")
	if err != nil {
		return nil, err
	}
	attributes := make([]*feature.Attribute, 0, n)
	for i := 0; i < n; i++ {
		fields, err := lr.mustNext(fmt.Sprintf("attribute %d", i+1))
		if err != nil {
			return nil, err
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: attribute %s declares no values", lr.line, fields[0])
		}
		attributes = append(attributes, feature.NewAttribute(fields[0], fields[1:]...))
	}
	schema, err := feature.NewSchema(attributes...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lr.line, err)
	}
	m, err := lr.count("number of examples")
	if err != nil {
		return nil, err
	}
	examples := make([]*dataset.Example, 0, m)
	for i := 0; i < m; i++ {
		fields, err := lr.mustNext(fmt.Sprintf("example %d", i+1))
		if err != nil {
			return nil, err
		}
		if len(fields) != schema.Len()+2 {
			return nil, fmt.Errorf("line %d: expected a name, a label and %d values, got %d fields", lr.line, schema.Len(), len(fields))
		}
		e := dataset.NewExample(fields[0], fields[1], fields[2:]...)
		if _, err = dataset.New(schema, labels, []*dataset.Example{e}); err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
		examples = append(examples, e)
	}
	if _, err = lr.next(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("line %d: unexpected content after %d examples", lr.line, m)
		}
		return nil, err
	}
	return dataset.New(schema, labels, examples)
}

/*
ReadFile takes a filepath string, opens the file it points to and uses Read
to return the set in it. If the filepath is "" os.Stdin is read instead.
*/
func ReadFile(filepath string) (*dataset.Set, error) {
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
	s, err := Read(f)
	if err != nil {
		err = fmt.Errorf("parsing set file %s: %w", filepath, err)
	}
	return s, err
}

/*
Write takes an io.Writer and a set and writes the set onto the writer in
text format. When the set declares no labels, the labels of its examples
are written in order of appearance. An error is returned if a name, label
or value contains whitespace, as it could not be read back.
*/
func Write(w io.Writer, s *dataset.Set) error {
	labels := s.Labels
	if len(labels) == 0 {
		for _, lc := range dataset.CountLabels(s.Examples) {
			labels = append(labels, lc.Label)
		}
	}
	if len(labels) == 0 {
		return fmt.Errorf("writing set: no class labels")
	}
	bw := bufio.NewWriter(w)
	lines := [][]string{labels, {strconv.Itoa(s.Schema.Len())}}
	for _, a := range s.Schema.Attributes() {
		lines = append(lines, append([]string{a.Name()}, a.Values()...))
	}
	lines = append(lines, []string{strconv.Itoa(len(s.Examples))})
	for _, e := range s.Examples {
		lines = append(lines, append([]string{e.Name(), e.Label()}, e.Values()...))
	}
	for _, fields := range lines {
		for _, f := range fields {
			if f == "" || strings.IndexFunc(f, unicode.IsSpace) != -1 {
				return fmt.Errorf("writing set: %q cannot be written as a token", f)
			}
		}
		if _, err := bw.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return fmt.Errorf("writing set: %v", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing set: %v", err)
	}
	return nil
}
