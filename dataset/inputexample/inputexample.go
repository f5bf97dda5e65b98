/*
Package inputexample provides a way to build a dataset.Example from values
read from an io.Reader, such as answers typed by a user.
*/
package inputexample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
ValueRequester represents a way to ask
for attribute values and reject the given values.
*/
type ValueRequester interface {
	RequestValueFor(*feature.Attribute) error
	RejectValueFor(*feature.Attribute, string) error
}

/*
Read takes an io.Reader, a schema, a ValueRequester and a map of preset
values by attribute name and returns an example with a value for every
attribute of the schema.

Preset values are used as they are. For every other attribute, in schema
order, the value is requested with the ValueRequester and lines are read
from the reader until one holding a valid value for the attribute is found.
Leading and trailing spaces are ignored. Non accepted values are rejected
with the ValueRequester's RejectValueFor method.

An error is returned if a preset value is not valid, if a preset refers to
an attribute not in the schema, or if the reader is exhausted before every
value is obtained.
*/
func Read(r io.Reader, schema *feature.Schema, requester ValueRequester, preset map[string]string) (*dataset.Example, error) {
	for name, v := range preset {
		a, ok := schema.Attribute(name)
		if !ok {
			return nil, fmt.Errorf("preset value for unknown attribute %s", name)
		}
		if _, err := a.Valid(v); err != nil {
			return nil, err
		}
	}
	scanner := bufio.NewScanner(r)
	attributes := schema.Attributes()
	values := make([]string, len(attributes))
	for i, a := range attributes {
		if v, ok := preset[a.Name()]; ok {
			values[i] = v
			continue
		}
		err := requester.RequestValueFor(a)
		if err != nil {
			return nil, err
		}
		values[i], err = readValue(scanner, a, requester)
		if err != nil {
			return nil, fmt.Errorf("reading value for %s: %w", a.Name(), err)
		}
	}
	return dataset.NewExample("input", "", values...), nil
}

func readValue(scanner *bufio.Scanner, a *feature.Attribute, requester ValueRequester) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if ok, _ := a.Valid(line); ok {
			return line, nil
		}
		err := requester.RejectValueFor(a, line)
		if err != nil {
			return "", err
		}
	}
	err := scanner.Err()
	if err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

/*
WriterValueRequester is a ValueRequester that writes its requests and
rejections as text onto an io.Writer.
*/
type WriterValueRequester struct {
	W io.Writer
}

// RequestValueFor asks for the value of the attribute listing its values.
func (wvr *WriterValueRequester) RequestValueFor(a *feature.Attribute) error {
	_, err := fmt.Fprintf(wvr.W, "Please provide the example's %s:\n(valid values are %v)\n", a.Name(), a.Values())
	return err
}

// RejectValueFor tells the value is not valid for the attribute.
func (wvr *WriterValueRequester) RejectValueFor(a *feature.Attribute, value string) error {
	_, err := fmt.Fprintf(wvr.W, "%q is not a valid value for the example's %s. Please provide one of %v.\n", value, a.Name(), a.Values())
	return err
}
