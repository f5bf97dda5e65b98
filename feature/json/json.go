/*
Package json provides methods to encode a feature.Schema as JSON and decode
it back, preserving the order of attributes and values.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/id3/feature"
)

/*
Attribute is the JSON representation of a feature.Attribute: an object
with a "name" and the ordered list of its "values".
*/
type Attribute struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

/*
FromSchema takes a schema and returns its attributes as a slice of
Attribute ready to be marshalled.
*/
func FromSchema(s *feature.Schema) []*Attribute {
	attributes := s.Attributes()
	result := make([]*Attribute, 0, len(attributes))
	for _, a := range attributes {
		result = append(result, &Attribute{Name: a.Name(), Values: a.Values()})
	}
	return result
}

/*
ToSchema takes a slice of Attribute and returns the feature.Schema they
describe or an error if it cannot be built.
*/
func ToSchema(jas []*Attribute) (*feature.Schema, error) {
	attributes := make([]*feature.Attribute, 0, len(jas))
	for i, ja := range jas {
		if ja == nil || ja.Name == "" {
			return nil, fmt.Errorf("attribute %d has no name", i)
		}
		if len(ja.Values) == 0 {
			return nil, fmt.Errorf("attribute %s has no values", ja.Name)
		}
		attributes = append(attributes, feature.NewAttribute(ja.Name, ja.Values...))
	}
	return feature.NewSchema(attributes...)
}

// EncodeSchema takes a schema and returns it serialized as a JSON array.
func EncodeSchema(s *feature.Schema) ([]byte, error) {
	return json.Marshal(FromSchema(s))
}

/*
DecodeSchema takes a slice of bytes with a JSON array of attributes as
generated by EncodeSchema and returns the schema or an error.
*/
func DecodeSchema(data []byte) (*feature.Schema, error) {
	var jas []*Attribute
	err := json.Unmarshal(data, &jas)
	if err != nil {
		return nil, fmt.Errorf("decoding schema: %v", err)
	}
	s, err := ToSchema(jas)
	if err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	return s, nil
}
