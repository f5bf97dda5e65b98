/*
Package yaml provides methods to parse a feature.Schema description,
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadSchema takes a slice of bytes with a schema description in YML and
returns the schema parsed from it and the declared class labels, or an error.
The YML is expected to be an object containing an attributes property. The value
for this should be an object with a property for each attribute with its name and
a list of its valid values. Attributes keep the order in which they appear in
the document. An optional labels property lists the class labels.
*/
func ReadSchema(md []byte) (*feature.Schema, []string, error) {
	metadata := struct {
		Labels     []interface{} `yaml:"labels"`
		Attributes yaml.MapSlice `yaml:"attributes"`
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing yml schema: %v", err)
	}
	if len(metadata.Attributes) == 0 {
		return nil, nil, fmt.Errorf("metadata file has no attribute information")
	}
	attributes := make([]*feature.Attribute, 0, len(metadata.Attributes))
	for _, item := range metadata.Attributes {
		name := fmt.Sprintf("%v", item.Key)
		values, ok := item.Value.([]interface{})
		if !ok {
			return nil, nil, fmt.Errorf("invalid declaration of type %T for attribute %s", item.Value, name)
		}
		if len(values) == 0 {
			return nil, nil, fmt.Errorf("attribute %s declares no values", name)
		}
		attributes = append(attributes, feature.NewAttribute(name, stringify(values)...))
	}
	s, err := feature.NewSchema(attributes...)
	if err != nil {
		return nil, nil, err
	}
	return s, stringify(metadata.Labels), nil
}

/*
ReadSchemaFromFile takes a filepath string, reads its contents and uses
ReadSchema to parse it and return the parsed schema and labels or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadSchemaFromFile(filepath string) (*feature.Schema, []string, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading schema yml file %s: %v", filepath, err)
	}
	s, labels, err := ReadSchema(md)
	if err != nil {
		err = fmt.Errorf("parsing schema yml file %s: %w", filepath, err)
	}
	return s, labels, err
}

func stringify(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, fmt.Sprintf("%v", v))
	}
	return result
}
