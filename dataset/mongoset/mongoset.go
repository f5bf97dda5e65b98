/*
Package mongoset provides a store of example sets that uses a MongoDB
database as backend.

Examples are kept on the examples collection of the session's default
database as documents with a seq number giving their order, their name,
their label and a values subdocument mapping attribute names to values.
*/
package mongoset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	examplesCollectionName = "examples"
)

type document struct {
	Seq    int               `bson:"seq"`
	Name   string            `bson:"name"`
	Label  string            `bson:"label"`
	Values map[string]string `bson:"values"`
}

/*
Set is a set of examples described by a schema kept on a MongoDB
collection.
*/
type Set struct {
	session *mgo.Session
	schema  *feature.Schema
	labels  []string
}

/*
Open takes a MongoDB database session, a schema and the class labels and
returns a Set that works on the default database for that session or an
error if an attribute name cannot be used as a document field or the
indexes cannot be ensured.
*/
func Open(ctx context.Context, session *mgo.Session, schema *feature.Schema, labels []string) (*Set, error) {
	err := validateAttributeNames(schema)
	if err != nil {
		return nil, err
	}
	ms := &Set{session, schema, labels}
	err = ms.ensureIndexes()
	if err != nil {
		return nil, err
	}
	return ms, nil
}

/*
Write takes a context and a slice of examples and appends them to the
collection after the examples already on it. It returns the number of
examples written.
*/
func (ms *Set) Write(ctx context.Context, examples []*dataset.Example) (int, error) {
	if len(examples) == 0 {
		return 0, nil
	}
	if _, err := dataset.New(ms.schema, ms.labels, examples); err != nil {
		return 0, fmt.Errorf("writing examples: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	next, err := ms.nextSeq()
	if err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(examples))
	for i, e := range examples {
		docs = append(docs, toDocument(ms.schema, next+i, e))
	}
	err = ms.examplesCollection().Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("inserting examples: %v", err)
	}
	return len(examples), nil
}

/*
Read takes a context and returns a dataset.Set with the examples on the
collection in seq order or an error.
*/
func (ms *Set) Read(ctx context.Context) (*dataset.Set, error) {
	var examples []*dataset.Example
	var doc document
	iter := ms.examplesCollection().Find(nil).Sort("seq").Iter()
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		e, err := fromDocument(ms.schema, &doc)
		if err != nil {
			iter.Close()
			return nil, err
		}
		examples = append(examples, e)
		doc = document{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading examples: %v", err)
	}
	return dataset.New(ms.schema, ms.labels, examples)
}

// Count returns the number of examples on the collection.
func (ms *Set) Count(context.Context) (int, error) {
	return ms.examplesCollection().Count()
}

/*
CountLabels returns the number of examples for each label on the
collection, ordered by the first appearance of the label.
*/
func (ms *Set) CountLabels(context.Context) ([]dataset.LabelCount, error) {
	iter := ms.examplesCollection().Pipe([]bson.M{
		{"$group": bson.M{"_id": "$label", "count": bson.M{"$sum": 1}, "first": bson.M{"$min": "$seq"}}},
		{"$sort": bson.M{"first": 1}},
	}).Iter()
	var doc struct {
		Label string `bson:"_id"`
		Count int    `bson:"count"`
	}
	var result []dataset.LabelCount
	for iter.Next(&doc) {
		result = append(result, dataset.LabelCount{Label: doc.Label, Count: doc.Count})
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("counting labels: %v", err)
	}
	return result, nil
}

func (ms *Set) nextSeq() (int, error) {
	var last document
	err := ms.examplesCollection().Find(nil).Sort("-seq").One(&last)
	if err == mgo.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("finding last example: %v", err)
	}
	return last.Seq + 1, nil
}

func (ms *Set) ensureIndexes() error {
	index := mgo.Index{
		Key:        []string{"seq"},
		Unique:     true,
		Background: true,
	}
	err := ms.examplesCollection().EnsureIndex(index)
	if err != nil {
		return fmt.Errorf("ensuring examples index: %v", err)
	}
	return nil
}

func (ms *Set) examplesCollection() *mgo.Collection {
	return ms.session.DB("").C(examplesCollectionName)
}

func validateAttributeNames(schema *feature.Schema) error {
	for _, name := range schema.Names() {
		if name == "" {
			return fmt.Errorf("invalid attribute name %q: empty", name)
		}
		if strings.HasPrefix(name, "$") || strings.Contains(name, ".") {
			return fmt.Errorf("invalid attribute name %q: contains reserved characters %q or %q", name, ".", "$")
		}
	}
	return nil
}

func toDocument(schema *feature.Schema, seq int, e *dataset.Example) *document {
	doc := &document{Seq: seq, Name: e.Name(), Label: e.Label(), Values: make(map[string]string, e.Len())}
	for i, name := range schema.Names() {
		v, _ := e.Value(i)
		doc.Values[name] = v
	}
	return doc
}

func fromDocument(schema *feature.Schema, doc *document) (*dataset.Example, error) {
	names := schema.Names()
	values := make([]string, len(names))
	for i, name := range names {
		v, ok := doc.Values[name]
		if !ok {
			return nil, fmt.Errorf("example %d (%s) has no value for attribute %s", doc.Seq, doc.Name, name)
		}
		values[i] = v
	}
	return dataset.NewExample(doc.Name, doc.Label, values...), nil
}
