package main

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongoset"
	"github.com/pbanos/id3/dataset/sqlset"
	"github.com/pbanos/id3/dataset/sqlset/pgadapter"
	"github.com/pbanos/id3/dataset/sqlset/sqlite3adapter"
	"github.com/pbanos/id3/dataset/textfile"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/feature/yaml"
	mgo "gopkg.in/mgo.v2"
)

type setKind int

const (
	textSet setKind = iota
	csvSet
	sqlite3Set
	postgresSet
	mongoSet
)

func (k setKind) String() string {
	switch k {
	case csvSet:
		return "CSV"
	case sqlite3Set:
		return "SQLite3"
	case postgresSet:
		return "PostgreSQL"
	case mongoSet:
		return "MongoDB"
	}
	return "text"
}

// kindOf tells how the set at a location is stored.
func kindOf(location string) setKind {
	switch {
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		return postgresSet
	case strings.HasPrefix(location, "mongodb://"):
		return mongoSet
	case strings.HasSuffix(location, ".db"):
		return sqlite3Set
	case strings.HasSuffix(location, ".csv"):
		return csvSet
	}
	return textSet
}

/*
schema returns the schema and labels from the metadata file, or nil if no
metadata file was given.
*/
func (rcc *rootCmdConfig) schema(metadataInput string) (*feature.Schema, []string, error) {
	if metadataInput == "" {
		return nil, nil, nil
	}
	rcc.Logf("Reading schema from metadata at %s...", metadataInput)
	return yaml.ReadSchemaFromFile(metadataInput)
}

/*
readSet reads the set at the given location. Sets in text format carry their
own schema, which must match the given one if any. Every other kind of set
needs a schema.
*/
func (rcc *rootCmdConfig) readSet(ctx context.Context, location string, schema *feature.Schema, labels []string) (*dataset.Set, error) {
	kind := kindOf(location)
	if kind == textSet {
		if location == "" {
			rcc.Logf("Reading set from STDIN...")
		} else {
			rcc.Logf("Reading set from %s...", location)
		}
		s, err := textfile.ReadFile(location)
		if err != nil {
			return nil, err
		}
		if schema != nil {
			if err = sameSchema(schema, s.Schema); err != nil {
				return nil, fmt.Errorf("reading set from %s: %v", location, err)
			}
		}
		return s, nil
	}
	if schema == nil {
		return nil, fmt.Errorf("reading %s set from %s: required metadata flag was not set", kind, location)
	}
	rcc.Logf("Reading %s set from %s...", kind, location)
	switch kind {
	case csvSet:
		return csv.ReadSetFromFilePath(location, schema, labels)
	case mongoSet:
		session, err := mgo.Dial(location)
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %v", location, err)
		}
		defer session.Close()
		ms, err := mongoset.Open(ctx, session, schema, labels)
		if err != nil {
			return nil, err
		}
		return ms.Read(ctx)
	}
	store, err := rcc.sqlStore(location, kind, schema, labels)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Read(ctx)
}

/*
writeSet writes the set onto the given location, STDOUT in text format if
the location is empty. Database backed sets get their examples appended.
*/
func (rcc *rootCmdConfig) writeSet(ctx context.Context, location string, s *dataset.Set) error {
	kind := kindOf(location)
	rcc.Logf("Writing %d examples to %s set at %s...", s.Count(), kind, location)
	switch kind {
	case textSet, csvSet:
		f := os.Stdout
		if location != "" {
			var err error
			f, err = os.Create(location)
			if err != nil {
				return fmt.Errorf("creating %s: %v", location, err)
			}
			defer f.Close()
		}
		if kind == csvSet {
			return csv.WriteCSVSet(ctx, f, s)
		}
		return textfile.Write(f, s)
	case mongoSet:
		session, err := mgo.Dial(location)
		if err != nil {
			return fmt.Errorf("connecting to %s: %v", location, err)
		}
		defer session.Close()
		ms, err := mongoset.Open(ctx, session, s.Schema, s.Labels)
		if err != nil {
			return err
		}
		_, err = ms.Write(ctx, s.Examples)
		return err
	}
	store, err := rcc.sqlStore(location, kind, s.Schema, s.Labels)
	if err != nil {
		return err
	}
	defer store.Close()
	err = store.CreateTable(ctx)
	if err != nil {
		return err
	}
	_, err = store.Write(ctx, s.Examples)
	return err
}

func (rcc *rootCmdConfig) sqlStore(location string, kind setKind, schema *feature.Schema, labels []string) (*sqlset.Store, error) {
	var adapter sqlset.Adapter
	var err error
	if kind == postgresSet {
		rcc.Logf("Creating PostgreSQL adapter for url %s...", location)
		adapter, err = pgadapter.New(location)
	} else {
		rcc.Logf("Creating SQLite3 adapter for file %s...", location)
		adapter, err = sqlite3adapter.New(location)
	}
	if err != nil {
		return nil, err
	}
	store, err := sqlset.Open(adapter, schema, labels)
	if err != nil {
		adapter.Close()
		return nil, err
	}
	return store, nil
}

/*
sameSchema returns an error unless both schemas have the same attributes in
the same order with the same values.
*/
func sameSchema(expected, got *feature.Schema) error {
	if !reflect.DeepEqual(expected.Names(), got.Names()) {
		return fmt.Errorf("expected attributes %v, got %v", expected.Names(), got.Names())
	}
	for _, a := range expected.Attributes() {
		b, ok := got.Attribute(a.Name())
		if !ok {
			return fmt.Errorf("expected attribute %s", a.Name())
		}
		if !reflect.DeepEqual(a.Values(), b.Values()) {
			return fmt.Errorf("expected values %v for attribute %s, got %v", a.Values(), a.Name(), b.Values())
		}
	}
	return nil
}
