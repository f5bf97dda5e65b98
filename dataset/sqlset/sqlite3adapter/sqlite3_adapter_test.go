package sqlite3adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/sqlset"
	"github.com/pbanos/id3/feature"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	schema := feature.MustSchema(
		feature.NewAttribute("Weather", "Sunny", "Rainy"),
		feature.NewAttribute("Humidity", "High", "Low"),
	)
	adapter, err := New(filepath.Join(t.TempDir(), "examples.db"))
	if err != nil {
		t.Fatalf("unexpected error opening database: %v", err)
	}
	s, err := sqlset.Open(adapter, schema, []string{"Play", "NoPlay"})
	if err != nil {
		t.Fatalf("unexpected error opening set: %v", err)
	}
	defer s.Close()
	if err = s.CreateTable(ctx); err != nil {
		t.Fatalf("unexpected error creating table: %v", err)
	}
	// More examples than fit on a single insert statement.
	var examples []*dataset.Example
	for i := 0; i < 2*MaxExampleInsertionsPerStatement+3; i++ {
		label, weather := "Play", "Sunny"
		if i%3 == 0 {
			label, weather = "NoPlay", "Rainy"
		}
		examples = append(examples, dataset.NewExample(fmt.Sprintf("e%d", i), label, weather, "Low"))
	}
	n, err := s.Write(ctx, examples)
	if err != nil || n != len(examples) {
		t.Fatalf("expected %d examples written, got %d %v", len(examples), n, err)
	}
	count, err := s.Count(ctx)
	if err != nil || count != len(examples) {
		t.Errorf("expected count %d, got %d %v", len(examples), count, err)
	}
	set, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("unexpected error reading: %v", err)
	}
	if !reflect.DeepEqual(set.Examples, examples) {
		t.Errorf("expected examples to be read in written order")
	}
}

func TestStoreRejectsInvalidExamples(t *testing.T) {
	ctx := context.Background()
	schema := feature.MustSchema(feature.NewAttribute("Weather", "Sunny", "Rainy"))
	adapter, err := New(filepath.Join(t.TempDir(), "examples.db"))
	if err != nil {
		t.Fatalf("unexpected error opening database: %v", err)
	}
	s, err := sqlset.Open(adapter, schema, nil)
	if err != nil {
		t.Fatalf("unexpected error opening set: %v", err)
	}
	defer s.Close()
	if err = s.CreateTable(ctx); err != nil {
		t.Fatalf("unexpected error creating table: %v", err)
	}
	_, err = s.Write(ctx, []*dataset.Example{dataset.NewExample("e1", "Play", "Cloudy")})
	if err == nil {
		t.Errorf("expected error writing an invalid example")
	}
	if count, _ := s.Count(ctx); count != 0 {
		t.Errorf("expected nothing written, got %d examples", count)
	}
}

func TestOpenRejectsReservedAttribute(t *testing.T) {
	adapter, err := New(filepath.Join(t.TempDir(), "examples.db"))
	if err != nil {
		t.Fatalf("unexpected error opening database: %v", err)
	}
	defer adapter.Close()
	schema := feature.MustSchema(feature.NewAttribute("label", "a"))
	if _, err = sqlset.Open(adapter, schema, nil); err == nil {
		t.Errorf("expected error opening a set with an attribute named label")
	}
}
