package pgadapter

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/sqlset"
	"github.com/pbanos/id3/feature"
)

func TestPlaceholder(t *testing.T) {
	if Placeholder(1) != "$1" || Placeholder(12) != "$12" {
		t.Errorf("unexpected placeholders %s %s", Placeholder(1), Placeholder(12))
	}
}

func TestStore(t *testing.T) {
	url := os.Getenv("ID3_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("ID3_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	adapter, err := New(url)
	if err != nil {
		t.Fatalf("unexpected error connecting: %v", err)
	}
	db := adapter.(*sqlset.DBAdapter).DB
	if _, err = db.Exec("DROP TABLE IF EXISTS examples"); err != nil {
		t.Fatalf("unexpected error dropping table: %v", err)
	}
	schema := feature.MustSchema(feature.NewAttribute("Weather", "Sunny", "Rainy"))
	s, err := sqlset.Open(adapter, schema, nil)
	if err != nil {
		t.Fatalf("unexpected error opening set: %v", err)
	}
	defer s.Close()
	if err = s.CreateTable(ctx); err != nil {
		t.Fatalf("unexpected error creating table: %v", err)
	}
	examples := []*dataset.Example{
		dataset.NewExample("e1", "Play", "Sunny"),
		dataset.NewExample("e2", "NoPlay", "Rainy"),
	}
	if _, err = s.Write(ctx, examples); err != nil {
		t.Fatalf("unexpected error writing: %v", err)
	}
	set, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("unexpected error reading: %v", err)
	}
	if !reflect.DeepEqual(set.Examples, examples) {
		t.Errorf("expected %v, got %v", examples, set.Examples)
	}
}
