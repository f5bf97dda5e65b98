package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
)

func TestParseURL(t *testing.T) {
	testCases := []struct {
		url      string
		addr     string
		password string
		db       int
		valid    bool
	}{
		{"redis://localhost:6380/2", "localhost:6380", "", 2, true},
		{"redis://localhost", "localhost:6379", "", 0, true},
		{"redis://:secret@cache:6379/", "cache:6379", "secret", 0, true},
		{"redis://[::1]/1", "[::1]:6379", "", 1, true},
		{"redis://[::1]:6380", "[::1]:6380", "", 0, true},
		{"http://localhost:6379", "", "", 0, false},
		{"redis://localhost:6379/x", "", "", 0, false},
		{"redis:///0", "", "", 0, false},
	}
	for _, tc := range testCases {
		opts, err := parseURL(tc.url)
		if !tc.valid {
			if err == nil {
				t.Errorf("expected error parsing %s", tc.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("unexpected error parsing %s: %v", tc.url, err)
			continue
		}
		if opts.Addr != tc.addr || opts.Password != tc.password || opts.DB != tc.db {
			t.Errorf("parsing %s: expected %s %q %d, got %s %q %d", tc.url, tc.addr, tc.password, tc.db, opts.Addr, opts.Password, opts.DB)
		}
	}
}

func TestStore(t *testing.T) {
	redisURL := os.Getenv("ID3_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("ID3_TEST_REDIS_URL not set")
	}
	rc, err := NewClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()
	ctx := context.Background()
	s := New(rc, "id3test-"+uuid.New().String())
	m := &json.Model{
		Schema: feature.MustSchema(feature.NewAttribute("Weather", "Sunny", "Rainy")),
		Labels: []string{"Play", "NoPlay"},
		Root: &tree.Decision{Attribute: "Weather", Branches: []*tree.Branch{
			{Value: "Sunny", Node: &tree.Leaf{Label: "Play"}},
			{Value: "Rainy", Node: &tree.Leaf{Label: "NoPlay"}},
		}},
	}
	id, err := s.Save(ctx, m)
	if err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}
	loaded, err := s.Load(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if d, ok := loaded.Root.(*tree.Decision); !ok || len(d.Branches) != 2 {
		t.Errorf("expected loaded tree to split on Weather, got %v", loaded.Root)
	}
	ids, err := s.List(ctx)
	if err != nil || len(ids) != 1 || ids[0] != id {
		t.Errorf("expected [%s], got %v %v", id, ids, err)
	}
	if err = s.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error deleting: %v", err)
	}
	if _, err = s.Load(ctx, id); err == nil {
		t.Errorf("expected error loading a deleted tree")
	}
}
