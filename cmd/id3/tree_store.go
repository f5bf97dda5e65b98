package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pbanos/id3/tree/json"
	"github.com/pbanos/id3/tree/redisstore"
)

const redisKeyPrefix = "id3"

/*
splitRedisLocation takes a tree location in the form
redis://host:port/db#id and returns the URL of the redis DB and the tree id.
It returns false if the location is not a redis one.
*/
func splitRedisLocation(location string) (string, string, bool) {
	if !strings.HasPrefix(location, "redis://") {
		return "", "", false
	}
	u, err := url.Parse(location)
	if err != nil {
		return location, "", true
	}
	id := u.Fragment
	u.Fragment = ""
	return u.String(), id, true
}

/*
loadModel reads the model at the given location: a redis tree location
or the path to a JSON file.
*/
func (rcc *rootCmdConfig) loadModel(ctx context.Context, location string) (*json.Model, error) {
	if redisURL, id, ok := splitRedisLocation(location); ok {
		if id == "" {
			return nil, fmt.Errorf("loading tree from %s: no tree id after '#'", location)
		}
		rcc.Logf("Loading tree %s from redis at %s...", id, redisURL)
		rc, err := redisstore.NewClientFromURL(redisURL)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return redisstore.New(rc, redisKeyPrefix).Load(ctx, id)
	}
	rcc.Logf("Reading tree from %s...", location)
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", location, err)
	}
	defer f.Close()
	m, err := json.ReadTree(f)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %w", location, err)
	}
	return m, err
}

/*
saveModel writes the model onto the given location and returns the location
it can be loaded from. For redis locations the tree gets a new id, any id in
the given location is ignored. An empty location writes the JSON onto STDOUT.
*/
func (rcc *rootCmdConfig) saveModel(ctx context.Context, location string, m *json.Model) (string, error) {
	if redisURL, _, ok := splitRedisLocation(location); ok {
		rc, err := redisstore.NewClientFromURL(redisURL)
		if err != nil {
			return "", err
		}
		defer rc.Close()
		id, err := redisstore.New(rc, redisKeyPrefix).Save(ctx, m)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s#%s", redisURL, id), nil
	}
	f := os.Stdout
	if location != "" {
		var err error
		f, err = os.Create(location)
		if err != nil {
			return "", fmt.Errorf("creating %s: %v", location, err)
		}
		defer f.Close()
	}
	return location, json.WriteTree(f, m)
}
