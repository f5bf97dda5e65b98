/*
Package redisstore provides a store for trees backed by a redis DB. Trees
are kept as the JSON documents produced by the tree/json package.
*/
package redisstore

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pbanos/id3/tree/json"
	"gopkg.in/redis.v5"
)

/*
Store saves and loads tree models on a redis DB under keys with a given
prefix. The ids of the saved models are also kept on a set so they can be
listed.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store on the given redis client using the given key prefix.
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Save takes a context and a model and stores the model with a new random id,
which is returned.
*/
func (s *Store) Save(ctx context.Context, m *json.Model) (string, error) {
	buf := &bytes.Buffer{}
	err := json.WriteTree(buf, m)
	if err != nil {
		return "", fmt.Errorf("saving tree: %w", err)
	}
	var ok bool
	var id string
	for !ok {
		if err = ctx.Err(); err != nil {
			return "", err
		}
		id = uuid.New().String()
		ok, err = s.rc.SetNX(s.keyFor(id), buf.String(), 0).Result()
		if err != nil {
			return "", fmt.Errorf("saving tree in redis: %v", err)
		}
	}
	err = s.rc.SAdd(s.indexKey(), id).Err()
	if err != nil {
		return "", fmt.Errorf("indexing tree %q in redis: %v", id, err)
	}
	return id, nil
}

/*
Load takes a context and a tree id and returns the model stored with it, or
an error if there is none or it cannot be decoded.
*/
func (s *Store) Load(ctx context.Context, id string) (*json.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.rc.Get(s.keyFor(id)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("retrieving tree %q: not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", id, err)
	}
	m, err := json.ReadTree(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %w", id, err)
	}
	return m, nil
}

// Delete removes the tree with the given id from the store.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := s.keyFor(id)
	_, err := s.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", redisID, err)
	}
	err = s.rc.SRem(s.indexKey(), id).Err()
	if err != nil {
		return fmt.Errorf("unindexing tree %q from redis: %v", id, err)
	}
	return nil
}

// List returns the ids of the trees in the store.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids, err := s.rc.SMembers(s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("listing trees in redis: %v", err)
	}
	return ids, nil
}

func (s *Store) keyFor(id string) string {
	return fmt.Sprintf("%s:tree:%s", s.prefix, id)
}

func (s *Store) indexKey() string {
	return fmt.Sprintf("%s:trees", s.prefix)
}

/*
NewClientFromURL takes a URL in the form redis://[:password@]host[:port][/db]
and returns a redis client for it. The port defaults to 6379 and the db
to 0.
*/
func NewClientFromURL(rawURL string) (*redis.Client, error) {
	opts, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func parseURL(rawURL string) (*redis.Options, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %v", err)
	}
	if u.Scheme != "redis" {
		return nil, fmt.Errorf("parsing redis URL: unsupported scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("parsing redis URL: no host")
	}
	opts := &redis.Options{Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = net.JoinHostPort(u.Hostname(), "6379")
	}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		opts.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("parsing redis URL: invalid db %q", db)
		}
	}
	return opts, nil
}
