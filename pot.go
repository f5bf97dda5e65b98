package id3

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"golang.org/x/sync/semaphore"
)

/*
DefaultMaxConcurrency defines the maximum number of tree nodes that will be
developed simultaneously by a Pot unless told otherwise.
*/
const DefaultMaxConcurrency = 10

/*
Logger is the interface wrapping the Logf method, used by a Pot to report
the splits it makes.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Pot represents the context in which a tree is grown: the schema of the
examples, how many nodes can be developed at the same time and where to
log the progress.
*/
type Pot struct {
	schema         *feature.Schema
	maxConcurrency int
	logger         Logger
}

// Option configures a Pot.
type Option func(*Pot)

/*
WithMaxConcurrency takes the maximum number of nodes to develop at the same
time. Values below 1 are replaced by DefaultMaxConcurrency, and 1 grows the
tree on the calling goroutine.
*/
func WithMaxConcurrency(n int) Option {
	return func(p *Pot) {
		if n < 1 {
			n = DefaultMaxConcurrency
		}
		p.maxConcurrency = n
	}
}

// WithLogger sets a logger to report the splits made while growing.
func WithLogger(l Logger) Option {
	return func(p *Pot) {
		p.logger = l
	}
}

/*
NewPot takes a schema and options and returns a Pot to grow trees for
examples described by the schema.
*/
func NewPot(schema *feature.Schema, opts ...Option) *Pot {
	p := &Pot{schema: schema, maxConcurrency: DefaultMaxConcurrency}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

/*
Grow takes a context and a slice of examples and returns the root of the tree
induced from them with every attribute of the schema. The result is the
same tree Induce returns for the examples; sibling subtrees are developed on
separate goroutines while fewer than the maximum concurrency are busy.

Grow returns the context error if it is cancelled before the tree is complete.
*/
func (p *Pot) Grow(ctx context.Context, examples []*dataset.Example) (tree.Node, error) {
	if p.schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidInput)
	}
	return p.GrowWith(ctx, examples, p.schema.AttributeSet())
}

/*
GrowWith is like Grow but only the attributes in the given set are used to
split the examples.
*/
func (p *Pot) GrowWith(ctx context.Context, examples []*dataset.Example, attributes feature.AttributeSet) (tree.Node, error) {
	if p.schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidInput)
	}
	d := &developer{schema: p.schema, logger: p.logger}
	if p.maxConcurrency > 1 {
		d.sem = semaphore.NewWeighted(int64(p.maxConcurrency - 1))
	}
	p.logf("Growing tree from %d examples with attributes %v", len(examples), attributes)
	root, err := d.develop(ctx, examples, attributes, 0)
	if err != nil {
		return nil, fmt.Errorf("growing tree: %w", err)
	}
	return root, nil
}

func (p *Pot) logf(format string, a ...interface{}) {
	if p.logger != nil {
		p.logger.Logf(format, a...)
	}
}
