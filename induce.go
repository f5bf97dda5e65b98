/*
Package id3 induces decision trees from categorical examples with the ID3
algorithm and evaluates them against sets of examples.

Induce builds a tree on the calling goroutine. A Pot grows the same tree
developing sibling subtrees concurrently.
*/
package id3

import (
	"context"
	"errors"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

/*
ErrInvalidInput is matched by the errors returned when a tree cannot be
induced because of its input: an empty example set, an attribute that is
not in the schema or an example that does not conform to the schema.
*/
var ErrInvalidInput = errors.New("invalid input")

/*
Induce takes a slice of examples, the set of attributes that can be used to
split them and a schema and returns the root of a decision tree for the
examples or an error.

When all examples share a label the result is a leaf with it. When no
attributes remain the result is a leaf with the most frequent label, the
one appearing first on the examples in case of a tie. Otherwise the examples
are split on the attribute with the greatest information gain, the first one
in the set in case of a tie, and a subtree is induced for each value present
on the examples with the rest of the attributes.

Induce does not modify its arguments. An error wrapping ErrInvalidInput is
returned if examples is empty, if remaining has a name not in the schema or
if an example does not conform to the schema.
*/
func Induce(examples []*dataset.Example, remaining feature.AttributeSet, schema *feature.Schema) (tree.Node, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidInput)
	}
	d := &developer{schema: schema}
	return d.develop(context.Background(), examples, remaining, 0)
}

/*
developer holds what is shared by every node of a tree being induced.
With a nil semaphore all nodes are developed on the calling goroutine.
*/
type developer struct {
	schema *feature.Schema
	sem    *semaphore.Weighted
	logger Logger
}

func (d *developer) develop(ctx context.Context, examples []*dataset.Example, remaining feature.AttributeSet, depth int) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: cannot induce a tree from an empty example set", ErrInvalidInput)
	}
	for _, name := range remaining.Names() {
		if _, ok := d.schema.Attribute(name); !ok {
			return nil, fmt.Errorf("%w: attribute %q is not in the schema", ErrInvalidInput, name)
		}
	}
	labels := dataset.CountLabels(examples)
	if len(labels) == 1 {
		return &tree.Leaf{Label: labels[0].Label}, nil
	}
	if remaining.Empty() {
		return &tree.Leaf{Label: mostFrequent(labels)}, nil
	}
	p, err := d.choose(examples, remaining)
	if err != nil {
		return nil, err
	}
	d.logf("depth %d: splitting %d examples on %s (information gain %f)", depth, len(examples), p.Attribute.Name(), p.InformationGain())
	node := tree.NewDecision(p.Attribute.Name(), p.Position)
	node.Branches = make([]*tree.Branch, len(p.Criteria))
	err = d.developBranches(ctx, node, p, remaining.Without(p.Attribute.Name()), depth)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// gainTolerance bounds the rounding error between gains computed by
// summing subset entropies in different orders.
const gainTolerance = 1e-12

/*
choose returns the partition of the examples with the greatest information
gain among the remaining attributes. A later attribute only replaces the
current choice if its gain is greater by more than gainTolerance, so
splits whose gains differ only by rounding keep the earlier attribute.
*/
func (d *developer) choose(examples []*dataset.Example, remaining feature.AttributeSet) (*Partition, error) {
	var selected *Partition
	for _, name := range remaining.Names() {
		p, err := NewPartition(examples, name, d.schema)
		if err != nil {
			return nil, err
		}
		if selected == nil || p.InformationGain() > selected.InformationGain()+gainTolerance {
			selected = p
		}
	}
	return selected, nil
}

func (d *developer) developBranches(ctx context.Context, node *tree.Decision, p *Partition, remaining feature.AttributeSet, depth int) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range p.Criteria {
		i, value, subset := i, c.Value(), p.Subsets[i]
		branch := func() error {
			child, err := d.develop(gctx, subset, remaining, depth+1)
			if err != nil {
				return err
			}
			node.Branches[i] = &tree.Branch{Value: value, Node: child}
			return nil
		}
		if d.sem != nil && d.sem.TryAcquire(1) {
			g.Go(func() error {
				defer d.sem.Release(1)
				return branch()
			})
			continue
		}
		if err := branch(); err != nil {
			g.Wait()
			return err
		}
	}
	return g.Wait()
}

func (d *developer) logf(format string, a ...interface{}) {
	if d.logger != nil {
		d.logger.Logf(format, a...)
	}
}

func mostFrequent(labels []dataset.LabelCount) string {
	var best dataset.LabelCount
	for _, lc := range labels {
		if lc.Count > best.Count {
			best = lc
		}
	}
	return best.Label
}
