/*
Package render provides methods to present trees to people.
*/
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/id3/tree"
)

/*
Fprint takes an io.Writer and the root of a tree and writes an indented
representation of the tree onto the writer, one node per line. Each branch
of a decision node hangs from it with its value preceding the node it leads
to, as in

	{ Weather? }
	|
	|__Sunny: { Play }
	|__Rainy: { NoPlay }
*/
func Fprint(w io.Writer, root tree.Node) error {
	if root == nil {
		return fmt.Errorf("rendering tree: nil tree")
	}
	_, err := io.WriteString(w, strings.Join(lines(root), "\n")+"\n")
	return err
}

// Sprint returns the representation of the tree Fprint would write.
func Sprint(root tree.Node) string {
	if root == nil {
		return ""
	}
	return strings.Join(lines(root), "\n") + "\n"
}

func lines(n tree.Node) []string {
	d, ok := n.(*tree.Decision)
	if !ok {
		return []string{fmt.Sprintf("%v", n)}
	}
	result := []string{d.String(), "|"}
	for i, b := range d.Branches {
		indent := "|  "
		if i == len(d.Branches)-1 {
			indent = "   "
		}
		for j, line := range lines(b.Node) {
			if j == 0 {
				result = append(result, fmt.Sprintf("|__%s: %s", b.Value, line))
			} else {
				result = append(result, indent+line)
			}
		}
	}
	return result
}

/*
Stats holds the shape of a tree: the number of edges from the root to its
deepest leaf and the number of nodes of each kind.
*/
type Stats struct {
	Depth     int
	Leaves    int
	Decisions int
}

func (s Stats) String() string {
	return fmt.Sprintf("depth %d, %d decision nodes, %d leaves", s.Depth, s.Decisions, s.Leaves)
}

// Summarize takes the root of a tree and returns its Stats.
func Summarize(root tree.Node) Stats {
	var s Stats
	tree.Traverse(root, false, func(n tree.Node, depth int) error {
		switch n.(type) {
		case *tree.Leaf:
			s.Leaves++
			if depth > s.Depth {
				s.Depth = depth
			}
		case *tree.Decision:
			s.Decisions++
		}
		return nil
	})
	return s
}
