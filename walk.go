package planfind

// WalkFunc visits one node of a tree together with its access path.
// A non-nil error aborts the walk and is returned by Walk unchanged.
type WalkFunc func(path Path, n *Node) error

// Walk visits every node of the tree depth-first in document order,
// starting with n itself at the empty path. Object entries are visited
// in entry order, array elements in index order. The path handed to fn
// is freshly allocated per node and may be retained.
func (n *Node) Walk(fn WalkFunc) error {
	return walkNode(n, nil, fn)
}

func walkNode(n *Node, p Path, fn WalkFunc) error {
	if n == nil {
		return nil
	}
	if err := fn(p, n); err != nil {
		return err
	}
	down := func(m *Node, seg Segment) error {
		child := make(Path, len(p)+1)
		copy(child, p)
		child[len(p)] = seg
		return walkNode(m, child, fn)
	}
	switch n.kind {
	case Object:
		kn, _ := n.value.([]Entry)
		for _, e := range kn {
			if err := down(e.Node, keySegment(e.Key)); err != nil {
				return err
			}
		}
	case Array:
		nn, _ := n.value.([]*Node)
		for i, m := range nn {
			if err := down(m, indexSegment(i)); err != nil {
				return err
			}
		}
	}
	return nil
}
