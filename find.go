package planfind

// Match is one occurrence of a searched key: the access path of the
// entry and the raw value stored under it.
type Match struct {
	Path Path
	Node *Node
}

// FindKey reports every object entry in the tree whose key equals key
// exactly, regardless of depth. Matching is case-sensitive. Entries
// whose values are themselves containers match too, and their subtrees
// are still searched.
//
// Matches are emitted in document order. Equivalent trees may enumerate
// entries in different orders, so callers comparing results across
// documents should treat them as a set. Values are reported raw: a bare
// scalar and a {"constant_value": ...} wrapper for the same logical
// field are two distinct matches at their own paths.
func (n *Node) FindKey(key string) []Match {
	var matches []Match
	_ = n.Walk(func(p Path, m *Node) error {
		if len(p) == 0 {
			return nil
		}
		if last := p[len(p)-1]; !last.IsIndex && last.Key == key {
			matches = append(matches, Match{Path: p, Node: m})
		}
		return nil
	})
	return matches
}
