package planfind

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Segment is one step of an access path: an object key or an array
// index. IsIndex tells the two apart.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func keySegment(k string) Segment {
	return Segment{Key: k}
}

func indexSegment(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// Path locates a value within a tree as an ordered sequence of segments.
type Path []Segment

// PathOf builds a path from string keys and int indices.
// It panics on any other segment type.
func PathOf(segments ...interface{}) Path {
	p := make(Path, 0, len(segments))
	for _, s := range segments {
		switch v := s.(type) {
		case string:
			p = append(p, keySegment(v))
		case int:
			p = append(p, indexSegment(v))
		default:
			panic(errors.Errorf("path segment must be string or int, got %T", s))
		}
	}
	return p
}

// String renders the path in dotted form with array indices as decimal
// numbers, e.g. "planned_values.root_module.resources.0.values".
func (p Path) String() string {
	ss := make([]string, len(p))
	for i, s := range p {
		if s.IsIndex {
			ss[i] = strconv.Itoa(s.Index)
		} else {
			ss[i] = s.Key
		}
	}
	return strings.Join(ss, ".")
}

// ParsePath parses the dotted form back into a path. Segments consisting
// of decimal digits only are taken as array indices. Keys containing
// dots cannot be expressed in this syntax.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, errors.Wrapf(ErrInvalidInput, "empty segment in path %q", s)
		}
		if i, err := strconv.Atoi(part); err == nil && part[0] != '-' {
			p = append(p, indexSegment(i))
			continue
		}
		p = append(p, keySegment(part))
	}
	return p, nil
}

// At returns the node addressed by p, indexing objects with key segments
// and arrays with index segments. It reports false when the path does
// not exist in the tree or a segment kind does not fit the node it is
// applied to.
func (n *Node) At(p Path) (*Node, bool) {
	cur := n
	for _, seg := range p {
		switch {
		case seg.IsIndex && cur.Kind() == Array:
			nn, _ := cur.value.([]*Node)
			if seg.Index < 0 || seg.Index >= len(nn) {
				return nil, false
			}
			cur = nn[seg.Index]
		case !seg.IsIndex && cur.Kind() == Object:
			m, ok := cur.childByKey(seg.Key)
			if !ok {
				return nil, false
			}
			cur = m
		default:
			return nil, false
		}
	}
	return cur, true
}

// PathTo returns the access path of n within the tree it belongs to.
// The root yields an empty path.
func (n *Node) PathTo() Path {
	var rev Path
	for o, p := n, n.parent; o != nil && p != nil; o, p = p, p.parent {
		switch p.kind {
		case Object:
			kn, _ := p.value.([]Entry)
			for i := range kn {
				if o == kn[i].Node {
					rev = append(rev, keySegment(kn[i].Key))
				}
			}
		case Array:
			nn, _ := p.value.([]*Node)
			for i := range nn {
				if o == nn[i] {
					rev = append(rev, indexSegment(i))
				}
			}
		}
	}
	out := make(Path, len(rev))
	for i, s := range rev {
		out[len(rev)-i-1] = s
	}
	return out
}
