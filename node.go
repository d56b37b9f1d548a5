package planfind

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind is an enum for the kinds of tree values.
type Kind uint8

// Kinds to compare nodes of a tree with. The zero value signals invalid.
const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Invalid"
	}
}

// Node is one node of a tree holding a document. Depending on its
// internal kind it holds a different value:
//
//	Kind	ValueType
//	Invalid	nil
//	Null	nil
//	Bool	bool
//	Number	float64
//	String	string
//	Array	[]*Node
//	Object	[]Entry
//
// String values are stored the way they appear inside a JSON string
// literal, escapes included.
type Node struct {
	kind   Kind
	value  interface{}
	parent *Node
}

// Entry is a single key-value pair of an object node.
type Entry struct {
	Key  string
	Node *Node
}

// Kind returns the kind of a node.
func (n *Node) Kind() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

// Value creates the Go representation of a node.
// Like encoding/json the possible underlying types of the first return
// parameter are:
//
//	Object    map[string]interface{}
//	Array     []interface{}
//	String    string
//	Number    float64
//	Bool      bool
//	Null      nil (with the error being nil too)
func (n *Node) Value() (interface{}, error) {
	if !assertNodeKind(n) {
		return nil, errors.Wrapf(ErrInvalidInput,
			"internal kind mismatch; want %s, got %T", n.kind, n.value)
	}
	switch n.kind {
	default:
		return n.value, nil
	case Object:
		kn, _ := n.value.([]Entry)
		m := make(map[string]interface{}, len(kn))
		for _, f := range kn {
			itf, err := f.Node.Value()
			if err != nil {
				return nil, err
			}
			m[f.Key] = itf
		}
		return m, nil
	case Array:
		nn, _ := n.value.([]*Node)
		s := make([]interface{}, 0, len(nn))
		for _, f := range nn {
			itf, err := f.Value()
			if err != nil {
				return nil, err
			}
			s = append(s, itf)
		}
		return s, nil
	}
}

// format writes a valid json representation to w with prefix as indent,
// postfix after values or opening objects/arrays, commaSep after each
// comma and colonSep after keys.
func (n *Node) format(w io.Writer, prefix, postfix, commaSep, colonSep string) (int, error) {
	if n == nil {
		return 0, errors.New("<nil>")
	}
	buf := make([]byte, 0, 64)
	var inner func(m *Node, level int) error
	inner = func(m *Node, level int) error {
		if !assertNodeKind(m) {
			return errors.Wrap(ErrInvalidInput, "format; assertion failure")
		}
		switch m.kind {
		case Null:
			buf = append(buf, "null"...)
			return nil
		case Bool:
			if m.value.(bool) {
				buf = append(buf, "true"...)
				return nil
			}
			buf = append(buf, "false"...)
			return nil
		case Number:
			buf = strconv.AppendFloat(buf, m.value.(float64), 'g', -1, 64)
			return nil
		case String:
			buf = append(buf, (`"` + m.value.(string) + `"`)...)
			return nil
		case Array:
			cc, _ := m.value.([]*Node)
			if len(cc) == 0 {
				buf = append(buf, "[]"...)
				return nil
			}
			buf = append(buf, ("[" + postfix)...)
			for i, c := range cc {
				buf = append(buf, strings.Repeat(prefix, level+1)...)
				if err := inner(c, level+1); err != nil {
					return err
				}
				if i < len(cc)-1 {
					buf = append(buf, ("," + commaSep + postfix)...)
				}
			}
			buf = append(buf, (postfix + strings.Repeat(prefix, level) + "]")...)
			return nil
		case Object:
			cc, _ := m.value.([]Entry)
			if len(cc) == 0 {
				buf = append(buf, "{}"...)
				return nil
			}
			buf = append(buf, ("{" + postfix)...)
			for i, c := range cc {
				buf = append(buf, (strings.Repeat(prefix, level+1) +
					"\"" + c.Key + "\":" + colonSep)...)
				if err := inner(c.Node, level+1); err != nil {
					return err
				}
				if i < len(cc)-1 {
					buf = append(buf, ("," + commaSep + postfix)...)
				}
			}
			buf = append(buf, (postfix + strings.Repeat(prefix, level) + "}")...)
			return nil
		default:
			return errors.Wrapf(ErrInvalidInput, "node of unknown kind: %#v", m)
		}
	}
	err := inner(n, 0)
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// String formats a tree as valid JSON with no whitespace.
func (n *Node) String() string {
	b := &strings.Builder{}
	_, err := n.format(b, "", "", "", "")
	if err != nil {
		return ""
	}
	return b.String()
}

// WriteJSON writes the tree held by n to w with the same representation
// as n.String() and no whitespace.
func (n *Node) WriteJSON(w io.Writer) (int, error) {
	return n.format(w, "", "", "", "")
}

// WriteIndent writes the tree held by n to w with the given indent
// (preferably spaces or a tab).
func (n *Node) WriteIndent(w io.Writer, indent string) (int, error) {
	return n.format(w, indent, "\n", "", " ")
}

// MarshalJSON implements the json.Marshaler interface for Node.
func (n *Node) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	_, err := n.format(b, "", "", " ", " ")
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Node.
func (n *Node) UnmarshalJSON(data []byte) error {
	m, err := parse(lex(bytes.NewReader(data)))
	if err != nil {
		return err
	}
	*n = *m
	n.parent = nil
	n.adopt()
	return nil
}

// Equal compares the nodes and all their children. Object entry order is
// arbitrary.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Array:
		an, _ := a.value.([]*Node)
		bn, _ := b.value.([]*Node)
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if !Equal(an[i], bn[i]) {
				return false
			}
		}
		return true
	case Object:
		an, _ := a.value.([]Entry)
		bn, _ := b.value.([]Entry)
		if len(an) != len(bn) {
			return false
		}
		for _, kn := range an {
			m, ok := b.childByKey(kn.Key)
			if !ok || !Equal(kn.Node, m) {
				return false
			}
		}
		return true
	default:
		return a.value == b.value
	}
}

func (n *Node) childByKey(key string) (*Node, bool) {
	kn, _ := n.value.([]Entry)
	for _, e := range kn {
		if e.Key == key {
			return e.Node, true
		}
	}
	return nil, false
}

// -> IsValid
func assertNodeKind(n *Node) bool {
	switch n.value.(type) {
	case nil:
		return n.kind == Null || n.kind == Invalid
	case bool:
		return n.kind == Bool
	case float64:
		return n.kind == Number
	case string:
		return n.kind == String
	case []*Node:
		return n.kind == Array
	case []Entry:
		return n.kind == Object
	default:
		return false
	}
}

// EntryOf generates a single entry with a value parsed from str.
// It panics if str is a compound JSON expression with children.
func EntryOf(key, str string) Entry {
	n, err := ParseString(str)
	if err != nil {
		panic(err)
	}
	if n.Len() > 0 && (n.kind == Array || n.kind == Object) {
		panic("given value must be single!")
	}
	return Entry{Key: key, Node: n}
}

// Append appends entries to the array or object n. Appended nodes are
// adopted into the tree. It panics if n is not of the two mentioned
// kinds or if entries appended to an object don't have keys.
func (n *Node) Append(entries ...Entry) {
	switch n.kind {
	case Object:
		kn, _ := n.value.([]Entry)
		for _, e := range entries {
			if e.Key == "" {
				panic("empty key for object entry")
			}
			e.Node.parent = n
			kn = append(kn, e)
		}
		n.value = kn
	case Array:
		nn, _ := n.value.([]*Node)
		for _, e := range entries {
			e.Node.parent = n
			nn = append(nn, e.Node)
		}
		n.value = nn
	default:
		panic(errors.Wrapf(ErrNotArrayOrObject, "n is %s", n.kind))
	}
}

// GetChild returns the node addressed by a dot-separated name, array
// elements by decimal index. The empty name returns the node itself.
func (n *Node) GetChild(name string) (*Node, bool) {
	if name == "" {
		return n, true
	}
	cur := n
	for _, k := range strings.Split(name, ".") {
		switch cur.kind {
		case Object:
			m, ok := cur.childByKey(k)
			if !ok {
				return nil, false
			}
			cur = m
		case Array:
			i, err := strconv.Atoi(k)
			if err != nil {
				return nil, false
			}
			nn, _ := cur.value.([]*Node)
			if i < 0 || i >= len(nn) {
				return nil, false
			}
			cur = nn[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Len gives the length of an array or the number of entries in an object.
func (n *Node) Len() int {
	switch n.Kind() {
	case Array:
		nn, _ := n.value.([]*Node)
		return len(nn)
	case Object:
		kn, _ := n.value.([]Entry)
		return len(kn)
	case Invalid:
		return 0
	default:
		return 1
	}
}

// Total returns the number of nodes held by n, n included.
func (n *Node) Total() int {
	switch n.Kind() {
	case Array:
		i := 1
		nn, _ := n.value.([]*Node)
		for _, m := range nn {
			i += m.Total()
		}
		return i
	case Object:
		i := 1
		kn, _ := n.value.([]Entry)
		for _, e := range kn {
			i += e.Node.Total()
		}
		return i
	default:
		return 1
	}
}

// Copy returns a deep copy of the tree rooted at n. The copy has no
// parent.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	m := &Node{kind: n.kind}
	switch n.kind {
	case Array:
		nn, _ := n.value.([]*Node)
		out := make([]*Node, len(nn))
		for i, c := range nn {
			out[i] = c.Copy()
			out[i].parent = m
		}
		m.value = out
	case Object:
		kn, _ := n.value.([]Entry)
		out := make([]Entry, len(kn))
		for i, e := range kn {
			out[i] = Entry{Key: e.Key, Node: e.Node.Copy()}
			out[i].Node.parent = m
		}
		m.value = out
	default:
		m.value = n.value
	}
	return m
}

// adopt re-points the parent pointers of all children to n.
func (n *Node) adopt() {
	switch n.kind {
	case Array:
		nn, _ := n.value.([]*Node)
		for _, m := range nn {
			m.parent = n
			m.adopt()
		}
	case Object:
		kn, _ := n.value.([]Entry)
		for _, e := range kn {
			e.Node.parent = n
			e.Node.adopt()
		}
	}
}

// escapeString renders s the way it appears inside a JSON string literal.
func escapeString(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\t\r") {
		clean := true
		for i := 0; i < len(s); i++ {
			if s[i] < 0x20 {
				clean = false
				break
			}
		}
		if clean {
			return s
		}
	}
	b := &strings.Builder{}
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
