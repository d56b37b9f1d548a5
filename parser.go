package planfind

import "strconv"

// parser is a state machine creating a tree from lex tokens.
// The parser is only allowed to cancel the lexer if it receives an error
// token from it.
type parser struct {
	in     <-chan token
	quitIn func()
	init   parseFunc
	cur    *Node
	prev   token
}

type parseFunc func(p *parser) (parseFunc, error)

// parse reads tokens from ch and builds a tree.
// The returned node is the root node of the document.
func parse(ch <-chan token, quit func()) (*Node, error) {
	defer quit()
	p := &parser{
		in:     ch,
		quitIn: quit,
		init:   expectValue,
		cur:    new(Node),
	}
	var err error
	for f := p.init; f != nil && err == nil; f, err = f(p) {
	}
	root := p.cur
	for root.parent != nil {
		root = root.parent
	}
	return root, err
}

// parseFunc's

func expectKey(p *parser) (parseFunc, error) {
	t := <-p.in
	if p.cur.parent == nil || p.cur.parent.kind != Object {
		panic("invariant violation: expect key while not in object")
	}
	if t.Type == objectCToken {
		if kn, ok := p.cur.parent.value.([]Entry); ok && len(kn) == 1 {
			p.cur.parent.value = []Entry(nil)
			p.cur = p.cur.parent
			return expectDelim, nil
		}
	}
	if t.Type != stringToken {
		return nil, newParseError("key", p.prev, t, p.cur)
	}
	pp := p.cur.parent.value.([]Entry)
	for _, kn := range pp[:len(pp)-1] {
		if kn.Key == t.Value {
			return nil, newParseError("unique key", p.prev, t, p.cur)
		}
	}
	if pp[len(pp)-1].Node != p.cur {
		panic("invariant violation: cursor is not the open entry")
	}
	pp[len(pp)-1].Key = t.Value
	p.prev, t = t, <-p.in
	defer func() { p.prev = t }()
	if t.Type != colonToken {
		return nil, newParseError("colon", p.prev, t, p.cur)
	}
	return expectValue, nil
}

func expectValue(p *parser) (parseFunc, error) {
	t := <-p.in
	defer func() { p.prev = t }()
	if p.cur.parent != nil && t.Type == arrayCToken {
		if nn, ok := p.cur.parent.value.([]*Node); ok && len(nn) == 1 {
			p.cur.parent.value = []*Node(nil)
			p.cur = p.cur.parent
			return expectDelim, nil
		}
	}
	switch t.Type {
	case numberToken:
		num, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, newParseError("number", p.prev, t, p.cur)
		}
		p.cur.kind = Number
		p.cur.value = num
		return expectDelim, nil
	case stringToken:
		p.cur.kind = String
		p.cur.value = t.Value
		return expectDelim, nil
	case nullToken:
		p.cur.kind = Null
		return expectDelim, nil
	case trueToken:
		p.cur.kind = Bool
		p.cur.value = true
		return expectDelim, nil
	case falseToken:
		p.cur.kind = Bool
		p.cur.value = false
		return expectDelim, nil
	case arrayOToken:
		p.cur.kind = Array
		nn := make([]*Node, 1, 4)
		nn[0] = &Node{parent: p.cur}
		p.cur.value = nn
		p.cur = nn[0]
		return expectValue, nil
	case objectOToken:
		p.cur.kind = Object
		kn := make([]Entry, 1, 4)
		kn[0].Node = &Node{parent: p.cur}
		p.cur.value = kn
		p.cur = kn[0].Node
		return expectKey, nil
	default:
		return nil, newParseError("value", p.prev, t, p.cur)
	}
}

func expectDelim(p *parser) (parseFunc, error) {
	t, ok := <-p.in
	defer func() { p.prev = t }()
	if !ok {
		if p.cur.parent == nil {
			return nil, nil // all OK!
		}
		return nil, newParseError("delimiter", p.prev, p.prev, p.cur)
	}
	switch t.Type {
	case commaToken:
		if p.cur.parent == nil {
			return nil, newParseError("no comma", p.prev, t, p.cur)
		}
		switch p.cur.parent.kind {
		case Array:
			nn := append(p.cur.parent.value.([]*Node), &Node{parent: p.cur.parent})
			p.cur.parent.value = nn
			p.cur = nn[len(nn)-1]
			return expectValue, nil
		case Object:
			kn := append(p.cur.parent.value.([]Entry), Entry{Node: &Node{parent: p.cur.parent}})
			p.cur.parent.value = kn
			p.cur = kn[len(kn)-1].Node
			return expectKey, nil
		default:
			return nil, newParseError("no comma", p.prev, t, p.cur)
		}
	case arrayCToken, objectCToken:
		if p.cur.parent == nil {
			return nil, newParseError("to be in array or object", p.prev, t, p.cur)
		}
		switch p.cur.parent.kind {
		case Array:
			if t.Type != arrayCToken {
				return nil, newParseError("array closing", p.prev, t, p.cur)
			}
			p.cur = p.cur.parent
			return expectDelim, nil
		case Object:
			if t.Type != objectCToken {
				return nil, newParseError("object closing", p.prev, t, p.cur)
			}
			p.cur = p.cur.parent
			return expectDelim, nil
		default:
			return nil, newParseError("to be in array or object", p.prev, t, p.cur)
		}
	default:
		return nil, newParseError("delimiter", p.prev, t, p.cur)
	}
}
