package planfind

import "io"

// lexer generates tokens from json.
// After sending an error token the lexer has to quit.
type lexer struct {
	mode     lexFunc
	data     string
	start    int
	pos      int
	out      chan<- token
	quit     <-chan struct{}
	row, col int
}

type lexFunc func(*lexer) lexFunc

func lexSend(l *lexer, f lexFunc, t token) lexFunc {
	select {
	case <-l.quit:
		return nil
	case l.out <- t:
		return f
	}
}

// lex reads JSON from r and generates tokens for the parser.
// Closing quit stops the lexer early; the stream is closed either way.
func lex(r io.Reader) (stream <-chan token, quit func()) {
	ch := make(chan token, 1)
	q := make(chan struct{})
	data, err := io.ReadAll(r)
	if err != nil {
		ch <- token{Type: errToken, Value: err.Error()}
		close(ch)
		return ch, func() { close(q) }
	}
	l := &lexer{
		mode: noneMode,
		data: string(data),
		out:  ch,
		quit: q,
	}
	go func() {
		for f := l.mode; f != nil; f = f(l) {
		}
		close(l.out)
	}()
	return ch, func() { close(q) }
}

func noneMode(l *lexer) lexFunc {
	fwd := func() {
		l.pos++
		l.start = l.pos
		l.col++
	}
	if l.start >= len(l.data) {
		return nil
	}
	switch l.data[l.pos] {
	case ' ', '\t', '\r':
		fwd()
		return noneMode
	case '\n':
		l.pos++
		l.start = l.pos
		l.col = 0
		l.row++
		return noneMode
	case '{', '}', '[', ']', ',', ':':
		m := lexSend(l, noneMode, newToken(l.data[l.pos], l.row, l.col))
		fwd()
		return m
	case '"':
		fwd()
		return stringMode
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return numberMode
	default:
		return otherMode
	}
}

func stringMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		lexSend(l, nil, token{
			Type:     errToken,
			Value:    l.data[l.start-1:],
			Position: [2]int{l.row, l.col - 1},
		})
		return nil
	}
	switch l.data[l.pos] {
	case '\\':
		l.pos += 2
		return stringMode
	case '"':
		m := lexSend(l, noneMode, token{
			Type:     stringToken,
			Value:    l.data[l.start:l.pos],
			Position: [2]int{l.row, l.col - 1},
		})
		l.col += l.pos - l.start + 1
		l.pos++
		l.start = l.pos
		return m
	default:
		l.pos++
		return stringMode
	}
}

func otherMode(l *lexer) lexFunc {
	literal := func(word string, typ tokenType) lexFunc {
		m := lexSend(l, noneMode, token{
			Type:     typ,
			Position: [2]int{l.row, l.col},
		})
		l.pos += len(word)
		l.start = l.pos
		l.col += len(word)
		return m
	}
	switch {
	case l.start+len("null") <= len(l.data) &&
		l.data[l.start:l.start+len("null")] == "null":
		return literal("null", nullToken)
	case l.start+len("true") <= len(l.data) &&
		l.data[l.start:l.start+len("true")] == "true":
		return literal("true", trueToken)
	case l.start+len("false") <= len(l.data) &&
		l.data[l.start:l.start+len("false")] == "false":
		return literal("false", falseToken)
	}
	rest := l.data[l.start:]
	length := len(rest)
outer:
	for i, r := range rest {
		switch r {
		case ' ', '\t', '\r', '\n', '{', '}', '[', ']', ',', ':':
			length = i
			break outer
		}
	}
	lexSend(l, nil, token{
		Type:     errToken,
		Value:    l.data[l.start : l.start+length],
		Position: [2]int{l.row, l.col},
	})
	return nil
}

func numberMode(l *lexer) lexFunc {
	if l.pos >= len(l.data) {
		lexSend(l, nil, token{
			Type:     numberToken,
			Value:    l.data[l.start:l.pos],
			Position: [2]int{l.row, l.col},
		})
		return nil
	}
	switch l.data[l.pos] {
	case '-', '+', 'e', 'E', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		l.pos++
		return numberMode
	default:
		m := lexSend(l, noneMode, token{
			Type:     numberToken,
			Value:    l.data[l.start:l.pos],
			Position: [2]int{l.row, l.col},
		})
		l.col += l.pos - l.start
		l.start = l.pos
		return m
	}
}
