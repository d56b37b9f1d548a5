package planfind

type tokenType uint8

const (
	errToken tokenType = iota
	nullToken
	trueToken
	falseToken
	numberToken
	stringToken
	commaToken
	colonToken
	arrayOToken
	arrayCToken
	objectOToken
	objectCToken
)

// token is a single lexical element of a JSON document.
// Position holds row and column of the token start.
type token struct {
	Type     tokenType
	Value    string
	Position [2]int
}

func newToken(b byte, row, col int) token {
	pos := [2]int{row, col}
	switch b {
	case '{':
		return token{Type: objectOToken, Position: pos}
	case '}':
		return token{Type: objectCToken, Position: pos}
	case '[':
		return token{Type: arrayOToken, Position: pos}
	case ']':
		return token{Type: arrayCToken, Position: pos}
	case ':':
		return token{Type: colonToken, Position: pos}
	case ',':
		return token{Type: commaToken, Position: pos}
	default:
		return token{Value: string(b), Position: pos}
	}
}

// String generates a readable form of a token meant for debugging.
func (t token) String() string {
	switch t.Type {
	case errToken:
		return "lex-err_" + t.Value
	case nullToken:
		return "'null'"
	case trueToken:
		return "'true'"
	case falseToken:
		return "'false'"
	case numberToken:
		return "lex-num_" + t.Value
	case stringToken:
		return "lex-str_" + t.Value
	case commaToken:
		return "','"
	case colonToken:
		return "':'"
	case arrayOToken:
		return "'['"
	case arrayCToken:
		return "']'"
	case objectOToken:
		return "'{'"
	case objectCToken:
		return "'}'"
	default:
		return "lex-unknown"
	}
}

// Error renders a token as the subject of an error message.
func (t token) Error() string {
	if t == (token{}) {
		return "unexpected end of input"
	}
	if t.Type == errToken {
		return "invalid token '" + t.Value + "'"
	}
	return "unexpected " + t.String()
}
