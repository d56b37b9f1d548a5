package planfind

import "testing"

func TestParser(t *testing.T) {
	tests := []struct {
		have string
		want *Node
	}{
		{`{"a": null}`, nObj(ent("a", nNull()))},
		{`[false, -31.2, 5, "ab\"cd"]`, nArr(
			nBool(false), nNum(-31.2), nNum(5), nStr(`ab\"cd`),
		)},
		{`{"a": 20, "b": [true, null]}`, nObj(
			ent("a", nNum(20)),
			ent("b", nArr(nBool(true), nNull())),
		)},
		{`[0]`, nArr(nNum(0))},
		{`{"p":"c:\\"}`, nObj(ent("p", nStr(`c:\\`)))},
		{`{"a":{},"b":[],"c":null,"d":0,"e":""}`, nObj(
			ent("a", nObj()),
			ent("b", nArr()),
			ent("c", nNull()),
			ent("d", nNum(0)),
			ent("e", nStr("")),
		)},
	}
	for _, test := range tests {
		got, err := ParseString(test.have)
		if err != nil {
			t.Errorf("parsing %v failed: %v", test.have, err)
			continue
		}
		if !Equal(got, test.want) {
			t.Errorf("for %v, got %v, want %v", test.have, got, test.want)
		}
	}
}

func TestParseErr(t *testing.T) {
	tests := []struct {
		have string
		want ParseError
	}{
		{``, ParseError{
			msg: "value",
		}},
		{`null 5`, ParseError{
			msg:    "delimiter",
			token:  token{Type: numberToken, Value: "5", Position: [2]int{0, 5}},
			before: token{Type: nullToken, Position: [2]int{0, 0}},
		}},
		{`{"a": nul}`, ParseError{
			msg:        "value",
			token:      token{Value: "nul", Position: [2]int{0, 6}},
			before:     token{Type: colonToken, Position: [2]int{0, 4}},
			parentKind: Object,
			path:       "a",
		}},
		{`{"a": null`, ParseError{
			msg:        "delimiter",
			token:      token{Type: nullToken, Position: [2]int{0, 6}},
			before:     token{Type: nullToken, Position: [2]int{0, 6}},
			parentKind: Object,
			path:       "a",
		}},
		{`{"b": "\"}`, ParseError{
			msg:        "value",
			token:      token{Value: `"\"}`, Position: [2]int{0, 6}},
			before:     token{Type: colonToken, Position: [2]int{0, 4}},
			parentKind: Object,
			path:       "b",
		}},
		{`{"a":[],"b":{"a". false}}`, ParseError{
			msg:        "colon",
			token:      token{Value: ".", Position: [2]int{0, 16}},
			before:     token{Type: stringToken, Value: "a", Position: [2]int{0, 13}},
			parentKind: Object,
			path:       "b.a",
		}},
		{"{\"very_long\"\n <garbage>}", ParseError{
			msg:        "colon",
			token:      token{Value: "<garbage>", Position: [2]int{1, 1}},
			before:     token{Type: stringToken, Value: "very_long", Position: [2]int{0, 1}},
			parentKind: Object,
			path:       "very_long",
		}},
		{`{`, ParseError{
			msg:        "key",
			before:     token{Type: objectOToken, Position: [2]int{0, 0}},
			parentKind: Object,
		}},
		{`[{"b":}]`, ParseError{
			msg:        "value",
			token:      token{Type: objectCToken, Position: [2]int{0, 6}},
			before:     token{Type: colonToken, Position: [2]int{0, 5}},
			parentKind: Object,
			path:       "0.b",
		}},
		{`[{"b":true},false,5.2,]`, ParseError{
			msg:        "value",
			token:      token{Type: arrayCToken, Position: [2]int{0, 22}},
			before:     token{Type: commaToken, Position: [2]int{0, 21}},
			parentKind: Array,
			path:       "3",
		}},
		{`abcdefghij`, ParseError{
			msg:   "value",
			token: token{Value: "abcdefghij", Position: [2]int{0, 0}},
		}},
		{`{"index":[{"inner":[null,true]}}]`, ParseError{
			msg:        "array closing",
			token:      token{Type: objectCToken, Position: [2]int{0, 31}},
			before:     token{Type: objectCToken, Position: [2]int{0, 30}},
			parentKind: Array,
			path:       "index.0",
		}},
		{`{"a":1,"a":2}`, ParseError{
			msg:        "unique key",
			token:      token{Type: stringToken, Value: "a", Position: [2]int{0, 7}},
			before:     token{Type: commaToken, Position: [2]int{0, 6}},
			parentKind: Object,
		}},
	}
	for _, test := range tests {
		_, err := ParseString(test.have)
		pErr, ok := err.(*ParseError)
		if !ok {
			t.Errorf("for %v, expected parse error, got %v", test.have, err)
			continue
		}
		if *pErr != test.want {
			t.Errorf("for %v, got %v, want %v", test.have, *pErr, test.want)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		have string
		want bool
	}{
		{`{"a": [1, 2, 3]}`, true},
		{`null`, true},
		{`"alone"`, true},
		{`{"a": [1, 2, 3}`, false},
		{`{"a": }`, false},
		{``, false},
	}
	for _, test := range tests {
		if got := Valid([]byte(test.have)); got != test.want {
			t.Errorf("Valid(%v) = %v, want %v", test.have, got, test.want)
		}
	}
}
