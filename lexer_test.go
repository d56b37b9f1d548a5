package planfind

import (
	"strings"
	"testing"
	"time"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		have string
		want []token
	}{
		{`{"a": null}`, []token{
			{Type: objectOToken, Position: [2]int{0, 0}},
			{Type: stringToken, Value: "a", Position: [2]int{0, 1}},
			{Type: colonToken, Position: [2]int{0, 4}},
			{Type: nullToken, Position: [2]int{0, 6}},
			{Type: objectCToken, Position: [2]int{0, 10}},
		}},
		{`[false, -31.2, 5, "ab\"cd"]`, []token{
			{Type: arrayOToken, Position: [2]int{0, 0}},
			{Type: falseToken, Position: [2]int{0, 1}},
			{Type: commaToken, Position: [2]int{0, 6}},
			{Type: numberToken, Value: "-31.2", Position: [2]int{0, 8}},
			{Type: commaToken, Position: [2]int{0, 13}},
			{Type: numberToken, Value: "5", Position: [2]int{0, 15}},
			{Type: commaToken, Position: [2]int{0, 16}},
			{Type: stringToken, Value: "ab\\\"cd", Position: [2]int{0, 18}},
			{Type: arrayCToken, Position: [2]int{0, 26}},
		}},
		{`{"a": 20, "b": [true, null]}`, []token{
			{Type: objectOToken, Position: [2]int{0, 0}},
			{Type: stringToken, Value: "a", Position: [2]int{0, 1}},
			{Type: colonToken, Position: [2]int{0, 4}},
			{Type: numberToken, Value: "20", Position: [2]int{0, 6}},
			{Type: commaToken, Position: [2]int{0, 8}},
			{Type: stringToken, Value: "b", Position: [2]int{0, 10}},
			{Type: colonToken, Position: [2]int{0, 13}},
			{Type: arrayOToken, Position: [2]int{0, 15}},
			{Type: trueToken, Position: [2]int{0, 16}},
			{Type: commaToken, Position: [2]int{0, 20}},
			{Type: nullToken, Position: [2]int{0, 22}},
			{Type: arrayCToken, Position: [2]int{0, 26}},
			{Type: objectCToken, Position: [2]int{0, 27}},
		}},
		{`[0]`, []token{
			{Type: arrayOToken, Position: [2]int{0, 0}},
			{Type: numberToken, Value: "0", Position: [2]int{0, 1}},
			{Type: arrayCToken, Position: [2]int{0, 2}},
		}},
		{`{"a":{},"b":[],"c":null,"d":0,"e":""}`, []token{
			{Type: objectOToken, Position: [2]int{0, 0}},
			{Type: stringToken, Value: "a", Position: [2]int{0, 1}},
			{Type: colonToken, Position: [2]int{0, 4}},
			{Type: objectOToken, Position: [2]int{0, 5}},
			{Type: objectCToken, Position: [2]int{0, 6}},
			{Type: commaToken, Position: [2]int{0, 7}},
			{Type: stringToken, Value: "b", Position: [2]int{0, 8}},
			{Type: colonToken, Position: [2]int{0, 11}},
			{Type: arrayOToken, Position: [2]int{0, 12}},
			{Type: arrayCToken, Position: [2]int{0, 13}},
			{Type: commaToken, Position: [2]int{0, 14}},
			{Type: stringToken, Value: "c", Position: [2]int{0, 15}},
			{Type: colonToken, Position: [2]int{0, 18}},
			{Type: nullToken, Position: [2]int{0, 19}},
			{Type: commaToken, Position: [2]int{0, 23}},
			{Type: stringToken, Value: "d", Position: [2]int{0, 24}},
			{Type: colonToken, Position: [2]int{0, 27}},
			{Type: numberToken, Value: "0", Position: [2]int{0, 28}},
			{Type: commaToken, Position: [2]int{0, 29}},
			{Type: stringToken, Value: "e", Position: [2]int{0, 30}},
			{Type: colonToken, Position: [2]int{0, 33}},
			{Type: stringToken, Position: [2]int{0, 34}},
			{Type: objectCToken, Position: [2]int{0, 36}},
		}},
		{`{"p":"c:\\"}`, []token{
			{Type: objectOToken, Position: [2]int{0, 0}},
			{Type: stringToken, Value: "p", Position: [2]int{0, 1}},
			{Type: colonToken, Position: [2]int{0, 4}},
			{Type: stringToken, Value: `c:\\`, Position: [2]int{0, 5}},
			{Type: objectCToken, Position: [2]int{0, 11}},
		}},
		{`{"index":[{"inner":[null,true]}}]`, []token{
			{Type: objectOToken, Position: [2]int{0, 0}},
			{Type: stringToken, Value: "index", Position: [2]int{0, 1}},
			{Type: colonToken, Position: [2]int{0, 8}},
			{Type: arrayOToken, Position: [2]int{0, 9}},
			{Type: objectOToken, Position: [2]int{0, 10}},
			{Type: stringToken, Value: "inner", Position: [2]int{0, 11}},
			{Type: colonToken, Position: [2]int{0, 18}},
			{Type: arrayOToken, Position: [2]int{0, 19}},
			{Type: nullToken, Position: [2]int{0, 20}},
			{Type: commaToken, Position: [2]int{0, 24}},
			{Type: trueToken, Position: [2]int{0, 25}},
			{Type: arrayCToken, Position: [2]int{0, 29}},
			{Type: objectCToken, Position: [2]int{0, 30}},
			{Type: objectCToken, Position: [2]int{0, 31}},
			{Type: arrayCToken, Position: [2]int{0, 32}},
		}},
	}
outer:
	for _, test := range tests {
		lexc, q := lex(strings.NewReader(test.have))
		for _, w := range test.want {
			tk := <-lexc
			if tk != w {
				t.Errorf("have %v, got %s, want %s", test.have, tk, w)
				q()
				continue outer
			}
		}
		if tk, ok := <-lexc; ok {
			t.Errorf("expected nothing, got %s", tk.String())
		}
	}
}

func TestLexErr(t *testing.T) {
	tests := []struct {
		have string
		want token
	}{
		{`{"a": nul}`, token{
			Value:    "nul",
			Position: [2]int{0, 6},
		}},
		{`{"a": "\"}`, token{
			Value:    `"\"}`,
			Position: [2]int{0, 6},
		}},
		{`{"a". false}`, token{
			Value:    ".",
			Position: [2]int{0, 4},
		}},
		{"{\"a\"\n <garbage>}", token{
			Value:    "<garbage>",
			Position: [2]int{1, 1},
		}},
	}
	for _, test := range tests {
		var have token
		lexc, _ := lex(strings.NewReader(test.have))
		for tk := range lexc {
			have = tk
		}
		if have != test.want {
			t.Errorf("got %v, want %v, for %v", have.String(), test.want, test.have)
		}
	}
}

func TestLexQuit(t *testing.T) {
	lexc, q := lex(strings.NewReader(`["Hello, World!", 0, true]`))
	if cap(lexc) != 1 {
		t.Fatal("lex-channel must have capacity of 1")
	}
	time.Sleep(time.Millisecond) // fill channel
	q()                          // quit lexer
	time.Sleep(time.Millisecond) // wait for quit
	if len(lexc) != 1 {
		t.Fatal("lex-channel must have length of 1")
	}
	<-lexc // empty channel (length 1)
	if _, ok := <-lexc; ok {
		t.Error("lexer not stopped after receiving quit")
	}
}
