package csslexer

import (
	"fmt"
	"testing"

	"github.com/SyMind/css-module-lexer/internal/test"
)

// recordingVisitor records every event it receives as a short tag plus the
// literal source text of the token, in the order the Lexer produced them.
// Tests assert against the joined log rather than poking at individual
// fields, so a single string diff shows exactly which event changed shape.
type recordingVisitor struct {
	NopVisitor
	events []string
}

func (v *recordingVisitor) record(lexer *Lexer, kind string, start, end Pos) bool {
	text, _ := lexer.Slice(start, end)
	v.events = append(v.events, fmt.Sprintf("%s(%q)", kind, text))
	return true
}

func (v *recordingVisitor) Ident(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "ident", start, end)
}
func (v *recordingVisitor) Function(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "function", start, end)
}
func (v *recordingVisitor) AtKeyword(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "at-keyword", start, end)
}
func (v *recordingVisitor) ID(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "id", start, end)
}
func (v *recordingVisitor) Class(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "class", start, end)
}
func (v *recordingVisitor) String(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "string", start, end)
}
func (v *recordingVisitor) URL(lexer *Lexer, start, end, contentStart, contentEnd Pos) bool {
	content, _ := lexer.Slice(contentStart, contentEnd)
	v.events = append(v.events, fmt.Sprintf("url(%q)", content))
	return true
}
func (v *recordingVisitor) LeftParenthesis(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "(", start, end)
}
func (v *recordingVisitor) RightParenthesis(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, ")", start, end)
}
func (v *recordingVisitor) Comma(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, ",", start, end)
}
func (v *recordingVisitor) Semicolon(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, ";", start, end)
}
func (v *recordingVisitor) LeftCurlyBracket(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "{", start, end)
}
func (v *recordingVisitor) RightCurlyBracket(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "}", start, end)
}
func (v *recordingVisitor) PseudoClass(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "pseudo-class", start, end)
}
func (v *recordingVisitor) PseudoFunction(lexer *Lexer, start, end Pos) bool {
	return v.record(lexer, "pseudo-function", start, end)
}

func lexAll(contents string) []string {
	lexer := From(contents)
	v := &recordingVisitor{}
	lexer.Lex(v)
	return v.events
}

func TestIdentAndFunction(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll("foo")), fmt.Sprint([]string{`ident("foo")`}))
	test.AssertEqual(t, fmt.Sprint(lexAll("foo(")), fmt.Sprint([]string{`function("foo(")`}))
	test.AssertEqual(t, fmt.Sprint(lexAll("-moz-foo")), fmt.Sprint([]string{`ident("-moz-foo")`}))
}

func TestAtKeyword(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll("@import")), fmt.Sprint([]string{`at-keyword("@import")`}))
}

func TestHashAndClass(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll("#id")), fmt.Sprint([]string{`id("#id")`}))
	test.AssertEqual(t, fmt.Sprint(lexAll(".class")), fmt.Sprint([]string{`class(".class")`}))
	// "#123" is a hash token but not an id-type one: no ident-start rune
	// follows the "#", so no event fires at all.
	test.AssertEqual(t, len(lexAll("#123")), 0)
}

func TestPseudo(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll(":hover")), fmt.Sprint([]string{`pseudo-class(":hover")`}))
	test.AssertEqual(t, fmt.Sprint(lexAll(":not(")), fmt.Sprint([]string{`pseudo-function(":not(")`}))
}

func TestString(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll(`"foo"`)), fmt.Sprint([]string{`string("\"foo\"")`}))
	test.AssertEqual(t, fmt.Sprint(lexAll(`'foo'`)), fmt.Sprint([]string{`string("'foo'")`}))
	// an unescaped newline ends the string early; recovery is tolerant
	test.AssertEqual(t, fmt.Sprint(lexAll("'foo\nbar'")), fmt.Sprint([]string{`string("'foo")`, `ident("bar")`, `string("'")`}))
}

func TestURL(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll("url(foo.png)")), fmt.Sprint([]string{`url("foo.png")`}))
	test.AssertEqual(t, fmt.Sprint(lexAll("url(  foo.png  )")), fmt.Sprint([]string{`url("foo.png")`}))
	test.AssertEqual(t, fmt.Sprint(lexAll(`url("foo.png")`)), fmt.Sprint([]string{`function("url(")`, `string("\"foo.png\"")`, `)(")")`}))
	// unterminated url() at EOF is tolerated
	test.AssertEqual(t, fmt.Sprint(lexAll("url(foo")), fmt.Sprint([]string{`url("foo")`}))
}

func TestPunctuation(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll("a,b;c{d}")), fmt.Sprint([]string{
		`ident("a")`, `,(",")`, `ident("b")`, `;(";")`, `ident("c")`, `{("{")`, `ident("d")`, `}("}")`,
	}))
}

func TestNumbersAreSilentlySkipped(t *testing.T) {
	test.AssertEqual(t, len(lexAll("123")), 0)
	test.AssertEqual(t, len(lexAll("1px")), 0)
	test.AssertEqual(t, len(lexAll("50%")), 0)
	test.AssertEqual(t, len(lexAll(".5em")), 0)
}

func TestComments(t *testing.T) {
	test.AssertEqual(t, fmt.Sprint(lexAll("/* comment */foo")), fmt.Sprint([]string{`ident("foo")`}))
	// unterminated comment consumes to EOF, tolerated
	test.AssertEqual(t, len(lexAll("foo /* comment")), 1)
}
