package csslexer

// Visitor is the callback surface the Lexer drives as it walks the source.
// Every method is handed the Lexer so it can slice out the token text, and
// every method returns a bool: returning false stops the lexing pass
// immediately, the same way a nil state function stops esbuild's JS lexer
// loop. It is not an error signal — a Visitor uses it as an early-exit, for
// example once it has collected everything it needs from a huge file.
//
// Most implementations only care about a handful of these events, which is
// why Visitor is a flat interface of no-op-able methods rather than a single
// method over a token-kind enum: a Visitor that only wants URLs still has to
// implement every method, but each no-op body is one line and the common
// path avoids a type switch per token.
type Visitor interface {
	Ident(lexer *Lexer, start, end Pos) bool
	Function(lexer *Lexer, start, end Pos) bool
	AtKeyword(lexer *Lexer, start, end Pos) bool
	ID(lexer *Lexer, start, end Pos) bool
	Class(lexer *Lexer, start, end Pos) bool
	String(lexer *Lexer, start, end Pos) bool
	URL(lexer *Lexer, start, end, contentStart, contentEnd Pos) bool

	LeftParenthesis(lexer *Lexer, start, end Pos) bool
	RightParenthesis(lexer *Lexer, start, end Pos) bool
	Comma(lexer *Lexer, start, end Pos) bool
	Semicolon(lexer *Lexer, start, end Pos) bool
	LeftCurlyBracket(lexer *Lexer, start, end Pos) bool
	RightCurlyBracket(lexer *Lexer, start, end Pos) bool

	PseudoClass(lexer *Lexer, start, end Pos) bool
	PseudoFunction(lexer *Lexer, start, end Pos) bool

	// IsSelector asks whether the bytes ahead read as a prelude selector
	// rather than a declaration. Lex calls it once, before its first token;
	// it is not called again inside blocks, and the isSelector answer does
	// not change how the Lexer tokenizes anything: a false ok stops Lex.
	// ok is false only on unexpected EOF; a conservative Visitor can always
	// return (true, true).
	IsSelector(lexer *Lexer) (isSelector bool, ok bool)
}

// NopVisitor embeds into a Visitor implementation to pick up default no-op
// bodies for every callback, so callers only override the handful of events
// they actually care about.
type NopVisitor struct{}

func (NopVisitor) Ident(lexer *Lexer, start, end Pos) bool             { return true }
func (NopVisitor) Function(lexer *Lexer, start, end Pos) bool          { return true }
func (NopVisitor) AtKeyword(lexer *Lexer, start, end Pos) bool         { return true }
func (NopVisitor) ID(lexer *Lexer, start, end Pos) bool                { return true }
func (NopVisitor) Class(lexer *Lexer, start, end Pos) bool             { return true }
func (NopVisitor) String(lexer *Lexer, start, end Pos) bool            { return true }
func (NopVisitor) URL(lexer *Lexer, start, end, cs, ce Pos) bool       { return true }
func (NopVisitor) LeftParenthesis(lexer *Lexer, start, end Pos) bool   { return true }
func (NopVisitor) RightParenthesis(lexer *Lexer, start, end Pos) bool  { return true }
func (NopVisitor) Comma(lexer *Lexer, start, end Pos) bool             { return true }
func (NopVisitor) Semicolon(lexer *Lexer, start, end Pos) bool         { return true }
func (NopVisitor) LeftCurlyBracket(lexer *Lexer, start, end Pos) bool  { return true }
func (NopVisitor) RightCurlyBracket(lexer *Lexer, start, end Pos) bool { return true }
func (NopVisitor) PseudoClass(lexer *Lexer, start, end Pos) bool       { return true }
func (NopVisitor) PseudoFunction(lexer *Lexer, start, end Pos) bool    { return true }
func (NopVisitor) IsSelector(lexer *Lexer) (bool, bool)                { return true, true }
