package dependency

import (
	"strings"

	csslexer "github.com/SyMind/css-module-lexer"
)

type scopeKind int

const (
	scopeTopLevel scopeKind = iota
	scopeInBlock
	scopeInAtImport
	scopeAtImportInvalid
	scopeAtNamespaceInvalid
)

type importDataSupportsState int

const (
	supportsNone importDataSupportsState = iota
	supportsIn
	supportsEnd
)

type importDataSupports struct {
	state importDataSupportsState
	start Pos    // valid when state == supportsIn
	value string // valid when state == supportsEnd
	rng   Range  // valid when state == supportsEnd
}

type importDataLayer struct {
	has   bool
	value string
	rng   Range
}

type importData struct {
	start    Pos
	url      *string
	urlRange *Range
	supports importDataSupports
	layer    importDataLayer
}

func newImportData(start Pos) *importData {
	return &importData{start: start}
}

func (d *importData) inSupports() bool {
	return d.supports.state == supportsIn
}

func (d *importData) layerRange() (Range, bool) {
	if !d.layer.has {
		return Range{}, false
	}
	return d.layer.rng, true
}

func (d *importData) supportsRange() (Range, bool) {
	if d.supports.state != supportsEnd {
		return Range{}, false
	}
	return d.supports.rng, true
}

type balancedItemKind int

const (
	balancedOther balancedItemKind = iota
	balancedURL
	balancedImageSet
	balancedLayer
	balancedSupports
	balancedLocal
	balancedGlobal
)

func balancedItemKindFromName(name string) balancedItemKind {
	switch name {
	case "url":
		return balancedURL
	case "image-set":
		return balancedImageSet
	case "layer":
		return balancedLayer
	case "supports":
		return balancedSupports
	case ":local":
		return balancedLocal
	case ":global":
		return balancedGlobal
	default:
		return balancedOther
	}
}

type balancedItem struct {
	kind balancedItemKind
	rng  Range
}

// Analyzer is a csslexer.Visitor that turns token events into Dependency and
// Warning values. Construct one with NewAnalyzer and drive it with
// (&csslexer.Lexer).Lex, or use Collect for the common case of gathering
// everything into two slices.
type Analyzer struct {
	modeData *ModeData

	scope             scopeKind
	importData        *importData // valid when scope == scopeInAtImport
	blockNestingLevel uint32
	allowImportAtRule bool
	balanced          []balancedItem
	isNextRulePrelude bool

	onDependency func(Dependency)
	onWarning    func(Warning)
}

// NewAnalyzer constructs an Analyzer. modeData may be nil, which disables
// all CSS Modules locality tracking (:local/:global, local idents, local
// custom properties, and :export are never inspected) and makes the
// Analyzer behave as a plain @import/url(...) dependency scanner.
func NewAnalyzer(modeData *ModeData, onDependency func(Dependency), onWarning func(Warning)) *Analyzer {
	return &Analyzer{
		modeData:          modeData,
		scope:             scopeTopLevel,
		allowImportAtRule: true,
		isNextRulePrelude: true,
		onDependency:      onDependency,
		onWarning:         onWarning,
	}
}

// isNextNestedSyntax would disambiguate a nested rule's prelude from a
// plain declaration by peeking past the next run of whitespace. Nothing in
// this package calls it; kept for parity with the reference lexer it was
// ported from.
func (a *Analyzer) isNextNestedSyntax(lexer *csslexer.Lexer) (bool, bool) {
	clone := *lexer
	if !clone.ConsumeWhiteSpaceAndComments() {
		return false, false
	}
	c, ok := clone.Cur()
	if !ok {
		return false, false
	}
	if c == '{' {
		return false, true
	}
	return !csslexer.IsNameStart(c), true
}

func (a *Analyzer) getMedia(lexer *csslexer.Lexer, start, end Pos) (string, bool) {
	media, ok := lexer.Slice(start, end)
	if !ok {
		return "", false
	}
	mediaLexer := csslexer.From(media)
	if !mediaLexer.Consume() {
		return "", false
	}
	mediaLexer.ConsumeWhiteSpaceAndComments()
	return media, true
}

func trimEndWhiteSpace(s string) string {
	return strings.TrimRightFunc(s, isWhiteSpaceRune)
}

func trimWhiteSpace(s string) string {
	return strings.TrimFunc(s, isWhiteSpaceRune)
}

func isWhiteSpaceRune(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func (a *Analyzer) consumeICSSExportProp(lexer *csslexer.Lexer) bool {
	for {
		c, ok := lexer.Cur()
		if !ok {
			return false
		}
		if c == ':' || c == '}' || c == ';' {
			break
		}
		if c == '/' {
			if n, ok := lexer.Peek(); ok && n == '*' {
				break
			}
		}
		if !lexer.Consume() {
			return false
		}
	}
	return true
}

func (a *Analyzer) consumeICSSExportValue(lexer *csslexer.Lexer) bool {
	for {
		c, ok := lexer.Cur()
		if !ok {
			return false
		}
		if c == '}' || c == ';' {
			break
		}
		if !lexer.Consume() {
			return false
		}
	}
	return true
}

func (a *Analyzer) lexICSSExport(lexer *csslexer.Lexer, start Pos) bool {
	if !lexer.ConsumeWhiteSpaceAndComments() {
		return false
	}
	c, ok := lexer.Cur()
	if !ok {
		return false
	}
	if c != '{' {
		end, ok := lexer.PeekPos()
		if !ok {
			return false
		}
		curPos, ok := lexer.CurPos()
		if !ok {
			return false
		}
		a.onWarning(UnexpectedWarning{Unexpected: Range{Start: curPos, End: end}, Range: Range{Start: start, End: end}})
		return true
	}
	if !lexer.Consume() {
		return false
	}
	if !lexer.ConsumeWhiteSpaceAndComments() {
		return false
	}
	for {
		c, ok := lexer.Cur()
		if !ok {
			return false
		}
		if c == '}' {
			break
		}
		if !lexer.ConsumeWhiteSpaceAndComments() {
			return false
		}
		propStart, ok := lexer.CurPos()
		if !ok {
			return false
		}
		if !a.consumeICSSExportProp(lexer) {
			return false
		}
		propEnd, ok := lexer.CurPos()
		if !ok {
			return false
		}
		if !lexer.ConsumeWhiteSpaceAndComments() {
			return false
		}
		if c, ok := lexer.Cur(); !ok || c != ':' {
			end, ok := lexer.PeekPos()
			if !ok {
				return false
			}
			curPos, ok := lexer.CurPos()
			if !ok {
				return false
			}
			a.onWarning(UnexpectedWarning{Unexpected: Range{Start: curPos, End: end}, Range: Range{Start: propStart, End: end}})
			return true
		}
		if !lexer.Consume() {
			return false
		}
		if !lexer.ConsumeWhiteSpaceAndComments() {
			return false
		}
		valueStart, ok := lexer.CurPos()
		if !ok {
			return false
		}
		if !a.consumeICSSExportValue(lexer) {
			return false
		}
		valueEnd, ok := lexer.CurPos()
		if !ok {
			return false
		}
		if c, ok := lexer.Cur(); ok && c == ';' {
			if !lexer.Consume() {
				return false
			}
			if !lexer.ConsumeWhiteSpaceAndComments() {
				return false
			}
		}
		prop, ok := lexer.Slice(propStart, propEnd)
		if !ok {
			return false
		}
		value, ok := lexer.Slice(valueStart, valueEnd)
		if !ok {
			return false
		}
		a.onDependency(ICSSExportDependency{Prop: trimEndWhiteSpace(prop), Value: trimEndWhiteSpace(value)})
	}
	return lexer.Consume()
}

func (a *Analyzer) lexLocalVar(lexer *csslexer.Lexer, start Pos) bool {
	if !lexer.ConsumeWhiteSpaceAndComments() {
		return false
	}
	minusStart, ok := lexer.CurPos()
	if !ok {
		return false
	}
	c, ok := lexer.Cur()
	n, nok := lexer.Peek()
	if !ok || c != '-' || !nok || n != '-' {
		end, ok := lexer.Peek2Pos()
		if !ok {
			return false
		}
		a.onWarning(UnexpectedWarning{Unexpected: Range{Start: minusStart, End: end}, Range: Range{Start: start, End: end}})
		return true
	}
	lexer.ConsumeIdentSequence()
	nameStart := minusStart + 2
	end, ok := lexer.CurPos()
	if !ok {
		return false
	}
	if !lexer.ConsumeWhiteSpaceAndComments() {
		return false
	}
	if c, ok := lexer.Cur(); !ok || c != ')' {
		end2, ok := lexer.PeekPos()
		if !ok {
			return false
		}
		curPos, ok := lexer.CurPos()
		if !ok {
			return false
		}
		a.onWarning(UnexpectedWarning{Unexpected: Range{Start: curPos, End: end2}, Range: Range{Start: nameStart, End: end2}})
		return true
	}
	name, ok := lexer.Slice(nameStart, end)
	if !ok {
		return false
	}
	a.onDependency(LocalVarDependency{Name: name, Range: Range{Start: minusStart, End: end}})
	return true
}

func (a *Analyzer) lexLocalVarDecl(lexer *csslexer.Lexer, name string, start, end Pos) bool {
	if !lexer.ConsumeWhiteSpaceAndComments() {
		return false
	}
	if c, ok := lexer.Cur(); !ok || c != ':' {
		end2, ok := lexer.PeekPos()
		if !ok {
			return false
		}
		curPos, ok := lexer.CurPos()
		if !ok {
			return false
		}
		a.onWarning(UnexpectedWarning{Unexpected: Range{Start: curPos, End: end2}, Range: Range{Start: start, End: end2}})
		return true
	}
	if !lexer.Consume() {
		return false
	}
	if !lexer.ConsumeWhiteSpaceAndComments() {
		return false
	}
	valueStart, ok := lexer.CurPos()
	if !ok {
		return false
	}
	if !a.consumeICSSExportValue(lexer) {
		return false
	}
	valueEnd, ok := lexer.CurPos()
	if !ok {
		return false
	}
	if c, ok := lexer.Cur(); ok && c == ';' {
		if !lexer.Consume() {
			return false
		}
		if !lexer.ConsumeWhiteSpaceAndComments() {
			return false
		}
	}
	value, ok := lexer.Slice(valueStart, valueEnd)
	if !ok {
		return false
	}
	a.onDependency(LocalVarDeclDependency{NameRange: Range{Start: start, End: end}, Name: name, Value: value})
	return true
}
