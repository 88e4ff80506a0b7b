// Package dependency walks CSS source with a csslexer.Lexer and reports the
// external resources a stylesheet depends on: @import rules, url(...)
// references, and, when CSS Modules locality tracking is turned on, the
// :local()/:global() scoped identifiers and ICSS :export block.
package dependency

import (
	csslexer "github.com/SyMind/css-module-lexer"
	"github.com/SyMind/css-module-lexer/internal/diagnostic"
)

// Range and Pos are the same byte-offset types the lexer produces; aliased
// here so callers never have to import csslexer just to read a Dependency.
type Range = csslexer.Range
type Pos = csslexer.Pos

// UrlRangeKind tells callers that rewrite the source what may be written in
// place of a URLDependency's Range: UrlRangeFunction marks an unquoted
// url(...) token or a quoted string directly inside image-set(...), where a
// url(...) may stand; UrlRangeString marks the quoted string inside
// url("..."), which must be replaced by a quoted string.
type UrlRangeKind int

const (
	UrlRangeFunction UrlRangeKind = iota
	UrlRangeString
)

// Dependency is implemented by every kind of dependency an Analyzer can
// report. There is no shared behavior across variants — it exists purely so
// callers can type-switch on the concrete kind.
type Dependency interface {
	isDependency()
}

// URLDependency is a url(...) or image-set(...) reference found inside a
// style block, outside of any @import.
type URLDependency struct {
	Request string
	Range   Range
	Kind    UrlRangeKind
}

func (URLDependency) isDependency() {}

// ImportDependency is a complete, well-formed @import rule.
type ImportDependency struct {
	Request  string
	Range    Range
	Layer    *string
	Supports *string
	Media    *string
}

func (ImportDependency) isDependency() {}

// ReplaceDependency marks a span of source a caller should overwrite with
// Content (often the empty string) when rewriting CSS Modules syntax out of
// the stylesheet — e.g. a ":local(" / ":global(" wrapper.
type ReplaceDependency struct {
	Content string
	Range   Range
}

func (ReplaceDependency) isDependency() {}

// LocalIdentDependency is a class or id selector scoped by CSS Modules
// locality, e.g. ".foo" inside a :local block.
type LocalIdentDependency struct {
	Name  string
	Range Range
}

func (LocalIdentDependency) isDependency() {}

// LocalVarDependency is a `var(--foo)` reference inside :local scope.
type LocalVarDependency struct {
	Name  string
	Range Range
}

func (LocalVarDependency) isDependency() {}

// LocalVarDeclDependency is a custom property declaration, `--foo: ...`,
// made inside :local scope.
type LocalVarDeclDependency struct {
	NameRange Range
	Name      string
	Value     string
}

func (LocalVarDeclDependency) isDependency() {}

// ICSSExportDependency is one `prop: value;` line inside a top-level
// `:export { ... }` block.
type ICSSExportDependency struct {
	Prop  string
	Value string
}

func (ICSSExportDependency) isDependency() {}

// Warning is implemented by every malformed-input condition an Analyzer can
// report. Warnings never stop the scan; they describe source the Analyzer
// chose to skip over or partially interpret. Pretty renders one, clang-style,
// against the source it was found in — see dependency/pretty.go.
type Warning interface {
	isWarning()
	Pretty(source string, info diagnostic.TerminalInfo) string
}

// UnexpectedWarning reports a span the Analyzer expected to parse as one
// specific construct (named by Range) but which instead contained
// Unexpected.
type UnexpectedWarning struct {
	Unexpected Range
	Range      Range
}

func (UnexpectedWarning) isWarning() {}

// DuplicateUrlWarning reports an @import that supplied a URL more than once,
// e.g. `@import url("a") url("b");`. A bare string after the URL is ignored
// without a warning.
type DuplicateUrlWarning struct {
	Range Range
}

func (DuplicateUrlWarning) isWarning() {}

// NamespaceNotSupportedWarning reports an @namespace rule, which has no
// meaning in a bundled stylesheet.
type NamespaceNotSupportedWarning struct {
	Range Range
}

func (NamespaceNotSupportedWarning) isWarning() {}

// NotPrecededAtImportWarning reports an @import that appears after another
// rule, where the CSS grammar no longer allows it.
type NotPrecededAtImportWarning struct {
	Range Range
}

func (NotPrecededAtImportWarning) isWarning() {}

// ExpectedUrlWarning reports an @import rule that reached its terminating
// ";" without ever supplying a URL.
type ExpectedUrlWarning struct {
	Range Range
}

func (ExpectedUrlWarning) isWarning() {}

// ExpectedBeforeWarning reports two @import clauses found out of the order
// the CSS grammar requires (the URL must precede layer() and supports(), and
// layer() must precede supports()). Range is the clause that should come
// first; ShouldAfter is the clause that should follow it.
type ExpectedBeforeWarning struct {
	ShouldAfter Range
	Range       Range
}

func (ExpectedBeforeWarning) isWarning() {}
