package dependency

import (
	"fmt"

	"github.com/SyMind/css-module-lexer/internal/diagnostic"
)

// prettyMsg wraps r and text into a diagnostic.Msg and renders it, always
// with source context included since a Warning without its underlined
// source line is not very "pretty".
func prettyMsg(source string, r Range, text string, info diagnostic.TerminalInfo) string {
	src := diagnostic.Source{PrettyPath: "<css>", Contents: source}
	msg := diagnostic.Msg{
		Source: &src,
		Start:  int32(r.Start),
		Length: r.Len(),
		Text:   text,
		Kind:   diagnostic.Warning,
	}
	return msg.String(diagnostic.StderrOptions{IncludeSource: true}, info)
}

func (w UnexpectedWarning) Pretty(source string, info diagnostic.TerminalInfo) string {
	text := "unexpected token"
	if snippet, ok := w.Unexpected.Slice(source); ok {
		text = fmt.Sprintf("unexpected %q", snippet)
	}
	return prettyMsg(source, w.Range, text, info)
}

func (w DuplicateUrlWarning) Pretty(source string, info diagnostic.TerminalInfo) string {
	return prettyMsg(source, w.Range, "this @import rule already specifies a url", info)
}

func (w NamespaceNotSupportedWarning) Pretty(source string, info diagnostic.TerminalInfo) string {
	return prettyMsg(source, w.Range, "@namespace is not supported in a bundled stylesheet", info)
}

func (w NotPrecededAtImportWarning) Pretty(source string, info diagnostic.TerminalInfo) string {
	return prettyMsg(source, w.Range, "@import rules must precede all other rules", info)
}

func (w ExpectedUrlWarning) Pretty(source string, info diagnostic.TerminalInfo) string {
	return prettyMsg(source, w.Range, "expected a url() before this ';'", info)
}

func (w ExpectedBeforeWarning) Pretty(source string, info diagnostic.TerminalInfo) string {
	text := "out of order"
	if snippet, ok := w.ShouldAfter.Slice(source); ok {
		text = fmt.Sprintf("expected this before %q", snippet)
	}
	return prettyMsg(source, w.Range, text, info)
}
