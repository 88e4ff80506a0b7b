package dependency

import (
	csslexer "github.com/SyMind/css-module-lexer"
)

// Collect runs an Analyzer over source and gathers every Dependency and
// Warning it produces into two slices, in the order the lexer found them.
// modeData may be nil to disable CSS Modules locality tracking. ok is false
// only when the lexer hit an unexpected EOF mid-token and had to abort the
// scan early; whatever was collected before that point is still returned.
func Collect(source string, modeData *ModeData) (dependencies []Dependency, warnings []Warning, ok bool) {
	analyzer := NewAnalyzer(modeData,
		func(d Dependency) { dependencies = append(dependencies, d) },
		func(w Warning) { warnings = append(warnings, w) },
	)
	lexer := csslexer.From(source)
	ok = lexer.Lex(analyzer)
	return
}
