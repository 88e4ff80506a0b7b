package dependency

import (
	"strings"

	csslexer "github.com/SyMind/css-module-lexer"
)

// IsSelector reports whether the Lexer is about to enter a context that
// could be read as a nested rule's prelude. No block callback updates
// isNextRulePrelude, so this always answers with whatever it was last set to by an
// @media/@supports/@layer/@container at-keyword — conservatively true at
// the start of a file.
func (a *Analyzer) IsSelector(lexer *csslexer.Lexer) (bool, bool) {
	return a.isNextRulePrelude, true
}

func (a *Analyzer) URL(lexer *csslexer.Lexer, start, end, contentStart, contentEnd csslexer.Pos) bool {
	value, ok := lexer.Slice(contentStart, contentEnd)
	if !ok {
		return false
	}
	switch a.scope {
	case scopeInAtImport:
		id := a.importData
		if id.inSupports() {
			return true
		}
		if id.url != nil {
			a.onWarning(DuplicateUrlWarning{Range: Range{Start: id.start, End: end}})
			return true
		}
		v := value
		id.url = &v
		r := Range{Start: start, End: end}
		id.urlRange = &r
	case scopeInBlock:
		a.onDependency(URLDependency{Request: value, Range: Range{Start: start, End: end}, Kind: UrlRangeFunction})
	}
	return true
}

func (a *Analyzer) String(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	switch a.scope {
	case scopeInAtImport:
		id := a.importData
		insideURL := len(a.balanced) > 0 && a.balanced[len(a.balanced)-1].kind == balancedURL

		if id.inSupports() || (!insideURL && id.url != nil) {
			return true
		}
		if insideURL && id.url != nil {
			a.onWarning(DuplicateUrlWarning{Range: Range{Start: id.start, End: end}})
			return true
		}

		value, ok := lexer.Slice(start+1, end-1)
		if !ok {
			return false
		}
		id.url = &value
		// For url("inside_url") url_range is determined in RightParenthesis.
		if !insideURL {
			r := Range{Start: start, End: end}
			id.urlRange = &r
		}
	case scopeInBlock:
		if len(a.balanced) == 0 {
			return true
		}
		last := a.balanced[len(a.balanced)-1]
		var kind UrlRangeKind
		switch last.kind {
		case balancedURL:
			kind = UrlRangeString
		case balancedImageSet:
			kind = UrlRangeFunction
		default:
			return true
		}
		value, ok := lexer.Slice(start+1, end-1)
		if !ok {
			return false
		}
		a.onDependency(URLDependency{Request: value, Range: Range{Start: start, End: end}, Kind: kind})
	}
	return true
}

func (a *Analyzer) AtKeyword(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	raw, ok := lexer.Slice(start, end)
	if !ok {
		return false
	}
	name := strings.ToLower(raw)
	switch name {
	case "@namespace":
		a.scope = scopeAtNamespaceInvalid
		a.onWarning(NamespaceNotSupportedWarning{Range: Range{Start: start, End: end}})
	case "@import":
		if !a.allowImportAtRule {
			a.scope = scopeAtImportInvalid
			a.onWarning(NotPrecededAtImportWarning{Range: Range{Start: start, End: end}})
			return true
		}
		a.importData = newImportData(start)
		a.scope = scopeInAtImport
	case "@media", "@supports", "@layer", "@container":
		a.isNextRulePrelude = true
		// else-if self.allow_mode_switch { self.is_next_rule_prelude = false }
		// is disabled in the reference implementation; every other
		// at-rule leaves isNextRulePrelude untouched here too.
	}
	return true
}

func (a *Analyzer) Semicolon(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	switch a.scope {
	case scopeInAtImport:
		id := a.importData
		if id.url == nil {
			a.onWarning(ExpectedUrlWarning{Range: Range{Start: id.start, End: end}})
			a.scope = scopeTopLevel
			return true
		}
		url := *id.url
		if id.urlRange == nil {
			a.onWarning(UnexpectedWarning{Unexpected: Range{Start: start, End: end}, Range: Range{Start: id.start, End: end}})
			a.scope = scopeTopLevel
			return true
		}
		urlRange := *id.urlRange

		var layer *string
		if id.layer.has {
			if urlRange.Start > id.layer.rng.Start {
				a.onWarning(ExpectedBeforeWarning{ShouldAfter: id.layer.rng, Range: urlRange})
				a.scope = scopeTopLevel
				return true
			}
			v := id.layer.value
			layer = &v
		}

		var supports *string
		switch id.supports.state {
		case supportsIn:
			a.onWarning(UnexpectedWarning{Unexpected: Range{Start: start, End: end}, Range: Range{Start: id.supports.start, End: end}})
		case supportsEnd:
			if urlRange.Start > id.supports.rng.Start {
				a.onWarning(ExpectedBeforeWarning{ShouldAfter: id.supports.rng, Range: urlRange})
				a.scope = scopeTopLevel
				return true
			}
			v := id.supports.value
			supports = &v
		}

		if layerRange, ok := id.layerRange(); ok {
			if supportsRange, ok2 := id.supportsRange(); ok2 {
				if layerRange.Start > supportsRange.Start {
					a.onWarning(ExpectedBeforeWarning{ShouldAfter: supportsRange, Range: layerRange})
					a.scope = scopeTopLevel
					return true
				}
			}
		}

		lastEnd := urlRange.End
		if r, ok := id.supportsRange(); ok {
			lastEnd = r.End
		} else if r, ok := id.layerRange(); ok {
			lastEnd = r.End
		}
		var media *string
		if m, ok := a.getMedia(lexer, lastEnd, start); ok {
			media = &m
		}

		a.onDependency(ImportDependency{
			Request:  url,
			Range:    Range{Start: id.start, End: end},
			Layer:    layer,
			Supports: supports,
			Media:    media,
		})
		a.scope = scopeTopLevel

	case scopeAtImportInvalid, scopeAtNamespaceInvalid:
		a.scope = scopeTopLevel

	case scopeInBlock:
		// TODO: css modules
	}
	return true
}

func (a *Analyzer) Function(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	raw, ok := lexer.Slice(start, end-1)
	if !ok {
		return false
	}
	name := strings.ToLower(raw)
	a.balanced = append(a.balanced, balancedItem{kind: balancedItemKindFromName(name), rng: Range{Start: start, End: end}})

	if a.scope == scopeInAtImport && name == "supports" {
		a.importData.supports = importDataSupports{state: supportsIn, start: start}
	}

	if a.modeData == nil {
		return true
	}
	if a.modeData.isLocalMode() && name == "var" {
		return a.lexLocalVar(lexer, start)
	}
	return true
}

func (a *Analyzer) LeftParenthesis(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	a.balanced = append(a.balanced, balancedItem{kind: balancedOther, rng: Range{Start: start, End: end}})
	return true
}

func (a *Analyzer) RightParenthesis(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	if len(a.balanced) == 0 {
		return true
	}
	last := a.balanced[len(a.balanced)-1]
	a.balanced = a.balanced[:len(a.balanced)-1]

	if a.modeData != nil && (last.kind == balancedLocal || last.kind == balancedGlobal) {
		if len(a.balanced) > 0 {
			switch a.balanced[len(a.balanced)-1].kind {
			case balancedLocal:
				a.modeData.setLocal()
			case balancedGlobal:
				a.modeData.setGlobal()
			default:
				a.modeData.setNone()
			}
		} else {
			a.modeData.setNone()
		}
		a.onDependency(ReplaceDependency{Content: "", Range: Range{Start: start, End: end}})
		return true
	}

	if a.scope == scopeInAtImport {
		id := a.importData
		notInSupports := !id.inSupports()
		switch {
		case last.kind == balancedURL && notInSupports:
			r := Range{Start: last.rng.Start, End: end}
			id.urlRange = &r
		case last.kind == balancedLayer && notInSupports:
			v, ok := lexer.Slice(last.rng.End, end-1)
			if !ok {
				return false
			}
			id.layer = importDataLayer{has: true, value: v, rng: Range{Start: last.rng.Start, End: end}}
		case last.kind == balancedSupports:
			v, ok := lexer.Slice(last.rng.End, end-1)
			if !ok {
				return false
			}
			id.supports = importDataSupports{state: supportsEnd, value: v, rng: Range{Start: last.rng.Start, End: end}}
		}
	}
	return true
}

func (a *Analyzer) Ident(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	switch a.scope {
	case scopeInBlock:
		if a.modeData == nil {
			return true
		}
		if a.modeData.isLocalMode() {
			text, ok := lexer.Slice(start, end)
			if !ok {
				return false
			}
			if name, found := strings.CutPrefix(text, "--"); found {
				return a.lexLocalVarDecl(lexer, name, start, end)
			}
		}
	case scopeInAtImport:
		text, ok := lexer.Slice(start, end)
		if !ok {
			return false
		}
		if strings.ToLower(text) == "layer" {
			a.importData.layer = importDataLayer{has: true, value: "", rng: Range{Start: start, End: end}}
		}
	}
	return true
}

func (a *Analyzer) Class(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	if a.modeData == nil {
		return true
	}
	if a.modeData.isLocalMode() {
		start := start + 1
		name, ok := lexer.Slice(start, end)
		if !ok {
			return false
		}
		a.onDependency(LocalIdentDependency{Name: name, Range: Range{Start: start, End: end}})
	}
	return true
}

func (a *Analyzer) ID(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	if a.modeData == nil {
		return true
	}
	if a.modeData.isLocalMode() {
		start := start + 1
		name, ok := lexer.Slice(start, end)
		if !ok {
			return false
		}
		a.onDependency(LocalIdentDependency{Name: name, Range: Range{Start: start, End: end}})
	}
	return true
}

func (a *Analyzer) LeftCurlyBracket(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	switch a.scope {
	case scopeTopLevel:
		a.allowImportAtRule = false
		a.scope = scopeInBlock
		a.blockNestingLevel = 1
	case scopeInBlock:
		a.blockNestingLevel++
	}
	return true
}

func (a *Analyzer) RightCurlyBracket(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	if a.scope == scopeInBlock {
		a.blockNestingLevel--
		if a.blockNestingLevel == 0 {
			a.scope = scopeTopLevel
		}
	}
	return true
}

func (a *Analyzer) PseudoFunction(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	raw, ok := lexer.Slice(start, end-1)
	if !ok {
		return false
	}
	name := strings.ToLower(raw)
	a.balanced = append(a.balanced, balancedItem{kind: balancedItemKindFromName(name), rng: Range{Start: start, End: end}})

	if a.modeData != nil {
		switch name {
		case ":global":
			a.modeData.setGlobal()
			a.onDependency(ReplaceDependency{Content: "", Range: Range{Start: start, End: end}})
		case ":local":
			a.modeData.setLocal()
			a.onDependency(ReplaceDependency{Content: "", Range: Range{Start: start, End: end}})
		}
	}
	return true
}

func (a *Analyzer) PseudoClass(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	if a.modeData == nil {
		return true
	}
	raw, ok := lexer.Slice(start, end)
	if !ok {
		return false
	}
	name := strings.ToLower(raw)
	if name == ":global" || name == ":local" {
		if !lexer.ConsumeWhiteSpaceAndComments() {
			return false
		}
		end2, ok := lexer.CurPos()
		if !ok {
			return false
		}
		raw2, ok := lexer.Slice(end, end2)
		if !ok {
			return false
		}
		a.onDependency(ReplaceDependency{Content: trimWhiteSpace(raw2), Range: Range{Start: start, End: end2}})
		if name == ":global" {
			a.modeData.setGlobal()
		} else {
			a.modeData.setLocal()
		}
		return true
	}
	if a.scope == scopeTopLevel && name == ":export" {
		if !a.lexICSSExport(lexer, start) {
			return false
		}
		endPos, ok := lexer.CurPos()
		if !ok {
			return false
		}
		a.onDependency(ReplaceDependency{Content: "", Range: Range{Start: start, End: endPos}})
	}
	return true
}

func (a *Analyzer) Comma(lexer *csslexer.Lexer, start, end csslexer.Pos) bool {
	if a.modeData != nil {
		a.modeData.setNone()
	}
	return true
}

var _ csslexer.Visitor = (*Analyzer)(nil)
