package dependency

type cssModulesMode int

const (
	modeLocal cssModulesMode = iota
	modeGlobal
	modeNone
)

// ModeData tracks whether the Analyzer is currently inside CSS Modules
// ":local" or ":global" scope. default is set once, at construction, from
// whether the stylesheet is locally-scoped by default (the common case for
// a *.module.css file); current tracks the most recent explicit :local/
// :global the Analyzer has seen and is reset to "none" at every comma (see
// Analyzer.Comma) so scoping never leaks across comma-separated selectors.
type ModeData struct {
	defaultMode cssModulesMode
	current     cssModulesMode
}

// NewModeData constructs locality tracking. When local is true, selectors
// are scoped by default and an explicit :global() is needed to opt out;
// when false, the reverse.
func NewModeData(local bool) *ModeData {
	defaultMode := modeGlobal
	if local {
		defaultMode = modeLocal
	}
	return &ModeData{defaultMode: defaultMode, current: modeNone}
}

func (m *ModeData) isLocalMode() bool {
	switch m.current {
	case modeLocal:
		return true
	case modeGlobal:
		return false
	default:
		return m.defaultMode == modeLocal
	}
}

func (m *ModeData) setLocal()  { m.current = modeLocal }
func (m *ModeData) setGlobal() { m.current = modeGlobal }
func (m *ModeData) setNone()   { m.current = modeNone }
