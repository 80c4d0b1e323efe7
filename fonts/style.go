package fonts

import "sync"

// styleTable maps style ids to styles. Style 0 always exists.
type styleTable struct {
	mu      sync.RWMutex
	styles  []Style
	defined []bool
}

func newStyleTable(initial map[StyleID]Style) *styleTable {
	t := &styleTable{
		styles:  []Style{{}},
		defined: []bool{true},
	}
	for id, s := range initial {
		t.set(id, s)
	}
	return t
}

func (t *styleTable) set(id StyleID, s Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for int(id) >= len(t.styles) {
		t.styles = append(t.styles, Style{})
		t.defined = append(t.defined, false)
	}
	t.styles[id] = s
	t.defined[id] = true
}

func (t *styleTable) get(id StyleID) (Style, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(id) >= len(t.styles) || !t.defined[id] {
		return t.styles[0], false
	}
	return t.styles[id], true
}

func (t *styleTable) has(id StyleID) bool {
	_, ok := t.get(id)
	return ok
}
