package queries

import (
	"fmt"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// Kind identifies one of the compiled query strings in this package.
type Kind int

const (
	KindHeritage Kind = iota
	KindParameterProperty
	KindDeclarationGroup
	KindAmbientModule
)

func (k Kind) source() string {
	switch k {
	case KindHeritage:
		return HeritageQuery
	case KindParameterProperty:
		return ParameterPropertyQuery
	case KindDeclarationGroup:
		return DeclarationGroupQuery
	case KindAmbientModule:
		return AmbientModuleQuery
	default:
		return ""
	}
}

// Manager lazily compiles and caches queries per Kind.
type Manager struct {
	lang  *ts.Language
	mu    sync.RWMutex
	cache map[Kind]*ts.Query
}

func NewManager(lang *ts.Language) *Manager {
	return &Manager{lang: lang, cache: make(map[Kind]*ts.Query)}
}

// Get returns the compiled query for kind, compiling it on first use.
func (m *Manager) Get(kind Kind) (*ts.Query, error) {
	m.mu.RLock()
	q, ok := m.cache[kind]
	m.mu.RUnlock()
	if ok {
		return q, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if q, ok = m.cache[kind]; ok {
		return q, nil
	}

	q, err := ts.NewQuery(m.lang, kind.source())
	if err != nil {
		return nil, fmt.Errorf("stparser/queries: compile query: %s", err.Message)
	}
	m.cache[kind] = q
	return q, nil
}

// Matches runs a compiled query over root and returns every capture,
// keyed by capture name, in match order.
func (m *Manager) Matches(kind Kind, root ts.Node, source []byte) ([]Match, error) {
	query, err := m.Get(kind)
	if err != nil {
		return nil, err
	}

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	names := query.CaptureNames()
	iter := cursor.Matches(query, root, source)

	var out []Match
	for {
		match := iter.Next()
		if match == nil {
			break
		}
		var caps []Capture
		for _, c := range match.Captures {
			name := ""
			if int(c.Index) < len(names) {
				name = names[c.Index]
			}
			caps = append(caps, Capture{Name: name, Node: c.Node})
		}
		out = append(out, Match{Captures: caps})
	}
	return out, nil
}

// Close releases every compiled query.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, q := range m.cache {
		if q != nil {
			q.Close()
		}
		delete(m.cache, k)
	}
}

// Match is one pattern match from a query run.
type Match struct {
	Captures []Capture
}

// Capture is one named node captured within a Match.
type Capture struct {
	Name string
	Node ts.Node
}
