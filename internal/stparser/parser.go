// Package stparser supplies the concrete front door for the "parsed,
// type-checked program" the core packages treat as an external given:
// a tree-sitter-backed parser that builds internal/stast trees, and a
// Checker implementation over a flat cross-file symbol table.
package stparser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Manager owns lazily-created parser pools, one per (language, isTSX)
// pair, and exposes byte-slice parsing plus the raw language pointer
// queries need for query compilation.
type Manager struct {
	pools  map[poolKey]*parserPool
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewManager creates a Manager. The returned value must be closed via
// Close() once no more parsing is needed.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{pools: make(map[poolKey]*parserPool), logger: logger}
}

// Parse parses source under lang, returning a Tree the caller must
// Close(). isTSX only affects the TypeScript grammar.
func (m *Manager) Parse(source []byte, lang Language, isTSX bool) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("stparser: cannot parse unknown language")
	}

	pool, err := m.poolFor(lang, isTSX)
	if err != nil {
		return nil, fmt.Errorf("stparser: get pool for %s: %w", lang, err)
	}

	parser, err := pool.acquire()
	if err != nil {
		return nil, fmt.Errorf("stparser: acquire parser: %w", err)
	}
	tree := parser.Parse(source, nil)
	pool.release(parser)

	if tree == nil {
		return nil, fmt.Errorf("stparser: parser returned nil tree")
	}
	if tree.RootNode().HasError() {
		m.logger.Warn("parse tree contains errors", "language", lang.String())
	}
	return tree, nil
}

// ParseFile parses source, selecting the grammar from filePath's extension.
func (m *Manager) ParseFile(source []byte, filePath string) (*ts.Tree, error) {
	lang := DetectLanguage(filePath)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("stparser: unsupported file extension: %s", filePath)
	}
	return m.Parse(source, lang, IsTSXFile(filePath))
}

// LanguagePointer exposes the raw tree-sitter grammar pointer so the
// queries package can compile queries against the same grammar.
func (m *Manager) LanguagePointer(lang Language, isTSX bool) (unsafe.Pointer, error) {
	switch lang {
	case LanguageTypeScript:
		if isTSX {
			return ts_typescript.LanguageTSX(), nil
		}
		return ts_typescript.LanguageTypescript(), nil
	case LanguageJavaScript:
		return ts_javascript.Language(), nil
	default:
		return nil, fmt.Errorf("stparser: unsupported language: %s", lang)
	}
}

// Close releases every parser pool. After Close the Manager is unusable.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, pool := range m.pools {
		pool.close()
	}
	m.pools = make(map[poolKey]*parserPool)
	return nil
}

func (m *Manager) poolFor(lang Language, isTSX bool) (*parserPool, error) {
	key := poolKey{lang: lang, isTSX: isTSX}

	m.mu.RLock()
	pool, ok := m.pools[key]
	m.mu.RUnlock()
	if ok {
		return pool, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if pool, ok = m.pools[key]; ok {
		return pool, nil
	}

	langPtr, err := m.LanguagePointer(lang, isTSX)
	if err != nil {
		return nil, err
	}
	pool = newParserPool(lang, langPtr, isTSX, optimalPoolSize(), m.logger)
	m.pools[key] = pool
	return pool, nil
}
