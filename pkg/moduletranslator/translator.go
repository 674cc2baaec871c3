// Package moduletranslator implements the Module Type Translator: the
// per-source-file facade over the Type-String Translator that also owns
// mutable JSDoc access, function-type merging, forward-declare
// bookkeeping, and per-file diagnostics.
package moduletranslator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tstype"
)

// Host is the driver-supplied contract for module-path resolution,
// blacklisting, and diagnostic reporting.
type Host interface {
	PathToModuleName(importerPath, importedPath string) string
	ConvertIndexImportShorthand() bool
	IsBlacklistedPath(path string) bool
	Untyped() bool
	DisableAutoQuoting() bool
	LogWarning(d Diagnostic)
}

// DiagnosticCategory is the severity of a Diagnostic.
type DiagnosticCategory string

const (
	CategoryError   DiagnosticCategory = "error"
	CategoryWarning DiagnosticCategory = "warning"
)

// Diagnostic records a file-position-anchored warning or error:
// {file, start, length, messageText, category, code}.
type Diagnostic struct {
	File        string
	Start       int
	Length      int
	MessageText string
	Category    DiagnosticCategory
	Code        int
}

// ForwardDeclareRecord is one entry of a file's forward-declares
// sequence: {modulePath, localAlias, explicitlyImported, defaultImport}.
type ForwardDeclareRecord struct {
	ModulePath         string
	LocalAlias         string
	ExplicitlyImported bool
	DefaultImport      bool
}

// ModuleTypeTranslator holds all per-source-file mutable state. Created when a file begins
// processing and discarded once the file has been rewritten and its
// forward declares spliced in.
type ModuleTypeTranslator struct {
	File    *stast.SourceFile
	Checker stast.Checker
	host    Host

	// RunID is a random UUID assigned when the translator is created.
	// Diagnostics do not carry it.
	RunID string

	symbolAliases map[int]string

	forwardDeclares []*ForwardDeclareRecord
	forwardByPath   map[string]*ForwardDeclareRecord
	aliasCounter    int

	typeBlacklistPaths map[string]bool

	Diagnostics []Diagnostic

	isForExterns bool

	translator *tstype.Translator

	comments map[stast.Node]*JSDocHandle
}

// New creates a ModuleTypeTranslator for one source file. typeBlacklist
// is the set of source paths whose declared types must render as "?".
func New(file *stast.SourceFile, checker stast.Checker, host Host, typeBlacklist map[string]bool, isForExterns bool) *ModuleTypeTranslator {
	if typeBlacklist == nil {
		typeBlacklist = map[string]bool{}
	}
	mtt := &ModuleTypeTranslator{
		File:               file,
		Checker:            checker,
		host:               host,
		RunID:              uuid.NewString(),
		symbolAliases:      make(map[int]string),
		forwardByPath:      make(map[string]*ForwardDeclareRecord),
		typeBlacklistPaths: typeBlacklist,
		isForExterns:       isForExterns,
		comments:           make(map[stast.Node]*JSDocHandle),
	}
	mtt.translator = tstype.New(checker, hostAdapter{mtt}, aliasAdapter{mtt}, 0)
	return mtt
}

// Translator exposes the wrapped Type-String Translator for callers that
// only need to render a type.
func (m *ModuleTypeTranslator) Translator() *tstype.Translator { return m.translator }

// IsForExterns reports whether this translator is operating in the
// Externs Generator's naming/alias policy.
func (m *ModuleTypeTranslator) IsForExterns() bool { return m.isForExterns }

// SetSymbolAlias records a local alias name currently in scope for sym.
func (m *ModuleTypeTranslator) SetSymbolAlias(sym *stast.Symbol, alias string) {
	if sym == nil {
		return
	}
	m.symbolAliases[sym.ID] = alias
}

// LookupAlias implements tstype.AliasProvider.
func (m *ModuleTypeTranslator) LookupAlias(symbolID int) (string, bool) {
	v, ok := m.symbolAliases[symbolID]
	return v, ok
}

// Error appends a fatal diagnostic for node.
func (m *ModuleTypeTranslator) Error(n stast.Node, message string) {
	start, length := 0, 0
	if n != nil {
		start, length = n.Pos(), n.End()-n.Pos()
	}
	m.Diagnostics = append(m.Diagnostics, Diagnostic{
		File: m.File.Path, Start: start, Length: length,
		MessageText: message, Category: CategoryError,
	})
}

// DebugWarn appends a non-actionable warning iff the host accepts
// warnings.
func (m *ModuleTypeTranslator) DebugWarn(n stast.Node, message string) {
	start, length := 0, 0
	if n != nil {
		start, length = n.Pos(), n.End()-n.Pos()
	}
	d := Diagnostic{
		File: m.File.Path, Start: start, Length: length,
		MessageText: message, Category: CategoryWarning,
	}
	m.Diagnostics = append(m.Diagnostics, d)
	if m.host != nil {
		m.host.LogWarning(d)
	}
}

// ForwardDeclare reserves a unique local alias for modulePath and
// records intent. A
// module already present is not re-registered but its flags are
// OR-combined; it returns the existing or newly reserved alias.
func (m *ModuleTypeTranslator) ForwardDeclare(modulePath string, sym *stast.Symbol, explicitlyImported, defaultImport bool) string {
	if rec, ok := m.forwardByPath[modulePath]; ok {
		rec.ExplicitlyImported = rec.ExplicitlyImported || explicitlyImported
		rec.DefaultImport = rec.DefaultImport || defaultImport
		return rec.LocalAlias
	}

	m.aliasCounter++
	alias := fmt.Sprintf("tsickle_forward_declare_%d", m.aliasCounter)
	rec := &ForwardDeclareRecord{
		ModulePath:         modulePath,
		LocalAlias:         alias,
		ExplicitlyImported: explicitlyImported,
		DefaultImport:      defaultImport,
	}
	m.forwardByPath[modulePath] = rec
	m.forwardDeclares = append(m.forwardDeclares, rec)
	return alias
}

// ForwardDeclares returns the ordered, deduplicated forward-declare
// records accumulated so far.
func (m *ModuleTypeTranslator) ForwardDeclares() []*ForwardDeclareRecord {
	return m.forwardDeclares
}

// InsertForwardDeclares returns an updated source file in which one
// synthetic RawStatement per registered module has been inserted
// immediately after the file-overview comment and module-system
// prologue and before the first real statement.
func (m *ModuleTypeTranslator) InsertForwardDeclares(file *stast.SourceFile) *stast.SourceFile {
	if len(m.forwardDeclares) == 0 {
		return file
	}

	var synthetic []stast.Node
	for _, rec := range m.forwardDeclares {
		text := fmt.Sprintf("goog.forwardDeclare('%s') // %s", rec.ModulePath, rec.LocalAlias)
		synthetic = append(synthetic, &stast.RawStatement{Text: text})
	}

	out := *file
	out.Statements = append(append([]stast.Node{}, synthetic...), file.Statements...)
	return &out
}

// hostAdapter narrows Host down to tstype.Host.
type hostAdapter struct{ m *ModuleTypeTranslator }

func (h hostAdapter) IsBlacklistedPath(path string) bool {
	if h.m.typeBlacklistPaths[path] {
		return true
	}
	if h.m.host != nil {
		return h.m.host.IsBlacklistedPath(path)
	}
	return false
}

func (h hostAdapter) Untyped() bool {
	return h.m.host != nil && h.m.host.Untyped()
}

// aliasAdapter narrows ModuleTypeTranslator down to tstype.AliasProvider.
type aliasAdapter struct{ m *ModuleTypeTranslator }

func (a aliasAdapter) LookupAlias(symbolID int) (string, bool) { return a.m.LookupAlias(symbolID) }
func (a aliasAdapter) ForwardDeclare(modulePath string, sym *stast.Symbol, explicitlyImported, defaultImport bool) string {
	return a.m.ForwardDeclare(modulePath, sym, explicitlyImported, defaultImport)
}
func (a aliasAdapter) DebugWarn(n stast.Node, message string) { a.m.DebugWarn(n, message) }

// translateType is a small convenience used by handlers throughout
// pkg/annotator and pkg/externs.
func (m *ModuleTypeTranslator) TranslateType(t *stast.Type, ctx stast.Node) string {
	return m.translator.Translate(t, ctx)
}
