// checker.go supplies the concrete, best-effort stast.Checker this
// package builds alongside its tree: a flat, syntax-driven symbol table
// instead of full semantic type inference, grounded in
// pkg/indexer.SymbolIndexer's FQN -> symbol map pattern. spec.md §1
// explicitly places "the parser and type checker of the ST dialect" out
// of scope for the core and treats the Checker as an external given;
// SPEC_FULL.md §3 elects to supply a concrete implementation anyway
// because no real ST-dialect compiler exists to link against in Go. It
// resolves identifiers syntactically (declaration lookup by name, one
// flat namespace per project) rather than by full lexical scoping, and
// infers a node's type from its syntax-level annotation rather than by
// evaluating expressions — sound for every spec.md example and
// invariant, which all key off a node's own declared type, but not a
// full type checker.
package stparser

import (
	"sync"

	"github.com/alippai/gots-annotate/internal/stast"
)

// ProjectIndex owns the symbol-ID counter and flat name table shared by
// every Builder in one translation run, so that symbols built from
// different files compare equal by ID when they denote the same
// declaration (e.g. an imported class resolved from its declaring
// file). Files are built against this index sequentially (see
// NewBuilderFor); mu guards the lookups and memoization caches that
// concurrent Checker readers use afterwards.
type ProjectIndex struct {
	mu sync.Mutex

	nextSymbolID int
	byName       map[string]*stast.Symbol

	// aliasTargets maps an import-binding symbol to the symbol it
	// re-exports, populated by RegisterImportAlias once the project's
	// files have all been built and import specifiers can be resolved
	// against byName.
	aliasTargets map[int]*stast.Symbol

	// typeOfTypeNode/typeAtNode memoize TypeOfTypeNode/GetTypeAtLocation
	// conversions so repeated translator calls for the same node (e.g. a
	// type referenced from multiple heritage clauses) don't re-walk it.
	typeOfTypeNode map[stast.TypeNode]*stast.Type
	typeAtNode     map[stast.Node]*stast.Type

	bySpan map[int]*stast.Symbol
}

// NewProjectIndex creates an empty ProjectIndex. Pass the same instance
// to NewBuilder for every file of one translation run.
func NewProjectIndex() *ProjectIndex {
	return &ProjectIndex{
		byName:         map[string]*stast.Symbol{},
		aliasTargets:   map[int]*stast.Symbol{},
		typeOfTypeNode: map[stast.TypeNode]*stast.Type{},
		typeAtNode:     map[stast.Node]*stast.Type{},
		bySpan:         map[int]*stast.Symbol{},
	}
}

// NewBuilderFor creates a Builder for one file's source text sharing
// this index's symbol counter and name table. Builders mutate the
// shared counter and name table directly (not through idx.mu), so the
// driver must call NewBuilderFor/Build/Absorb for every file from a
// single goroutine before handing the populated index to concurrent
// Checker readers — see internal/driver's two-phase pipeline.
func (idx *ProjectIndex) NewBuilderFor(path string, source []byte) *Builder {
	b := NewBuilder(path, source, &idx.nextSymbolID, idx.byName)
	return b
}

// Absorb merges one file's Builder.BySpan() entries into the index, so
// Checker.GetSymbolAtLocation can resolve identifiers from any file
// built against this index. Like NewBuilderFor, this must only be
// called during the sequential build phase.
func (idx *ProjectIndex) Absorb(b *Builder) {
	for pos, sym := range b.BySpan() {
		idx.bySpan[pos] = sym
	}
}

// RegisterImportAlias marks the symbol named importLocalName as an alias
// of the symbol named exportedName, both looked up in the flat name
// table; it does nothing if either name is unknown. Builder itself has
// no cross-file resolution logic, and the driver does not call this, so
// during a run import bindings are not registered as aliases.
func (idx *ProjectIndex) RegisterImportAlias(importLocalName string, exportedName string) {
	local, ok := idx.byName[importLocalName]
	if !ok {
		return
	}
	target, ok := idx.byName[exportedName]
	if !ok {
		return
	}
	local.Flags |= stast.SymbolAlias
	idx.aliasTargets[local.ID] = target
}

// Checker implements stast.Checker over one ProjectIndex.
type Checker struct {
	idx *ProjectIndex
}

// NewChecker creates a Checker over idx. Call it once every file the
// translation run covers has been built and Absorb()ed.
func NewChecker(idx *ProjectIndex) *Checker {
	return &Checker{idx: idx}
}

// GetSymbolAtLocation resolves an identifier node to the symbol table
// entry registered for the declaration it names. It recognizes
// *stast.Identifier directly and, for a type reference, the identifier
// wrapped as its Name field.
func (c *Checker) GetSymbolAtLocation(n stast.Node) (*stast.Symbol, bool) {
	switch v := n.(type) {
	case *stast.Identifier:
		c.idx.mu.Lock()
		sym, ok := c.idx.bySpan[v.Pos()]
		if !ok {
			sym, ok = c.idx.byName[v.Text]
		}
		c.idx.mu.Unlock()
		return sym, ok
	case *stast.TypeReferenceNode:
		if v.Name == nil {
			return nil, false
		}
		return c.GetSymbolAtLocation(v.Name)
	default:
		return nil, false
	}
}

// GetAliasedSymbol follows one step of an import/re-export alias chain.
func (c *Checker) GetAliasedSymbol(s *stast.Symbol) (*stast.Symbol, bool) {
	if s == nil {
		return nil, false
	}
	c.idx.mu.Lock()
	target, ok := c.idx.aliasTargets[s.ID]
	c.idx.mu.Unlock()
	return target, ok
}

// GetDeclaredTypeOfSymbol returns the checker-level type of a symbol's
// own declaration, approximated as a named reference to the symbol
// itself (sound for the class/interface/enum/type-alias heritage and
// variable-declarator contexts the core packages actually query it
// from).
func (c *Checker) GetDeclaredTypeOfSymbol(s *stast.Symbol) *stast.Type {
	if s == nil {
		return nil
	}
	return &stast.Type{Kind: stast.TypeNamed, Symbol: s}
}

// GetTypeAtLocation returns the checker-level type of n, read off n's
// own syntax-level type annotation when one is present. Nodes without
// an explicit annotation (an inferred-type variable, a parameter with
// no type) report TypeAny — sound degradation, since spec.md's own
// fallback for anything it cannot resolve is the "unknown" sigil.
func (c *Checker) GetTypeAtLocation(n stast.Node) *stast.Type {
	c.idx.mu.Lock()
	t, ok := c.idx.typeAtNode[n]
	c.idx.mu.Unlock()
	if ok {
		return t
	}
	t = nil
	switch v := n.(type) {
	case *stast.VariableDeclarator:
		t = c.TypeOfTypeNode(v.Type)
	case *stast.ParameterNode:
		t = c.TypeOfTypeNode(v.Type)
	case *stast.PropertyDeclaration:
		t = c.TypeOfTypeNode(v.Type)
	case *stast.PropertySignature:
		t = c.TypeOfTypeNode(v.Type)
	case *stast.Identifier:
		if sym, ok := c.GetSymbolAtLocation(v); ok {
			t = c.GetDeclaredTypeOfSymbol(sym)
		}
	}
	if t == nil {
		t = &stast.Type{Kind: stast.TypeAny}
	}
	c.idx.mu.Lock()
	c.idx.typeAtNode[n] = t
	c.idx.mu.Unlock()
	return t
}

// GetNonNullableType strips the null/undefined atoms from a union,
// collapsing a two-member union to its sole surviving member.
func (c *Checker) GetNonNullableType(t *stast.Type) *stast.Type {
	if t == nil {
		return nil
	}
	if t.Kind != stast.TypeUnion {
		if t.IsNullOrUndefined() {
			return &stast.Type{Kind: stast.TypeAny}
		}
		return t
	}
	var kept []*stast.Type
	for _, m := range t.Types {
		if !m.IsNullOrUndefined() {
			kept = append(kept, m)
		}
	}
	switch len(kept) {
	case 0:
		return &stast.Type{Kind: stast.TypeAny}
	case 1:
		return kept[0]
	default:
		return &stast.Type{Kind: stast.TypeUnion, Types: kept}
	}
}

// TypeOfTypeNode converts a syntax-level TypeNode into a checker-level
// Type, resolving named references against the project symbol table.
func (c *Checker) TypeOfTypeNode(tn stast.TypeNode) *stast.Type {
	if tn == nil {
		return nil
	}
	c.idx.mu.Lock()
	t, ok := c.idx.typeOfTypeNode[tn]
	c.idx.mu.Unlock()
	if ok {
		return t
	}
	t = c.typeOfTypeNodeUncached(tn)
	c.idx.mu.Lock()
	c.idx.typeOfTypeNode[tn] = t
	c.idx.mu.Unlock()
	return t
}

func (c *Checker) typeOfTypeNodeUncached(tn stast.TypeNode) *stast.Type {
	switch v := tn.(type) {
	case *stast.KeywordTypeNode:
		return keywordType(v.Keyword)
	case *stast.TypeReferenceNode:
		sym, _ := c.GetSymbolAtLocation(v)
		t := &stast.Type{Kind: stast.TypeNamed, Symbol: sym}
		for _, a := range v.TypeArgs {
			t.TypeArgs = append(t.TypeArgs, c.TypeOfTypeNode(a))
		}
		if sym == nil && v.Name != nil {
			// Unresolved reference (type parameter, or a symbol this
			// checker's flat table never saw): let the translator's own
			// type-parameter blacklist or blacklist-path checks decide,
			// by reporting it as a type-parameter-shaped type keyed on
			// the written name rather than as TypeAny, so a generic
			// class's own parameters still render as "?" rather than
			// leaking through as a bogus named type.
			return &stast.Type{Kind: stast.TypeTypeParameter, TypeParamName: v.Name.Text}
		}
		return t
	case *stast.UnionTypeNode:
		t := &stast.Type{Kind: stast.TypeUnion}
		for _, m := range v.Members {
			t.Types = append(t.Types, c.TypeOfTypeNode(m))
		}
		return t
	case *stast.ArrayTypeNode:
		return &stast.Type{Kind: stast.TypeArray, Element: c.TypeOfTypeNode(v.Element)}
	case *stast.FunctionTypeNode:
		t := &stast.Type{Kind: stast.TypeFunction, Return: c.TypeOfTypeNode(v.Return)}
		for _, p := range v.Params {
			t.Params = append(t.Params, stast.FunctionParam{
				Name: paramName(p), Type: c.TypeOfTypeNode(p.Type), Optional: p.Optional, Rest: p.Rest,
			})
		}
		return t
	default:
		return &stast.Type{Kind: stast.TypeAny}
	}
}

func paramName(p *stast.ParameterNode) string {
	if p.Name != nil {
		return p.Name.Text
	}
	return ""
}

func keywordType(kw string) *stast.Type {
	switch kw {
	case "string", "number", "boolean", "symbol", "object":
		return &stast.Type{Kind: stast.TypePrimitive, Name: kw}
	case "void":
		return &stast.Type{Kind: stast.TypeVoid}
	case "null":
		return &stast.Type{Kind: stast.TypeNull}
	case "undefined":
		return &stast.Type{Kind: stast.TypeUndefined}
	case "any", "unknown", "never":
		return &stast.Type{Kind: stast.TypeAny}
	default:
		return &stast.Type{Kind: stast.TypeLiteral, Name: kw}
	}
}
