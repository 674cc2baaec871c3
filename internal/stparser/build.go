package stparser

import (
	"strconv"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/alippai/gots-annotate/internal/stast"
)

// Builder walks one file's tree-sitter tree and produces an
// internal/stast.SourceFile. One Builder is used per file; it holds no
// state across files. nextSymbolID and symbols let the builder register
// a flat per-file symbol table entry for every declaration it builds, so
// a Checker (see checker.go) can resolve local identifiers without a
// second traversal.
type Builder struct {
	path   string
	source []byte

	nextSymbolID *int
	bySpan       map[int]*stast.Symbol // node Pos() -> declared symbol, for GetSymbolAtLocation
	byName       map[string]*stast.Symbol
}

// NewBuilder creates a Builder for one file's source text, sharing the
// symbol-ID counter and cross-file name table supplied by the caller
// (see checker.go's ProjectIndex) so that symbol identity is stable
// across files in one translation run.
func NewBuilder(path string, source []byte, nextSymbolID *int, byName map[string]*stast.Symbol) *Builder {
	if nextSymbolID == nil {
		zero := 0
		nextSymbolID = &zero
	}
	if byName == nil {
		byName = map[string]*stast.Symbol{}
	}
	return &Builder{path: path, source: source, nextSymbolID: nextSymbolID, bySpan: map[int]*stast.Symbol{}, byName: byName}
}

// Build walks tree's root "program" node into a SourceFile.
func (b *Builder) Build(tree *ts.Tree) *stast.SourceFile {
	root := tree.RootNode()
	sf := &stast.SourceFile{
		Path:            b.path,
		Text:            b.source,
		LeadingComments: map[stast.Node][]string{},
	}
	sf.StartPos = int(root.StartByte())
	sf.EndPos = int(root.EndByte())

	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if child == nil || child.Kind() == "comment" {
			continue
		}
		stmt := b.buildStatement(child)
		if stmt == nil {
			continue
		}
		if comments := b.leadingComments(child); len(comments) > 0 {
			sf.LeadingComments[stmt] = comments
		}
		sf.Statements = append(sf.Statements, stmt)
	}
	return sf
}

// BySpan returns the symbol registered for the declaration whose
// identifier starts at pos, for Checker.GetSymbolAtLocation.
func (b *Builder) BySpan() map[int]*stast.Symbol { return b.bySpan }

// buildStatement dispatches one top-level (or namespace-body) statement
// node to its stast representation.
func (b *Builder) buildStatement(n *ts.Node) stast.Node {
	switch n.Kind() {
	case "class_declaration", "abstract_class_declaration":
		return b.buildClass(n)
	case "interface_declaration":
		return b.buildInterface(n)
	case "function_declaration", "function_signature":
		return b.buildFunctionDeclaration(n)
	case "lexical_declaration", "variable_declaration":
		return b.buildVariableStatement(n)
	case "type_alias_declaration":
		return b.buildTypeAlias(n)
	case "enum_declaration":
		return b.buildEnum(n)
	case "import_statement":
		return b.buildImport(n)
	case "import_alias":
		return b.buildImportEquals(n)
	case "ambient_declaration":
		if inner := n.NamedChild(0); inner != nil {
			stmt := b.buildStatement(inner)
			markDeclared(stmt)
			return stmt
		}
		return nil
	case "module", "internal_module":
		return b.buildModule(n)
	case "export_statement":
		return b.buildExportStatement(n)
	case "expression_statement":
		return b.buildExpressionStatement(n)
	case "empty_statement", "comment":
		return nil
	default:
		return b.unrecognized(n)
	}
}

func (b *Builder) unrecognized(n *ts.Node) *stast.UnrecognizedMember {
	um := &stast.UnrecognizedMember{SourceText: n.Utf8Text(b.source)}
	um.StartPos, um.EndPos = int(n.StartByte()), int(n.EndByte())
	return um
}

// buildExportStatement unwraps `export <decl>` / `export default <decl>`
// to the declaration it wraps, marking the Export modifier on the way
// through. Re-export clauses (`export { a, b }`, `export * from ...`)
// have no declaration to annotate, and are treated as unrecognized.
func (b *Builder) buildExportStatement(n *ts.Node) stast.Node {
	decl := n.ChildByFieldName("declaration")
	if decl == nil {
		return b.unrecognized(n)
	}
	stmt := b.buildStatement(decl)
	markExported(stmt)
	return stmt
}

func markExported(n stast.Node) {
	switch v := n.(type) {
	case *stast.ClassDeclaration:
		v.Modifiers.Export = true
	case *stast.InterfaceDeclaration:
		v.Modifiers.Export = true
	case *stast.FunctionLikeDeclaration:
		v.Modifiers.Export = true
	case *stast.TypeAliasDeclaration:
		v.Modifiers.Export = true
	case *stast.EnumDeclaration:
		v.Modifiers.Export = true
	}
}

func markDeclared(n stast.Node) {
	switch v := n.(type) {
	case *stast.ClassDeclaration:
		v.Modifiers.Declare = true
	case *stast.InterfaceDeclaration:
		v.Modifiers.Declare = true
	case *stast.FunctionLikeDeclaration:
		v.Modifiers.Declare = true
	case *stast.TypeAliasDeclaration:
		v.Modifiers.Declare = true
	case *stast.EnumDeclaration:
		v.Modifiers.Declare = true
	}
}

func (b *Builder) text(n *ts.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(b.source)
}

// hasChildKeyword reports whether n has a direct child token matching kw
// (used for modifier keywords that tree-sitter models as bare tokens:
// "declare", "static", "readonly", "abstract", "public", "private",
// "protected", "default", "async", "const").
func hasChildKeyword(n *ts.Node, kw string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.Kind() == kw {
			return true
		}
	}
	return false
}

func buildModifiers(n *ts.Node) stast.Modifiers {
	return stast.Modifiers{
		Abstract:  hasChildKeyword(n, "abstract"),
		Private:   hasChildAccessibility(n, "private"),
		Protected: hasChildAccessibility(n, "protected"),
		Public:    hasChildAccessibility(n, "public"),
		Readonly:  hasChildKeyword(n, "readonly"),
		Static:    hasChildKeyword(n, "static"),
		Declare:   hasChildKeyword(n, "declare"),
		Default:   hasChildKeyword(n, "default"),
		Const:     hasChildKeyword(n, "const"),
	}
}

func hasChildAccessibility(n *ts.Node, which string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.Kind() == "accessibility_modifier" && strings.TrimSpace(c.Utf8Text(nil)) == which {
			return true
		}
	}
	return false
}

// hasDecorator reports whether n (a class member) is preceded by any
// `@decorator` sibling — used for the "exporting decorator" flag on
// member-type-declaration properties (spec.md §4.3.2).
func hasDecorator(n *ts.Node) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.Kind() == "decorator" {
			return true
		}
	}
	return false
}

func (b *Builder) leadingComments(n *ts.Node) []string {
	var out []string
	for sib := n.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
		if sib.Kind() != "comment" {
			break
		}
		out = append([]string{sib.Utf8Text(b.source)}, out...)
	}
	return out
}

func (b *Builder) buildIdentifier(n *ts.Node) *stast.Identifier {
	if n == nil {
		return nil
	}
	id := &stast.Identifier{Text: n.Utf8Text(b.source)}
	id.StartPos, id.EndPos = int(n.StartByte()), int(n.EndByte())
	return id
}

// registerSymbol records a flat, file-scoped entry for a named
// declaration so Checker.GetSymbolAtLocation can resolve references to
// it by identifier text — the "flat cross-file symbol table" SPEC_FULL
// describes, intentionally simplified: it has no block scoping, and a
// name declared in two files collides in favor of the last builder to
// run (acceptable for a best-effort, syntax-driven checker).
func (b *Builder) registerSymbol(ident *stast.Identifier, flags stast.SymbolFlags) *stast.Symbol {
	if ident == nil {
		return nil
	}
	*b.nextSymbolID++
	sym := &stast.Symbol{
		ID:           *b.nextSymbolID,
		Name:         ident.Text,
		ExportedName: ident.Text,
		Flags:        flags,
		ModulePath:   b.path,
	}
	b.bySpan[ident.Pos()] = sym
	b.byName[ident.Text] = sym
	return sym
}

func parseEnumValue(n *ts.Node, source []byte) *int {
	if n == nil || n.Kind() != "number" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(n.Utf8Text(source)))
	if err != nil {
		return nil
	}
	return &v
}
