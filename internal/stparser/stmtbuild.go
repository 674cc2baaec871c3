package stparser

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/alippai/gots-annotate/internal/stast"
)

// buildVariableStatement builds a lexical_declaration (`let`/`const`) or
// variable_declaration (`var`).
func (b *Builder) buildVariableStatement(n *ts.Node) *stast.VariableStatement {
	kind := "var"
	if hasChildKeyword(n, "let") {
		kind = "let"
	} else if hasChildKeyword(n, "const") {
		kind = "const"
	}

	stmt := &stast.VariableStatement{Kind: kind}
	stmt.StartPos, stmt.EndPos = int(n.StartByte()), int(n.EndByte())

	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil || c.Kind() != "variable_declarator" {
			continue
		}
		stmt.Declarators = append(stmt.Declarators, b.buildVariableDeclarator(c))
	}
	return stmt
}

func (b *Builder) buildVariableDeclarator(n *ts.Node) *stast.VariableDeclarator {
	d := &stast.VariableDeclarator{HasInitializer: n.ChildByFieldName("value") != nil}
	d.StartPos, d.EndPos = int(n.StartByte()), int(n.EndByte())

	name := n.ChildByFieldName("name")
	if name != nil && name.Kind() == "identifier" {
		d.Name = b.buildIdentifier(name)
		b.registerSymbol(d.Name, stast.SymbolValue)
	} else {
		d.Destructuring = true
	}
	if ta := n.ChildByFieldName("type"); ta != nil {
		d.Type = b.buildTypeNode(unwrapTypeAnnotation(ta))
	}
	return d
}

// buildTypeAlias builds a type_alias_declaration.
func (b *Builder) buildTypeAlias(n *ts.Node) *stast.TypeAliasDeclaration {
	alias := &stast.TypeAliasDeclaration{
		Name:           b.buildIdentifier(n.ChildByFieldName("name")),
		Modifiers:      buildModifiers(n),
		TypeParameters: b.buildTypeParameters(n.ChildByFieldName("type_parameters")),
		Value:          b.buildTypeNode(n.ChildByFieldName("value")),
	}
	alias.StartPos, alias.EndPos = int(n.StartByte()), int(n.EndByte())
	if alias.Name != nil {
		b.registerSymbol(alias.Name, stast.SymbolTypeAlias|stast.SymbolAlias|stast.SymbolType)
	}
	return alias
}

// buildEnum builds an enum_declaration (ambient context only, per
// spec.md's glossary — a non-ambient enum has runtime semantics this
// translator does not model).
func (b *Builder) buildEnum(n *ts.Node) *stast.EnumDeclaration {
	e := &stast.EnumDeclaration{
		Name:      b.buildIdentifier(n.ChildByFieldName("name")),
		Modifiers: buildModifiers(n),
	}
	e.StartPos, e.EndPos = int(n.StartByte()), int(n.EndByte())
	if e.Name != nil {
		b.registerSymbol(e.Name, stast.SymbolValue|stast.SymbolEnum|stast.SymbolType)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		for i := uint(0); i < body.NamedChildCount(); i++ {
			c := body.NamedChild(i)
			if c == nil {
				continue
			}
			switch c.Kind() {
			case "enum_assignment":
				name := c.ChildByFieldName("name")
				e.Members = append(e.Members, stast.EnumMember{
					Name:  b.text(name),
					Value: parseEnumValue(c.ChildByFieldName("value"), b.source),
				})
			case "property_identifier", "string":
				e.Members = append(e.Members, stast.EnumMember{Name: stripQuotes(b.text(c))})
			}
		}
	}
	return e
}

func stripQuotes(s string) string {
	return strings.Trim(s, `"'`)
}

// buildImport builds an import_statement.
func (b *Builder) buildImport(n *ts.Node) *stast.ImportDeclaration {
	decl := &stast.ImportDeclaration{ModuleSpecifier: stripQuotes(b.text(n.ChildByFieldName("source")))}
	decl.StartPos, decl.EndPos = int(n.StartByte()), int(n.EndByte())

	clause := findChildKind(n, "import_clause")
	if clause == nil {
		decl.Clause = stast.ImportSideEffectOnly
		return decl
	}

	for i := uint(0); i < clause.NamedChildCount(); i++ {
		c := clause.NamedChild(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case "identifier":
			decl.Clause = stast.ImportDefault
			decl.LocalNames = append(decl.LocalNames, b.text(c))
		case "namespace_import":
			decl.Clause = stast.ImportNamespace
			if id := c.NamedChild(0); id != nil {
				decl.LocalNames = append(decl.LocalNames, b.text(id))
			}
		case "named_imports":
			decl.Clause = stast.ImportNamed
			for j := uint(0); j < c.NamedChildCount(); j++ {
				spec := c.NamedChild(j)
				if spec == nil || spec.Kind() != "import_specifier" {
					continue
				}
				local := spec.ChildByFieldName("alias")
				if local == nil {
					local = spec.ChildByFieldName("name")
				}
				decl.LocalNames = append(decl.LocalNames, b.text(local))
			}
		}
	}
	return decl
}

func findChildKind(n *ts.Node, kind string) *ts.Node {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}

// buildImportEquals builds an import_alias (`import x = require(...)` or
// `import x = a.b.c`).
func (b *Builder) buildImportEquals(n *ts.Node) *stast.ImportEqualsDeclaration {
	decl := &stast.ImportEqualsDeclaration{LocalName: b.text(n.ChildByFieldName("name"))}
	decl.StartPos, decl.EndPos = int(n.StartByte()), int(n.EndByte())

	value := n.ChildByFieldName("value")
	if value != nil && value.Kind() == "call_expression" {
		if fn := value.ChildByFieldName("function"); fn != nil && b.text(fn) == "require" {
			decl.IsRequire = true
			if args := value.ChildByFieldName("arguments"); args != nil && args.NamedChildCount() > 0 {
				decl.RequirePath = stripQuotes(b.text(args.NamedChild(0)))
			}
			return decl
		}
	}
	decl.QualifiedRHS = b.text(value)
	return decl
}

// buildModule builds a `declare namespace ns { ... }` / `declare module
// "foo" { ... }` (or non-ambient `namespace`/`module`) declaration.
func (b *Builder) buildModule(n *ts.Node) *stast.ModuleDeclaration {
	mod := &stast.ModuleDeclaration{}
	mod.StartPos, mod.EndPos = int(n.StartByte()), int(n.EndByte())

	name := n.ChildByFieldName("name")
	if name != nil {
		if name.Kind() == "string" {
			mod.StringName = stripQuotes(b.text(name))
		} else {
			mod.IdentifierName = b.text(name)
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		for i := uint(0); i < body.NamedChildCount(); i++ {
			c := body.NamedChild(i)
			if c == nil || c.Kind() == "comment" {
				continue
			}
			stmt := b.buildStatement(c)
			if stmt != nil {
				mod.Body = append(mod.Body, stmt)
			}
		}
	}
	return mod
}
