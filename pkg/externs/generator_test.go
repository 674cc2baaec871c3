package externs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/moduletranslator"
)

type fakeChecker struct {
	typeOf  map[stast.TypeNode]*stast.Type
	symbols map[stast.Node]*stast.Symbol
}

func (f *fakeChecker) GetSymbolAtLocation(n stast.Node) (*stast.Symbol, bool) {
	s, ok := f.symbols[n]
	return s, ok
}
func (f *fakeChecker) GetAliasedSymbol(s *stast.Symbol) (*stast.Symbol, bool) { return nil, false }
func (f *fakeChecker) GetDeclaredTypeOfSymbol(s *stast.Symbol) *stast.Type    { return nil }
func (f *fakeChecker) GetTypeAtLocation(n stast.Node) *stast.Type            { return nil }
func (f *fakeChecker) GetNonNullableType(t *stast.Type) *stast.Type          { return t }
func (f *fakeChecker) TypeOfTypeNode(tn stast.TypeNode) *stast.Type {
	if f.typeOf == nil {
		return nil
	}
	return f.typeOf[tn]
}

type fakeHost struct{}

func (fakeHost) PathToModuleName(a, b string) string { return b }
func (fakeHost) ConvertIndexImportShorthand() bool    { return false }
func (fakeHost) IsBlacklistedPath(path string) bool   { return false }
func (fakeHost) Untyped() bool                        { return false }
func (fakeHost) DisableAutoQuoting() bool              { return false }
func (fakeHost) LogWarning(d moduletranslator.Diagnostic) {}

func newGenerator(checker *fakeChecker) *Generator {
	file := &stast.SourceFile{Path: "/src/a.d.ts", LeadingComments: map[stast.Node][]string{}}
	mtt := moduletranslator.New(file, checker, fakeHost{}, nil, true)
	return New(mtt)
}

func numberType() *stast.KeywordTypeNode { return &stast.KeywordTypeNode{Keyword: "number"} }

// S5 — externs for declared namespace.
func TestGenerate_NamespaceWithInterface_S5(t *testing.T) {
	xType := numberType()
	checker := &fakeChecker{typeOf: map[stast.TypeNode]*stast.Type{
		xType: {Kind: stast.TypePrimitive, Name: "number"},
	}}
	g := newGenerator(checker)

	f := &stast.FunctionLikeDeclaration{
		Kind:       stast.FunctionKindMethod,
		Name:       &stast.Identifier{Text: "f"},
		Parameters: []*stast.ParameterNode{{Name: &stast.Identifier{Text: "x"}, Type: xType}},
	}
	iface := &stast.InterfaceDeclaration{
		Name:    &stast.Identifier{Text: "I"},
		Members: []stast.Node{f},
	}
	ns := &stast.ModuleDeclaration{
		IdentifierName: "ns",
		Body:           []stast.Node{iface},
	}

	out := g.Generate([]stast.Node{ns})

	assert.Contains(t, out, "/** @const */\nvar ns = {};")
	assert.Contains(t, out, "ns.I = function() {};")
	assert.Contains(t, out, "@record")
	assert.Contains(t, out, "@struct")
	assert.Contains(t, out, "ns.I.prototype.f = function(x) {};")
}

// S6 — overloaded ambient function merges into one stub.
func TestGenerate_OverloadedFunction_S6(t *testing.T) {
	numberT := numberType()
	stringT := &stast.KeywordTypeNode{Keyword: "string"}
	voidT := &stast.KeywordTypeNode{Keyword: "void"}
	returnNumberT := numberType()

	checker := &fakeChecker{typeOf: map[stast.TypeNode]*stast.Type{
		numberT:       {Kind: stast.TypePrimitive, Name: "number"},
		stringT:       {Kind: stast.TypePrimitive, Name: "string"},
		voidT:         {Kind: stast.TypeVoid},
		returnNumberT: {Kind: stast.TypePrimitive, Name: "number"},
	}}
	g := newGenerator(checker)

	overload1 := &stast.FunctionLikeDeclaration{
		Kind:       stast.FunctionKindFunction,
		Name:       &stast.Identifier{Text: "f"},
		Parameters: []*stast.ParameterNode{{Name: &stast.Identifier{Text: "x"}, Type: numberT}},
		ReturnType: voidT,
	}
	overload2 := &stast.FunctionLikeDeclaration{
		Kind:       stast.FunctionKindFunction,
		Name:       &stast.Identifier{Text: "f"},
		Parameters: []*stast.ParameterNode{{Name: &stast.Identifier{Text: "x"}, Type: stringT}},
		ReturnType: returnNumberT,
	}

	out := g.Generate([]stast.Node{overload1, overload2})

	assert.Equal(t, 1, strings.Count(out,"function f(x) {}"))
	assert.Contains(t, out, "@param {(number|string)} x")
	assert.Contains(t, out, "@return {(void|number)}")
}

func TestGenerate_DeclaredModule_NameMangling(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	mod := &stast.ModuleDeclaration{StringName: "foo-bar/baz"}

	out := g.Generate([]stast.Node{mod})

	assert.Contains(t, out, "var tsickle_declare_module = {};")
	assert.Contains(t, out, "tsickle_declare_module.foo_bar_baz = {};")
}

func TestGenerate_GlobalModule_ResetsNamespaceToRoot(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	v := &stast.VariableStatement{
		Kind:        "var",
		Declarators: []*stast.VariableDeclarator{{Name: &stast.Identifier{Text: "x"}}},
	}
	global := &stast.ModuleDeclaration{IdentifierName: "global", Body: []stast.Node{v}}
	ns := &stast.ModuleDeclaration{IdentifierName: "ns", Body: []stast.Node{global}}

	out := g.Generate([]stast.Node{ns})

	assert.Contains(t, out, "var x;")
	assert.NotContains(t, out, "ns.x")
}

func TestGenerate_BlacklistedClassName_Skipped(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	cls := &stast.ClassDeclaration{Name: &stast.Identifier{Text: "Symbol"}}

	out := g.Generate([]stast.Node{cls})

	assert.Empty(t, out)
}

func TestGenerate_ImportEquals_BlacklistedLocalName(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	decl := &stast.ImportEqualsDeclaration{LocalName: "ng", QualifiedRHS: "angular.core"}

	out := g.Generate([]stast.Node{decl})

	assert.Contains(t, out, "// skip")
	assert.NotContains(t, out, "angular.core")
}

func TestGenerate_ImportEquals_RequireEmitsTODO(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	decl := &stast.ImportEqualsDeclaration{LocalName: "fs", IsRequire: true, RequirePath: "fs"}

	out := g.Generate([]stast.Node{decl})

	assert.Contains(t, out, "// TODO")
}

func TestGenerate_ImportEquals_AliasAssignment(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	decl := &stast.ImportEqualsDeclaration{LocalName: "Foo", QualifiedRHS: "a.b.Foo"}

	out := g.Generate([]stast.Node{decl})

	assert.Contains(t, out, "/** @const */")
	assert.Contains(t, out, "var Foo = a.b.Foo;")
}

func TestGenerate_ClassDeclarationMerging_MembersFromBothDeclarations(t *testing.T) {
	checker := &fakeChecker{}
	g := newGenerator(checker)

	p1 := &stast.PropertyDeclaration{Name: &stast.Identifier{Text: "a"}}
	p2 := &stast.PropertyDeclaration{Name: &stast.Identifier{Text: "b"}}
	cls1 := &stast.ClassDeclaration{Name: &stast.Identifier{Text: "C"}, Members: []stast.Node{p1}}
	cls2 := &stast.ClassDeclaration{Name: &stast.Identifier{Text: "C"}, Members: []stast.Node{p2}}

	out := g.Generate([]stast.Node{cls1, cls2})

	assert.Equal(t, 1, strings.Count(out,"C = function() {};"))
	assert.Contains(t, out, "C.prototype.a;")
	assert.Contains(t, out, "C.prototype.b;")
}

func TestGenerate_EnumDeclaration_InvalidMemberNameTODO(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	e := &stast.EnumDeclaration{
		Name: &stast.Identifier{Text: "E"},
		Members: []stast.EnumMember{
			{Name: "A"},
			{Name: "not-an-identifier"},
		},
	}

	out := g.Generate([]stast.Node{e})

	assert.Contains(t, out, "E.A;")
	assert.Contains(t, out, "// TODO: unhandled enum member \"not-an-identifier\"")
}

func TestGenerate_UnrecognizedMember_EmitsTODO(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	out := g.Generate([]stast.Node{&stast.UnrecognizedMember{SourceText: "weird();"}})
	assert.Contains(t, out, "// TODO: unhandled member")
	assert.Contains(t, out, "weird();")
}

func TestGenerate_UnnamedClass_EmitsTODO(t *testing.T) {
	g := newGenerator(&fakeChecker{})
	out := g.Generate([]stast.Node{&stast.ClassDeclaration{}})
	require.Contains(t, out, "// TODO")
}
