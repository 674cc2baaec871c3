package annotator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/moduletranslator"
)

type fakeChecker struct {
	symbols map[stast.Node]*stast.Symbol
	typeOf  map[stast.TypeNode]*stast.Type
	typeAt  map[stast.Node]*stast.Type
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{symbols: map[stast.Node]*stast.Symbol{}, typeOf: map[stast.TypeNode]*stast.Type{}, typeAt: map[stast.Node]*stast.Type{}}
}

func (f *fakeChecker) GetSymbolAtLocation(n stast.Node) (*stast.Symbol, bool) {
	s, ok := f.symbols[n]
	return s, ok
}
func (f *fakeChecker) GetAliasedSymbol(s *stast.Symbol) (*stast.Symbol, bool) { return nil, false }
func (f *fakeChecker) GetDeclaredTypeOfSymbol(s *stast.Symbol) *stast.Type   { return nil }
func (f *fakeChecker) GetTypeAtLocation(n stast.Node) *stast.Type {
	return f.typeAt[n]
}
func (f *fakeChecker) GetNonNullableType(t *stast.Type) *stast.Type {
	if t == nil || t.Kind != stast.TypeUnion {
		return t
	}
	var kept []*stast.Type
	for _, m := range t.Types {
		if !m.IsNullOrUndefined() {
			kept = append(kept, m)
		}
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return &stast.Type{Kind: stast.TypeUnion, Types: kept}
}
func (f *fakeChecker) TypeOfTypeNode(tn stast.TypeNode) *stast.Type {
	if tn == nil {
		return nil
	}
	return f.typeOf[tn]
}

type fakeHost struct {
	untyped bool
}

func (h *fakeHost) PathToModuleName(importer, imported string) string { return imported }
func (h *fakeHost) ConvertIndexImportShorthand() bool                 { return false }
func (h *fakeHost) DisableAutoQuoting() bool                          { return false }
func (h *fakeHost) OutputModuleFormatMatchesTarget() bool             { return true }

type fakeMttHost struct{ *fakeHost }

func (h fakeMttHost) PathToModuleName(a, b string) string { return b }
func (h fakeMttHost) ConvertIndexImportShorthand() bool   { return false }
func (h fakeMttHost) IsBlacklistedPath(p string) bool     { return false }
func (h fakeMttHost) Untyped() bool                       { return h.untyped }
func (h fakeMttHost) DisableAutoQuoting() bool            { return false }
func (h fakeMttHost) LogWarning(d moduletranslator.Diagnostic) {}

func newTestTransformer(checker *fakeChecker) (*Transformer, *moduletranslator.ModuleTypeTranslator, *stast.SourceFile) {
	file := &stast.SourceFile{Path: "/src/a.ts", LeadingComments: map[stast.Node][]string{}}
	mtt := moduletranslator.New(file, checker, fakeMttHost{&fakeHost{}}, nil, false)
	tr := New(mtt, &fakeHost{})
	return tr, mtt, file
}

func numberTypeNode() *stast.KeywordTypeNode { return &stast.KeywordTypeNode{Keyword: "number"} }

func TestTransformClass_ParameterProperty_S2(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)

	numT := numberTypeNode()
	checker.typeOf[numT] = &stast.Type{Kind: stast.TypePrimitive, Name: "number"}

	param := &stast.ParameterNode{Name: &stast.Identifier{Text: "x"}, Type: numT, Modifiers: stast.Modifiers{Public: true}}
	ctor := &stast.FunctionLikeDeclaration{Kind: stast.FunctionKindConstructor, Parameters: []*stast.ParameterNode{param}, HasBody: true}
	cls := &stast.ClassDeclaration{Name: &stast.Identifier{Text: "C"}, Members: []stast.Node{ctor}}

	out := tr.transformClass(cls)
	require.Len(t, out, 2)

	_, ok := out[0].(*stast.ClassDeclaration)
	require.True(t, ok)

	seq, ok := out[1].(*stast.Sequence)
	require.True(t, ok)
	block, ok := seq.Statements[0].(*stast.IfFalseBlock)
	require.True(t, ok)
	require.Len(t, block.Statements, 1)

	stmt := block.Statements[0].(*stast.ExpressionStatement)
	assert.Contains(t, stmt.Leading.Leading[0], "@type {number}")
	access := stmt.Expression.(*stast.PropertyAccessExpression)
	assert.Equal(t, "x", access.Name)
	proto := access.Expression.(*stast.PropertyAccessExpression)
	assert.Equal(t, "prototype", proto.Name)
}

func TestTransformClass_StaticMember_NoPrototype(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)

	numT := numberTypeNode()
	checker.typeOf[numT] = &stast.Type{Kind: stast.TypePrimitive, Name: "number"}

	prop := &stast.PropertyDeclaration{Name: &stast.Identifier{Text: "x"}, Type: numT, Modifiers: stast.Modifiers{Static: true}}
	cls := &stast.ClassDeclaration{Name: &stast.Identifier{Text: "C"}, Members: []stast.Node{prop}}

	out := tr.transformClass(cls)
	require.Len(t, out, 2)
	seq := out[1].(*stast.Sequence)
	block := seq.Statements[0].(*stast.IfFalseBlock)
	stmt := block.Statements[0].(*stast.ExpressionStatement)
	access := stmt.Expression.(*stast.PropertyAccessExpression)
	raw, ok := access.Expression.(*stast.RawExpression)
	require.True(t, ok)
	assert.Equal(t, "C", raw.Text)
}

func TestTransformInterface_EmptyInterface(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)
	iface := &stast.InterfaceDeclaration{Name: &stast.Identifier{Text: "I"}}

	out := tr.transformInterface(iface)
	require.Len(t, out, 1)
	fn := out[0].(*stast.FunctionLikeDeclaration)
	assert.Equal(t, "I", fn.Name.Text)
}

func TestTransformInterface_SkipsWhenNameIsValue(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)
	iface := &stast.InterfaceDeclaration{Name: &stast.Identifier{Text: "I"}}
	checker.symbols[iface.Name] = &stast.Symbol{Name: "I", Flags: stast.SymbolValue}

	out := tr.transformInterface(iface)
	assert.Nil(t, out)
}

func TestTransformVariableStatement_SplitsDeclarators(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)

	numT := numberTypeNode()
	checker.typeOf[numT] = &stast.Type{Kind: stast.TypePrimitive, Name: "number"}

	a := &stast.VariableDeclarator{Name: &stast.Identifier{Text: "a"}, Type: numT}
	b := &stast.VariableDeclarator{Name: &stast.Identifier{Text: "b"}}
	stmt := &stast.VariableStatement{Kind: "let", Declarators: []*stast.VariableDeclarator{a, b}}

	out := tr.transformVariableStatement(stmt)
	require.Len(t, out, 2)
	for _, o := range out {
		_, ok := o.(*stast.VariableStatement)
		require.True(t, ok)
	}
}

func TestTransformVariableStatement_BlacklistedWithInitializer_NoTag(t *testing.T) {
	checker := newFakeChecker()

	namedT := &stast.TypeReferenceNode{Name: &stast.Identifier{Text: "Foo"}}
	sym := &stast.Symbol{Name: "Foo", ModulePath: "/blacklisted.ts", Flags: stast.SymbolClass}
	checker.typeOf[namedT] = &stast.Type{Kind: stast.TypeNamed, Symbol: sym}

	file := &stast.SourceFile{Path: "/src/a.ts", LeadingComments: map[stast.Node][]string{}}
	mtt := moduletranslator.New(file, checker, blacklistHost{path: "/blacklisted.ts"}, nil, false)
	tr := New(mtt, &fakeHost{})

	decl := &stast.VariableDeclarator{Name: &stast.Identifier{Text: "v"}, Type: namedT, HasInitializer: true}
	stmt := &stast.VariableStatement{Kind: "const", Declarators: []*stast.VariableDeclarator{decl}}

	out := tr.transformVariableStatement(stmt)
	require.Len(t, out, 1)
	h := mtt.GetMutableJSDoc(out[0])
	assert.Empty(t, h.Tags)
}

type blacklistHost struct{ path string }

func (b blacklistHost) PathToModuleName(a, c string) string { return c }
func (b blacklistHost) ConvertIndexImportShorthand() bool   { return false }
func (b blacklistHost) IsBlacklistedPath(p string) bool     { return p == b.path }
func (b blacklistHost) Untyped() bool                       { return false }
func (b blacklistHost) DisableAutoQuoting() bool            { return false }
func (b blacklistHost) LogWarning(d moduletranslator.Diagnostic) {}

func TestTransformTypeAlias_Union_S3(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)

	x := &stast.Symbol{Name: "X", Flags: stast.SymbolClass}
	y := &stast.Symbol{Name: "Y", Flags: stast.SymbolClass}
	union := &stast.UnionTypeNode{}
	checker.typeOf[union] = &stast.Type{Kind: stast.TypeUnion, Types: []*stast.Type{
		{Kind: stast.TypeNamed, Symbol: x},
		{Kind: stast.TypeNamed, Symbol: y},
	}}

	decl := &stast.TypeAliasDeclaration{Name: &stast.Identifier{Text: "T"}, Modifiers: stast.Modifiers{Export: true}, Value: union}
	out := tr.transformTypeAlias(decl)
	require.Len(t, out, 1)
	stmt := out[0].(*stast.ExpressionStatement)
	assert.Contains(t, stmt.Leading.Leading[0], "@typedef {(!X|!Y)}")
	access := stmt.Expression.(*stast.PropertyAccessExpression)
	assert.Equal(t, "T", access.Name)
}

func TestTransformTypeAlias_NotExported_EmitsNothing(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)
	decl := &stast.TypeAliasDeclaration{Name: &stast.Identifier{Text: "T"}, Value: numberTypeNode()}
	out := tr.transformTypeAlias(decl)
	assert.Nil(t, out)
}

func TestTransformNonNullExpression_S4(t *testing.T) {
	checker := newFakeChecker()
	tr, _, _ := newTestTransformer(checker)

	ident := &stast.Identifier{Text: "foo"}
	checker.typeAt[ident] = &stast.Type{Kind: stast.TypeUnion, Types: []*stast.Type{
		{Kind: stast.TypePrimitive, Name: "string"},
		{Kind: stast.TypeNull},
	}}

	n := &stast.NonNullExpression{Expression: ident}
	out := tr.transformNonNullExpression(n)
	paren := out.(*stast.ParenthesizedExpression)
	assert.Equal(t, "/** @type {string} */", paren.Leading.Leading[0])
}

func TestTransformImport_SideEffectOnly_PassesThrough(t *testing.T) {
	checker := newFakeChecker()
	tr, mtt, _ := newTestTransformer(checker)
	decl := &stast.ImportDeclaration{Clause: stast.ImportSideEffectOnly, ModuleSpecifier: "./side-effect"}
	out := tr.transformImport(decl)
	require.Len(t, out, 1)
	assert.Empty(t, mtt.ForwardDeclares())
}

func TestTransformImport_S1_RegistersForwardDeclare(t *testing.T) {
	checker := newFakeChecker()
	tr, mtt, _ := newTestTransformer(checker)
	decl := &stast.ImportDeclaration{Clause: stast.ImportNamed, ModuleSpecifier: "./imported"}
	out := tr.transformImport(decl)
	require.Len(t, out, 1)
	require.Len(t, mtt.ForwardDeclares(), 1)
	assert.Equal(t, "./imported", mtt.ForwardDeclares()[0].ModulePath)
}

func TestPropertyDeclaration_EscapesIllegalTags(t *testing.T) {
	checker := newFakeChecker()
	tr, mtt, file := newTestTransformer(checker)

	prop := &stast.PropertyDeclaration{Name: &stast.Identifier{Text: "x"}}
	file.LeadingComments[prop] = []string{"/** @weird tag here */"}

	tr.transformPropertyDeclaration(prop)
	h := mtt.GetMutableJSDoc(prop)
	for _, tg := range h.Tags {
		assert.True(t, tg.IsFreeText() || allowedPropertyTags[tg.Name])
	}
}
