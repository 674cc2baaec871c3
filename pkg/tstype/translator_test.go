package tstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alippai/gots-annotate/internal/stast"
)

type fakeChecker struct {
	aliasOf map[int]*stast.Symbol
}

func (f *fakeChecker) GetSymbolAtLocation(n stast.Node) (*stast.Symbol, bool) { return nil, false }
func (f *fakeChecker) GetAliasedSymbol(s *stast.Symbol) (*stast.Symbol, bool) {
	t, ok := f.aliasOf[s.ID]
	return t, ok
}
func (f *fakeChecker) GetDeclaredTypeOfSymbol(s *stast.Symbol) *stast.Type { return nil }
func (f *fakeChecker) GetTypeAtLocation(n stast.Node) *stast.Type         { return nil }
func (f *fakeChecker) GetNonNullableType(t *stast.Type) *stast.Type       { return t }
func (f *fakeChecker) TypeOfTypeNode(tn stast.TypeNode) *stast.Type       { return nil }

type fakeHost struct {
	blacklisted map[string]bool
	untyped     bool
}

func (h *fakeHost) IsBlacklistedPath(p string) bool { return h.blacklisted[p] }
func (h *fakeHost) Untyped() bool                   { return h.untyped }

type fakeAliases struct {
	aliases map[int]string
	fd      map[string]string
	warns   []string
}

func newFakeAliases() *fakeAliases {
	return &fakeAliases{aliases: map[int]string{}, fd: map[string]string{}}
}
func (a *fakeAliases) LookupAlias(id int) (string, bool) { v, ok := a.aliases[id]; return v, ok }
func (a *fakeAliases) ForwardDeclare(modulePath string, sym *stast.Symbol, explicitlyImported, defaultImport bool) string {
	if alias, ok := a.fd[modulePath]; ok {
		return alias
	}
	alias := "tsickle_forward_declare_1"
	a.fd[modulePath] = alias
	return alias
}
func (a *fakeAliases) DebugWarn(n stast.Node, message string) { a.warns = append(a.warns, message) }

func namedSymbol(id int, name, modulePath string) *stast.Symbol {
	return &stast.Symbol{ID: id, Name: name, ExportedName: name, ModulePath: modulePath, Flags: stast.SymbolClass}
}

func TestTranslate_Primitive(t *testing.T) {
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	got := tr.Translate(&stast.Type{Kind: stast.TypePrimitive, Name: "string"}, nil)
	assert.Equal(t, "string", got)
}

func TestTranslate_Untyped(t *testing.T) {
	tr := New(&fakeChecker{}, &fakeHost{untyped: true}, newFakeAliases(), 0)
	got := tr.Translate(&stast.Type{Kind: stast.TypePrimitive, Name: "string"}, nil)
	assert.Equal(t, Unknown, got)
}

func TestTranslate_NamedType_NonNullPrefix(t *testing.T) {
	sym := namedSymbol(1, "Foo", "")
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	got := tr.Translate(&stast.Type{Kind: stast.TypeNamed, Symbol: sym}, nil)
	assert.Equal(t, "!Foo", got)
}

func TestTranslate_Union_NullableNamedType(t *testing.T) {
	sym := namedSymbol(1, "Foo", "")
	union := &stast.Type{Kind: stast.TypeUnion, Types: []*stast.Type{
		{Kind: stast.TypeNamed, Symbol: sym},
		{Kind: stast.TypeNull},
	}}
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	got := tr.Translate(union, nil)
	assert.Equal(t, "?Foo", got)
}

func TestTranslate_Union_Primitives(t *testing.T) {
	union := &stast.Type{Kind: stast.TypeUnion, Types: []*stast.Type{
		{Kind: stast.TypePrimitive, Name: "string"},
		{Kind: stast.TypePrimitive, Name: "number"},
	}}
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	got := tr.Translate(union, nil)
	assert.Equal(t, "(string|number)", got)
}

func TestTranslate_BlacklistedPath(t *testing.T) {
	sym := namedSymbol(1, "Foo", "/src/secret.ts")
	tr := New(&fakeChecker{}, &fakeHost{blacklisted: map[string]bool{"/src/secret.ts": true}}, newFakeAliases(), 0)
	got := tr.Translate(&stast.Type{Kind: stast.TypeNamed, Symbol: sym}, nil)
	assert.Equal(t, Unknown, got)
}

func TestTranslate_ForwardDeclareOnCrossModuleReference(t *testing.T) {
	sym := namedSymbol(1, "Foo", "./other")
	aliases := newFakeAliases()
	tr := New(&fakeChecker{}, &fakeHost{}, aliases, 0)
	got := tr.Translate(&stast.Type{Kind: stast.TypeNamed, Symbol: sym}, nil)
	assert.Equal(t, "!tsickle_forward_declare_1.Foo", got)
	assert.Equal(t, "./other", func() string {
		for k := range aliases.fd {
			return k
		}
		return ""
	}())
}

func TestTranslate_SymbolAlias_UsesLocalAliasWhenInScope(t *testing.T) {
	sym := namedSymbol(1, "Foo", "")
	aliases := newFakeAliases()
	aliases.aliases[1] = "LocalFoo"
	tr := New(&fakeChecker{}, &fakeHost{}, aliases, 0)
	got := tr.SymbolToString(sym, false)
	assert.Equal(t, "LocalFoo", got)
}

func TestTranslate_AliasCycle_FallsBackToUnknown(t *testing.T) {
	a := &stast.Symbol{ID: 1, Name: "A", Flags: stast.SymbolAlias}
	b := &stast.Symbol{ID: 2, Name: "B", Flags: stast.SymbolAlias}
	checker := &fakeChecker{aliasOf: map[int]*stast.Symbol{1: b, 2: a}}
	aliases := newFakeAliases()
	tr := New(checker, &fakeHost{}, aliases, 0)
	got := tr.SymbolToString(a, false)
	assert.Equal(t, Unknown, got)
	assert.NotEmpty(t, aliases.warns)
}

func TestBlacklistTypeParameters_RendersUnknownWithinScope(t *testing.T) {
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	scope := &stast.FunctionLikeDeclaration{}
	tr.BlacklistTypeParameters(scope, []*stast.TypeParameter{{Name: "T"}})
	got := tr.Translate(&stast.Type{Kind: stast.TypeTypeParameter, TypeParamName: "T"}, scope)
	assert.Equal(t, Unknown, got)
}

func TestTranslate_Function(t *testing.T) {
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	fn := &stast.Type{
		Kind: stast.TypeFunction,
		ThisType: &stast.Type{Kind: stast.TypeNamed, Symbol: namedSymbol(1, "Bar", "")},
		Params: []stast.FunctionParam{{Type: &stast.Type{Kind: stast.TypePrimitive, Name: "number"}}},
		Return: &stast.Type{Kind: stast.TypePrimitive, Name: "string"},
	}
	got := tr.Translate(fn, nil)
	require.Equal(t, "function(this: !Bar, number): string", got)
}

func TestTranslate_Array(t *testing.T) {
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	got := tr.Translate(&stast.Type{Kind: stast.TypeArray, Element: &stast.Type{Kind: stast.TypePrimitive, Name: "number"}}, nil)
	assert.Equal(t, "number[]", got)
}

func TestTranslate_NilType(t *testing.T) {
	tr := New(&fakeChecker{}, &fakeHost{}, newFakeAliases(), 0)
	assert.Equal(t, Unknown, tr.Translate(nil, nil))
}
