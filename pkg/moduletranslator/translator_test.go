package moduletranslator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

type fakeChecker struct {
	typeOf map[stast.TypeNode]*stast.Type
}

func (f *fakeChecker) GetSymbolAtLocation(n stast.Node) (*stast.Symbol, bool) { return nil, false }
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

type fakeHost struct {
	warnings []Diagnostic
}

func (h *fakeHost) PathToModuleName(a, b string) string    { return b }
func (h *fakeHost) ConvertIndexImportShorthand() bool       { return false }
func (h *fakeHost) IsBlacklistedPath(path string) bool      { return false }
func (h *fakeHost) Untyped() bool                           { return false }
func (h *fakeHost) DisableAutoQuoting() bool                { return false }
func (h *fakeHost) LogWarning(d Diagnostic)                 { h.warnings = append(h.warnings, d) }

func newFile() *stast.SourceFile {
	return &stast.SourceFile{Path: "/src/a.ts", LeadingComments: map[stast.Node][]string{}}
}

func TestForwardDeclare_DeduplicatesByPath(t *testing.T) {
	file := newFile()
	mtt := New(file, &fakeChecker{}, &fakeHost{}, nil, false)
	a1 := mtt.ForwardDeclare("./other", nil, false, false)
	a2 := mtt.ForwardDeclare("./other", nil, true, false)
	assert.Equal(t, a1, a2)
	require.Len(t, mtt.ForwardDeclares(), 1)
	assert.True(t, mtt.ForwardDeclares()[0].ExplicitlyImported)
}

func TestForwardDeclare_DistinctAliasesPerModule(t *testing.T) {
	mtt := New(newFile(), &fakeChecker{}, &fakeHost{}, nil, false)
	a1 := mtt.ForwardDeclare("./a", nil, false, false)
	a2 := mtt.ForwardDeclare("./b", nil, false, false)
	assert.NotEqual(t, a1, a2)
}

func TestInsertForwardDeclares_PrependsBeforeStatements(t *testing.T) {
	file := newFile()
	file.Statements = []stast.Node{&stast.RawStatement{Text: "console.log('hi');"}}
	mtt := New(file, &fakeChecker{}, &fakeHost{}, nil, false)
	mtt.ForwardDeclare("./imported", nil, true, false)

	out := mtt.InsertForwardDeclares(file)
	require.Len(t, out.Statements, 2)
	first, ok := out.Statements[0].(*stast.RawStatement)
	require.True(t, ok)
	assert.Contains(t, first.Text, "./imported")
}

func TestInsertForwardDeclares_NoOpWhenEmpty(t *testing.T) {
	file := newFile()
	file.Statements = []stast.Node{&stast.RawStatement{Text: "x;"}}
	mtt := New(file, &fakeChecker{}, &fakeHost{}, nil, false)
	out := mtt.InsertForwardDeclares(file)
	assert.Same(t, file, out)
}

func TestGetMutableJSDoc_PreservesNonStructuredComment(t *testing.T) {
	file := newFile()
	node := &stast.Identifier{Text: "x"}
	file.LeadingComments[node] = []string{"/* just a note, not structured */"}
	mtt := New(file, &fakeChecker{}, &fakeHost{}, nil, false)

	h := mtt.GetMutableJSDoc(node)
	require.Empty(t, h.Tags)
	attachment := h.UpdateComment()
	assert.Equal(t, "/* just a note, not structured */", attachment.Leading[0])
}

func TestGetMutableJSDoc_ReplacesStructuredComment(t *testing.T) {
	file := newFile()
	node := &stast.Identifier{Text: "x"}
	file.LeadingComments[node] = []string{"/** @type {string} */"}
	mtt := New(file, &fakeChecker{}, &fakeHost{}, nil, false)

	h := mtt.GetMutableJSDoc(node)
	require.Len(t, h.Tags, 1)
	assert.Equal(t, tags.NameType, h.Tags[0].Name)
	h.Append(tags.Tag{Name: tags.NameExport})
	attachment := h.UpdateComment()
	assert.Contains(t, attachment.Leading[0], "@type")
	assert.Contains(t, attachment.Leading[0], "@export")
}

func TestGetFunctionTypeJSDoc_MergesOverloads(t *testing.T) {
	numberType := &stast.KeywordTypeNode{Keyword: "number"}
	stringType := &stast.KeywordTypeNode{Keyword: "string"}
	voidType := &stast.KeywordTypeNode{Keyword: "void"}
	returnNumberType := &stast.KeywordTypeNode{Keyword: "number"}

	checker := &fakeChecker{typeOf: map[stast.TypeNode]*stast.Type{
		numberType:       {Kind: stast.TypePrimitive, Name: "number"},
		stringType:       {Kind: stast.TypePrimitive, Name: "string"},
		voidType:         {Kind: stast.TypeVoid},
		returnNumberType: {Kind: stast.TypePrimitive, Name: "number"},
	}}
	mtt := New(newFile(), checker, &fakeHost{}, nil, false)

	overload1 := &stast.FunctionLikeDeclaration{
		Parameters: []*stast.ParameterNode{{Name: &stast.Identifier{Text: "x"}, Type: numberType}},
		ReturnType: voidType,
	}
	overload2 := &stast.FunctionLikeDeclaration{
		Parameters: []*stast.ParameterNode{{Name: &stast.Identifier{Text: "x"}, Type: stringType}},
		ReturnType: returnNumberType,
	}

	tagList, names := mtt.GetFunctionTypeJSDoc([]*stast.FunctionLikeDeclaration{overload1, overload2}, nil)
	require.Equal(t, []string{"x"}, names)

	var paramTag, returnTag *tags.Tag
	for i := range tagList {
		switch tagList[i].Name {
		case tags.NameParam:
			paramTag = &tagList[i]
		case tags.NameReturn:
			returnTag = &tagList[i]
		}
	}
	require.NotNil(t, paramTag)
	require.NotNil(t, returnTag)
	assert.Equal(t, "(number|string)", paramTag.Type)
	assert.Equal(t, "(void|number)", returnTag.Type)
}

func TestError_AppendsFatalDiagnostic(t *testing.T) {
	mtt := New(newFile(), &fakeChecker{}, &fakeHost{}, nil, false)
	mtt.Error(nil, "boom")
	require.Len(t, mtt.Diagnostics, 1)
	assert.Equal(t, CategoryError, mtt.Diagnostics[0].Category)
}

func TestDebugWarn_InvokesHostCallback(t *testing.T) {
	h := &fakeHost{}
	mtt := New(newFile(), &fakeChecker{}, h, nil, false)
	mtt.DebugWarn(nil, "careful")
	require.Len(t, h.warnings, 1)
	assert.Equal(t, CategoryWarning, h.warnings[0].Category)
}
