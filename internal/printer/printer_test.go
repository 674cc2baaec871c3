package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alippai/gots-annotate/internal/stast"
)

func TestPrint_PassthroughDeclarationKeepsOriginalSpan(t *testing.T) {
	src := []byte("class Foo {}\n")
	cls := &stast.ClassDeclaration{}
	cls.StartPos, cls.EndPos = 0, len("class Foo {}")

	file := &stast.SourceFile{Text: src, Statements: []stast.Node{cls}}
	out := New(file).Print(file)
	assert.Contains(t, out, "class Foo {}")
}

func TestPrint_SplitVariableStatementUsesDeclaratorSpans(t *testing.T) {
	src := []byte("var a = 1, b = 2;")
	declA := &stast.VariableDeclarator{Name: &stast.Identifier{Text: "a"}, HasInitializer: true}
	declA.StartPos, declA.EndPos = 4, 9 // "a = 1"
	declB := &stast.VariableDeclarator{Name: &stast.Identifier{Text: "b"}, HasInitializer: true}
	declB.StartPos, declB.EndPos = 11, 16 // "b = 2"

	stmt1 := &stast.VariableStatement{Kind: "var", Declarators: []*stast.VariableDeclarator{declA}}
	stmt2 := &stast.VariableStatement{Kind: "var", Declarators: []*stast.VariableDeclarator{declB}}

	file := &stast.SourceFile{Text: src, Statements: []stast.Node{stmt1, stmt2}}
	out := New(file).Print(file)
	assert.Contains(t, out, "var a = 1;")
	assert.Contains(t, out, "var b = 2;")
}

func TestPrint_SyntheticFunctionStubFromLoweredInterface(t *testing.T) {
	fn := &stast.FunctionLikeDeclaration{Name: &stast.Identifier{Text: "Shape"}, HasBody: true}
	file := &stast.SourceFile{Text: []byte(""), Statements: []stast.Node{fn}}
	out := New(file).Print(file)
	assert.Contains(t, out, "function Shape() {}")
}

func TestPrint_ExpressionStatementWithLeadingComment(t *testing.T) {
	stmt := &stast.ExpressionStatement{
		Expression: &stast.PropertyAccessExpression{
			Expression: &stast.RawExpression{Text: "Foo"},
			Name:       "bar",
		},
		Leading: &stast.CommentAttachment{Leading: []string{"/** @type {number} */"}},
	}
	file := &stast.SourceFile{Text: []byte(""), Statements: []stast.Node{stmt}}
	out := New(file).Print(file)
	assert.Contains(t, out, "@type {number}")
	assert.Contains(t, out, "Foo.bar;")
}

func TestPrint_IfFalseBlockIndentsMembers(t *testing.T) {
	block := &stast.IfFalseBlock{Statements: []stast.Node{
		&stast.ExpressionStatement{Expression: &stast.RawExpression{Text: "Foo.prototype.x"}},
	}}
	file := &stast.SourceFile{Text: []byte(""), Statements: []stast.Node{block}}
	out := New(file).Print(file)
	assert.Contains(t, out, "if (false) {")
	assert.Contains(t, out, "\n  Foo.prototype.x;\n")
}

func TestPrint_ParenthesizedCastCarriesInlineComment(t *testing.T) {
	cast := &stast.ParenthesizedExpression{
		Expression: &stast.RawExpression{Text: "x"},
		Leading:    &stast.CommentAttachment{Leading: []string{"/** @type {string} */"}},
	}
	stmt := &stast.ExpressionStatement{Expression: cast}
	file := &stast.SourceFile{Text: []byte(""), Statements: []stast.Node{stmt}}
	out := New(file).Print(file)
	assert.Contains(t, out, "/** @type {string} */ (x);")
}
