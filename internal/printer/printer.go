// Package printer renders a rewritten internal/stast tree back into
// source text. Position-preserving for everything pkg/annotator and
// pkg/externs leave untouched (tsickle's own external-collaborator
// boundary puts erasing ST's inline type syntax downstream, in the
// module-format rewriter/build step — this package's job is splicing
// in the new comment annotations and the handful of reshaped nodes,
// not re-emitting the whole program), and structural for the synthetic
// node kinds the core introduces (member-type-declarations, casts,
// split variable statements, the lowered-interface function stub).
package printer

import (
	"fmt"
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
)

// Printer renders one file's post-transform statement list.
type Printer struct {
	source   []byte
	comments map[stast.Node][]string
}

// New creates a Printer over file's original source bytes and the
// (possibly rewritten by pkg/moduletranslator) leading-comment table.
func New(file *stast.SourceFile) *Printer {
	return &Printer{source: file.Text, comments: file.LeadingComments}
}

// Print renders file's statement list, each statement followed by a
// single newline.
func (p *Printer) Print(file *stast.SourceFile) string {
	var b strings.Builder
	if file.FileOverview != "" {
		b.WriteString(file.FileOverview)
		b.WriteString("\n")
	}
	for _, stmt := range file.ModulePrologue {
		p.printIndented(&b, stmt, 0)
	}
	for _, stmt := range file.Statements {
		p.printIndented(&b, stmt, 0)
	}
	return b.String()
}

func (p *Printer) printIndented(b *strings.Builder, n stast.Node, indent int) {
	if n == nil {
		return
	}
	pad := strings.Repeat("  ", indent)
	for _, c := range p.comments[n] {
		writeIndentedBlock(b, pad, c)
		b.WriteString("\n")
	}
	p.printStatement(b, n, indent)
	b.WriteString("\n")
}

// writeIndentedBlock writes s with pad prefixed to its first line; s
// may itself be a multi-line comment block, which is already indented
// internally by pkg/tags, so interior lines are left alone.
func writeIndentedBlock(b *strings.Builder, pad, s string) {
	b.WriteString(pad)
	b.WriteString(s)
}

func (p *Printer) printStatement(b *strings.Builder, n stast.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	switch v := n.(type) {
	case nil:
		return
	case *stast.Sequence:
		first := true
		for _, s := range v.Statements {
			if !first {
				b.WriteString("\n")
			}
			first = false
			p.printIndented(b, s, indent)
		}
	case *stast.CommentedStatement:
		if v.LeadingComment != "" {
			b.WriteString(pad)
			b.WriteString(v.LeadingComment)
			if v.Statement != nil {
				b.WriteString("\n")
			}
		}
		if v.Statement != nil {
			p.printStatement(b, v.Statement, indent)
		}
	case *stast.IfFalseBlock:
		b.WriteString(pad)
		b.WriteString("if (false) {\n")
		for _, s := range v.Statements {
			p.printIndented(b, s, indent+1)
		}
		b.WriteString(pad)
		b.WriteString("}")
	case *stast.RawStatement:
		b.WriteString(pad)
		b.WriteString(v.Text)
	case *stast.ExpressionStatement:
		b.WriteString(pad)
		if v.Leading != nil {
			for _, c := range v.Leading.Leading {
				b.WriteString(c)
				b.WriteString("\n")
				b.WriteString(pad)
			}
		}
		p.printExpr(b, v.Expression)
		b.WriteString(";")
	case *stast.VariableStatement:
		b.WriteString(pad)
		b.WriteString(p.variableStatementText(v))
	case *stast.FunctionLikeDeclaration:
		b.WriteString(pad)
		b.WriteString(p.functionDeclText(v))
	default:
		b.WriteString(pad)
		b.WriteString(p.sourceSlice(n))
	}
}

// variableStatementText reconstructs `kind d1, d2, ...;` from each
// declarator's own preserved source span — this covers both an
// untouched multi-declarator statement and the single-declarator
// statements pkg/annotator splits a multi-declarator one into, since
// neither carries a span of its own.
func (p *Printer) variableStatementText(v *stast.VariableStatement) string {
	parts := make([]string, 0, len(v.Declarators))
	for _, d := range v.Declarators {
		parts = append(parts, p.sourceSlice(d))
	}
	return v.Kind + " " + strings.Join(parts, ", ") + ";"
}

// functionDeclText preserves the original signature and body verbatim
// when one exists in source; the one case with no source span is the
// zero-argument stub transformInterface lowers an interface to.
func (p *Printer) functionDeclText(fn *stast.FunctionLikeDeclaration) string {
	if fn.End() > fn.Pos() {
		return p.sourceSlice(fn)
	}
	name := ""
	if fn.Name != nil {
		name = fn.Name.Text
	}
	return fmt.Sprintf("function %s() {}", name)
}

func (p *Printer) sourceSlice(n stast.Node) string {
	if n == nil {
		return ""
	}
	start, end := n.Pos(), n.End()
	if start < 0 || end < start || end > len(p.source) {
		return ""
	}
	return string(p.source[start:end])
}

// printExpr renders the small set of synthetic expression shapes
// pkg/annotator builds (casts, member-type-declaration assignments);
// anything else is an untouched parsed expression, printed from its
// own preserved span.
func (p *Printer) printExpr(b *strings.Builder, n stast.Node) {
	switch v := n.(type) {
	case nil:
	case *stast.ParenthesizedExpression:
		if v.Leading != nil {
			for _, c := range v.Leading.Leading {
				b.WriteString(c)
				b.WriteString(" ")
			}
		}
		b.WriteString("(")
		p.printExpr(b, v.Expression)
		b.WriteString(")")
	case *stast.AssignmentExpression:
		p.printExpr(b, v.Left)
		b.WriteString(" = ")
		p.printExpr(b, v.Right)
	case *stast.PropertyAccessExpression:
		p.printExpr(b, v.Expression)
		b.WriteString(".")
		b.WriteString(v.Name)
	case *stast.RawExpression:
		b.WriteString(v.Text)
	case *stast.EmptyFunctionExpression:
		b.WriteString("function(")
		b.WriteString(strings.Join(v.ParameterNames, ", "))
		b.WriteString(") {}")
	case *stast.AsExpression:
		p.printExpr(b, v.Expression)
	case *stast.NonNullExpression:
		p.printExpr(b, v.Expression)
	default:
		b.WriteString(p.sourceSlice(n))
	}
}
