package stparser

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/alippai/gots-annotate/internal/stast"
)

// buildExpressionStatement builds an `expr;` statement, recursing into
// buildExpression so that an as-expression or non-null-expression
// anywhere in the top-level expression is modeled structurally (the
// Annotation Transformer only rewrites the outermost one it finds, per
// spec.md §4.3, but nested ones still need to round-trip losslessly).
func (b *Builder) buildExpressionStatement(n *ts.Node) *stast.ExpressionStatement {
	inner := n.NamedChild(0)
	stmt := &stast.ExpressionStatement{Expression: b.buildExpression(inner)}
	stmt.StartPos, stmt.EndPos = int(n.StartByte()), int(n.EndByte())
	return stmt
}

// buildExpression converts the handful of expression shapes the
// Annotation Transformer reshapes (as-expression, non-null-expression)
// into their stast node; everything else is preserved verbatim as a
// RawExpression, since the transformer never needs to look inside it.
func (b *Builder) buildExpression(n *ts.Node) stast.Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "as_expression", "satisfies_expression":
		expr := n.ChildByFieldName("expression")
		typ := n.ChildByFieldName("type")
		as := &stast.AsExpression{Expression: b.buildExpression(expr), Type: b.buildTypeNode(typ)}
		as.StartPos, as.EndPos = int(n.StartByte()), int(n.EndByte())
		return as
	case "non_null_expression":
		expr := n.NamedChild(0)
		nn := &stast.NonNullExpression{Expression: b.buildExpression(expr)}
		nn.StartPos, nn.EndPos = int(n.StartByte()), int(n.EndByte())
		return nn
	case "parenthesized_expression":
		return b.buildExpression(n.NamedChild(0))
	default:
		raw := &stast.RawExpression{Text: n.Utf8Text(b.source)}
		raw.StartPos, raw.EndPos = int(n.StartByte()), int(n.EndByte())
		return raw
	}
}
