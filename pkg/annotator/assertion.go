package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// transformAsExpression and transformNonNullExpression handle type
// assertions and non-null expressions: both rewrite to a parenthesized
// cast whose inner comment is a single inline "type" tag (no trailing
// newline).
func (tr *Transformer) transformAsExpression(n *stast.AsExpression) stast.Node {
	typeStr := tr.mtt.Translator().Translate(tr.mtt.Checker.TypeOfTypeNode(n.Type), n)
	return castNode(n.Expression, typeStr)
}

func (tr *Transformer) transformNonNullExpression(n *stast.NonNullExpression) stast.Node {
	t := tr.mtt.Checker.GetTypeAtLocation(n.Expression)
	nonNull := tr.mtt.Checker.GetNonNullableType(t)
	typeStr := tr.mtt.Translator().Translate(nonNull, n)
	return castNode(n.Expression, typeStr)
}

func castNode(expr stast.Node, typeStr string) stast.Node {
	comment := tags.ToSerializedCommentInline(tags.Tag{Name: tags.NameType, Type: typeStr})
	return &stast.ParenthesizedExpression{
		Expression: expr,
		Leading:    &stast.CommentAttachment{Leading: []string{comment.Text}},
	}
}
