package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// transformTypeAlias handles a type alias declaration.
func (tr *Transformer) transformTypeAlias(decl *stast.TypeAliasDeclaration) []stast.Node {
	if sym, ok := tr.mtt.Checker.GetSymbolAtLocation(decl.Name); ok && sym.IsValue() {
		return nil // namespaces collide
	}
	if !decl.Modifiers.Export {
		return nil // AT resolves aliases inline
	}
	if !tr.host.OutputModuleFormatMatchesTarget() {
		return nil
	}

	tr.mtt.Translator().BlacklistTypeParameters(decl, decl.TypeParameters)

	typeStr := tr.mtt.Translator().Translate(tr.mtt.Checker.TypeOfTypeNode(decl.Value), decl)

	access := &stast.PropertyAccessExpression{
		Expression: &stast.RawExpression{Text: "exports"},
		Name:       decl.Name.Text,
	}
	comment := tags.ToSerializedComment([]tags.Tag{{Name: tags.NameTypedef, Type: typeStr}})

	return []stast.Node{&stast.ExpressionStatement{
		Expression: access,
		Leading:    &stast.CommentAttachment{Leading: []string{comment.Text}},
	}}
}
