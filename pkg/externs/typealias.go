package externs

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// emitTypeAlias handles a type alias declaration.
func (g *Generator) emitTypeAlias(decl *stast.TypeAliasDeclaration, namespace string) {
	if decl.Name == nil || blacklistedNames[decl.Name.Text] {
		return
	}

	typeStr := g.mtt.TranslateType(g.mtt.Checker.TypeOfTypeNode(decl.Value), decl)
	comment := tags.ToSerializedComment([]tags.Tag{{Name: tags.NameTypedef, Type: typeStr}})
	g.writeLine(comment.Text)
	g.writeLine(qualify(namespace, decl.Name.Text) + ";")
}
