package externs

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// emitVariableStatement handles a variable statement.
func (g *Generator) emitVariableStatement(v *stast.VariableStatement, namespace string) {
	for _, d := range v.Declarators {
		if d.Destructuring || d.Name == nil || blacklistedNames[d.Name.Text] {
			continue
		}

		typeStr := "?"
		if d.Type != nil {
			typeStr = g.mtt.TranslateType(g.mtt.Checker.TypeOfTypeNode(d.Type), d)
		}

		comment := tags.ToSerializedComment([]tags.Tag{{Name: tags.NameType, Type: typeStr}})
		g.writeLine(comment.Text)
		if namespace == "" {
			g.writeLine("var " + d.Name.Text + ";")
			continue
		}
		g.writeLine(qualify(namespace, d.Name.Text) + ";")
	}
}
