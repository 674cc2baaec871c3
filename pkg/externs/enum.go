package externs

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// emitEnum handles an enum declaration.
func (g *Generator) emitEnum(decl *stast.EnumDeclaration, namespace string) {
	if decl.Name == nil || blacklistedNames[decl.Name.Text] {
		return
	}

	qualified := qualify(namespace, decl.Name.Text)

	g.writeLine("/** @const */")
	if namespace == "" {
		g.writeLine("var " + decl.Name.Text + " = {};")
	} else {
		g.writeLine(qualified + " = {};")
	}

	for _, m := range decl.Members {
		if !isValidIdentifier(m.Name) {
			g.writeTODO("unhandled enum member \"" + m.Name + "\"")
			continue
		}
		g.writeLine("/** @const {number} */")
		g.writeLine(qualified + "." + m.Name + ";")
	}
}
