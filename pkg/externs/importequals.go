package externs

import "github.com/alippai/gots-annotate/internal/stast"

// blacklistedImportEqualsName is the hard-coded skip name for
// import-equals declarations.
const blacklistedImportEqualsName = "ng"

// emitImportEquals handles an import-equals declaration.
func (g *Generator) emitImportEquals(decl *stast.ImportEqualsDeclaration, namespace string) {
	if decl.LocalName == blacklistedImportEqualsName {
		g.writeLine("// skip: import-equals aliasing " + blacklistedImportEqualsName + " is not re-declared in externs")
		return
	}

	if decl.IsRequire {
		g.writeTODO("import-equals aliasing require('" + decl.RequirePath + "') has no externs form")
		return
	}

	g.writeLine("/** @const */")
	if namespace == "" {
		g.writeLine("var " + decl.LocalName + " = " + decl.QualifiedRHS + ";")
		return
	}
	g.writeLine(qualify(namespace, decl.LocalName) + " = " + decl.QualifiedRHS + ";")
}
