package externs

import "github.com/alippai/gots-annotate/internal/stast"

// emitModule dispatches between the two module-declaration forms: a
// declared namespace (identifier name) and a declared external module
// (string-literal name).
func (g *Generator) emitModule(decl *stast.ModuleDeclaration, namespace string) {
	if decl.StringName != "" {
		g.emitExternalModule(decl, namespace)
		return
	}
	g.emitNamespaceModule(decl, namespace)
}

// emitNamespaceModule handles `declare namespace ns { ... }` (and
// `declare global { ... }`, which resets to the root namespace instead of
// nesting).
func (g *Generator) emitNamespaceModule(decl *stast.ModuleDeclaration, namespace string) {
	if decl.IdentifierName == "global" {
		g.emitBody(decl.Body, "")
		return
	}

	qualified := qualify(namespace, decl.IdentifierName)
	key := "module:" + qualified
	if !g.declared[key] {
		g.declared[key] = true
		g.writeLine("/** @const */")
		if namespace == "" {
			g.writeLine("var " + decl.IdentifierName + " = {};")
		} else {
			g.writeLine(qualified + " = {};")
		}
	}

	g.emitBody(decl.Body, qualified)
}

// emitExternalModule handles `declare module "foo-bar/baz" { ... }`.
func (g *Generator) emitExternalModule(decl *stast.ModuleDeclaration, _ string) {
	if !g.emittedTsickleModuleRoot {
		g.emittedTsickleModuleRoot = true
		g.writeLine("/** @const */")
		g.writeLine("var tsickle_declare_module = {};")
	}

	mangled := mangleModuleName(decl.StringName)
	qualified := "tsickle_declare_module." + mangled
	key := "module:" + qualified
	if !g.declared[key] {
		g.declared[key] = true
		g.writeLine("/** @const */")
		g.writeLine(qualified + " = {};")
	}

	g.emitBody(decl.Body, qualified)
}
