package annotator

import (
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
)

// transformImport handles an import declaration: the import itself
// always passes through unchanged at the runtime level (the
// module-format rewriter decides whether to keep or drop it); this
// handler's only job is registering the forward declare that keeps the
// type namespace alive.
func (tr *Transformer) transformImport(decl *stast.ImportDeclaration) []stast.Node {
	if decl.Clause == stast.ImportSideEffectOnly {
		return []stast.Node{decl}
	}

	resolved := tr.resolveImportPath(decl.ModuleSpecifier)
	tr.mtt.ForwardDeclare(resolved, nil, true, decl.Clause == stast.ImportDefault)

	return []stast.Node{decl}
}

// resolveImportPath applies the host's canonical cross-module naming and,
// when opted in, rewrites a trailing "/index" shorthand explicitly.
func (tr *Transformer) resolveImportPath(specifier string) string {
	resolved := tr.host.PathToModuleName(tr.mtt.File.Path, specifier)
	if tr.host.ConvertIndexImportShorthand() && strings.HasSuffix(resolved, "/index") {
		resolved = strings.TrimSuffix(resolved, "/index")
	}
	return resolved
}
