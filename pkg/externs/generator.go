// Package externs implements the Externs Generator: a
// printer that walks declaration-only statements — declared namespaces,
// declared external modules, and the ambient statements of an otherwise
// ordinary file — and appends their AT-dialect stub form to a single
// output string. Unlike pkg/annotator it never rewrites a syntax tree;
// it only ever grows a string.
package externs

import (
	"fmt"
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/moduletranslator"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// blacklistedNames is the hard-coded skip list.
var blacklistedNames = map[string]bool{
	"exports":           true,
	"global":            true,
	"module":            true,
	"ErrorConstructor":  true,
	"Symbol":            true,
	"WorkerGlobalScope": true,
}

// Generator accumulates one file's externs stub text. One Generator is
// created per declaration file, wrapping a ModuleTypeTranslator created
// with isForExterns=true.
type Generator struct {
	mtt *moduletranslator.ModuleTypeTranslator
	buf strings.Builder

	// declared deduplicates module/class/interface/function stub
	// emission by a namespace-qualified key.
	declared map[string]bool

	emittedTsickleModuleRoot bool
}

// New creates a Generator bound to mtt for the duration of one file.
func New(mtt *moduletranslator.ModuleTypeTranslator) *Generator {
	return &Generator{mtt: mtt, declared: map[string]bool{}}
}

// Generate renders statements (the ambient statements of a declaration
// file) to the AT-dialect stub text.
func (g *Generator) Generate(statements []stast.Node) string {
	g.buf.Reset()
	g.emitBody(statements, "")
	return g.buf.String()
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// emitBody processes one declaration list (a file's top level, or a
// module/namespace body), grouping ambient function overloads by name
// before dispatching each statement in source order.
func (g *Generator) emitBody(statements []stast.Node, namespace string) {
	funcGroups := map[string][]*stast.FunctionLikeDeclaration{}
	for _, s := range statements {
		if fn, ok := s.(*stast.FunctionLikeDeclaration); ok && fn.Kind == stast.FunctionKindFunction && fn.Name != nil {
			funcGroups[fn.Name.Text] = append(funcGroups[fn.Name.Text], fn)
		}
	}
	emittedFuncGroup := map[string]bool{}

	for _, s := range statements {
		switch v := s.(type) {
		case *stast.ModuleDeclaration:
			g.emitModule(v, namespace)
		case *stast.ImportEqualsDeclaration:
			g.emitImportEquals(v, namespace)
		case *stast.ClassDeclaration:
			g.emitClassLike(v.Name, v.Heritage, v.Members, false, namespace)
		case *stast.InterfaceDeclaration:
			g.emitClassLike(v.Name, v.Heritage, v.Members, true, namespace)
		case *stast.FunctionLikeDeclaration:
			if v.Kind != stast.FunctionKindFunction || v.Name == nil {
				g.writeTODO(fmt.Sprintf("unhandled function-like kind %v", v.Kind))
				continue
			}
			if emittedFuncGroup[v.Name.Text] {
				continue
			}
			emittedFuncGroup[v.Name.Text] = true
			g.emitFunctionGroup(funcGroups[v.Name.Text], namespace)
		case *stast.VariableStatement:
			g.emitVariableStatement(v, namespace)
		case *stast.EnumDeclaration:
			g.emitEnum(v, namespace)
		case *stast.TypeAliasDeclaration:
			g.emitTypeAlias(v, namespace)
		case *stast.UnrecognizedMember:
			g.writeTODO("unhandled member:\n" + tags.Escape(v.SourceText))
		default:
			g.writeTODO(fmt.Sprintf("unhandled declaration kind %T", s))
		}
	}
}

func (g *Generator) writeLine(s string) {
	g.buf.WriteString(s)
	g.buf.WriteString("\n")
}

func (g *Generator) writeTODO(what string) {
	g.writeLine("// TODO: " + what)
}

// isValidIdentifier reports whether name can appear as a bare JS
// identifier.
func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// mangleModuleName mangles a declared external module's string-literal
// name into a safe identifier: underscore-doubling, then non-alphabetic
// characters to underscore.
func mangleModuleName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '_':
			b.WriteString("__")
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
