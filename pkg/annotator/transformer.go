// Package annotator implements the Annotation Transformer: a syntax-tree visitor that rewrites a type-checked,
// non-declaration ST-dialect source file into the AT dialect, attaching
// structured comment annotations and reshaping select node kinds.
package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/moduletranslator"
)

// Host is the subset of the driver's Host contract the transformer
// consults directly (import-path resolution policy); everything else
// flows through the ModuleTypeTranslator.
type Host interface {
	PathToModuleName(importerPath, importedPath string) string
	ConvertIndexImportShorthand() bool
	DisableAutoQuoting() bool

	// OutputModuleFormatMatchesTarget reports whether the driver's
	// selected output module format is the one this system targets.
	OutputModuleFormatMatchesTarget() bool
}

// Transformer walks one source file's statement list and produces a
// rewritten statement list in the AT dialect. One Transformer is created
// per file.
type Transformer struct {
	mtt  *moduletranslator.ModuleTypeTranslator
	host Host
}

// New creates a Transformer bound to mtt for the duration of one file's
// transformation.
func New(mtt *moduletranslator.ModuleTypeTranslator, host Host) *Transformer {
	return &Transformer{mtt: mtt, host: host}
}

// TransformFile rewrites every top-level statement of file, then splices
// in forward declares.
func (tr *Transformer) TransformFile(file *stast.SourceFile) *stast.SourceFile {
	var out []stast.Node
	for _, stmt := range file.Statements {
		out = append(out, tr.transformStatement(stmt)...)
	}

	rewritten := *file
	rewritten.Statements = out
	return tr.mtt.InsertForwardDeclares(&rewritten)
}

// transformStatement dispatches on node kind,
// returning zero or more replacement statements. A class, interface,
// type alias or function carrying a `declare` modifier passes through
// unchanged, and module declarations are not descended into, so nodes
// nested within those ambient declarations are left as they are. A
// `declare` variable statement carries no modifier in stast and is
// transformed like any other.
func (tr *Transformer) transformStatement(n stast.Node) []stast.Node {
	switch v := n.(type) {
	case *stast.ClassDeclaration:
		if v.Modifiers.Declare {
			return []stast.Node{n}
		}
		return tr.transformClass(v)
	case *stast.InterfaceDeclaration:
		if v.Modifiers.Declare {
			return []stast.Node{n}
		}
		return tr.transformInterface(v)
	case *stast.VariableStatement:
		return tr.transformVariableStatement(v)
	case *stast.TypeAliasDeclaration:
		if v.Modifiers.Declare {
			return []stast.Node{n}
		}
		return tr.transformTypeAlias(v)
	case *stast.FunctionLikeDeclaration:
		if v.Modifiers.Declare {
			return []stast.Node{n}
		}
		return tr.transformTopLevelFunction(v)
	case *stast.ImportDeclaration:
		return tr.transformImport(v)
	case *stast.ExpressionStatement:
		return []stast.Node{tr.transformExpressionStatement(v)}
	default:
		return []stast.Node{n}
	}
}

// transformExpression dispatches on the handful of expression kinds the
// transformer reshapes; everything else passes through unchanged.
func (tr *Transformer) transformExpression(n stast.Node) stast.Node {
	switch v := n.(type) {
	case *stast.AsExpression:
		return tr.transformAsExpression(v)
	case *stast.NonNullExpression:
		return tr.transformNonNullExpression(v)
	default:
		return n
	}
}

func (tr *Transformer) transformExpressionStatement(n *stast.ExpressionStatement) stast.Node {
	rewritten := *n
	rewritten.Expression = tr.transformExpression(n.Expression)
	return &rewritten
}

func (tr *Transformer) transformTopLevelFunction(fn *stast.FunctionLikeDeclaration) []stast.Node {
	tr.annotateFunctionLike(fn)
	return []stast.Node{fn}
}
