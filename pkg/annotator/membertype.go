package annotator

import (
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// BuildMemberTypeDeclaration builds the member-type-declaration: a dead
// `if (false) { ... }` block listing every static/instance property,
// parameter property, and abstract/interface method with its AT type
// annotation. Returns nil when the collection is empty or name is nil.
func BuildMemberTypeDeclaration(tr *Transformer, name *stast.Identifier, members []stast.Node, isInterface bool) stast.Node {
	if name == nil {
		return nil
	}

	var stmts []stast.Node

	for _, m := range members {
		switch v := m.(type) {
		case *stast.PropertyDeclaration:
			stmts = append(stmts, tr.memberPropertyStatement(name, v.Name.Text, v.Modifiers.Static, v.Type, v.Optional, v.HasExportingDecorator))
		case *stast.PropertySignature:
			stmts = append(stmts, tr.memberPropertyStatement(name, v.Name.Text, false, v.Type, v.Optional, false))
		case *stast.FunctionLikeDeclaration:
			if isInterface || (v.Modifiers.Abstract && !v.HasBody) {
				stmts = append(stmts, tr.memberMethodStatement(name, v))
			}
		case *stast.UnrecognizedMember:
			stmts = append(stmts, &stast.RawStatement{Text: "// TODO: unhandled member\n" + tags.Escape(v.SourceText)})
		}
	}

	stmts = append(stmts, parameterPropertyStatements(tr, name, members)...)

	if len(stmts) == 0 {
		return nil
	}

	return &stast.Sequence{Statements: []stast.Node{&stast.IfFalseBlock{Statements: stmts}}}
}

// parameterPropertyStatements collects the first constructor's
// parameter properties.
func parameterPropertyStatements(tr *Transformer, name *stast.Identifier, members []stast.Node) []stast.Node {
	ctor := firstConstructor(members)
	if ctor == nil {
		return nil
	}

	var stmts []stast.Node
	for _, p := range ctor.Parameters {
		if !p.IsParameterProperty() || p.Name == nil {
			continue
		}
		stmts = append(stmts, tr.memberPropertyStatement(name, p.Name.Text, false, p.Type, p.Optional, false))
	}
	return stmts
}

func firstConstructor(members []stast.Node) *stast.FunctionLikeDeclaration {
	for _, m := range members {
		if fn, ok := m.(*stast.FunctionLikeDeclaration); ok && fn.Kind == stast.FunctionKindConstructor {
			return fn
		}
	}
	return nil
}

func (tr *Transformer) memberPropertyStatement(className *stast.Identifier, propName string, static bool, typeNode stast.TypeNode, optional, exported bool) stast.Node {
	target := Node(&stast.RawExpression{Text: className.Text})
	if !static {
		target = &stast.PropertyAccessExpression{Expression: target, Name: "prototype"}
	}

	access := &stast.PropertyAccessExpression{Expression: target, Name: propName}

	typeStr := tr.translateMemberTypeNode(typeNode)
	if optional && typeStr == "?" {
		typeStr = "?|undefined"
	}

	tagList := []tags.Tag{{Name: tags.NameType, Type: typeStr}}
	if exported {
		tagList = append(tagList, tags.Tag{Name: tags.NameExport})
	}

	comment := tags.ToSerializedComment(tagList)
	return &stast.ExpressionStatement{
		Expression: access,
		Leading:    &stast.CommentAttachment{Leading: []string{comment.Text}},
	}
}

func (tr *Transformer) memberMethodStatement(className *stast.Identifier, fn *stast.FunctionLikeDeclaration) stast.Node {
	target := Node(&stast.PropertyAccessExpression{
		Expression: &stast.RawExpression{Text: className.Text},
		Name:       "prototype",
	})
	access := &stast.PropertyAccessExpression{Expression: target, Name: fn.Name.Text}

	tagList, paramNames := tr.mtt.GetFunctionTypeJSDoc([]*stast.FunctionLikeDeclaration{fn}, nil)
	comment := tags.ToSerializedComment(tagList)

	assign := &stast.AssignmentExpression{
		Left:  access,
		Right: &stast.EmptyFunctionExpression{ParameterNames: paramNames},
	}
	return &stast.ExpressionStatement{
		Expression: assign,
		Leading:    &stast.CommentAttachment{Leading: []string{comment.Text}},
	}
}

func (tr *Transformer) translateMemberTypeNode(tn stast.TypeNode) string {
	if tn == nil {
		return "?"
	}
	return tr.mtt.Translator().Translate(tr.mtt.Checker.TypeOfTypeNode(tn), nil)
}

// Node is a tiny alias used locally to keep member-access construction
// readable without repeating the stast. prefix on every intermediate
// expression variable.
type Node = stast.Node
