package stparser

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/alippai/gots-annotate/internal/stast"
)

// buildTypeNode converts a syntax-level type node into a stast.TypeNode.
// Shapes with no AT equivalent (tuple, conditional, mapped, indexed
// access, template literal...) degrade to a bare KeywordTypeNode("any"),
// matching the translator's own blanket fallback to "?" for anything it
// cannot resolve a symbol or primitive for.
func (b *Builder) buildTypeNode(n *ts.Node) stast.TypeNode {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "predefined_type":
		kw := b.text(n.NamedChild(0))
		if kw == "" {
			kw = b.text(n)
		}
		return b.keywordType(n, kw)
	case "type_identifier":
		return b.typeReference(n, b.buildIdentifier(n), nil)
	case "nested_type_identifier":
		return b.typeReference(n, b.buildIdentifier(n), nil)
	case "generic_type":
		name := b.buildIdentifier(n.ChildByFieldName("name"))
		var args []stast.TypeNode
		if a := n.ChildByFieldName("type_arguments"); a != nil {
			for i := uint(0); i < a.NamedChildCount(); i++ {
				args = append(args, b.buildTypeNode(a.NamedChild(i)))
			}
		}
		return b.typeReference(n, name, args)
	case "union_type":
		u := &stast.UnionTypeNode{}
		u.StartPos, u.EndPos = int(n.StartByte()), int(n.EndByte())
		for i := uint(0); i < n.NamedChildCount(); i++ {
			u.Members = append(u.Members, b.buildTypeNode(n.NamedChild(i)))
		}
		return u
	case "intersection_type":
		// AT has no intersection syntax; the translator treats a union of
		// the constituent names as the closest lossy approximation.
		u := &stast.UnionTypeNode{}
		u.StartPos, u.EndPos = int(n.StartByte()), int(n.EndByte())
		for i := uint(0); i < n.NamedChildCount(); i++ {
			u.Members = append(u.Members, b.buildTypeNode(n.NamedChild(i)))
		}
		return u
	case "array_type":
		elem := n.NamedChild(0)
		a := &stast.ArrayTypeNode{Element: b.buildTypeNode(elem)}
		a.StartPos, a.EndPos = int(n.StartByte()), int(n.EndByte())
		return a
	case "parenthesized_type":
		return b.buildTypeNode(n.NamedChild(0))
	case "literal_type":
		return b.keywordType(n, b.text(n))
	case "function_type", "constructor_type":
		fn := &stast.FunctionTypeNode{Params: b.buildParameters(n.ChildByFieldName("parameters"))}
		fn.StartPos, fn.EndPos = int(n.StartByte()), int(n.EndByte())
		if rt := n.ChildByFieldName("return_type"); rt != nil {
			fn.Return = b.buildTypeNode(unwrapTypeAnnotation(rt))
		}
		return fn
	default:
		return b.keywordType(n, "any")
	}
}

func (b *Builder) keywordType(n *ts.Node, kw string) *stast.KeywordTypeNode {
	k := &stast.KeywordTypeNode{Keyword: kw}
	k.StartPos, k.EndPos = int(n.StartByte()), int(n.EndByte())
	return k
}

func (b *Builder) typeReference(n *ts.Node, name *stast.Identifier, args []stast.TypeNode) *stast.TypeReferenceNode {
	r := &stast.TypeReferenceNode{Name: name, TypeArgs: args}
	r.StartPos, r.EndPos = int(n.StartByte()), int(n.EndByte())
	return r
}
