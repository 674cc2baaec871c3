package stparser

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/alippai/gots-annotate/internal/stast"
)

// buildClass builds a class_declaration/abstract_class_declaration into
// a *stast.ClassDeclaration.
func (b *Builder) buildClass(n *ts.Node) *stast.ClassDeclaration {
	cls := &stast.ClassDeclaration{
		Name:           b.buildIdentifier(n.ChildByFieldName("name")),
		Modifiers:      buildModifiers(n),
		TypeParameters: b.buildTypeParameters(n.ChildByFieldName("type_parameters")),
		Heritage:       b.buildHeritage(n),
	}
	cls.StartPos, cls.EndPos = int(n.StartByte()), int(n.EndByte())
	if cls.Name != nil {
		b.registerSymbol(cls.Name, stast.SymbolValue|stast.SymbolClass|stast.SymbolType)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		for i := uint(0); i < body.NamedChildCount(); i++ {
			m := body.NamedChild(i)
			if m == nil || m.Kind() == "comment" {
				continue
			}
			cls.Members = append(cls.Members, b.buildClassMember(m))
		}
	}
	return cls
}

// buildInterface builds an interface_declaration.
func (b *Builder) buildInterface(n *ts.Node) *stast.InterfaceDeclaration {
	iface := &stast.InterfaceDeclaration{
		Name:           b.buildIdentifier(n.ChildByFieldName("name")),
		Modifiers:      buildModifiers(n),
		TypeParameters: b.buildTypeParameters(n.ChildByFieldName("type_parameters")),
		Heritage:       b.buildHeritage(n),
	}
	iface.StartPos, iface.EndPos = int(n.StartByte()), int(n.EndByte())
	if iface.Name != nil {
		b.registerSymbol(iface.Name, stast.SymbolInterface|stast.SymbolType)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		for i := uint(0); i < body.NamedChildCount(); i++ {
			m := body.NamedChild(i)
			if m == nil || m.Kind() == "comment" {
				continue
			}
			iface.Members = append(iface.Members, b.buildInterfaceMember(m))
		}
	}
	return iface
}

// buildHeritage collects every extends/implements clause on a class or
// interface. Classes carry a "class_heritage" child wrapping an
// extends_clause (single value) and/or implements_clause (one or more
// types); interfaces carry one or more "extends_type_clause" children.
func (b *Builder) buildHeritage(n *ts.Node) []*stast.HeritageClause {
	var out []*stast.HeritageClause
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case "class_heritage":
			out = append(out, b.buildClassHeritage(c)...)
		case "extends_type_clause":
			out = append(out, b.buildInterfaceHeritage(c))
		}
	}
	return out
}

func (b *Builder) buildClassHeritage(n *ts.Node) []*stast.HeritageClause {
	var out []*stast.HeritageClause
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil {
			continue
		}
		switch c.Kind() {
		case "extends_clause":
			value := c.ChildByFieldName("value")
			hc := &stast.HeritageClause{Token: "extends", Types: []*stast.ExpressionWithTypeArguments{b.buildExpressionWithTypeArgs(value)}}
			hc.StartPos, hc.EndPos = int(c.StartByte()), int(c.EndByte())
			out = append(out, hc)
		case "implements_clause":
			hc := &stast.HeritageClause{Token: "implements"}
			hc.StartPos, hc.EndPos = int(c.StartByte()), int(c.EndByte())
			for j := uint(0); j < c.NamedChildCount(); j++ {
				hc.Types = append(hc.Types, b.buildExpressionWithTypeArgs(c.NamedChild(j)))
			}
			out = append(out, hc)
		}
	}
	return out
}

func (b *Builder) buildInterfaceHeritage(n *ts.Node) *stast.HeritageClause {
	hc := &stast.HeritageClause{Token: "extends"}
	hc.StartPos, hc.EndPos = int(n.StartByte()), int(n.EndByte())
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil {
			continue
		}
		hc.Types = append(hc.Types, b.buildExpressionWithTypeArgs(c))
	}
	return hc
}

// buildExpressionWithTypeArgs handles both `Base` and `Base<T>` /
// `MyMixin(Base)` heritage entries. A generic_type wraps name+args; any
// other expression (identifier, call_expression, member_expression) is
// kept as the raw expression with no type arguments.
func (b *Builder) buildExpressionWithTypeArgs(n *ts.Node) *stast.ExpressionWithTypeArguments {
	if n == nil {
		return &stast.ExpressionWithTypeArguments{}
	}
	e := &stast.ExpressionWithTypeArguments{}
	e.StartPos, e.EndPos = int(n.StartByte()), int(n.EndByte())
	if n.Kind() == "generic_type" {
		e.Expression = b.buildIdentifier(n.ChildByFieldName("name"))
		if args := n.ChildByFieldName("type_arguments"); args != nil {
			for i := uint(0); i < args.NamedChildCount(); i++ {
				e.TypeArgs = append(e.TypeArgs, b.buildTypeNode(args.NamedChild(i)))
			}
		}
		return e
	}
	e.Expression = b.buildExpression(n)
	return e
}

func (b *Builder) buildTypeParameters(n *ts.Node) []*stast.TypeParameter {
	if n == nil {
		return nil
	}
	var out []*stast.TypeParameter
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil || c.Kind() != "type_parameter" {
			continue
		}
		tp := &stast.TypeParameter{Name: b.text(c.ChildByFieldName("name"))}
		tp.StartPos, tp.EndPos = int(c.StartByte()), int(c.EndByte())
		if constraint := c.ChildByFieldName("constraint"); constraint != nil {
			tp.Constraint = b.buildTypeNode(constraint)
		}
		out = append(out, tp)
	}
	return out
}

// buildClassMember dispatches one class_body member.
func (b *Builder) buildClassMember(n *ts.Node) stast.Node {
	switch n.Kind() {
	case "method_definition":
		return b.buildMethodLike(n, true)
	case "method_signature", "abstract_method_signature":
		return b.buildMethodLike(n, false)
	case "public_field_definition", "field_definition":
		return b.buildPropertyDeclaration(n)
	default:
		return b.unrecognized(n)
	}
}

func (b *Builder) buildInterfaceMember(n *ts.Node) stast.Node {
	switch n.Kind() {
	case "method_signature", "call_signature":
		return b.buildMethodLike(n, false)
	case "property_signature":
		return b.buildPropertySignature(n)
	default:
		return b.unrecognized(n)
	}
}

func (b *Builder) buildPropertyDeclaration(n *ts.Node) *stast.PropertyDeclaration {
	prop := &stast.PropertyDeclaration{
		Name:                  b.buildIdentifier(n.ChildByFieldName("name")),
		Modifiers:             buildModifiers(n),
		HasInitializer:        n.ChildByFieldName("value") != nil,
		HasExportingDecorator: hasDecorator(n),
	}
	prop.StartPos, prop.EndPos = int(n.StartByte()), int(n.EndByte())
	if ta := n.ChildByFieldName("type"); ta != nil {
		prop.Type = b.buildTypeNode(unwrapTypeAnnotation(ta))
	}
	prop.Optional = hasOptionalMark(n)
	return prop
}

func (b *Builder) buildPropertySignature(n *ts.Node) *stast.PropertySignature {
	sig := &stast.PropertySignature{Name: b.buildIdentifier(n.ChildByFieldName("name"))}
	sig.StartPos, sig.EndPos = int(n.StartByte()), int(n.EndByte())
	if ta := n.ChildByFieldName("type"); ta != nil {
		sig.Type = b.buildTypeNode(unwrapTypeAnnotation(ta))
	}
	sig.Optional = hasOptionalMark(n)
	return sig
}

// hasOptionalMark reports whether n carries a literal "?" token child
// (tree-sitter-typescript models the optional marker as a bare token,
// not a field).
func hasOptionalMark(n *ts.Node) bool {
	return hasChildKeyword(n, "?")
}

// unwrapTypeAnnotation strips the leading ":" of a `type_annotation`
// node down to the type it wraps.
func unwrapTypeAnnotation(n *ts.Node) *ts.Node {
	if n == nil {
		return nil
	}
	if n.Kind() == "type_annotation" {
		return n.NamedChild(0)
	}
	return n
}

// buildMethodLike builds a method/accessor/constructor from either a
// method_definition (hasBody true, may still lack a body if abstract)
// or a method_signature/abstract_method_signature/call_signature
// (always bodiless).
func (b *Builder) buildMethodLike(n *ts.Node, mayHaveBody bool) *stast.FunctionLikeDeclaration {
	fn := &stast.FunctionLikeDeclaration{
		Name:           b.buildIdentifier(n.ChildByFieldName("name")),
		Modifiers:      buildModifiers(n),
		TypeParameters: b.buildTypeParameters(n.ChildByFieldName("type_parameters")),
		Parameters:     b.buildParameters(n.ChildByFieldName("parameters")),
	}
	fn.StartPos, fn.EndPos = int(n.StartByte()), int(n.EndByte())
	if ta := n.ChildByFieldName("return_type"); ta != nil {
		fn.ReturnType = b.buildTypeNode(unwrapTypeAnnotation(ta))
	}

	switch {
	case fn.Name != nil && fn.Name.Text == "constructor":
		fn.Kind = stast.FunctionKindConstructor
	case hasChildKeyword(n, "get"):
		fn.Kind = stast.FunctionKindGetAccessor
	case hasChildKeyword(n, "set"):
		fn.Kind = stast.FunctionKindSetAccessor
	default:
		fn.Kind = stast.FunctionKindMethod
	}

	fn.HasBody = mayHaveBody && n.ChildByFieldName("body") != nil
	return fn
}

// buildFunctionDeclaration builds a top-level function_declaration or
// function_signature (ambient overload, no body).
func (b *Builder) buildFunctionDeclaration(n *ts.Node) *stast.FunctionLikeDeclaration {
	fn := &stast.FunctionLikeDeclaration{
		Kind:           stast.FunctionKindFunction,
		Name:           b.buildIdentifier(n.ChildByFieldName("name")),
		Modifiers:      buildModifiers(n),
		TypeParameters: b.buildTypeParameters(n.ChildByFieldName("type_parameters")),
		Parameters:     b.buildParameters(n.ChildByFieldName("parameters")),
		HasBody:        n.ChildByFieldName("body") != nil,
	}
	fn.StartPos, fn.EndPos = int(n.StartByte()), int(n.EndByte())
	if ta := n.ChildByFieldName("return_type"); ta != nil {
		fn.ReturnType = b.buildTypeNode(unwrapTypeAnnotation(ta))
	}
	if fn.Name != nil {
		b.registerSymbol(fn.Name, stast.SymbolValue)
	}
	return fn
}

// buildParameters builds a formal_parameters node's children.
func (b *Builder) buildParameters(n *ts.Node) []*stast.ParameterNode {
	if n == nil {
		return nil
	}
	var out []*stast.ParameterNode
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil {
			continue
		}
		out = append(out, b.buildParameter(c))
	}
	return out
}

func (b *Builder) buildParameter(n *ts.Node) *stast.ParameterNode {
	p := &stast.ParameterNode{}
	p.StartPos, p.EndPos = int(n.StartByte()), int(n.EndByte())

	if n.Kind() == "rest_pattern" {
		p.Rest = true
		if inner := n.NamedChild(0); inner != nil {
			n = inner
		}
	}

	pattern := n.ChildByFieldName("pattern")
	if pattern == nil {
		pattern = n
	}
	if pattern.Kind() == "identifier" {
		p.Name = b.buildIdentifier(pattern)
	} else {
		p.Destructuring = true
	}

	p.Modifiers = buildModifiers(n)
	p.Optional = hasOptionalMark(n)
	p.HasInitializer = n.ChildByFieldName("value") != nil
	if ta := n.ChildByFieldName("type"); ta != nil {
		p.Type = b.buildTypeNode(unwrapTypeAnnotation(ta))
	}
	return p
}
