package externs

import (
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// emitClassLike handles a class or interface declaration.
func (g *Generator) emitClassLike(name *stast.Identifier, heritage []*stast.HeritageClause, members []stast.Node, isInterface bool, namespace string) {
	if name == nil {
		g.writeTODO("unnamed class/interface declaration in externs")
		return
	}
	if blacklistedNames[name.Text] {
		return
	}

	qualified := qualify(namespace, name.Text)

	// Only the first declaration of a repeated name emits the stub;
	// subsequent declarations still contribute their members.
	key := "class:" + qualified
	if !g.declared[key] {
		g.declared[key] = true
		g.emitClassStub(qualified, heritage, members, isInterface)
	}

	g.emitClassMembers(qualified, members)
}

func (g *Generator) emitClassStub(qualified string, heritage []*stast.HeritageClause, members []stast.Node, isInterface bool) {
	var tagList []tags.Tag
	if isInterface {
		tagList = append(tagList, tags.Tag{Name: tags.NameRecord})
	} else {
		tagList = append(tagList, tags.Tag{Name: tags.NameConstructor})
	}
	tagList = append(tagList, tags.Tag{Name: tags.NameStruct})
	tagList = append(tagList, heritageTags(g.mtt, heritage, isInterface)...)

	var paramNames []string
	if ctors := collectConstructors(members); len(ctors) > 0 {
		merged, names := g.mtt.GetFunctionTypeJSDoc(ctors, nil)
		for _, t := range merged {
			if t.Name == tags.NameReturn {
				continue
			}
			tagList = append(tagList, t)
		}
		paramNames = names
	}

	comment := tags.ToSerializedComment(tagList)
	g.writeLine(comment.Text)
	g.writeLine(qualified + " = function(" + strings.Join(paramNames, ", ") + ") {};")
}

func collectConstructors(members []stast.Node) []*stast.FunctionLikeDeclaration {
	var out []*stast.FunctionLikeDeclaration
	for _, m := range members {
		if fn, ok := m.(*stast.FunctionLikeDeclaration); ok && fn.Kind == stast.FunctionKindConstructor {
			out = append(out, fn)
		}
	}
	return out
}

// emitClassMembers emits each property member, groups method and
// method-signature members by (name, static?) before emitting merged
// stubs, and emits the constructor's parameter properties.
func (g *Generator) emitClassMembers(qualified string, members []stast.Node) {
	type methodGroup struct {
		static bool
		fns    []*stast.FunctionLikeDeclaration
	}
	groups := map[string]*methodGroup{}
	var order []string

	addMethod := func(name string, static bool, fn *stast.FunctionLikeDeclaration) {
		g2, ok := groups[name]
		if !ok {
			g2 = &methodGroup{static: static}
			groups[name] = g2
			order = append(order, name)
		}
		g2.fns = append(g2.fns, fn)
	}

	for _, m := range members {
		switch v := m.(type) {
		case *stast.PropertyDeclaration:
			g.emitPropertyStub(qualified, v.Name.Text, v.Modifiers.Static, v.Type, v.Optional)
		case *stast.PropertySignature:
			g.emitPropertyStub(qualified, v.Name.Text, false, v.Type, v.Optional)
		case *stast.FunctionLikeDeclaration:
			if v.Kind == stast.FunctionKindConstructor || v.Name == nil {
				continue
			}
			addMethod(v.Name.Text, v.Modifiers.Static, v)
		case *stast.UnrecognizedMember:
			g.writeTODO("unhandled member:\n" + tags.Escape(v.SourceText))
		}
	}

	for _, name := range order {
		grp := groups[name]
		g.emitMethodStub(qualified, name, grp.static, grp.fns)
	}

	if ctor := firstConstructorIn(members); ctor != nil {
		for _, p := range ctor.Parameters {
			if !p.IsParameterProperty() || p.Name == nil {
				continue
			}
			g.emitPropertyStub(qualified, p.Name.Text, false, p.Type, p.Optional)
		}
	}
}

func firstConstructorIn(members []stast.Node) *stast.FunctionLikeDeclaration {
	for _, m := range members {
		if fn, ok := m.(*stast.FunctionLikeDeclaration); ok && fn.Kind == stast.FunctionKindConstructor {
			return fn
		}
	}
	return nil
}

func (g *Generator) emitPropertyStub(qualified, propName string, static bool, typeNode stast.TypeNode, optional bool) {
	target := qualified
	if !static {
		target = qualified + ".prototype"
	}

	typeStr := "?"
	if typeNode != nil {
		typeStr = g.mtt.TranslateType(g.mtt.Checker.TypeOfTypeNode(typeNode), nil)
	}
	if optional && typeStr == "?" {
		typeStr = "?|undefined"
	}

	comment := tags.ToSerializedComment([]tags.Tag{{Name: tags.NameType, Type: typeStr}})
	g.writeLine(comment.Text)
	g.writeLine(target + "." + propName + ";")
}

func (g *Generator) emitMethodStub(qualified, name string, static bool, overloads []*stast.FunctionLikeDeclaration) {
	target := qualified
	if !static {
		target = qualified + ".prototype"
	}

	tagList, paramNames := g.mtt.GetFunctionTypeJSDoc(overloads, nil)
	comment := tags.ToSerializedComment(tagList)
	g.writeLine(comment.Text)
	g.writeLine(target + "." + name + " = function(" + strings.Join(paramNames, ", ") + ") {};")
}
