package moduletranslator

import (
	"fmt"
	"strings"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/pkg/tags"
)

// GetFunctionTypeJSDoc accepts one or more declarations sharing a name
// (overloads, or a single declaration) and produces a composite
// function-type comment: a "template" tag (if any overload declares
// type parameters), one "param" tag per parameter position whose type
// is the union of that position's type across every overload (padded
// with "undefined" where arities differ), and a "return" tag that is
// the union of every overload's return type. parameterNames is the
// first overload's parameter names, synthesizing anonymous names for
// unnamed parameters; a param tag for a position beyond the first
// overload's arity gets the synthesized name "p<i>".
func (m *ModuleTypeTranslator) GetFunctionTypeJSDoc(overloads []*stast.FunctionLikeDeclaration, extraTags []tags.Tag) ([]tags.Tag, []string) {
	if len(overloads) == 0 {
		return extraTags, nil
	}

	maxParams := 0
	for _, o := range overloads {
		if len(o.Parameters) > maxParams {
			maxParams = len(o.Parameters)
		}
	}

	for _, o := range overloads {
		m.translator.BlacklistTypeParameters(o, o.TypeParameters)
	}

	var out []tags.Tag

	if tpl := mergeTemplateNames(overloads); tpl != "" {
		out = append(out, tags.Tag{Name: tags.NameTemplate, Text: tpl})
	}

	parameterNames := synthesizeParameterNames(overloads[0])

	for i := 0; i < maxParams; i++ {
		name := fmt.Sprintf("p%d", i)
		if i < len(parameterNames) {
			name = parameterNames[i]
		}
		union, optional, rest := m.mergeParamTypeAt(overloads, i)
		out = append(out, tags.Tag{
			Name:          tags.NameParam,
			Type:          union,
			ParameterName: name,
			Optional:      optional,
			RestParam:     rest,
		})
	}

	out = append(out, tags.Tag{Name: tags.NameReturn, Type: m.mergeReturnType(overloads)})

	out = append(out, extraTags...)
	return out, parameterNames
}

func mergeTemplateNames(overloads []*stast.FunctionLikeDeclaration) string {
	seen := map[string]bool{}
	var names []string
	for _, o := range overloads {
		for _, tp := range o.TypeParameters {
			if !seen[tp.Name] {
				seen[tp.Name] = true
				names = append(names, tp.Name)
			}
		}
	}
	return strings.Join(names, ", ")
}

func synthesizeParameterNames(first *stast.FunctionLikeDeclaration) []string {
	names := make([]string, len(first.Parameters))
	for i, p := range first.Parameters {
		switch {
		case p.Destructuring:
			names[i] = fmt.Sprintf("p%d", i)
		case p.Name != nil && p.Name.Text != "":
			names[i] = p.Name.Text
		default:
			names[i] = fmt.Sprintf("p%d", i)
		}
	}
	return names
}

// mergeParamTypeAt unions the type of the i-th parameter across every
// overload that has one; overloads with fewer parameters contribute
// "undefined" to the union, matching the padding a missing parameter
// implies.
func (m *ModuleTypeTranslator) mergeParamTypeAt(overloads []*stast.FunctionLikeDeclaration, i int) (union string, optional bool, rest bool) {
	var parts []string
	seen := map[string]bool{}
	anyOptional := false
	anyRest := false

	for _, o := range overloads {
		if i >= len(o.Parameters) {
			if !seen["undefined"] {
				seen["undefined"] = true
				parts = append(parts, "undefined")
			}
			anyOptional = true
			continue
		}
		p := o.Parameters[i]
		if p.Optional {
			anyOptional = true
		}
		if p.Rest {
			anyRest = true
		}
		t := m.translateParamType(p, o)
		if !seen[t] {
			seen[t] = true
			parts = append(parts, t)
		}
	}

	if len(parts) == 1 {
		return parts[0], anyOptional, anyRest
	}
	return "(" + strings.Join(parts, "|") + ")", anyOptional, anyRest
}

func (m *ModuleTypeTranslator) mergeReturnType(overloads []*stast.FunctionLikeDeclaration) string {
	var parts []string
	seen := map[string]bool{}
	for _, o := range overloads {
		t := m.translateReturnType(o)
		if !seen[t] {
			seen[t] = true
			parts = append(parts, t)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// translateParamType and translateReturnType consult the checker for
// the syntax-level TypeNode's checker Type when available, falling back
// to "?" (no type annotation in source means no sound inference here;
// this package does not evaluate types itself).
func (m *ModuleTypeTranslator) translateParamType(p *stast.ParameterNode, ctx stast.Node) string {
	if p.Type == nil {
		return "?"
	}
	return m.translator.Translate(m.Checker.TypeOfTypeNode(p.Type), ctx)
}

func (m *ModuleTypeTranslator) translateReturnType(o *stast.FunctionLikeDeclaration) string {
	if o.ReturnType == nil {
		return "void"
	}
	return m.translator.Translate(m.Checker.TypeOfTypeNode(o.ReturnType), o)
}
