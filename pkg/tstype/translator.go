// Package tstype implements the Type-String Translator: it renders a
// checker-level type into an AT-dialect type string such
// as `string`, `(string|number)`, `!Foo<?>`, or
// `function(this: !Bar, number): string`.
package tstype

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alippai/gots-annotate/internal/stast"
)

// Unknown is the AT "unknown" sigil emitted whenever no sound
// translation exists.
const Unknown = "?"

// Host is the subset of the driver's host contract the
// translator consults directly.
type Host interface {
	IsBlacklistedPath(path string) bool
	Untyped() bool
}

// AliasProvider lets the translator consult and extend the parent
// ModuleTypeTranslator's per-file symbolAliases and forwardDeclares
// state without importing
// pkg/moduletranslator (which itself imports this package).
type AliasProvider interface {
	LookupAlias(symbolID int) (string, bool)
	ForwardDeclare(modulePath string, sym *stast.Symbol, explicitlyImported, defaultImport bool) (localAlias string)
	DebugWarn(n stast.Node, message string)
}

// Translator renders checker Types into AT type strings. One Translator
// is created per translation context; New gives each its own
// symbol-rendering LRU cache, which is not shared with other Translators.
type Translator struct {
	checker stast.Checker
	host    Host
	aliases AliasProvider

	// cache memoizes symbolID -> rendered dotted name (without
	// nullability sigil). The same exported type is re-rendered at
	// every reference site (heritage clauses, parameters, variable
	// declarators), so this bounds repeated alias/forward-declare
	// resolution work within a large file.
	cache *lru.Cache[int, string]

	// blacklistedTypeParams maps a scope node to the set of type
	// parameter names that must render as "?" within that scope.
	blacklistedTypeParams map[stast.Node]map[string]bool

	// visiting guards against alias cycles.
	visiting map[int]bool
}

// New creates a Translator. cacheSize bounds the symbol-name memoization;
// 0 selects a sensible default.
func New(checker stast.Checker, host Host, aliases AliasProvider, cacheSize int) *Translator {
	if cacheSize <= 0 {
		cacheSize = 512
	}
	c, _ := lru.New[int, string](cacheSize)
	return &Translator{
		checker:                checker,
		host:                   host,
		aliases:                aliases,
		cache:                  c,
		blacklistedTypeParams:  make(map[stast.Node]map[string]bool),
		visiting:               make(map[int]bool),
	}
}

// BlacklistTypeParameters records that, within scope, every name in
// params must translate to "?".
func (tr *Translator) BlacklistTypeParameters(scope stast.Node, params []*stast.TypeParameter) {
	if len(params) == 0 {
		return
	}
	set, ok := tr.blacklistedTypeParams[scope]
	if !ok {
		set = make(map[string]bool, len(params))
		tr.blacklistedTypeParams[scope] = set
	}
	for _, p := range params {
		set[p.Name] = true
	}
}

// isTypeParamBlacklisted reports whether name is blacklisted in any
// registered scope. Scopes nest dynamically in practice (a method inside
// a generic class), so a linear scan over registered scopes is correct
// and, given the small number of concurrently-open scopes per file,
// cheap.
func (tr *Translator) isTypeParamBlacklisted(name string) bool {
	for _, set := range tr.blacklistedTypeParams {
		if set[name] {
			return true
		}
	}
	return false
}

// IsBlacklisted reports whether sym's declaring module is opaque to
// translation.
func (tr *Translator) IsBlacklisted(sym *stast.Symbol) bool {
	if sym == nil {
		return false
	}
	return sym.ModulePath != "" && tr.host.IsBlacklistedPath(sym.ModulePath)
}

// Translate renders t as an AT type string in the context of ctx (used
// for scope-relative type-parameter blacklisting and diagnostics).
func (tr *Translator) Translate(t *stast.Type, ctx stast.Node) string {
	if tr.host.Untyped() {
		return Unknown
	}
	return tr.translate(t, ctx, true)
}

// translate is the recursive worker. topLevel controls whether
// nullability sigils are emitted for a bare named type (they are not
// re-applied to members already inside a union, which computes its own
// sigils member-by-member).
func (tr *Translator) translate(t *stast.Type, ctx stast.Node, topLevel bool) string {
	if t == nil {
		return Unknown
	}

	switch t.Kind {
	case stast.TypeAny, stast.TypeUnknown:
		return Unknown

	case stast.TypeVoid:
		return "void"

	case stast.TypeNull:
		return "null"

	case stast.TypeUndefined:
		return "undefined"

	case stast.TypePrimitive, stast.TypeLiteral:
		return t.Name

	case stast.TypeTypeParameter:
		if tr.isTypeParamBlacklisted(t.TypeParamName) {
			return Unknown
		}
		return t.TypeParamName

	case stast.TypeArray:
		return tr.translate(t.Element, ctx, false) + "[]"

	case stast.TypeUnion:
		return tr.translateUnion(t, ctx)

	case stast.TypeFunction:
		return tr.translateFunction(t, ctx)

	case stast.TypeNamed:
		return tr.translateNamed(t, ctx, topLevel)

	default:
		return Unknown
	}
}

// translateUnion renders `A|B|...`, applying nullability sigils to each
// named member and dropping bare null/undefined atoms from the printed
// member list while still affecting sigil choice.
func (tr *Translator) translateUnion(t *stast.Type, ctx stast.Node) string {
	nullable := false
	for _, m := range t.Types {
		if m.IsNullOrUndefined() {
			nullable = true
			break
		}
	}

	var members []string
	for _, m := range t.Types {
		if m.IsNullOrUndefined() {
			continue
		}
		members = append(members, tr.translateUnionMember(m, ctx, nullable))
	}
	if len(members) == 0 {
		return Unknown
	}
	if len(members) == 1 {
		return members[0]
	}
	return "(" + strings.Join(members, "|") + ")"
}

func (tr *Translator) translateUnionMember(t *stast.Type, ctx stast.Node, nullable bool) string {
	rendered := tr.translate(t, ctx, false)
	if t.Kind != stast.TypeNamed {
		return rendered
	}
	if nullable {
		return "?" + rendered
	}
	return "!" + rendered
}

// translateFunction renders `function(this: !T, p1, p2): ret`.
func (tr *Translator) translateFunction(t *stast.Type, ctx stast.Node) string {
	var b strings.Builder
	b.WriteString("function(")
	first := true
	if t.ThisType != nil {
		fmt.Fprintf(&b, "this: %s", tr.translate(t.ThisType, ctx, true))
		first = false
	}
	for _, p := range t.Params {
		if !first {
			b.WriteString(", ")
		}
		first = false
		pt := tr.translate(p.Type, ctx, false)
		if p.Rest {
			pt = "..." + pt
		} else if p.Optional {
			pt = pt + "="
		}
		b.WriteString(pt)
	}
	b.WriteString(")")
	if t.Return != nil {
		b.WriteString(": ")
		b.WriteString(tr.translate(t.Return, ctx, true))
	}
	return b.String()
}

// translateNamed renders a named type reference, resolving aliasing and
// blacklisting, then applying the top-level nullability sigil
// (non-union named types default to non-null).
func (tr *Translator) translateNamed(t *stast.Type, ctx stast.Node, topLevel bool) string {
	name := tr.SymbolToString(t.Symbol, false)
	if name == Unknown {
		return Unknown
	}
	if len(t.TypeArgs) > 0 {
		args := make([]string, len(t.TypeArgs))
		for i, a := range t.TypeArgs {
			args[i] = tr.translate(a, ctx, true)
		}
		name = name + "<" + strings.Join(args, ",") + ">"
	}
	if !topLevel {
		return name
	}
	return "!" + name
}

// SymbolToString resolves sym to its AT-visible name: an existing
// symbolAliases mapping if one is in scope, otherwise the symbol's
// declaring-module forward declare plus its dotted exported name
//. useFQN forces resolution through the
// module path even if a shorter local alias exists.
func (tr *Translator) SymbolToString(sym *stast.Symbol, useFQN bool) string {
	if sym == nil {
		return Unknown
	}
	if tr.IsBlacklisted(sym) {
		return Unknown
	}

	resolved, cyclic := tr.resolveAlias(sym)
	if cyclic {
		tr.aliases.DebugWarn(nil, fmt.Sprintf("cyclic alias resolution for symbol %q, falling back to unknown", sym.Name))
		return Unknown
	}

	if !useFQN {
		if alias, ok := tr.aliases.LookupAlias(resolved.ID); ok {
			return alias
		}
	}

	if cached, ok := tr.cache.Get(resolved.ID); ok {
		return cached
	}

	localAlias := resolved.ModulePath
	if resolved.ModulePath != "" {
		localAlias = tr.aliases.ForwardDeclare(resolved.ModulePath, resolved, false, false)
	}

	name := resolved.DottedName()
	rendered := name
	if localAlias != "" {
		rendered = localAlias + "." + name
	}

	tr.cache.Add(resolved.ID, rendered)
	return rendered
}

// resolveAlias follows SymbolAlias chains to the ultimate symbol,
// detecting cycles.
func (tr *Translator) resolveAlias(sym *stast.Symbol) (*stast.Symbol, bool) {
	cur := sym
	seen := make(map[int]bool)
	for cur.Flags.Has(stast.SymbolAlias) {
		if seen[cur.ID] {
			return sym, true
		}
		seen[cur.ID] = true
		next, ok := tr.checker.GetAliasedSymbol(cur)
		if !ok || next == nil {
			break
		}
		cur = next
	}
	return cur, false
}
