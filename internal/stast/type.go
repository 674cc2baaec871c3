package stast

// TypeKind enumerates the checker-level type shapes the Type-String
// Translator (pkg/tstype) knows how to render.
type TypeKind int

const (
	TypeUnknown TypeKind = iota
	TypePrimitive
	TypeNamed // has a Symbol: class, interface, type-alias target, enum
	TypeUnion
	TypeArray
	TypeFunction
	TypeLiteral // string/number/boolean literal type
	TypeNull
	TypeUndefined
	TypeVoid
	TypeAny
	TypeTypeParameter
)

// Type is a checker-level type value, as returned by Checker methods —
// distinct from the syntax-level TypeNode a declaration was written
// with.
type Type struct {
	Kind TypeKind

	// TypeNamed
	Symbol   *Symbol
	TypeArgs []*Type

	// TypePrimitive / TypeLiteral
	Name string

	// TypeUnion
	Types []*Type

	// TypeArray
	Element *Type

	// TypeFunction
	Params     []FunctionParam
	Return     *Type
	ThisType   *Type

	// TypeTypeParameter
	TypeParamName string
	TypeParamScope Node // the declaration scope this parameter is bound in
}

// FunctionParam is one parameter of a TypeFunction.
type FunctionParam struct {
	Name     string
	Type     *Type
	Optional bool
	Rest     bool
}

// IsNullOrUndefined reports whether t is exactly the null or undefined
// atom (used when flattening unions for nullability sigils).
func (t *Type) IsNullOrUndefined() bool {
	return t != nil && (t.Kind == TypeNull || t.Kind == TypeUndefined)
}

// Checker is the read-only type-query surface ("Type checker
// contract"). internal/stparser supplies the concrete
// implementation; pkg/tstype and pkg/moduletranslator only depend on
// this interface, never on the concrete parser.
type Checker interface {
	GetSymbolAtLocation(n Node) (*Symbol, bool)
	GetAliasedSymbol(s *Symbol) (*Symbol, bool)
	GetDeclaredTypeOfSymbol(s *Symbol) *Type
	GetTypeAtLocation(n Node) *Type
	GetNonNullableType(t *Type) *Type
	TypeOfTypeNode(tn TypeNode) *Type
}
