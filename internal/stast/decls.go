package stast

// HeritageClause is the `extends`/`implements` list on a class or
// interface.
type HeritageClause struct {
	base
	Token string // "extends" or "implements"
	Types []*ExpressionWithTypeArguments
}

// ExpressionWithTypeArguments is one entry in a HeritageClause, e.g.
// `MyMixin(Base)` or `Base<T>`.
type ExpressionWithTypeArguments struct {
	base
	Expression Node
	TypeArgs   []TypeNode
}

// ClassDeclaration models a `class` declaration or expression.
type ClassDeclaration struct {
	base
	Name           *Identifier // nil for default-exported anonymous classes
	Modifiers      Modifiers
	TypeParameters []*TypeParameter
	Heritage       []*HeritageClause
	Members        []Node // *PropertyDeclaration | *FunctionLikeDeclaration
}

// InterfaceDeclaration models an `interface` declaration (ST-only; has
// no AT runtime equivalent).
type InterfaceDeclaration struct {
	base
	Name           *Identifier
	Modifiers      Modifiers
	TypeParameters []*TypeParameter
	Heritage       []*HeritageClause
	Members        []Node // *PropertySignature | *FunctionLikeDeclaration (no body)
}

// ParameterNode is a function/method parameter, possibly a parameter
// property.
type ParameterNode struct {
	base
	Name          *Identifier // nil if Destructuring is set
	Destructuring bool
	Modifiers     Modifiers
	Type          TypeNode
	Optional      bool
	Rest          bool
	HasInitializer bool
}

// IsParameterProperty reports whether this parameter also declares a
// same-named instance field.
func (p *ParameterNode) IsParameterProperty() bool {
	return p.Modifiers.Private || p.Modifiers.Protected || p.Modifiers.Public || p.Modifiers.Readonly
}

// FunctionLikeKind distinguishes the four function-like forms the
// Annotation Transformer and Externs Generator dispatch on.
type FunctionLikeKind int

const (
	FunctionKindFunction FunctionLikeKind = iota
	FunctionKindMethod
	FunctionKindGetAccessor
	FunctionKindSetAccessor
	FunctionKindConstructor
)

// FunctionLikeDeclaration models a function, method, accessor, or
// constructor — with or without a body (a body-less one is an overload
// signature or abstract method).
type FunctionLikeDeclaration struct {
	base
	Kind           FunctionLikeKind
	Name           *Identifier // nil for constructors and anonymous functions
	Modifiers      Modifiers
	TypeParameters []*TypeParameter
	Parameters     []*ParameterNode
	ReturnType     TypeNode
	HasBody        bool
}

// PropertyDeclaration is a class field (with or without an initializer).
type PropertyDeclaration struct {
	base
	Name          *Identifier
	Modifiers     Modifiers
	Type          TypeNode
	Optional      bool
	HasInitializer bool
	HasExportingDecorator bool
}

// PropertySignature is an interface member field (no initializer ever).
type PropertySignature struct {
	base
	Name     *Identifier
	Type     TypeNode
	Optional bool
}

// PropertyAssignment is an object-literal `key: value` entry.
type PropertyAssignment struct {
	base
	Name Node
}

// VariableDeclarator is one `name = init` entry of a variable statement.
type VariableDeclarator struct {
	base
	Name           *Identifier // nil if Destructuring is set
	Destructuring  bool
	Type           TypeNode
	HasInitializer bool
}

// VariableStatement is `var/let/const a = 1, b = 2;`.
type VariableStatement struct {
	base
	Kind         string // "var" | "let" | "const"
	Declarators  []*VariableDeclarator
	HasStructuredLeadingComment bool
	HasFreeformLeadingComment   bool
}

// TypeAliasDeclaration is `type T = ...;`.
type TypeAliasDeclaration struct {
	base
	Name           *Identifier
	Modifiers      Modifiers
	TypeParameters []*TypeParameter
	Value          TypeNode
}

// ImportClauseKind distinguishes the shapes an ImportDeclaration can take.
type ImportClauseKind int

const (
	ImportSideEffectOnly ImportClauseKind = iota // `import './x';`
	ImportNamed                                  // `import {a, b} from './x';`
	ImportDefault                                // `import a from './x';`
	ImportNamespace                              // `import * as a from './x';`
)

// ImportDeclaration is a module import statement.
type ImportDeclaration struct {
	base
	Clause        ImportClauseKind
	LocalNames    []string
	ModuleSpecifier string
}

// AsExpression is `expr as Type`.
type AsExpression struct {
	base
	Expression Node
	Type       TypeNode
}

// NonNullExpression is `expr!`.
type NonNullExpression struct {
	base
	Expression Node
}

// EnumDeclaration is `enum E { A, B = 2 }` (ambient context only).
type EnumMember struct {
	Name  string
	Value *int // nil if not a numeric literal initializer
}

type EnumDeclaration struct {
	base
	Name      *Identifier
	Modifiers Modifiers
	Members   []EnumMember
}

// ModuleDeclaration is `declare namespace ns { ... }` or
// `declare module "foo" { ... }`.
type ModuleDeclaration struct {
	base
	IdentifierName string // set when the name is a plain identifier ("" if StringName set)
	StringName     string // set when the name is a string literal
	Body           []Node
}

// ImportEqualsDeclaration is `import x = require(...)` or `import x = a.b.c`.
type ImportEqualsDeclaration struct {
	base
	LocalName   string
	IsRequire   bool
	RequirePath string
	QualifiedRHS string // dotted path, when not a require()
}

// UnrecognizedMember is a placeholder for a member kind the transformer
// does not special-case.
type UnrecognizedMember struct {
	base
	SourceText string
}
