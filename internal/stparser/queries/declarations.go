// Package queries holds tree-sitter query strings for the structural
// hooks the Annotation Transformer and Externs Generator dispatch on:
// heritage clauses, parameter properties, declaration-merging groups,
// and ambient module bodies. internal/stparser builds its tree by
// walking nodes directly and does not import this package.
package queries

// HeritageQuery captures `extends`/`implements` clauses on classes and
// interfaces, for heritage-tag resolution.
const HeritageQuery = `
(class_heritage
  (extends_clause
    value: (_) @heritage.extends))
(class_heritage
  (implements_clause
    (_) @heritage.implements))
(extends_type_clause
  type: (_) @heritage.interface_extends)
`

// ParameterPropertyQuery captures constructor parameters carrying an
// accessibility or readonly modifier, which also declare an instance
// field of the same name.
const ParameterPropertyQuery = `
(required_parameter
  (accessibility_modifier) @param_property.modifier
  pattern: (identifier) @param_property.name) @param_property.definition
(required_parameter
  "readonly"
  pattern: (identifier) @param_property.name) @param_property.definition
`

// DeclarationGroupQuery captures top-level declarations that may be
// repeated under the same name (declaration merging: interfaces,
// namespaces, and function overload signatures). The Externs Generator
// does its own grouping by name.
const DeclarationGroupQuery = `
(interface_declaration
  name: (type_identifier) @group.interface_name) @group.interface
(ambient_declaration
  (module
    name: (identifier) @group.namespace_name)) @group.namespace
(function_signature
  name: (identifier) @group.function_name) @group.function_signature
`

// AmbientModuleQuery captures `declare module "..." { ... }` bodies,
// distinguishing the string-literal form from the identifier
// (namespace) form.
const AmbientModuleQuery = `
(ambient_declaration
  (module
    name: (string) @ambient_module.name
    body: (statement_block) @ambient_module.body))
(ambient_declaration
  (module
    name: (identifier) @ambient_namespace.name
    body: (statement_block) @ambient_namespace.body))
`
