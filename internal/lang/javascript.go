package lang

func init() {
	Register(&Spec{
		Language:       JavaScript,
		FileExtensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		Queries:        javascriptQueries,
	})
}

// javascriptQueries also covers the shared core of the TypeScript
// grammars, which extend the JavaScript node inventory.
var javascriptQueries = []string{
	`(class_declaration name: (identifier) @name) @class`,
	`(function_declaration name: (identifier) @name) @function`,
	`(method_definition name: (property_identifier) @name) @method`,
	`(import_statement) @import`,
	`(program (variable_declaration (variable_declarator name: (identifier) @name) @variable))`,
	`(program (lexical_declaration (variable_declarator name: (identifier) @name) @variable))`,
	`(call_expression function: [(identifier) (member_expression)] @func)`,
	`(formal_parameters (identifier) @param)`,
	`(comment) @comment`,
}
