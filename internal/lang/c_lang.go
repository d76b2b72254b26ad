package lang

func init() {
	Register(&Spec{
		Language:       C,
		FileExtensions: []string{".c", ".h"},
		Queries:        cQueries,
	})
}

// cQueries is the shared core for C; the C++ spec extends it.
var cQueries = []string{
	`(function_definition declarator: (function_declarator declarator: (identifier) @name)) @function`,
	`(struct_specifier name: (type_identifier) @name body: (field_declaration_list)) @struct`,
	`(enum_specifier name: (type_identifier) @name body: (enumerator_list)) @enum`,
	`(preproc_include) @import`,
	`(call_expression function: (identifier) @func)`,
	`(field_declaration declarator: (field_identifier) @attr)`,
	`(parameter_declaration declarator: (identifier) @param)`,
	`(comment) @comment`,
}
