package lang

func init() {
	Register(&Spec{
		Language:       CPP,
		FileExtensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"},
		Queries: append([]string{
			`(class_specifier name: (type_identifier) @name body: (field_declaration_list)) @class`,
			`(namespace_definition name: (namespace_identifier) @name) @module`,
			`(call_expression function: [(field_expression) (qualified_identifier)] @func)`,
			`(function_definition declarator: (function_declarator declarator: (qualified_identifier) @name)) @function`,
		}, cQueries...),
	})
}
