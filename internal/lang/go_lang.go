package lang

func init() {
	Register(&Spec{
		Language:       Go,
		FileExtensions: []string{".go"},
		Queries: []string{
			`(function_declaration name: (identifier) @name) @function`,
			`(method_declaration name: (field_identifier) @name) @method`,
			`(type_spec name: (type_identifier) @name type: (struct_type)) @struct`,
			`(type_spec name: (type_identifier) @name type: (interface_type)) @interface`,
			`(package_clause (package_identifier) @name) @module`,
			`(import_spec) @import`,
			`(source_file (var_declaration (var_spec name: (identifier) @name) @variable))`,
			`(source_file (const_declaration (const_spec name: (identifier) @name) @variable))`,
			`(call_expression function: [(identifier) (selector_expression)] @func)`,
			`(parameter_declaration name: (identifier) @param)`,
			`(field_declaration name: (field_identifier) @attr)`,
			`(comment) @comment`,
		},
	})
}
