package lang

func init() {
	Register(&Spec{
		Language:       PHP,
		FileExtensions: []string{".php"},
		Queries: []string{
			`(class_declaration name: (name) @name) @class`,
			`(interface_declaration name: (name) @name) @interface`,
			`(trait_declaration name: (name) @name) @trait`,
			`(enum_declaration name: (name) @name) @enum`,
			`(function_definition name: (name) @name) @function`,
			`(method_declaration name: (name) @name) @method`,
			`(namespace_definition name: (namespace_name) @name) @module`,
			`(namespace_use_declaration) @import`,
			`(property_declaration (property_element (variable_name) @attr))`,
			`(simple_parameter name: (variable_name) @param)`,
			`(function_call_expression function: (name) @func)`,
			`(member_call_expression name: (name) @func)`,
			`(comment) @comment`,
		},
	})
}
