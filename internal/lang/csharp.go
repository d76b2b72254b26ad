package lang

func init() {
	Register(&Spec{
		Language:       CSharp,
		FileExtensions: []string{".cs"},
		Queries: []string{
			`(class_declaration name: (identifier) @name) @class`,
			`(interface_declaration name: (identifier) @name) @interface`,
			`(struct_declaration name: (identifier) @name) @struct`,
			`(enum_declaration name: (identifier) @name) @enum`,
			`(method_declaration name: (identifier) @name) @method`,
			`(constructor_declaration name: (identifier) @name) @constructor`,
			`(namespace_declaration name: [(identifier) (qualified_name)] @name) @module`,
			`(using_directive) @import`,
			`(field_declaration (variable_declaration (variable_declarator (identifier) @attr)))`,
			`(property_declaration name: (identifier) @attr)`,
			`(parameter name: (identifier) @param)`,
			`(invocation_expression function: [(identifier) (member_access_expression)] @func)`,
			`(comment) @comment`,
		},
	})
}
