package lang

func init() {
	Register(&Spec{
		Language:       Java,
		FileExtensions: []string{".java"},
		Queries: []string{
			`(class_declaration name: (identifier) @name) @class`,
			`(interface_declaration name: (identifier) @name) @interface`,
			`(enum_declaration name: (identifier) @name) @enum`,
			`(method_declaration name: (identifier) @name) @method`,
			`(constructor_declaration name: (identifier) @name) @constructor`,
			`(package_declaration [(identifier) (scoped_identifier)] @name) @module`,
			`(import_declaration) @import`,
			`(field_declaration declarator: (variable_declarator name: (identifier) @attr))`,
			`(formal_parameter name: (identifier) @param)`,
			`(method_invocation name: (identifier) @func)`,
			`(marker_annotation) @decorator`,
			`(annotation) @decorator`,
			`(line_comment) @comment`,
			`(block_comment) @comment`,
		},
	})
}
