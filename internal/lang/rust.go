package lang

func init() {
	Register(&Spec{
		Language:       Rust,
		FileExtensions: []string{".rs"},
		Queries: []string{
			`(struct_item name: (type_identifier) @name) @struct`,
			`(enum_item name: (type_identifier) @name) @enum`,
			`(trait_item name: (type_identifier) @name) @trait`,
			`(function_item name: (identifier) @name) @function`,
			`(mod_item name: (identifier) @name) @module`,
			`(use_declaration) @import`,
			`(static_item name: (identifier) @name) @variable`,
			`(const_item name: (identifier) @name) @variable`,
			`(field_declaration name: (field_identifier) @attr)`,
			`(parameter pattern: (identifier) @param)`,
			`(call_expression function: [(identifier) (scoped_identifier) (field_expression)] @func)`,
			`(attribute_item) @decorator`,
			`(line_comment) @comment`,
			`(block_comment) @comment`,
		},
	})
}
