package lang

func init() {
	Register(&Spec{
		Language:       Kotlin,
		FileExtensions: []string{".kt", ".kts"},
		Queries: []string{
			`(class_declaration (identifier) @name) @class`,
			`(object_declaration (identifier) @name) @object`,
			`(function_declaration (identifier) @name) @function`,
			`(import) @import`,
			`(parameter (identifier) @param)`,
			`(call_expression (identifier) @func)`,
			`(line_comment) @comment`,
			`(block_comment) @comment`,
		},
	})
}
