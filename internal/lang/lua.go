package lang

func init() {
	Register(&Spec{
		Language:       Lua,
		FileExtensions: []string{".lua"},
		Queries: []string{
			`(function_declaration name: [(identifier) (dot_index_expression) (method_index_expression)] @name) @function`,
			`(function_call name: [(identifier) (dot_index_expression) (method_index_expression)] @func)`,
			`(comment) @comment`,
		},
	})
}
