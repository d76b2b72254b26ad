package lang

func init() {
	Register(&Spec{
		Language:       Scala,
		FileExtensions: []string{".scala", ".sc"},
		Queries: []string{
			`(class_definition name: (identifier) @name) @class`,
			`(object_definition name: (identifier) @name) @object`,
			`(trait_definition name: (identifier) @name) @trait`,
			`(function_definition name: (identifier) @name) @function`,
			`(import_declaration) @import`,
			`(val_definition pattern: (identifier) @name) @variable`,
			`(var_definition pattern: (identifier) @name) @variable`,
			`(parameter name: (identifier) @param)`,
			`(call_expression function: (identifier) @func)`,
			`(comment) @comment`,
		},
	})
}
