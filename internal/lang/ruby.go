package lang

func init() {
	Register(&Spec{
		Language:       Ruby,
		FileExtensions: []string{".rb"},
		Queries: []string{
			`(class name: (constant) @name) @class`,
			`(module name: (constant) @name) @module`,
			`(method name: (identifier) @name) @method`,
			`(singleton_method name: (identifier) @name) @method`,
			`(call method: (identifier) @func)`,
			`(method_parameters (identifier) @param)`,
			`(assignment left: (instance_variable) @attr)`,
			`(comment) @comment`,
		},
	})
}
