package lang

func init() {
	tsQueries := append([]string{
		`(interface_declaration name: (type_identifier) @name) @interface`,
		`(enum_declaration name: (identifier) @name) @enum`,
		`(required_parameter pattern: (identifier) @param)`,
		`(optional_parameter pattern: (identifier) @param)`,
		`(public_field_definition name: (property_identifier) @attr)`,
	}, javascriptQueries...)

	Register(&Spec{
		Language:       TypeScript,
		FileExtensions: []string{".ts", ".mts", ".cts"},
		Queries:        tsQueries,
	})
	Register(&Spec{
		Language:       TSX,
		FileExtensions: []string{".tsx"},
		Queries:        tsQueries,
	})
}
