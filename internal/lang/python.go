package lang

func init() {
	// Python is the native-strategy language: its extractor walks the
	// syntax tree directly, so no structural queries are registered.
	Register(&Spec{
		Language:       Python,
		FileExtensions: []string{".py", ".pyi"},
		Native:         true,
	})
}
