// Package lang registers the supported source languages: their file
// extensions and the structural queries that drive entity extraction.
package lang

// Language identifies a supported programming language.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	Go         Language = "go"
	Rust       Language = "rust"
	Java       Language = "java"
	C          Language = "c"
	CPP        Language = "cpp"
	CSharp     Language = "c-sharp"
	PHP        Language = "php"
	Ruby       Language = "ruby"
	Scala      Language = "scala"
	Kotlin     Language = "kotlin"
	Lua        Language = "lua"
)

// AllLanguages returns all registered languages.
func AllLanguages() []Language {
	seen := make(map[Language]bool)
	var out []Language
	for _, spec := range registry {
		if !seen[spec.Language] {
			seen[spec.Language] = true
			out = append(out, spec.Language)
		}
	}
	return out
}

// Spec describes how a language's source is turned into entities.
// Languages with Native set are handled by a dedicated AST-walking
// extractor; all others run the structural Queries against the parse
// tree and classify the captures.
type Spec struct {
	Language       Language
	FileExtensions []string

	// Native marks the language whose extractor walks the syntax
	// tree directly instead of running queries.
	Native bool

	// Queries are independent structural query sources. A query that
	// fails to compile or execute is skipped on its own; the rest of
	// the set still runs.
	Queries []string
}

// registry maps file extensions to language specs.
var registry = map[string]*Spec{}

// Register adds a Spec to the global registry.
func Register(spec *Spec) {
	for _, ext := range spec.FileExtensions {
		registry[ext] = spec
	}
}

// ForExtension returns the Spec for a file extension (e.g. ".go").
func ForExtension(ext string) *Spec {
	return registry[ext]
}

// ForLanguage returns the Spec for a language.
func ForLanguage(l Language) *Spec {
	for _, spec := range registry {
		if spec.Language == l {
			return spec
		}
	}
	return nil
}

// LanguageForExtension returns the Language for a file extension.
func LanguageForExtension(ext string) (Language, bool) {
	spec := registry[ext]
	if spec == nil {
		return "", false
	}
	return spec.Language, true
}
