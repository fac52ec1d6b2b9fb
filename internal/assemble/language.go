package assemble

import (
	"path"
	"path/filepath"
	"strings"
)

// extensionToFence maps file extensions to code fence info strings that the
// highlighter understands.
var extensionToFence = map[string]string{
	// Go
	".go": "go",
	// Python
	".py":  "python",
	".pyi": "python",
	// TypeScript
	".ts":  "typescript",
	".tsx": "tsx",
	".mts": "typescript",
	// JavaScript
	".js":  "javascript",
	".jsx": "jsx",
	".mjs": "javascript",
	".cjs": "javascript",
	// JVM
	".java":  "java",
	".kt":    "kotlin",
	".kts":   "kotlin",
	".scala": "scala",
	".sc":    "scala",
	// Rust
	".rs": "rust",
	// C family
	".c":   "c",
	".h":   "c",
	".cpp": "cpp",
	".cc":  "cpp",
	".cxx": "cpp",
	".hpp": "cpp",
	".hxx": "cpp",
	".cs":  "csharp",
	".fs":  "fsharp",
	// Scripting
	".rb":   "ruby",
	".php":  "php",
	".pl":   "perl",
	".pm":   "perl",
	".lua":  "lua",
	".r":    "r",
	".ex":   "elixir",
	".exs":  "elixir",
	".sh":   "bash",
	".bash": "bash",
	".zsh":  "bash",
	// Others
	".swift":  "swift",
	".dart":   "dart",
	".hs":     "haskell",
	".sql":    "sql",
	".html":   "html",
	".css":    "css",
	".scss":   "scss",
	".vue":    "vue",
	".svelte": "svelte",
	".json":   "json",
	".yaml":   "yaml",
	".yml":    "yaml",
	".toml":   "toml",
	".xml":    "xml",
	".proto":  "protobuf",
	".md":     "markdown",
	".ini":    "ini",
}

// filenameToFence maps specific filenames to fence info strings.
var filenameToFence = map[string]string{
	"Dockerfile":  "docker",
	"Makefile":    "make",
	"Makefile.PL": "perl",
	"Gemfile":     "ruby",
	"Rakefile":    "ruby",
	"Pipfile":     "toml",
	"go.mod":      "go",
	"go.sum":      "text",
	"build.rs":    "rust",
}

// fenceLanguage returns the info string for a file's code fence, or "" when
// the file type is unknown.
func fenceLanguage(name string) string {
	base := path.Base(filepath.ToSlash(name))

	if lang, ok := filenameToFence[base]; ok {
		return lang
	}
	return extensionToFence[strings.ToLower(path.Ext(base))]
}
