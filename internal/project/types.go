package project

import (
	"fmt"
	"sort"
	"strings"
)

// Tag identifies a project ecosystem detected from marker files.
type Tag string

const (
	TagJavaScript Tag = "javascript"
	TagRust       Tag = "rust"
	TagGo         Tag = "go"
	TagC          Tag = "c"
	TagCpp        Tag = "cpp"
	TagPython     Tag = "python"
	TagJava       Tag = "java"
	TagKotlin     Tag = "kotlin"
	TagSwift      Tag = "swift"
	TagPHP        Tag = "php"
	TagRuby       Tag = "ruby"
	TagShell      Tag = "shell"
	TagDart       Tag = "dart"
	TagHaskell    Tag = "haskell"
	TagScala      Tag = "scala"
	TagPerl       Tag = "perl"
	TagR          Tag = "r"
	TagElixir     Tag = "elixir"
	TagCSharp     Tag = "csharp"
	TagFSharp     Tag = "fsharp"
	TagLua        Tag = "lua"
)

// allTags lists every known tag in a fixed order.
var allTags = []Tag{
	TagJavaScript, TagRust, TagGo, TagC, TagCpp, TagPython, TagJava,
	TagKotlin, TagSwift, TagPHP, TagRuby, TagShell, TagDart, TagHaskell,
	TagScala, TagPerl, TagR, TagElixir, TagCSharp, TagFSharp, TagLua,
}

// displayNames holds the human readable names used in reports.
var displayNames = map[Tag]string{
	TagJavaScript: "Javascript",
	TagRust:       "Rust",
	TagGo:         "Go",
	TagC:          "C",
	TagCpp:        "C++",
	TagPython:     "Python",
	TagJava:       "Java",
	TagKotlin:     "Kotlin",
	TagSwift:      "Swift",
	TagPHP:        "PHP",
	TagRuby:       "Ruby",
	TagShell:      "Shell",
	TagDart:       "Dart",
	TagHaskell:    "Haskell",
	TagScala:      "Scala",
	TagPerl:       "Perl",
	TagR:          "R",
	TagElixir:     "Elixir",
	TagCSharp:     "C#",
	TagFSharp:     "F#",
	TagLua:        "Lua",
}

// tagFiles maps each tag to the file suffixes and exact file names that belong
// to that ecosystem, in the order they are emitted as include patterns.
var tagFiles = map[Tag][]string{
	TagJavaScript: {
		".ts", ".js", ".jsx", ".tsx", ".json",
		"package.json", "yarn.lock", "pnpm-lock.yaml", "vite.config.js", "webpack.config.js",
		".eslintrc", ".prettierrc", ".babelrc",
		".svelte", ".vue", ".nuxt", ".astro",
	},
	TagRust:    {".rs", "Cargo.toml", "build.rs", ".rustfmt.toml", ".clippy.toml"},
	TagGo:      {".go", "go.mod", "go.sum", ".golangci.yaml", "Makefile", "Dockerfile"},
	TagC:       {".c", ".h", ".o", "Makefile", "config.h", "CMakeLists.txt"},
	TagCpp:     {".cpp", ".hpp", ".hxx", ".cxx", ".cc", ".o", "Makefile", "CMakeLists.txt", ".clang-format", ".clang-tidy"},
	TagPython:  {".py", "requirements.txt", "Pipfile", "pyproject.toml", "setup.py", ".pylintrc", "tox.ini", "Dockerfile"},
	TagJava:    {".java", "pom.xml", "build.gradle", "settings.gradle", ".classpath", ".project"},
	TagKotlin:  {".kt", ".kts", "build.gradle.kts", "settings.gradle.kts"},
	TagSwift:   {".swift", "Package.swift", "Info.plist", ".xcodeproj", ".xcworkspace"},
	TagPHP:     {".php", "composer.json", "composer.lock", ".env"},
	TagRuby:    {".rb", "Gemfile", "Gemfile.lock", "Rakefile"},
	TagShell:   {".sh", ".bashrc", ".zshrc", ".profile"},
	TagDart:    {".dart", "pubspec.yaml", ".packages"},
	TagHaskell: {".hs", "stack.yaml", "cabal.project", ".ghci"},
	TagScala:   {".scala", "build.sbt", ".sc"},
	TagPerl:    {".pl", ".pm", "Makefile.PL"},
	TagR:       {".R", "DESCRIPTION", "NAMESPACE"},
	TagElixir:  {".ex", ".exs", "mix.exs"},
	TagCSharp:  {".cs", ".csproj", ".sln", "app.config"},
	TagFSharp:  {".fs", ".fsproj"},
	TagLua:     {".lua", "init.lua", ".luacheckrc"},
}

// markerTags maps exact marker file names to the tags they imply. A build
// descriptor shared by two languages maps to both, primary language first.
var markerTags = map[string][]Tag{
	"package.json":      {TagJavaScript},
	"yarn.lock":         {TagJavaScript},
	"pnpm-lock.yaml":    {TagJavaScript},
	"vite.config.js":    {TagJavaScript},
	"webpack.config.js": {TagJavaScript},

	"Cargo.toml": {TagRust},
	"Cargo.lock": {TagRust},
	"build.rs":   {TagRust},

	"go.mod": {TagGo},
	"go.sum": {TagGo},

	"Makefile": {TagC},
	"config.h": {TagC},

	"CMakeLists.txt": {TagCpp, TagC},
	".clang-format":  {TagCpp, TagC},
	".clang-tidy":    {TagCpp, TagC},

	"requirements.txt": {TagPython},
	"Pipfile":          {TagPython},
	"pyproject.toml":   {TagPython},
	"setup.py":         {TagPython},
	"tox.ini":          {TagPython},

	"pom.xml":         {TagJava},
	"build.gradle":    {TagJava},
	"settings.gradle": {TagJava},

	"build.gradle.kts":    {TagKotlin},
	"settings.gradle.kts": {TagKotlin},

	"Package.swift": {TagSwift},
	"Info.plist":    {TagSwift},
	".xcodeproj":    {TagSwift},
	".xcworkspace":  {TagSwift},

	"composer.json": {TagPHP},
	"composer.lock": {TagPHP},

	"Gemfile":      {TagRuby},
	"Gemfile.lock": {TagRuby},
	"Rakefile":     {TagRuby},

	".sh":      {TagShell},
	".bashrc":  {TagShell},
	".zshrc":   {TagShell},
	".profile": {TagShell},

	"pubspec.yaml": {TagDart},
	".packages":    {TagDart},

	"stack.yaml":    {TagHaskell},
	"cabal.project": {TagHaskell},
	".ghci":         {TagHaskell},

	"build.sbt": {TagScala},

	"Makefile.PL": {TagPerl},

	"DESCRIPTION": {TagR},
	"NAMESPACE":   {TagR},

	"mix.exs": {TagElixir},

	".csproj":    {TagCSharp},
	".sln":       {TagCSharp},
	"app.config": {TagCSharp},

	".fsproj": {TagFSharp},

	"init.lua":    {TagLua},
	".luacheckrc": {TagLua},
}

// All returns every known tag in a fixed order.
func All() []Tag {
	return append([]Tag(nil), allTags...)
}

// Name returns the display name of the tag, e.g. "C++" for TagCpp.
func (t Tag) Name() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// Files returns a copy of the include patterns owned by the tag.
func (t Tag) Files() []string {
	return append([]string(nil), tagFiles[t]...)
}

// Markers returns the marker file names that imply the tag, sorted.
func (t Tag) Markers() []string {
	var markers []string
	for name, tags := range markerTags {
		for _, tag := range tags {
			if tag == t {
				markers = append(markers, name)
				break
			}
		}
	}
	sort.Strings(markers)
	return markers
}

// ParseTag resolves a tag from its identifier or display name, ignoring case.
// Common aliases such as "js", "ts", "c++" and "c#" are accepted.
func ParseTag(s string) (Tag, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if tag, ok := tagAliases[key]; ok {
		return tag, nil
	}
	for _, tag := range allTags {
		if key == string(tag) || key == strings.ToLower(tag.Name()) {
			return tag, nil
		}
	}
	return "", fmt.Errorf("unknown project type %q", s)
}

// ParseTags resolves a list of tag names, keeping order and dropping repeats.
func ParseTags(names []string) ([]Tag, error) {
	var tags []Tag
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		tag, err := ParseTag(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return dedupTags(tags), nil
}

var tagAliases = map[string]Tag{
	"js":         TagJavaScript,
	"ts":         TagJavaScript,
	"typescript": TagJavaScript,
	"node":       TagJavaScript,
	"rs":         TagRust,
	"golang":     TagGo,
	"c++":        TagCpp,
	"cxx":        TagCpp,
	"py":         TagPython,
	"kt":         TagKotlin,
	"rb":         TagRuby,
	"sh":         TagShell,
	"bash":       TagShell,
	"hs":         TagHaskell,
	"pl":         TagPerl,
	"ex":         TagElixir,
	"c#":         TagCSharp,
	"cs":         TagCSharp,
	"f#":         TagFSharp,
	"fs":         TagFSharp,
}
