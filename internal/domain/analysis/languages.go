package analysis

import (
	"path/filepath"
	"strings"
)

// LanguageUnknown is assigned to files whose extension is not recognized.
const LanguageUnknown = "Unknown"

// languageByExtension maps file extensions to language names. Covers
// programming languages plus the configuration and build files that code
// scans are expected to pick up.
var languageByExtension = map[string]string{
	// Programming languages
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".jsx":   "React JSX",
	".tsx":   "React TSX",
	".html":  "HTML",
	".css":   "CSS",
	".scss":  "SCSS",
	".sass":  "Sass",
	".less":  "Less",
	".java":  "Java",
	".c":     "C",
	".cpp":   "C++",
	".h":     "C/C++ Header",
	".cs":    "C#",
	".go":    "Go",
	".rs":    "Rust",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",

	// Configuration files
	".json":   "JSON",
	".yaml":   "YAML",
	".yml":    "YAML",
	".toml":   "TOML",
	".xml":    "XML",
	".ini":    "INI",
	".conf":   "Configuration",
	".config": "Configuration",

	// Build files
	".cmake":       "CMake",
	".makefile":    "Makefile",
	".mk":          "Makefile",
	".dockerfile":  "Dockerfile",
	".jenkinsfile": "Jenkinsfile",
}

// DetectLanguage returns the language for a file path based on its extension.
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return LanguageUnknown
}

// IsSupportedExtension reports whether ext maps to a known language.
func IsSupportedExtension(ext string) bool {
	_, ok := languageByExtension[strings.ToLower(ext)]
	return ok
}

// SupportedExtensions returns every extension with a known language mapping.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(languageByExtension))
	for ext := range languageByExtension {
		exts = append(exts, ext)
	}
	return exts
}
